package analytics

import (
	"math"
	"sort"

	"github.com/leaflift/analytics/internal/domain"
)

// hourlyAggregate is one bucket of the dense 24-hour axis. Hours with no
// rides stay present with zero counts, which the peak and bottleneck
// reports require.
type hourlyAggregate struct {
	Total     int
	Canceled  int
	Searching int
	fareSum   float64
}

func (a hourlyAggregate) AvgFare() float64 {
	if a.Total == 0 {
		return 0
	}
	return a.fareSum / float64(a.Total)
}

// aggregateByHour folds the snapshot into 24 hourly buckets across all dates.
func aggregateByHour(rides []domain.RideRecord) [24]hourlyAggregate {
	var hours [24]hourlyAggregate
	for i := range rides {
		h := rides[i].CreatedAt.Hour()
		hours[h].Total++
		hours[h].fareSum += rides[i].Fare
		switch rides[i].Status {
		case domain.RideStatusCanceled:
			hours[h].Canceled++
		case domain.RideStatusSearching:
			hours[h].Searching++
		}
	}
	return hours
}

// trainingSample is one (date, hour) bucket: the forecaster's unit of
// observation.
type trainingSample struct {
	features []float64
	rides    float64
}

// aggregateByDateHour buckets the snapshot per (date, hour) pair and
// attaches the calendar features of each bucket. Only observed buckets are
// produced; the output order is deterministic.
func aggregateByDateHour(rides []domain.RideRecord) []trainingSample {
	type bucketKey struct {
		date string
		hour int
	}
	counts := make(map[bucketKey]int)
	features := make(map[bucketKey]Features)

	for i := range rides {
		ts := rides[i].CreatedAt
		key := bucketKey{date: ts.Format("2006-01-02"), hour: ts.Hour()}
		counts[key]++
		if _, seen := features[key]; !seen {
			features[key] = DeriveFeatures(ts)
		}
	}

	keys := make([]bucketKey, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].hour < keys[j].hour
	})

	samples := make([]trainingSample, 0, len(keys))
	for _, key := range keys {
		samples = append(samples, trainingSample{
			features: features[key].Vector(),
			rides:    float64(counts[key]),
		})
	}
	return samples
}

// aggregateByCategoryHour counts rides per (vehicle category, hour).
// Categories absent from the snapshot have no entry.
func aggregateByCategoryHour(rides []domain.RideRecord) map[domain.VehicleCategory]*[24]int {
	demand := make(map[domain.VehicleCategory]*[24]int)
	for i := range rides {
		cat := rides[i].VehicleCategory
		hours, ok := demand[cat]
		if !ok {
			hours = new([24]int)
			demand[cat] = hours
		}
		hours[rides[i].CreatedAt.Hour()]++
	}
	return demand
}

// mean and populationStd are the shared statistics every threshold
// computation uses. Standard deviation is the population variant (divisor
// n): the documented choice, applied consistently so flagged-hour sets do
// not depend on which component computed them.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStd(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
