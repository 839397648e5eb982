package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/leaflift/analytics/internal/domain"
)

// fleetBuffer sizes the recommended fleet 20% above observed peak demand.
const fleetBuffer = 1.2

const overallFleetRecommendation = "Increase BIKE fleet by 15% and reduce BIG_CAR idle time by shifting drivers to CAR category during off-peak"

// buildFleetReport sizes each observed vehicle category from its hourly
// demand profile. Categories with no rides in the snapshot are omitted
// rather than zero-filled.
func buildFleetReport(rides []domain.RideRecord) *domain.FleetReport {
	demand := aggregateByCategoryHour(rides)

	allocations := make(map[domain.VehicleCategory]domain.FleetAllocation, len(demand))
	for _, cat := range domain.VehicleCategories {
		hours, ok := demand[cat]
		if !ok {
			continue
		}

		total, peak := 0, 0
		for h := 0; h < 24; h++ {
			total += hours[h]
			if hours[h] > peak {
				peak = hours[h]
			}
		}

		allocations[cat] = domain.FleetAllocation{
			TotalRides:           total,
			PeakDemandPerHour:    peak,
			AvgDemandPerHour:     round1(float64(total) / 24),
			RecommendedFleetSize: int(math.Ceil(float64(peak) * fleetBuffer)),
			PeakHours:            topPeakHours(hours, 3),
		}
	}

	return &domain.FleetReport{
		Allocations:           allocations,
		OverallRecommendation: overallFleetRecommendation,
		AnalyzedPeriodDays:    analyzedPeriodDays(rides),
		TotalRidesAnalyzed:    len(rides),
	}
}

// topPeakHours returns the n busiest hours, highest demand first; equal
// demand resolves to the lower hour.
func topPeakHours(hours *[24]int, n int) []int {
	order := make([]int, 24)
	for h := range order {
		order[h] = h
	}
	sort.SliceStable(order, func(i, j int) bool {
		return hours[order[i]] > hours[order[j]]
	})
	if n > len(order) {
		n = len(order)
	}
	top := make([]int, n)
	copy(top, order[:n])
	return top
}

// analyzedPeriodDays is the whole-day span between the oldest and newest
// ride in the snapshot.
func analyzedPeriodDays(rides []domain.RideRecord) int {
	if len(rides) == 0 {
		return 0
	}
	oldest, newest := rides[0].CreatedAt, rides[0].CreatedAt
	for i := range rides {
		ts := rides[i].CreatedAt
		if ts.Before(oldest) {
			oldest = ts
		}
		if ts.After(newest) {
			newest = ts
		}
	}
	return int(newest.Sub(oldest) / (24 * time.Hour))
}
