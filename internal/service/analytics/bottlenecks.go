package analytics

import (
	"fmt"

	"github.com/leaflift/analytics/internal/domain"
)

// optimizationSuggestions is static operator guidance attached to every
// bottleneck report.
var optimizationSuggestions = []string{
	"Deploy more drivers during hours 8-10 AM and 5-7 PM",
	"Incentivize BIG_CAR drivers during peak hours (low supply)",
	"Implement surge pricing to balance demand-supply mismatch",
	"Pool matching algorithm improvement can reduce cancellations by ~15%",
}

// buildBottleneckReport flags hours whose cancellation or search rate
// exceeds its own mean + 1*std threshold. Rates of empty buckets are 0,
// not undefined, and enter the threshold statistics like any other hour.
func buildBottleneckReport(rides []domain.RideRecord) *domain.BottleneckReport {
	hourly := aggregateByHour(rides)

	cancelRates := make([]float64, 24)
	searchRates := make([]float64, 24)
	for h := 0; h < 24; h++ {
		if hourly[h].Total > 0 {
			total := float64(hourly[h].Total)
			cancelRates[h] = round1(float64(hourly[h].Canceled) / total * 100)
			searchRates[h] = round1(float64(hourly[h].Searching) / total * 100)
		}
	}

	cancelThreshold := mean(cancelRates) + populationStd(cancelRates)
	searchThreshold := mean(searchRates) + populationStd(searchRates)

	bottlenecks := make([]domain.Bottleneck, 0, 8)
	for h := 0; h < 24; h++ {
		cancelHigh := cancelRates[h] > cancelThreshold
		searchHigh := searchRates[h] > searchThreshold
		if !cancelHigh && !searchHigh {
			continue
		}

		var issues []string
		severity := "medium"
		if cancelHigh {
			issues = append(issues, fmt.Sprintf("High cancellation rate (%.1f%%)", cancelRates[h]))
			severity = "high"
		}
		if searchHigh {
			issues = append(issues, fmt.Sprintf("Many rides stuck searching (%.1f%%)", searchRates[h]))
		}

		suggestion := "Reduce wait times / improve matching"
		if searchHigh {
			suggestion = "Increase driver supply"
		}

		bottlenecks = append(bottlenecks, domain.Bottleneck{
			Hour:       h,
			Label:      hourLabel(h),
			Issues:     issues,
			Severity:   severity,
			CancelRate: cancelRates[h],
			SearchRate: searchRates[h],
			TotalRides: hourly[h].Total,
			Suggestion: suggestion,
		})
	}

	return &domain.BottleneckReport{
		Bottlenecks:             bottlenecks,
		CancelThreshold:         round1(cancelThreshold),
		SearchThreshold:         round1(searchThreshold),
		VehicleCancelRates:      vehicleCancelRates(rides),
		OptimizationSuggestions: optimizationSuggestions,
		AnalyzedRides:           len(rides),
	}
}

// vehicleCancelRates is the auxiliary per-category breakdown; categories
// absent from the snapshot are omitted and nothing is flagged here.
func vehicleCancelRates(rides []domain.RideRecord) []domain.VehicleCancelRate {
	totals := make(map[domain.VehicleCategory]int)
	canceled := make(map[domain.VehicleCategory]int)
	for i := range rides {
		totals[rides[i].VehicleCategory]++
		if rides[i].Status == domain.RideStatusCanceled {
			canceled[rides[i].VehicleCategory]++
		}
	}

	rates := make([]domain.VehicleCancelRate, 0, len(totals))
	for _, cat := range domain.VehicleCategories {
		total, ok := totals[cat]
		if !ok {
			continue
		}
		rates = append(rates, domain.VehicleCancelRate{
			VehicleCategory: cat,
			Total:           total,
			Canceled:        canceled[cat],
			CancelRate:      round1(float64(canceled[cat]) / float64(total) * 100),
		})
	}
	return rates
}
