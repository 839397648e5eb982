package analytics

import (
	"github.com/leaflift/analytics/internal/domain"
)

// buildPeakHourReport flags hours whose ride count strictly exceeds
// mean + 1.5*std over the dense 24-hour distribution. Hours never observed
// count as zero rather than being skipped.
func buildPeakHourReport(rides []domain.RideRecord) *domain.PeakHourReport {
	hourly := aggregateByHour(rides)

	counts := make([]float64, 24)
	for h := 0; h < 24; h++ {
		counts[h] = float64(hourly[h].Total)
	}

	m := mean(counts)
	std := populationStd(counts)
	threshold := m + 1.5*std

	allHours := make([]domain.HourEntry, 0, 24)
	peakHours := make([]domain.HourEntry, 0, 4)
	for h := 0; h < 24; h++ {
		z := 0.0
		if std > 0 {
			z = round2((counts[h] - m) / std)
		}
		entry := domain.HourEntry{
			Hour:   h,
			Label:  hourLabel(h),
			Rides:  hourly[h].Total,
			IsPeak: counts[h] > threshold,
			ZScore: z,
		}
		allHours = append(allHours, entry)
		if entry.IsPeak {
			peakHours = append(peakHours, entry)
		}
	}

	return &domain.PeakHourReport{
		Threshold:          round1(threshold),
		Mean:               round1(m),
		Std:                round1(std),
		TotalRidesAnalyzed: len(rides),
		PeakHours:          peakHours,
		AllHours:           allHours,
	}
}
