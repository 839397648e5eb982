package analytics

import (
	"sort"

	"github.com/leaflift/analytics/internal/domain"
)

// Fixed equivalence factors: kg CO2 absorbed per tree per year, and kg CO2
// emitted per average car per year.
const (
	kgCO2PerTreeYear = 22
	kgCO2PerCarYear  = 4600
)

// buildSustainabilityReport folds emissions fields into the summary the
// sustainability dashboard polls.
func buildSustainabilityReport(rides []domain.RideRecord) *domain.SustainabilityReport {
	var saved, emitted, poolingSaved float64
	pooled := 0
	monthly := make(map[string]*domain.MonthlyTrend)

	for i := range rides {
		r := &rides[i]
		saved += r.CO2Saved
		emitted += r.CO2Emissions
		if r.IsPooled {
			pooled++
			poolingSaved += r.CO2Saved
		}

		month := r.CreatedAt.Format("2006-01")
		trend, ok := monthly[month]
		if !ok {
			trend = &domain.MonthlyTrend{Month: month}
			monthly[month] = trend
		}
		trend.Saved += r.CO2Saved
		trend.Emitted += r.CO2Emissions
	}

	netReductionPct := 0.0
	if saved+emitted > 0 {
		netReductionPct = round1(saved / (saved + emitted) * 100)
	}

	return &domain.SustainabilityReport{
		TotalCO2SavedKg:       round1(saved),
		TotalCO2EmittedKg:     round1(emitted),
		PoolingCO2SavedKg:     round1(poolingSaved),
		NetReductionPct:       netReductionPct,
		TreesEquivalent:       round1(saved / kgCO2PerTreeYear),
		CarsOffRoadEquivalent: round1(saved / kgCO2PerCarYear),
		MonthlyTrend:          sortedTrend(monthly),
		TotalRides:            len(rides),
		PooledRides:           pooled,
		SustainabilityGrade:   sustainabilityGrade(netReductionPct),
	}
}

// sustainabilityGrade maps net reduction percentage to the letter rating;
// both boundaries are strict.
func sustainabilityGrade(netReductionPct float64) string {
	switch {
	case netReductionPct > 15:
		return "A+"
	case netReductionPct > 10:
		return "A"
	default:
		return "B"
	}
}

func sortedTrend(monthly map[string]*domain.MonthlyTrend) []domain.MonthlyTrend {
	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)

	trend := make([]domain.MonthlyTrend, 0, len(months))
	for _, month := range months {
		entry := monthly[month]
		entry.Saved = round1(entry.Saved)
		entry.Emitted = round1(entry.Emitted)
		trend = append(trend, *entry)
	}
	return trend
}
