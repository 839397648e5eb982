package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leaflift/analytics/internal/domain"
)

func TestBottleneckReport_AllCompletedIsClean(t *testing.T) {
	rides := flatDayWithSpike(10, 10, 0)

	report := buildBottleneckReport(rides)

	assert.Empty(t, report.Bottlenecks)
	assert.Equal(t, 0.0, report.CancelThreshold)
	assert.Equal(t, 0.0, report.SearchThreshold)
	assert.Equal(t, len(rides), report.AnalyzedRides)
	assert.NotEmpty(t, report.OptimizationSuggestions)
}

func TestBottleneckReport_HighCancellationHour(t *testing.T) {
	// Every hour has 10 rides; hour 5 has 5 of them canceled. Only hour 5
	// crosses mean + std of the cancel-rate series.
	var rides []domain.RideRecord
	for h := 0; h < 24; h++ {
		if h == 5 {
			rides = append(rides, ridesAt(h, 5, domain.RideStatusCompleted, domain.VehicleCar)...)
			rides = append(rides, ridesAt(h, 5, domain.RideStatusCanceled, domain.VehicleCar)...)
			continue
		}
		rides = append(rides, ridesAt(h, 10, domain.RideStatusCompleted, domain.VehicleCar)...)
	}

	report := buildBottleneckReport(rides)

	if assert.Len(t, report.Bottlenecks, 1) {
		b := report.Bottlenecks[0]
		assert.Equal(t, 5, b.Hour)
		assert.Equal(t, "high", b.Severity)
		assert.Equal(t, 50.0, b.CancelRate)
		assert.Equal(t, 10, b.TotalRides)
		assert.Equal(t, "Reduce wait times / improve matching", b.Suggestion)
		if assert.Len(t, b.Issues, 1) {
			assert.Contains(t, b.Issues[0], "High cancellation rate")
		}
	}
}

func TestBottleneckReport_SearchingHourIsMediumSeverity(t *testing.T) {
	var rides []domain.RideRecord
	for h := 0; h < 24; h++ {
		if h == 7 {
			rides = append(rides, ridesAt(h, 6, domain.RideStatusCompleted, domain.VehicleAuto)...)
			rides = append(rides, ridesAt(h, 4, domain.RideStatusSearching, domain.VehicleAuto)...)
			continue
		}
		rides = append(rides, ridesAt(h, 10, domain.RideStatusCompleted, domain.VehicleAuto)...)
	}

	report := buildBottleneckReport(rides)

	if assert.Len(t, report.Bottlenecks, 1) {
		b := report.Bottlenecks[0]
		assert.Equal(t, 7, b.Hour)
		assert.Equal(t, "medium", b.Severity)
		assert.Equal(t, 40.0, b.SearchRate)
		assert.Equal(t, "Increase driver supply", b.Suggestion)
	}
}

func TestVehicleCancelRates_OmitsAbsentCategories(t *testing.T) {
	rides := append(
		ridesAt(9, 8, domain.RideStatusCompleted, domain.VehicleBike),
		ridesAt(9, 2, domain.RideStatusCanceled, domain.VehicleBike)...,
	)
	rides = append(rides, ridesAt(10, 5, domain.RideStatusCompleted, domain.VehicleCar)...)

	rates := vehicleCancelRates(rides)

	if len(rates) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(rates))
	}
	byCat := make(map[domain.VehicleCategory]domain.VehicleCancelRate)
	for _, r := range rates {
		byCat[r.VehicleCategory] = r
	}
	if byCat[domain.VehicleBike].CancelRate != 20.0 {
		t.Errorf("expected BIKE cancel rate 20.0, got %v", byCat[domain.VehicleBike].CancelRate)
	}
	if byCat[domain.VehicleCar].CancelRate != 0.0 {
		t.Errorf("expected CAR cancel rate 0.0, got %v", byCat[domain.VehicleCar].CancelRate)
	}
	if _, ok := byCat[domain.VehicleBigCar]; ok {
		t.Error("BIG_CAR should be omitted when absent from the snapshot")
	}
}
