package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leaflift/analytics/internal/domain"
)

func TestPopulationStd(t *testing.T) {
	// 23 values of 10 and one of 50: population formula, divisor n.
	values := make([]float64, 24)
	for i := range values {
		values[i] = 10
	}
	values[8] = 50

	assert.InDelta(t, 11.667, mean(values), 0.001)
	assert.InDelta(t, 7.993, populationStd(values), 0.001)
	assert.Equal(t, 0.0, populationStd([]float64{5, 5, 5}))
	assert.Equal(t, 0.0, populationStd(nil))
}

func TestAggregateByHour_DenseAxis(t *testing.T) {
	rides := append(
		ridesAt(8, 3, domain.RideStatusCompleted, domain.VehicleCar),
		ridesAt(8, 1, domain.RideStatusCanceled, domain.VehicleCar)...,
	)
	rides = append(rides, ridesAt(22, 2, domain.RideStatusSearching, domain.VehicleBike)...)

	hours := aggregateByHour(rides)

	assert.Equal(t, 4, hours[8].Total)
	assert.Equal(t, 1, hours[8].Canceled)
	assert.Equal(t, 2, hours[22].Searching)
	assert.Equal(t, 0, hours[3].Total)
}

func TestAggregateByDateHour_BucketsAndOrder(t *testing.T) {
	nextDay := baseDay.AddDate(0, 0, 1)
	rides := []domain.RideRecord{
		{CreatedAt: nextDay.Add(9 * time.Hour), Status: domain.RideStatusCompleted, VehicleCategory: domain.VehicleCar},
		{CreatedAt: baseDay.Add(9 * time.Hour), Status: domain.RideStatusCompleted, VehicleCategory: domain.VehicleCar},
		{CreatedAt: baseDay.Add(9*time.Hour + 30*time.Minute), Status: domain.RideStatusCompleted, VehicleCategory: domain.VehicleCar},
	}

	samples := aggregateByDateHour(rides)

	if len(samples) != 2 {
		t.Fatalf("expected 2 (date, hour) buckets, got %d", len(samples))
	}
	assert.Equal(t, 2.0, samples[0].rides, "both baseDay 9AM rides share a bucket")
	assert.Equal(t, 1.0, samples[1].rides)
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 11.7, round1(11.666))
	assert.Equal(t, 4.8, round2(4.796))
	assert.Equal(t, 0.333, round3(1.0/3.0))
}
