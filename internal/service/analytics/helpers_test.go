package analytics

import (
	"fmt"
	"time"

	"github.com/leaflift/analytics/internal/domain"
)

// baseDay is a Wednesday; tests that care about weekday features say so
// explicitly.
var baseDay = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

// ridesAt builds n rides in the given hour of baseDay.
func ridesAt(hour, n int, status domain.RideStatus, cat domain.VehicleCategory) []domain.RideRecord {
	rides := make([]domain.RideRecord, 0, n)
	for i := 0; i < n; i++ {
		rides = append(rides, domain.RideRecord{
			ID:              fmt.Sprintf("ride-%d-%d", hour, i),
			CreatedAt:       baseDay.Add(time.Duration(hour)*time.Hour + time.Duration(i)*time.Minute),
			Fare:            100,
			Status:          status,
			VehicleCategory: cat,
		})
	}
	return rides
}

// flatDayWithSpike builds the canonical distribution: every hour has base
// rides except spikeHour, which has spike.
func flatDayWithSpike(base, spike, spikeHour int) []domain.RideRecord {
	var rides []domain.RideRecord
	for h := 0; h < 24; h++ {
		n := base
		if h == spikeHour {
			n = spike
		}
		rides = append(rides, ridesAt(h, n, domain.RideStatusCompleted, domain.VehicleCar)...)
	}
	return rides
}
