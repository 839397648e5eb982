package analytics

import (
	"fmt"
	"time"
)

// Features are the calendar inputs derived from a ride timestamp. DayOfWeek
// is Monday=0 .. Sunday=6 so weekend detection and the regression features
// stay consistent across the pipeline.
type Features struct {
	Hour      int
	DayOfWeek int
	IsWeekend bool
	Month     int
}

// DeriveFeatures is a pure per-timestamp transform with no side effects.
func DeriveFeatures(t time.Time) Features {
	dow := (int(t.Weekday()) + 6) % 7
	return Features{
		Hour:      t.Hour(),
		DayOfWeek: dow,
		IsWeekend: dow >= 5,
		Month:     int(t.Month()),
	}
}

// Vector lays the features out in the fixed order the forecaster trains on.
func (f Features) Vector() []float64 {
	weekend := 0.0
	if f.IsWeekend {
		weekend = 1.0
	}
	return []float64{float64(f.Hour), float64(f.DayOfWeek), weekend, float64(f.Month)}
}

// featureNames indexes the importance map; order matches Vector.
var featureNames = []string{"hour", "dayofweek", "is_weekend", "month"}

// hourLabel renders an hour on the 12-hour clock the dashboards display
// (0 -> "12AM", 12 -> "12PM", 17 -> "5PM").
func hourLabel(hour int) string {
	display := hour
	if hour == 0 {
		display = 12
	} else if hour > 12 {
		display = hour - 12
	}
	suffix := "PM"
	if hour < 12 {
		suffix = "AM"
	}
	return fmt.Sprintf("%d%s", display, suffix)
}
