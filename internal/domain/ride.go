package domain

import (
	"time"
)

type RideStatus string

const (
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCanceled  RideStatus = "CANCELED"
	RideStatusSearching RideStatus = "SEARCHING"
)

type VehicleCategory string

const (
	VehicleBike   VehicleCategory = "BIKE"
	VehicleAuto   VehicleCategory = "AUTO"
	VehicleCar    VehicleCategory = "CAR"
	VehicleBigCar VehicleCategory = "BIG_CAR"
)

// VehicleCategories lists every known category in display order.
var VehicleCategories = []VehicleCategory{VehicleBike, VehicleAuto, VehicleCar, VehicleBigCar}

// RideRecord is one ride transaction as read from the store. Records are
// immutable inputs to the analytics pipeline; anything failing Valid() is
// filtered at ingestion rather than propagated downstream.
type RideRecord struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time       `json:"created_at" gorm:"index"`
	Fare            float64         `json:"fare"`
	Status          RideStatus      `json:"status" gorm:"index"`
	IsPooled        bool            `json:"is_pooled"`
	VehicleCategory VehicleCategory `json:"vehicle_category"`
	CO2Saved        float64         `json:"co2_saved"`
	CO2Emissions    float64         `json:"co2_emissions"`
	Distance        float64         `json:"distance"`
}

func (RideRecord) TableName() string { return "rides" }

func (s RideStatus) Valid() bool {
	switch s {
	case RideStatusCompleted, RideStatusCanceled, RideStatusSearching:
		return true
	}
	return false
}

func (c VehicleCategory) Valid() bool {
	switch c {
	case VehicleBike, VehicleAuto, VehicleCar, VehicleBigCar:
		return true
	}
	return false
}

// Valid reports whether the record may enter aggregation: a parseable,
// non-zero timestamp and in-enum status and category.
func (r *RideRecord) Valid() bool {
	return !r.CreatedAt.IsZero() && r.Status.Valid() && r.VehicleCategory.Valid()
}
