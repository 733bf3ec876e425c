package domain

import "time"

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// Equipment is a single rentable fleet unit. The availability pair
// (Status, NextAvailableDate) is owned by the booking service; fleet
// management may only move a unit between AVAILABLE and MAINTENANCE
// while no rental is active on it.
type Equipment struct {
	ID             string          `json:"id"`
	Make           string          `json:"make"`
	Model          string          `json:"model"`
	Capacity       string          `json:"capacity"`
	Power          string          `json:"power"`
	Torque         string          `json:"torque"`
	Fuel           string          `json:"fuel"`
	ImageURL       string          `json:"image_url"`
	DailyRateCents int32           `json:"daily_rate_cents"`
	Status         EquipmentStatus `json:"status"`
	// NextAvailableDate is non-nil exactly while the unit is RENTED.
	NextAvailableDate *time.Time `json:"next_available_date,omitempty"`
	CreatedOn         time.Time  `json:"created_on"`
	UpdatedOn         time.Time  `json:"updated_on"`
}

// EquipmentSummary is the denormalized slice of equipment fields carried
// on rental listings for display.
type EquipmentSummary struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	ImageURL string `json:"image_url"`
	Capacity string `json:"capacity"`
	Power    string `json:"power"`
}
