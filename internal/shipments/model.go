package shipments

import (
	"time"

	"logistics-service/internal/locations"
	"logistics-service/internal/vehicles"
)

// Shipment is a load assigned to a vehicle between two locations.
type Shipment struct {
	ID               string    `json:"id"`
	VehicleID        string    `json:"vehicle_id"`
	PickupLocationID string    `json:"pickup_location_id"`
	DropLocationID   string    `json:"drop_location_id"`
	WeightKg         float64   `json:"weight_kg"`
	ScheduledDate    time.Time `json:"scheduled_date"`
	CreatedAt        time.Time `json:"created_at"`
}

// Resolved is a shipment with its vehicle and location references loaded.
type Resolved struct {
	Shipment
	Vehicle *vehicles.Vehicle   `json:"vehicle"`
	Pickup  *locations.Location `json:"pickup"`
	Drop    *locations.Location `json:"drop"`
}

// CreateRequest is the body for POST /shipments.
type CreateRequest struct {
	VehicleID        string    `json:"vehicle_id"`
	PickupLocationID string    `json:"pickup_location_id"`
	DropLocationID   string    `json:"drop_location_id"`
	WeightKg         float64   `json:"weight_kg"`
	ScheduledDate    time.Time `json:"scheduled_date"`
}
