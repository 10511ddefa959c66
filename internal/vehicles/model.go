package vehicles

import "time"

// Vehicle is a fleet vehicle owned by exactly one user.
type Vehicle struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	VehicleNumber  string    `json:"vehicle_number"`
	CapacityKg     float64   `json:"capacity_kg"`
	FuelEfficiency float64   `json:"fuel_efficiency"` // km per litre
	CreatedAt      time.Time `json:"created_at"`
}

// AddRequest is the body for POST /vehicles.
type AddRequest struct {
	VehicleNumber  string  `json:"vehicle_number"`
	CapacityKg     float64 `json:"capacity_kg"`
	FuelEfficiency float64 `json:"fuel_efficiency"`
}
