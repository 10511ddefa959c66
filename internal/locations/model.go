package locations

import "time"

// Location is a named geographic point shipments move between.
type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the body for POST /locations.
type CreateRequest struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
