package routes

import "time"

// RouteResult is one optimization pass over a shipment. A shipment may
// accumulate many results; none are ever mutated after creation.
type RouteResult struct {
	ID          string    `json:"id"`
	ShipmentID  string    `json:"shipment_id"`
	DistanceKm  float64   `json:"distance_km"`
	FuelLitres  float64   `json:"fuel_litres"`
	GeneratedAt time.Time `json:"generated_at"`
}
