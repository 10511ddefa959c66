package events

// LatLng is a coordinate pair used in event payloads.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ShipmentCreatedEvent is published to shipment.created.
type ShipmentCreatedEvent struct {
	ShipmentID string  `json:"shipment_id"`
	VehicleID  string  `json:"vehicle_id"`
	Pickup     LatLng  `json:"pickup"`
	Drop       LatLng  `json:"drop"`
	WeightKg   float64 `json:"weight_kg"`
	CreatedAt  string  `json:"created_at"`
}

// RouteOptimizedEvent is published to route.optimized.
type RouteOptimizedEvent struct {
	ResultID    string  `json:"result_id"`
	ShipmentID  string  `json:"shipment_id"`
	DistanceKm  float64 `json:"distance_km"`
	FuelLitres  float64 `json:"fuel_litres"`
	GeneratedAt string  `json:"generated_at"`
}
