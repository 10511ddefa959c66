package geo

import "math"

// Point is a latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceKm returns the planar Euclidean norm of the lat/lng deltas between
// two points, in kilometres. Coordinates are treated as points on a flat
// plane, not on a sphere; route results depend on this staying unchanged.
// Zero for identical points, strictly positive otherwise, symmetric.
func DistanceKm(a, b Point) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
