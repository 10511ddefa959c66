package routes

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"logistics-service/internal/locations"
	"logistics-service/internal/shipments"
	"logistics-service/internal/vehicles"
	"logistics-service/pkg/apperr"
)

type fakeRepo struct {
	created   []*RouteResult
	createErr error
}

func (f *fakeRepo) Create(ctx context.Context, r *RouteResult) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, r)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*RouteResult, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("result", id)
}

func (f *fakeRepo) LatestByShipment(ctx context.Context, shipmentID string) (*RouteResult, error) {
	var latest *RouteResult
	for _, r := range f.created {
		if r.ShipmentID == shipmentID && (latest == nil || r.GeneratedAt.After(latest.GeneratedAt)) {
			latest = r
		}
	}
	if latest == nil {
		return nil, apperr.NotFound("result", shipmentID)
	}
	return latest, nil
}

type fakeResolver struct {
	byID map[string]*shipments.Resolved
}

func (f *fakeResolver) Resolve(ctx context.Context, id string) (*shipments.Resolved, error) {
	if sh, ok := f.byID[id]; ok {
		return sh, nil
	}
	return nil, apperr.NotFound("shipment", id)
}

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]map[string]string
	setErr error
}

func (f *fakeCache) CacheRouteResult(ctx context.Context, shipmentID string, fields map[string]string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.data == nil {
		f.data = make(map[string]map[string]string)
	}
	f.data[shipmentID] = fields
	return nil
}

func (f *fakeCache) GetCachedRouteResult(ctx context.Context, shipmentID string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[shipmentID], nil
}

type fakePublisher struct {
	mu     sync.Mutex
	topics []string
}

func (f *fakePublisher) Publish(ctx context.Context, topic, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	return nil
}

func resolvedShipment(fuelEfficiency float64, pickup, drop locations.Location) *shipments.Resolved {
	return &shipments.Resolved{
		Shipment: shipments.Shipment{ID: "shp-1", VehicleID: "veh-1"},
		Vehicle:  &vehicles.Vehicle{ID: "veh-1", CapacityKg: 1000, FuelEfficiency: fuelEfficiency},
		Pickup:   &pickup,
		Drop:     &drop,
	}
}

func TestOptimize(t *testing.T) {
	pickup := locations.Location{ID: "loc-a", Latitude: 0, Longitude: 0}
	drop := locations.Location{ID: "loc-b", Latitude: 3, Longitude: 4}

	repo := &fakeRepo{}
	resolver := &fakeResolver{byID: map[string]*shipments.Resolved{
		"shp-1": resolvedShipment(10, pickup, drop),
	}}
	cache := &fakeCache{}
	svc := NewService(repo, resolver, cache, &fakePublisher{})

	t0 := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }

	res, err := svc.Optimize(context.Background(), "shp-1")
	if err != nil {
		t.Fatalf("Optimize() error: %v", err)
	}
	if math.Abs(res.DistanceKm-5) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 5", res.DistanceKm)
	}
	if math.Abs(res.FuelLitres-0.5) > 1e-9 {
		t.Errorf("FuelLitres = %v, want distance/efficiency = 0.5", res.FuelLitres)
	}
	if !res.GeneratedAt.Equal(t0) {
		t.Errorf("GeneratedAt = %v, want %v", res.GeneratedAt, t0)
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted %d results, want 1", len(repo.created))
	}
	if cache.data["shp-1"] == nil {
		t.Error("Optimize() did not cache the result")
	}
}

func TestOptimizeZeroDistanceForSamePoint(t *testing.T) {
	loc := locations.Location{ID: "loc-a", Latitude: 12.97, Longitude: 77.59}
	resolver := &fakeResolver{byID: map[string]*shipments.Resolved{
		"shp-1": resolvedShipment(8, loc, loc),
	}}
	svc := NewService(&fakeRepo{}, resolver, &fakeCache{}, &fakePublisher{})

	res, err := svc.Optimize(context.Background(), "shp-1")
	if err != nil {
		t.Fatalf("Optimize() error: %v", err)
	}
	if res.DistanceKm != 0 || res.FuelLitres != 0 {
		t.Errorf("got distance %v fuel %v, want 0 and 0", res.DistanceKm, res.FuelLitres)
	}
}

func TestOptimizeShipmentNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeResolver{}, &fakeCache{}, &fakePublisher{})

	_, err := svc.Optimize(context.Background(), "shp-404")
	if !apperr.IsNotFound(err) {
		t.Fatalf("Optimize() err = %v, want NotFoundError", err)
	}
	if !strings.Contains(err.Error(), "shipment") {
		t.Errorf("error %q does not mention shipment", err)
	}
}

func TestOptimizePersistFailureDiscardsResult(t *testing.T) {
	pickup := locations.Location{ID: "loc-a", Latitude: 0, Longitude: 0}
	drop := locations.Location{ID: "loc-b", Latitude: 1, Longitude: 1}
	storageErr := errors.New("connection reset")

	repo := &fakeRepo{createErr: storageErr}
	resolver := &fakeResolver{byID: map[string]*shipments.Resolved{
		"shp-1": resolvedShipment(10, pickup, drop),
	}}
	cache := &fakeCache{}
	svc := NewService(repo, resolver, cache, &fakePublisher{})

	res, err := svc.Optimize(context.Background(), "shp-1")
	if !errors.Is(err, storageErr) {
		t.Errorf("Optimize() err = %v, want storage error propagated", err)
	}
	if res != nil {
		t.Error("Optimize() returned a result despite failed persist")
	}
	if cache.data["shp-1"] != nil {
		t.Error("Optimize() cached a result that was never persisted")
	}
}

func TestRepeatedOptimizeAccumulatesResults(t *testing.T) {
	pickup := locations.Location{ID: "loc-a", Latitude: 0, Longitude: 0}
	drop := locations.Location{ID: "loc-b", Latitude: 1, Longitude: 0}

	repo := &fakeRepo{}
	resolver := &fakeResolver{byID: map[string]*shipments.Resolved{
		"shp-1": resolvedShipment(10, pickup, drop),
	}}
	svc := NewService(repo, resolver, &fakeCache{}, &fakePublisher{})

	for i := 0; i < 3; i++ {
		if _, err := svc.Optimize(context.Background(), "shp-1"); err != nil {
			t.Fatalf("Optimize() #%d error: %v", i+1, err)
		}
	}
	if len(repo.created) != 3 {
		t.Errorf("persisted %d results, want 3", len(repo.created))
	}
}

func TestGetResultNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeResolver{}, &fakeCache{}, &fakePublisher{})

	_, err := svc.GetResult(context.Background(), "res-404")
	if !apperr.IsNotFound(err) || !strings.Contains(err.Error(), "result") {
		t.Errorf("GetResult() err = %v, want NotFoundError mentioning result", err)
	}
}

func TestLatestForShipmentCacheRoundTrip(t *testing.T) {
	pickup := locations.Location{ID: "loc-a", Latitude: 0, Longitude: 0}
	drop := locations.Location{ID: "loc-b", Latitude: 3, Longitude: 4}

	repo := &fakeRepo{}
	resolver := &fakeResolver{byID: map[string]*shipments.Resolved{
		"shp-1": resolvedShipment(10, pickup, drop),
	}}
	cache := &fakeCache{}
	svc := NewService(repo, resolver, cache, &fakePublisher{})

	want, err := svc.Optimize(context.Background(), "shp-1")
	if err != nil {
		t.Fatalf("Optimize() error: %v", err)
	}

	// Served from cache.
	got, err := svc.LatestForShipment(context.Background(), "shp-1")
	if err != nil {
		t.Fatalf("LatestForShipment() error: %v", err)
	}
	if got.ID != want.ID || got.DistanceKm != want.DistanceKm {
		t.Errorf("cached result = %+v, want %+v", got, want)
	}

	// Cache cleared: falls back to storage and refills.
	cache.data = nil
	got, err = svc.LatestForShipment(context.Background(), "shp-1")
	if err != nil {
		t.Fatalf("LatestForShipment() after cache clear error: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("storage fallback result = %+v, want %+v", got, want)
	}
	if cache.data["shp-1"] == nil {
		t.Error("LatestForShipment() did not refill the cache")
	}
}
