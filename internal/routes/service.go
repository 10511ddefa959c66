package routes

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"logistics-service/internal/events"
	"logistics-service/internal/geo"
	"logistics-service/internal/shipments"
	"logistics-service/pkg/kafka"
)

// ShipmentResolver loads a shipment with its vehicle and locations.
type ShipmentResolver interface {
	Resolve(ctx context.Context, id string) (*shipments.Resolved, error)
}

// ResultCache holds the latest result per shipment (Redis hash with TTL).
type ResultCache interface {
	CacheRouteResult(ctx context.Context, shipmentID string, data map[string]string) error
	GetCachedRouteResult(ctx context.Context, shipmentID string) (map[string]string, error)
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service computes and stores route optimization results.
type Service struct {
	repo      Repository
	resolver  ShipmentResolver
	cache     ResultCache
	publisher Publisher
	now       func() time.Time
}

// NewService creates a route optimization service.
func NewService(repo Repository, resolver ShipmentResolver, cache ResultCache, publisher Publisher) *Service {
	return &Service{repo: repo, resolver: resolver, cache: cache, publisher: publisher, now: time.Now}
}

// Optimize computes the pickup-to-drop distance for a shipment, derives fuel
// usage from the vehicle's km-per-litre ratio, and persists a new result.
// Fuel efficiency is positive by construction (enforced at vehicle creation),
// so the division is safe. A failed persist discards the computed values; no
// retry. Each call appends a fresh result.
func (s *Service) Optimize(ctx context.Context, shipmentID string) (*RouteResult, error) {
	sh, err := s.resolver.Resolve(ctx, shipmentID)
	if err != nil {
		return nil, err
	}

	distance := geo.DistanceKm(
		geo.Point{Lat: sh.Pickup.Latitude, Lng: sh.Pickup.Longitude},
		geo.Point{Lat: sh.Drop.Latitude, Lng: sh.Drop.Longitude},
	)
	fuel := distance / sh.Vehicle.FuelEfficiency

	res := &RouteResult{
		ID:          uuid.New().String(),
		ShipmentID:  sh.ID,
		DistanceKm:  distance,
		FuelLitres:  fuel,
		GeneratedAt: s.now(),
	}
	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	if err := s.cache.CacheRouteResult(ctx, sh.ID, cacheFields(res)); err != nil {
		log.Printf("[routes] failed to cache result for shipment %s: %v", sh.ID, err)
	}

	go func() {
		ev := events.RouteOptimizedEvent{
			ResultID:    res.ID,
			ShipmentID:  res.ShipmentID,
			DistanceKm:  res.DistanceKm,
			FuelLitres:  res.FuelLitres,
			GeneratedAt: res.GeneratedAt.Format(time.RFC3339),
		}
		if err := s.publisher.Publish(context.Background(), kafka.TopicRouteOptimized, res.ShipmentID, ev); err != nil {
			log.Printf("[routes] failed to publish route.optimized: %v", err)
		}
	}()

	return res, nil
}

// GetResult fetches a result by primary key.
func (s *Service) GetResult(ctx context.Context, id string) (*RouteResult, error) {
	return s.repo.GetByID(ctx, id)
}

// LatestForShipment returns the most recent result for a shipment, serving
// from the cache when possible and refilling it on a miss.
func (s *Service) LatestForShipment(ctx context.Context, shipmentID string) (*RouteResult, error) {
	if fields, err := s.cache.GetCachedRouteResult(ctx, shipmentID); err == nil && len(fields) > 0 {
		if res, ok := fromCacheFields(fields); ok {
			return res, nil
		}
	}

	res, err := s.repo.LatestByShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.CacheRouteResult(ctx, shipmentID, cacheFields(res)); err != nil {
		log.Printf("[routes] failed to cache result for shipment %s: %v", shipmentID, err)
	}
	return res, nil
}

func cacheFields(r *RouteResult) map[string]string {
	return map[string]string{
		"id":           r.ID,
		"shipment_id":  r.ShipmentID,
		"distance_km":  strconv.FormatFloat(r.DistanceKm, 'f', -1, 64),
		"fuel_litres":  strconv.FormatFloat(r.FuelLitres, 'f', -1, 64),
		"generated_at": r.GeneratedAt.Format(time.RFC3339Nano),
	}
}

func fromCacheFields(fields map[string]string) (*RouteResult, bool) {
	distance, err1 := strconv.ParseFloat(fields["distance_km"], 64)
	fuel, err2 := strconv.ParseFloat(fields["fuel_litres"], 64)
	generatedAt, err3 := time.Parse(time.RFC3339Nano, fields["generated_at"])
	if fields["id"] == "" || err1 != nil || err2 != nil || err3 != nil {
		return nil, false
	}
	return &RouteResult{
		ID:          fields["id"],
		ShipmentID:  fields["shipment_id"],
		DistanceKm:  distance,
		FuelLitres:  fuel,
		GeneratedAt: generatedAt,
	}, true
}
