package locations

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"logistics-service/pkg/validation"
)

// GeoIndex is the nearest-point lookup backed by the Redis GEO set.
type GeoIndex interface {
	AddLocation(ctx context.Context, locationID string, lat, lng float64) error
	NearbyLocations(ctx context.Context, lat, lng, radiusKm float64, count int) ([]string, error)
}

// Service contains location business logic.
type Service struct {
	repo Repository
	geo  GeoIndex
}

// NewService creates a location service.
func NewService(repo Repository, geo GeoIndex) *Service {
	return &Service{repo: repo, geo: geo}
}

// Create validates coordinate ranges and persists a location. The geo index
// write is best-effort: a failure there doesn't undo the stored row.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Location, error) {
	if err := validation.ValidateCoordinates(req.Latitude, req.Longitude); err != nil {
		return nil, err
	}

	l := &Location{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}

	if err := s.geo.AddLocation(ctx, l.ID, l.Latitude, l.Longitude); err != nil {
		log.Printf("[locations] geo index add failed for %s: %v", l.ID, err)
	}
	return l, nil
}

// GetByID fetches a location by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all known locations.
func (s *Service) List(ctx context.Context) ([]Location, error) {
	return s.repo.List(ctx)
}

// Nearby returns up to count locations within radiusKm of the given point,
// nearest first. IDs present in the index but missing from storage are skipped.
func (s *Service) Nearby(ctx context.Context, lat, lng, radiusKm float64, count int) ([]Location, error) {
	if err := validation.ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	ids, err := s.geo.NearbyLocations(ctx, lat, lng, radiusKm, count)
	if err != nil {
		return nil, err
	}

	out := make([]Location, 0, len(ids))
	for _, id := range ids {
		l, err := s.repo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}
