package vehicles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"logistics-service/pkg/validation"
)

// Service contains vehicle business logic.
type Service struct {
	repo Repository
}

// NewService creates a vehicle service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add registers a vehicle under the given owner. Capacity and fuel efficiency
// must be positive; the fuel efficiency check guarantees route optimization
// never divides by zero downstream.
func (s *Service) Add(ctx context.Context, userID string, req AddRequest) (*Vehicle, error) {
	if err := validation.ValidateCapacity(req.CapacityKg); err != nil {
		return nil, err
	}
	if err := validation.ValidateFuelEfficiency(req.FuelEfficiency); err != nil {
		return nil, err
	}

	v := &Vehicle{
		ID:             uuid.New().String(),
		UserID:         userID,
		VehicleNumber:  req.VehicleNumber,
		CapacityKg:     req.CapacityKg,
		FuelEfficiency: req.FuelEfficiency,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID fetches a vehicle by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser returns all vehicles owned by a user.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Vehicle, error) {
	return s.repo.ListByUser(ctx, userID)
}
