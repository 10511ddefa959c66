package shipments

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"logistics-service/internal/events"
	"logistics-service/internal/locations"
	"logistics-service/internal/vehicles"
	"logistics-service/pkg/kafka"
	"logistics-service/pkg/validation"
)

// VehicleDirectory resolves vehicle references at shipment creation.
type VehicleDirectory interface {
	GetByID(ctx context.Context, id string) (*vehicles.Vehicle, error)
}

// LocationDirectory resolves location references at shipment creation.
type LocationDirectory interface {
	GetByID(ctx context.Context, id string) (*locations.Location, error)
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Service contains shipment business logic.
type Service struct {
	repo      Repository
	vehicles  VehicleDirectory
	locations LocationDirectory
	publisher Publisher
	now       func() time.Time
}

// NewService creates a shipment service.
func NewService(repo Repository, v VehicleDirectory, l LocationDirectory, p Publisher) *Service {
	return &Service{repo: repo, vehicles: v, locations: l, publisher: p, now: time.Now}
}

// Create resolves the vehicle and both locations, checks weight against the
// vehicle's capacity and the scheduled date against today, then persists the
// shipment. Nothing is written when any step fails. On success a
// shipment.created event is published asynchronously.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Resolved, error) {
	vehicle, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}
	pickup, err := s.locations.GetByID(ctx, req.PickupLocationID)
	if err != nil {
		return nil, err
	}
	drop, err := s.locations.GetByID(ctx, req.DropLocationID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateWeight(req.WeightKg, vehicle.CapacityKg); err != nil {
		return nil, err
	}
	if err := validation.ValidateScheduledDate(req.ScheduledDate, s.now()); err != nil {
		return nil, err
	}

	sh := Shipment{
		ID:               uuid.New().String(),
		VehicleID:        vehicle.ID,
		PickupLocationID: pickup.ID,
		DropLocationID:   drop.ID,
		WeightKg:         req.WeightKg,
		ScheduledDate:    req.ScheduledDate,
		CreatedAt:        s.now(),
	}
	if err := s.repo.Create(ctx, &sh); err != nil {
		return nil, err
	}

	go func() {
		ev := events.ShipmentCreatedEvent{
			ShipmentID: sh.ID,
			VehicleID:  sh.VehicleID,
			Pickup:     events.LatLng{Lat: pickup.Latitude, Lng: pickup.Longitude},
			Drop:       events.LatLng{Lat: drop.Latitude, Lng: drop.Longitude},
			WeightKg:   sh.WeightKg,
			CreatedAt:  sh.CreatedAt.Format(time.RFC3339),
		}
		if err := s.publisher.Publish(context.Background(), kafka.TopicShipmentCreated, sh.ID, ev); err != nil {
			log.Printf("[shipments] failed to publish shipment.created: %v", err)
		}
	}()

	return &Resolved{Shipment: sh, Vehicle: vehicle, Pickup: pickup, Drop: drop}, nil
}

// GetByID fetches a shipment by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*Shipment, error) {
	return s.repo.GetByID(ctx, id)
}

// Resolve fetches a shipment along with its vehicle and both locations.
func (s *Service) Resolve(ctx context.Context, id string) (*Resolved, error) {
	sh, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicles.GetByID(ctx, sh.VehicleID)
	if err != nil {
		return nil, err
	}
	pickup, err := s.locations.GetByID(ctx, sh.PickupLocationID)
	if err != nil {
		return nil, err
	}
	drop, err := s.locations.GetByID(ctx, sh.DropLocationID)
	if err != nil {
		return nil, err
	}
	return &Resolved{Shipment: *sh, Vehicle: vehicle, Pickup: pickup, Drop: drop}, nil
}

// ListByVehicle returns all shipments assigned to a vehicle.
func (s *Service) ListByVehicle(ctx context.Context, vehicleID string) ([]Shipment, error) {
	return s.repo.ListByVehicle(ctx, vehicleID)
}
