package shipments

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-service/pkg/apperr"
)

// Repository is the storage boundary for shipments.
type Repository interface {
	Create(ctx context.Context, s *Shipment) error
	GetByID(ctx context.Context, id string) (*Shipment, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]Shipment, error)
}

// PostgresRepository implements Repository over a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wires a repository to the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *Shipment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO shipments (id,vehicle_id,pickup_location_id,drop_location_id,weight_kg,scheduled_date,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.VehicleID, s.PickupLocationID, s.DropLocationID, s.WeightKg, s.ScheduledDate, s.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Shipment, error) {
	var s Shipment
	err := r.db.QueryRow(ctx,
		`SELECT id,vehicle_id,pickup_location_id,drop_location_id,weight_kg,scheduled_date,created_at
		 FROM shipments WHERE id=$1`, id).
		Scan(&s.ID, &s.VehicleID, &s.PickupLocationID, &s.DropLocationID, &s.WeightKg, &s.ScheduledDate, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("shipment", id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]Shipment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,vehicle_id,pickup_location_id,drop_location_id,weight_kg,scheduled_date,created_at
		 FROM shipments WHERE vehicle_id=$1 ORDER BY created_at`, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Shipment
	for rows.Next() {
		var s Shipment
		if err := rows.Scan(&s.ID, &s.VehicleID, &s.PickupLocationID, &s.DropLocationID, &s.WeightKg, &s.ScheduledDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
