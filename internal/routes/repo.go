package routes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-service/pkg/apperr"
)

// Repository is the storage boundary for route optimization results.
type Repository interface {
	Create(ctx context.Context, r *RouteResult) error
	GetByID(ctx context.Context, id string) (*RouteResult, error)
	LatestByShipment(ctx context.Context, shipmentID string) (*RouteResult, error)
}

// PostgresRepository implements Repository over a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wires a repository to the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, res *RouteResult) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO route_results (id,shipment_id,distance_km,fuel_litres,generated_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		res.ID, res.ShipmentID, res.DistanceKm, res.FuelLitres, res.GeneratedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*RouteResult, error) {
	var res RouteResult
	err := r.db.QueryRow(ctx,
		`SELECT id,shipment_id,distance_km,fuel_litres,generated_at
		 FROM route_results WHERE id=$1`, id).
		Scan(&res.ID, &res.ShipmentID, &res.DistanceKm, &res.FuelLitres, &res.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("result", id)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *PostgresRepository) LatestByShipment(ctx context.Context, shipmentID string) (*RouteResult, error) {
	var res RouteResult
	err := r.db.QueryRow(ctx,
		`SELECT id,shipment_id,distance_km,fuel_litres,generated_at
		 FROM route_results WHERE shipment_id=$1
		 ORDER BY generated_at DESC LIMIT 1`, shipmentID).
		Scan(&res.ID, &res.ShipmentID, &res.DistanceKm, &res.FuelLitres, &res.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("result", shipmentID)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}
