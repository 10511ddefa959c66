package vehicles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-service/pkg/apperr"
)

// Repository is the storage boundary for vehicles. Vehicle number uniqueness
// is a storage constraint; violations surface untranslated.
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]Vehicle, error)
}

// PostgresRepository implements Repository over a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wires a repository to the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, v *Vehicle) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vehicles (id,user_id,vehicle_number,capacity_kg,fuel_efficiency,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		v.ID, v.UserID, v.VehicleNumber, v.CapacityKg, v.FuelEfficiency, v.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	err := r.db.QueryRow(ctx,
		`SELECT id,user_id,vehicle_number,capacity_kg,fuel_efficiency,created_at
		 FROM vehicles WHERE id=$1`, id).
		Scan(&v.ID, &v.UserID, &v.VehicleNumber, &v.CapacityKg, &v.FuelEfficiency, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("vehicle", id)
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Vehicle, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,user_id,vehicle_number,capacity_kg,fuel_efficiency,created_at
		 FROM vehicles WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(&v.ID, &v.UserID, &v.VehicleNumber, &v.CapacityKg, &v.FuelEfficiency, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
