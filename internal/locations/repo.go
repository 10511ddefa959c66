package locations

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"logistics-service/pkg/apperr"
)

// Repository is the storage boundary for locations.
type Repository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context) ([]Location, error)
}

// PostgresRepository implements Repository over a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository wires a repository to the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *Location) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO locations (id,name,latitude,longitude,created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		l.ID, l.Name, l.Latitude, l.Longitude, l.CreatedAt)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Location, error) {
	var l Location
	err := r.db.QueryRow(ctx,
		`SELECT id,name,latitude,longitude,created_at FROM locations WHERE id=$1`, id).
		Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("location", id)
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Location, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,name,latitude,longitude,created_at FROM locations ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Location
	for rows.Next() {
		var l Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
