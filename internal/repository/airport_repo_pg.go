package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.Airport, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, a *domain.Airport) error
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context, params ListParams) ([]domain.Airport, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airports`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, closest_big_city FROM airports ORDER BY name LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, 0, err
		}
		airports = append(airports, a)
	}
	return airports, total, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.ClosestBigCity)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		a.Name, a.ClosestBigCity).Scan(&a.ID)
	return translateErr(err)
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, closest_big_city=$2 WHERE id=$3`, a.Name, a.ClosestBigCity, a.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
