package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneTypeRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.AirplaneType, int, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, t *domain.AirplaneType) error
	Update(ctx context.Context, t *domain.AirplaneType) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context, params ListParams) ([]domain.AirplaneType, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airplane_types`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY name LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, 0, err
		}
		types = append(types, t)
	}
	return types, total, rows.Err()
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	err := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return nil, translateErr(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
	return translateErr(err)
}

func (r *PGAirplaneTypeRepository) Update(ctx context.Context, t *domain.AirplaneType) error {
	res, err := r.db.Exec(ctx, `UPDATE airplane_types SET name=$1 WHERE id=$2`, t.Name, t.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirplaneTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplane_types WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
