package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CrewRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.Crew, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, c *domain.Crew) error
	Update(ctx context.Context, c *domain.Crew) error
	Delete(ctx context.Context, id int64) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) List(ctx context.Context, params ListParams) ([]domain.Crew, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM crews`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name FROM crews ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, 0, err
		}
		crews = append(crews, c)
	}
	return crews, total, rows.Err()
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name FROM crews WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		c.FirstName, c.LastName).Scan(&c.ID)
	return translateErr(err)
}

func (r *PGCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	res, err := r.db.Exec(ctx, `UPDATE crews SET first_name=$1, last_name=$2 WHERE id=$3`, c.FirstName, c.LastName, c.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM crews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
