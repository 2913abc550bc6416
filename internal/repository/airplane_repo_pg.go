package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirplaneRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.Airplane, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, a *domain.Airplane) error
	Update(ctx context.Context, a *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) List(ctx context.Context, params ListParams) ([]domain.Airplane, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM airplanes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, pt.name
		FROM airplanes a
		JOIN airplane_types pt ON pt.id = a.airplane_type_id
		ORDER BY a.name
		LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		var typeName string
		if err := rows.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &typeName); err != nil {
			return nil, 0, err
		}
		a.AirplaneType = &domain.AirplaneType{ID: a.AirplaneTypeID, Name: typeName}
		airplanes = append(airplanes, a)
	}
	return airplanes, total, rows.Err()
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	var a domain.Airplane
	var typeName string
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.name, a.rows, a.seats_in_row, a.airplane_type_id, pt.name
		FROM airplanes a
		JOIN airplane_types pt ON pt.id = a.airplane_type_id
		WHERE a.id=$1`, id).
		Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &typeName)
	if err != nil {
		return nil, translateErr(err)
	}
	a.AirplaneType = &domain.AirplaneType{ID: a.AirplaneTypeID, Name: typeName}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, "rows", seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID).Scan(&a.ID)
	return translateErr(err)
}

func (r *PGAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	res, err := r.db.Exec(ctx, `UPDATE airplanes SET name=$1, "rows"=$2, seats_in_row=$3, airplane_type_id=$4 WHERE id=$5`,
		a.Name, a.Rows, a.SeatsInRow, a.AirplaneTypeID, a.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGAirplaneRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airplanes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirplaneRepository = (*PGAirplaneRepository)(nil)
