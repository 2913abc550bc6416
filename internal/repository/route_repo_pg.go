package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.Route, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, rt *domain.Route) error
	Update(ctx context.Context, rt *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `
	SELECT r.id, r.source_id, r.destination_id, r.distance,
	       src.name, src.closest_big_city,
	       dst.name, dst.closest_big_city
	FROM routes r
	JOIN airports src ON src.id = r.source_id
	JOIN airports dst ON dst.id = r.destination_id`

func (r *PGRouteRepository) List(ctx context.Context, params ListParams) ([]domain.Route, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM routes`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, routeSelect+` ORDER BY src.name, dst.name LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		rt, err := scanRoute(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		routes = append(routes, *rt)
	}
	return routes, total, rows.Err()
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id)
	rt, err := scanRoute(row.Scan)
	if err != nil {
		return nil, translateErr(err)
	}
	return rt, nil
}

func scanRoute(scan func(dest ...any) error) (*domain.Route, error) {
	var rt domain.Route
	var src, dst domain.Airport
	if err := scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.Distance,
		&src.Name, &src.ClosestBigCity, &dst.Name, &dst.ClosestBigCity); err != nil {
		return nil, err
	}
	src.ID = rt.SourceID
	dst.ID = rt.DestinationID
	rt.Source = &src
	rt.Destination = &dst
	return &rt, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, rt *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		rt.SourceID, rt.DestinationID, rt.Distance).Scan(&rt.ID)
	return translateErr(err)
}

func (r *PGRouteRepository) Update(ctx context.Context, rt *domain.Route) error {
	res, err := r.db.Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance=$3 WHERE id=$4`,
		rt.SourceID, rt.DestinationID, rt.Distance, rt.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRouteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
