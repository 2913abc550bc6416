package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FlightFilter narrows flight lists. Time bounds are half-open: [From, To).
type FlightFilter struct {
	ID            *int64
	RouteID       *int64
	DepartureFrom *time.Time
	DepartureTo   *time.Time
	ArrivalFrom   *time.Time
	ArrivalTo     *time.Time
	Limit         int
	Offset        int
}

type FlightRepository interface {
	List(ctx context.Context, filter FlightFilter) ([]domain.FlightListItem, int, error)
	GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error)
	Create(ctx context.Context, f *domain.Flight, crewIDs []int64) error
	Update(ctx context.Context, f *domain.Flight, crewIDs []int64) error
	Delete(ctx context.Context, id int64) error
	FindCrewConflicts(ctx context.Context, crewIDs []int64, departureTime, arrivalTime time.Time, excludeFlightID int64) ([]domain.Crew, error)
	ListDepartureNotices(ctx context.Context, from, to time.Time) ([]domain.DepartureNotice, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (filter FlightFilter) where() (string, []any) {
	clauses := make([]string, 0, 4)
	args := make([]any, 0, 6)

	add := func(clause string, vals ...any) {
		for _, v := range vals {
			args = append(args, v)
		}
		for i := len(args) - len(vals) + 1; i <= len(args); i++ {
			clause = strings.Replace(clause, "?", fmt.Sprintf("$%d", i), 1)
		}
		clauses = append(clauses, clause)
	}

	if filter.ID != nil {
		add("f.id = ?", *filter.ID)
	}
	if filter.RouteID != nil {
		add("f.route_id = ?", *filter.RouteID)
	}
	if filter.DepartureFrom != nil && filter.DepartureTo != nil {
		add("f.departure_time >= ? AND f.departure_time < ?", *filter.DepartureFrom, *filter.DepartureTo)
	}
	if filter.ArrivalFrom != nil && filter.ArrivalTo != nil {
		add("f.arrival_time >= ? AND f.arrival_time < ?", *filter.ArrivalFrom, *filter.ArrivalTo)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PGFlightRepository) List(ctx context.Context, filter FlightFilter) ([]domain.FlightListItem, int, error) {
	where, args := filter.where()

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM flights f`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// tickets_available and the route label are derived per read; a nulled
	// airplane or route degrades to zero capacity / empty label.
	query := `
		SELECT f.id,
		       COALESCE(src.name || ' - ' || dst.name, '') AS route_label,
		       COALESCE(pt.name, '') AS airplane_name,
		       f.departure_time, f.arrival_time,
		       COALESCE(array_agg(DISTINCT c.first_name || ' ' || c.last_name) FILTER (WHERE c.id IS NOT NULL), '{}') AS crew,
		       COALESCE(a.rows * a.seats_in_row, 0) - count(DISTINCT t.id) AS tickets_available
		FROM flights f
		LEFT JOIN airplanes a ON a.id = f.airplane_id
		LEFT JOIN airplane_types pt ON pt.id = a.airplane_type_id
		LEFT JOIN routes r ON r.id = f.route_id
		LEFT JOIN airports src ON src.id = r.source_id
		LEFT JOIN airports dst ON dst.id = r.destination_id
		LEFT JOIN flight_crew fc ON fc.flight_id = f.id
		LEFT JOIN crews c ON c.id = fc.crew_id
		LEFT JOIN tickets t ON t.flight_id = f.id` + where + `
		GROUP BY f.id, src.name, dst.name, pt.name, a.rows, a.seats_in_row
		ORDER BY f.departure_time
		LIMIT $` + fmt.Sprint(len(args)+1) + ` OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	flights := make([]domain.FlightListItem, 0)
	for rows.Next() {
		var item domain.FlightListItem
		if err := rows.Scan(&item.ID, &item.RouteLabel, &item.AirplaneName,
			&item.DepartureTime, &item.ArrivalTime, &item.Crew, &item.TicketsAvailable); err != nil {
			return nil, 0, err
		}
		flights = append(flights, item)
	}
	return flights, total, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.FlightDetail, error) {
	var d domain.FlightDetail
	var airplaneID, routeID *int64
	var airplaneName, typeName *string
	var airplaneRows, seatsInRow *int
	var typeID *int64
	var srcName, dstName *string

	err := r.db.QueryRow(ctx, `
		SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
		       a.name, a.rows, a.seats_in_row, a.airplane_type_id, pt.name,
		       src.name, dst.name
		FROM flights f
		LEFT JOIN airplanes a ON a.id = f.airplane_id
		LEFT JOIN airplane_types pt ON pt.id = a.airplane_type_id
		LEFT JOIN routes r ON r.id = f.route_id
		LEFT JOIN airports src ON src.id = r.source_id
		LEFT JOIN airports dst ON dst.id = r.destination_id
		WHERE f.id=$1`, id).
		Scan(&d.ID, &routeID, &airplaneID, &d.DepartureTime, &d.ArrivalTime,
			&airplaneName, &airplaneRows, &seatsInRow, &typeID, &typeName,
			&srcName, &dstName)
	if err != nil {
		return nil, translateErr(err)
	}

	d.RouteID = routeID
	d.AirplaneID = airplaneID
	if airplaneID != nil && airplaneName != nil {
		d.Airplane = &domain.Airplane{
			ID:             *airplaneID,
			Name:           *airplaneName,
			Rows:           *airplaneRows,
			SeatsInRow:     *seatsInRow,
			AirplaneTypeID: *typeID,
			AirplaneType:   &domain.AirplaneType{ID: *typeID, Name: *typeName},
		}
	}
	if srcName != nil && dstName != nil {
		d.RouteLabel = *srcName + " - " + *dstName
	}

	crewRows, err := r.db.Query(ctx, `
		SELECT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN flight_crew fc ON fc.crew_id = c.id
		WHERE fc.flight_id=$1
		ORDER BY c.last_name, c.first_name`, id)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()
	for crewRows.Next() {
		var c domain.Crew
		if err := crewRows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		d.Crew = append(d.Crew, c)
	}
	if err := crewRows.Err(); err != nil {
		return nil, err
	}

	seatRows, err := r.db.Query(ctx, `SELECT "row", seat FROM tickets WHERE flight_id=$1 ORDER BY "row", seat`, id)
	if err != nil {
		return nil, err
	}
	defer seatRows.Close()
	d.TakenPlaces = make([]domain.SeatRef, 0)
	for seatRows.Next() {
		var s domain.SeatRef
		if err := seatRows.Scan(&s.Row, &s.Seat); err != nil {
			return nil, err
		}
		d.TakenPlaces = append(d.TakenPlaces, s)
	}
	if err := seatRows.Err(); err != nil {
		return nil, err
	}

	if d.Airplane != nil {
		d.TicketsAvailable = d.Airplane.Capacity() - len(d.TakenPlaces)
	}
	return &d, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time) VALUES ($1, $2, $3, $4) RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime).Scan(&f.ID); err != nil {
		return translateErr(err)
	}

	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, f.ID, crewID); err != nil {
			return translateErr(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight, crewIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, f.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crew WHERE flight_id=$1`, f.ID); err != nil {
		return err
	}
	for _, crewID := range crewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crew (flight_id, crew_id) VALUES ($1, $2)`, f.ID, crewID); err != nil {
			return translateErr(err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// FindCrewConflicts returns crew members among crewIDs already assigned to a
// flight whose [departure, arrival) interval overlaps the candidate one.
// Back-to-back flights with touching endpoints do not conflict.
func (r *PGFlightRepository) FindCrewConflicts(ctx context.Context, crewIDs []int64, departureTime, arrivalTime time.Time, excludeFlightID int64) ([]domain.Crew, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT c.id, c.first_name, c.last_name
		FROM crews c
		JOIN flight_crew fc ON fc.crew_id = c.id
		JOIN flights f ON f.id = fc.flight_id
		WHERE c.id = ANY($1)
		  AND f.departure_time < $2
		  AND f.arrival_time > $3
		  AND f.id <> $4
		ORDER BY c.id`, crewIDs, arrivalTime, departureTime, excludeFlightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conflicts []domain.Crew
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		conflicts = append(conflicts, c)
	}
	return conflicts, rows.Err()
}

// ListDepartureNotices finds ticketed passengers on flights departing within
// [from, to) for the reminder sweep.
func (r *PGFlightRepository) ListDepartureNotices(ctx context.Context, from, to time.Time) ([]domain.DepartureNotice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.email, f.id,
		       COALESCE(src.name || ' - ' || dst.name, ''),
		       f.departure_time, t."row", t.seat
		FROM tickets t
		JOIN flights f ON f.id = t.flight_id
		JOIN orders o ON o.id = t.order_id
		JOIN users u ON u.id = o.user_id
		LEFT JOIN routes r ON r.id = f.route_id
		LEFT JOIN airports src ON src.id = r.source_id
		LEFT JOIN airports dst ON dst.id = r.destination_id
		WHERE f.departure_time >= $1 AND f.departure_time < $2
		ORDER BY f.departure_time, t."row", t.seat`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notices []domain.DepartureNotice
	for rows.Next() {
		var n domain.DepartureNotice
		if err := rows.Scan(&n.Email, &n.FlightID, &n.RouteLabel, &n.DepartureTime, &n.Row, &n.Seat); err != nil {
			return nil, err
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
