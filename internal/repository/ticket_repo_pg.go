package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	List(ctx context.Context, params ListParams) ([]domain.Ticket, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) List(ctx context.Context, params ListParams) ([]domain.Ticket, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM tickets`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, "row", seat, flight_id, order_id
		FROM tickets
		ORDER BY id
		LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, rows.Err()
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.QueryRow(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE id=$1`, id).
		Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID)
	if err != nil {
		return nil, translateErr(err)
	}
	return &t, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
