package repository

import (
	"context"

	"github.com/Domenick1991/airlink/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// CreateWithTickets persists an order and all of its tickets in one
	// transaction; either every row commits or none do.
	CreateWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error
	List(ctx context.Context, userID *int64, params ListParams) ([]domain.Order, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) CreateWithTickets(ctx context.Context, order *domain.Order, tickets []domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (number, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		order.Number, order.UserID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return translateErr(err)
	}

	order.Tickets = order.Tickets[:0]
	for _, t := range tickets {
		t.OrderID = &order.ID
		if err := tx.QueryRow(ctx, `INSERT INTO tickets ("row", seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID); err != nil {
			return translateErr(err)
		}
		order.Tickets = append(order.Tickets, t)
	}

	return tx.Commit(ctx)
}

func (r *PGOrderRepository) List(ctx context.Context, userID *int64, params ListParams) ([]domain.Order, int, error) {
	where := ""
	countArgs := []any{}
	pageArgs := []any{params.Limit, params.Offset}
	if userID != nil {
		where = ` WHERE user_id=$1`
		countArgs = append(countArgs, *userID)
		pageArgs = []any{*userID, params.Limit, params.Offset}
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM orders`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, number, user_id, created_at FROM orders` + where + ` ORDER BY created_at DESC`
	if userID != nil {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	rows, err := r.db.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(orders) == 0 {
		return orders, total, nil
	}

	ticketRows, err := r.db.Query(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE order_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, 0, err
	}
	defer ticketRows.Close()

	byOrder := make(map[int64][]domain.Ticket, len(orders))
	for ticketRows.Next() {
		var t domain.Ticket
		if err := ticketRows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, 0, err
		}
		if t.OrderID != nil {
			byOrder[*t.OrderID] = append(byOrder[*t.OrderID], t)
		}
	}
	if err := ticketRows.Err(); err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].Tickets = byOrder[orders[i].ID]
	}
	return orders, total, nil
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, number, user_id, created_at FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt)
	if err != nil {
		return nil, translateErr(err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, "row", seat, flight_id, order_id FROM tickets WHERE order_id=$1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		o.Tickets = append(o.Tickets, t)
	}
	return &o, rows.Err()
}

func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ OrderRepository = (*PGOrderRepository)(nil)
