package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type OrderRepository interface {
	CreateWithTickets(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, userID int64, params domain.ListParams) ([]domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

// CreateWithTickets inserts the order and all of its tickets in one transaction.
// The unique constraint on (flight_id, row, seat) is what guarantees seat
// uniqueness under concurrent requests.
func (r *PGOrderRepository) CreateWithTickets(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (number, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		order.Number, order.UserID).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		t.OrderID = order.ID
		err := tx.QueryRow(ctx, `INSERT INTO tickets (row, seat, flight_id, order_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			t.Row, t.Seat, t.FlightID, t.OrderID).Scan(&t.ID)
		if isUniqueViolation(err) {
			return domain.ErrSeatTaken
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGOrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT id, number, user_id, created_at FROM orders WHERE id=$1`, id)
	var o domain.Order
	if err := row.Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt); err != nil {
		return nil, wrapNotFound(err)
	}

	tickets, err := r.ticketsFor(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Tickets = tickets[o.ID]
	return &o, nil
}

// List returns orders for one user, or for everyone when userID is zero.
func (r *PGOrderRepository) List(ctx context.Context, userID int64, params domain.ListParams) ([]domain.Order, error) {
	params = params.Normalize()
	var (
		rows pgx.Rows
		err  error
	)
	if userID > 0 {
		rows, err = r.db.Query(ctx, `SELECT id, number, user_id, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
			userID, params.Limit, params.Offset)
	} else {
		rows, err = r.db.Query(ctx, `SELECT id, number, user_id, created_at FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			params.Limit, params.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.UserID, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	tickets, err := r.ticketsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Tickets = tickets[orders[i].ID]
	}
	return orders, nil
}

func (r *PGOrderRepository) ticketsFor(ctx context.Context, orderIDs []int64) (map[int64][]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT id, row, seat, flight_id, order_id FROM tickets WHERE order_id = ANY($1) ORDER BY id`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[int64][]domain.Ticket)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.Row, &t.Seat, &t.FlightID, &t.OrderID); err != nil {
			return nil, err
		}
		byOrder[t.OrderID] = append(byOrder[t.OrderID], t)
	}
	return byOrder, rows.Err()
}

// Delete removes the order and cascades to its tickets.
func (r *PGOrderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE order_id=$1`, id); err != nil {
		return err
	}
	res, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

var _ OrderRepository = (*PGOrderRepository)(nil)
