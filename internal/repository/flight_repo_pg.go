package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type FlightRepository interface {
	Create(ctx context.Context, f *domain.Flight) error
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context, filter domain.FlightFilter, params domain.ListParams) ([]domain.Flight, error)
	Update(ctx context.Context, f *domain.Flight) error
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime).Scan(&f.ID); err != nil {
		return err
	}
	for _, crewID := range f.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, f.ID, crewID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
		a.rows * a.seats_in_row - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id)
		FROM flights f JOIN airplanes a ON a.id = f.airplane_id
		WHERE f.id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.FreeSeats); err != nil {
		return nil, wrapNotFound(err)
	}

	crewRows, err := r.db.Query(ctx, `SELECT crew_id FROM flight_crews WHERE flight_id=$1 ORDER BY crew_id`, id)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()
	for crewRows.Next() {
		var crewID int64
		if err := crewRows.Scan(&crewID); err != nil {
			return nil, err
		}
		f.CrewIDs = append(f.CrewIDs, crewID)
	}
	return &f, crewRows.Err()
}

func (r *PGFlightRepository) List(ctx context.Context, filter domain.FlightFilter, params domain.ListParams) ([]domain.Flight, error) {
	params = params.Normalize()
	query := `SELECT f.id, f.route_id, f.airplane_id, f.departure_time, f.arrival_time,
		a.rows * a.seats_in_row - (SELECT COUNT(*) FROM tickets t WHERE t.flight_id = f.id)
		FROM flights f JOIN airplanes a ON a.id = f.airplane_id`
	args := make([]interface{}, 0, 5)
	where := ""
	appendCond := func(cond string) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if filter.RouteID > 0 {
		args = append(args, filter.RouteID)
		appendCond(fmt.Sprintf("f.route_id = $%d", len(args)))
	}
	if filter.AirplaneID > 0 {
		args = append(args, filter.AirplaneID)
		appendCond(fmt.Sprintf("f.airplane_id = $%d", len(args)))
	}
	if !filter.DepartureDate.IsZero() {
		args = append(args, filter.DepartureDate)
		appendCond(fmt.Sprintf("f.departure_time::date = $%d::date", len(args)))
	}
	args = append(args, params.Limit, params.Offset)
	query += where + fmt.Sprintf(" ORDER BY f.departure_time LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.RouteID, &f.AirplaneID, &f.DepartureTime, &f.ArrivalTime, &f.FreeSeats); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx, `UPDATE flights SET route_id=$1, airplane_id=$2, departure_time=$3, arrival_time=$4 WHERE id=$5`,
		f.RouteID, f.AirplaneID, f.DepartureTime, f.ArrivalTime, f.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flight_crews WHERE flight_id=$1`, f.ID); err != nil {
		return err
	}
	for _, crewID := range f.CrewIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO flight_crews (flight_id, crew_id) VALUES ($1, $2)`, f.ID, crewID); err != nil {
			return err
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

var _ FlightRepository = (*PGFlightRepository)(nil)
