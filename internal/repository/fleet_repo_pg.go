package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type AirplaneTypeRepository interface {
	Create(ctx context.Context, t *domain.AirplaneType) error
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.AirplaneType, error)
}

type AirplaneRepository interface {
	Create(ctx context.Context, a *domain.Airplane) error
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	List(ctx context.Context, filter domain.AirplaneFilter, params domain.ListParams) ([]domain.Airplane, error)
	Update(ctx context.Context, a *domain.Airplane) error
	Delete(ctx context.Context, id int64) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, t *domain.AirplaneType) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, t.Name).Scan(&t.ID)
	if isUniqueViolation(err) {
		return domain.ErrNameTaken
	}
	return err
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id)
	var t domain.AirplaneType
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, wrapNotFound(err)
	}
	return &t, nil
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context, params domain.ListParams) ([]domain.AirplaneType, error) {
	params = params.Normalize()
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id LIMIT $1 OFFSET $2`, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

var _ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

func (r *PGAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airplanes (name, code, rows, seats_in_row, airplane_type_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.Name, a.Code, a.Rows, a.SeatsInRow, a.AirplaneTypeID).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ErrNameTaken
	}
	return err
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	row := r.db.QueryRow(ctx, `SELECT a.id, a.name, a.code, a.rows, a.seats_in_row, a.airplane_type_id, t.name
		FROM airplanes a JOIN airplane_types t ON t.id = a.airplane_type_id
		WHERE a.id=$1`, id)
	var a domain.Airplane
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.TypeName); err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (r *PGAirplaneRepository) List(ctx context.Context, filter domain.AirplaneFilter, params domain.ListParams) ([]domain.Airplane, error) {
	params = params.Normalize()
	query := `SELECT a.id, a.name, a.code, a.rows, a.seats_in_row, a.airplane_type_id, t.name
		FROM airplanes a JOIN airplane_types t ON t.id = a.airplane_type_id`
	args := make([]interface{}, 0, 4)
	if filter.TypeName != "" {
		args = append(args, filter.TypeName)
		query += fmt.Sprintf(" WHERE t.name = $%d", len(args))
	}
	if filter.MinTotalSeats > 0 {
		args = append(args, filter.MinTotalSeats)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		query += fmt.Sprintf("%s a.rows * a.seats_in_row >= $%d", clause, len(args))
	}
	args = append(args, params.Limit, params.Offset)
	query += fmt.Sprintf(" ORDER BY a.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.Rows, &a.SeatsInRow, &a.AirplaneTypeID, &a.TypeName); err != nil {
			return nil, err
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, rows.Err()
}

func (r *PGAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	res, err := r.db.Exec(ctx, `UPDATE airplanes SET name=$1, code=$2, rows=$3, seats_in_row=$4, airplane_type_id=$5 WHERE id=$6`,
		a.Name, a.Code, a.Rows, a.SeatsInRow, a.AirplaneTypeID, a.ID)
	if isUniqueViolation(err) {
		return domain.ErrNameTaken
	}
	if err != nil {
		return err
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
