package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type AirportRepository interface {
	Create(ctx context.Context, a *domain.Airport) error
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	List(ctx context.Context, filter domain.AirportFilter, params domain.ListParams) ([]domain.Airport, error)
	Update(ctx context.Context, a *domain.Airport) error
	Delete(ctx context.Context, id int64) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) Create(ctx context.Context, a *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, code, closest_big_city, country, lat, lon)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		a.Name, a.Code, a.ClosestBigCity, a.Country, a.Lat, a.Lon).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ErrNameTaken
	}
	return err
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, code, closest_big_city, country, lat, lon FROM airports WHERE id=$1`, id)
	var a domain.Airport
	if err := row.Scan(&a.ID, &a.Name, &a.Code, &a.ClosestBigCity, &a.Country, &a.Lat, &a.Lon); err != nil {
		return nil, wrapNotFound(err)
	}
	return &a, nil
}

func (r *PGAirportRepository) List(ctx context.Context, filter domain.AirportFilter, params domain.ListParams) ([]domain.Airport, error) {
	params = params.Normalize()
	query := `SELECT id, name, code, closest_big_city, country, lat, lon FROM airports`
	args := make([]interface{}, 0, 4)
	if filter.Code != "" {
		args = append(args, filter.Code)
		query += fmt.Sprintf(" WHERE code = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		query += fmt.Sprintf("%s closest_big_city = $%d", clause, len(args))
	}
	args = append(args, params.Limit, params.Offset)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.Code, &a.ClosestBigCity, &a.Country, &a.Lat, &a.Lon); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) Update(ctx context.Context, a *domain.Airport) error {
	res, err := r.db.Exec(ctx, `UPDATE airports SET name=$1, code=$2, closest_big_city=$3, country=$4, lat=$5, lon=$6 WHERE id=$7`,
		a.Name, a.Code, a.ClosestBigCity, a.Country, a.Lat, a.Lon, a.ID)
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

func (r *PGAirportRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM airports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
