package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	List(ctx context.Context, filter domain.RouteFilter, params domain.ListParams) ([]domain.Route, error)
	Update(ctx context.Context, route *domain.Route) error
	Delete(ctx context.Context, id int64) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	return r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance_km)
		VALUES ($1, $2, $3) RETURNING id`,
		route.SourceID, route.DestinationID, route.DistanceKM).Scan(&route.ID)
}

const routeSelect = `SELECT r.id, r.source_id, r.destination_id, r.distance_km,
	s.id, s.name, s.code, s.closest_big_city, s.country, s.lat, s.lon,
	d.id, d.name, d.code, d.closest_big_city, d.country, d.lat, d.lon
	FROM routes r
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id`

func scanRoute(row interface{ Scan(dest ...interface{}) error }) (*domain.Route, error) {
	var rt domain.Route
	var src, dst domain.Airport
	if err := row.Scan(&rt.ID, &rt.SourceID, &rt.DestinationID, &rt.DistanceKM,
		&src.ID, &src.Name, &src.Code, &src.ClosestBigCity, &src.Country, &src.Lat, &src.Lon,
		&dst.ID, &dst.Name, &dst.Code, &dst.ClosestBigCity, &dst.Country, &dst.Lat, &dst.Lon); err != nil {
		return nil, err
	}
	rt.Source = &src
	rt.Destination = &dst
	return &rt, nil
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	route, err := scanRoute(r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id))
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return route, nil
}

func (r *PGRouteRepository) List(ctx context.Context, filter domain.RouteFilter, params domain.ListParams) ([]domain.Route, error) {
	params = params.Normalize()
	query := routeSelect
	args := make([]interface{}, 0, 4)
	if filter.SourceCode != "" {
		args = append(args, filter.SourceCode)
		query += fmt.Sprintf(" WHERE s.code = $%d", len(args))
	}
	if filter.DestinationCode != "" {
		args = append(args, filter.DestinationCode)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		query += fmt.Sprintf("%s d.code = $%d", clause, len(args))
	}
	args = append(args, params.Limit, params.Offset)
	query += fmt.Sprintf(" ORDER BY r.id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *route)
	}
	return routes, rows.Err()
}

func (r *PGRouteRepository) Update(ctx context.Context, route *domain.Route) error {
	res, err := r.db.Exec(ctx, `UPDATE routes SET source_id=$1, destination_id=$2, distance_km=$3 WHERE id=$4`,
		route.SourceID, route.DestinationID, route.DistanceKM, route.ID)
	if err != nil {
		return err
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
