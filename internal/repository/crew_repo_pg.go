package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nshubina/airport-api/internal/domain"
)

type CrewRepository interface {
	Create(ctx context.Context, c *domain.Crew) error
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.Crew, error)
	Update(ctx context.Context, c *domain.Crew) error
	Delete(ctx context.Context, id int64) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

func (r *PGCrewRepository) Create(ctx context.Context, c *domain.Crew) error {
	return r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name, title) VALUES ($1, $2, $3) RETURNING id`,
		c.FirstName, c.LastName, c.Title).Scan(&c.ID)
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, title FROM crews WHERE id=$1`, id)
	var c domain.Crew
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Title); err != nil {
		return nil, wrapNotFound(err)
	}
	return &c, nil
}

func (r *PGCrewRepository) List(ctx context.Context, params domain.ListParams) ([]domain.Crew, error) {
	params = params.Normalize()
	rows, err := r.db.Query(ctx, `SELECT id, first_name, last_name, title FROM crews ORDER BY id LIMIT $1 OFFSET $2`,
		params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Title); err != nil {
			return nil, err
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *PGCrewRepository) Update(ctx context.Context, c *domain.Crew) error {
	res, err := r.db.Exec(ctx, `UPDATE crews SET first_name=$1, last_name=$2, title=$3 WHERE id=$4`,
		c.FirstName, c.LastName, c.Title, c.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGCrewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM crews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ CrewRepository = (*PGCrewRepository)(nil)
