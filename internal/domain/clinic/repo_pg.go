package clinic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
)

type locRepoPG struct {
	pool *pgxpool.Pool
}

func NewLocationRepo(pool *pgxpool.Pool) LocationRepository {
	return &locRepoPG{pool: pool}
}

const locColumns = `location_id, name, address, city, state, zip, phone, status, created_at, updated_at`

func (r *locRepoPG) Create(ctx context.Context, loc *Location) error {
	loc.ID = uuid.New()
	return db.WithConn(ctx, r.pool, func(q db.Querier) error {
		return q.QueryRow(ctx, `
			INSERT INTO clinic_location (location_id, name, address, city, state, zip, phone, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at`,
			loc.ID, loc.Name, loc.Address, loc.City, loc.State, loc.Zip, loc.Phone, loc.Status,
		).Scan(&loc.CreatedAt, &loc.UpdatedAt)
	})
}

func (r *locRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	var loc *Location
	err := db.WithConn(ctx, r.pool, func(q db.Querier) error {
		var err error
		loc, err = scanLoc(q.QueryRow(ctx, `SELECT `+locColumns+` FROM clinic_location WHERE location_id = $1`, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	return loc, err
}

func (r *locRepoPG) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	sets := patch.assignments()
	if len(sets) == 0 {
		return ErrNothingToUpdate
	}

	clauses := make([]string, 0, len(sets)+1)
	args := []interface{}{id}
	for i, s := range sets {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", s.column, i+2))
		args = append(args, s.value)
	}
	clauses = append(clauses, "updated_at = NOW()")

	query := `UPDATE clinic_location SET ` + strings.Join(clauses, ", ") + ` WHERE location_id = $1`
	return r.execOne(ctx, query, args...)
}

func (r *locRepoPG) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.execOne(ctx,
		`UPDATE clinic_location SET status = $2, updated_at = NOW() WHERE location_id = $1`,
		id, status)
}

// execOne runs a statement that must match exactly one row by id.
func (r *locRepoPG) execOne(ctx context.Context, query string, args ...interface{}) error {
	return db.WithConn(ctx, r.pool, func(q db.Querier) error {
		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrLocationNotFound
		}
		return nil
	})
}

func (r *locRepoPG) ListActive(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := db.WithConn(ctx, r.pool, func(q db.Querier) error {
		rows, err := q.Query(ctx, `
			SELECT location_id, name, city, state FROM clinic_location
			WHERE status = $1 ORDER BY name, location_id`, StatusActive)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s Summary
			if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State); err != nil {
				return err
			}
			out = append(out, s)
		}
		return rows.Err()
	})
	return out, err
}

func scanLoc(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(
		&l.ID, &l.Name, &l.Address, &l.City, &l.State, &l.Zip, &l.Phone, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
