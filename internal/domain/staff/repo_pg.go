package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
)

type staffRepoPG struct {
	pool *pgxpool.Pool
}

func NewStaffRepo(pool *pgxpool.Pool) StaffRepository {
	return &staffRepoPG{pool: pool}
}

func (r *staffRepoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	return db.WithConn(ctx, r.pool, func(q db.Querier) error {
		return q.QueryRow(ctx, `
			INSERT INTO staff (staff_id, first_name, last_name, email, phone, role, active_flag, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at`,
			s.ID, s.FirstName, s.LastName, s.Email, s.Phone, s.Role, s.Active, s.PasswordHash,
		).Scan(&s.CreatedAt)
	})
}

func (r *staffRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	var s Staff
	err := db.WithConn(ctx, r.pool, func(q db.Querier) error {
		return q.QueryRow(ctx, `
			SELECT staff_id, first_name, last_name, email, phone, role, active_flag,
				COALESCE(password_hash, ''), created_at
			FROM staff WHERE staff_id = $1`, id,
		).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Role, &s.Active,
			&s.PasswordHash, &s.CreatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
