package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
)

type patientRepoPG struct {
	pool *pgxpool.Pool
}

func NewPatientRepo(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientColumns = `patient_id, first_name, last_name, dob, sex, phone, email, address,
	location_id, allergies, conditions, medications, notes, emergency_contact,
	COALESCE(password_hash, ''), created_at`

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return db.WithConn(ctx, r.pool, func(q db.Querier) error {
		return q.QueryRow(ctx, `
			INSERT INTO patient (patient_id, first_name, last_name, dob, sex, phone, email, address,
				location_id, allergies, conditions, medications, notes, emergency_contact, password_hash)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			RETURNING created_at`,
			p.ID, p.FirstName, p.LastName, p.DOB, p.Sex, p.Phone, p.Email, p.Address,
			p.LocationID, p.Allergies, p.Conditions, p.Medications, p.Notes, p.EmergencyContact,
			p.PasswordHash,
		).Scan(&p.CreatedAt)
	})
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	var p *Patient
	err := db.WithConn(ctx, r.pool, func(q db.Querier) error {
		var err error
		p, err = scanPatient(q.QueryRow(ctx, `SELECT `+patientColumns+` FROM patient WHERE patient_id = $1`, id))
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	return p, err
}

// ListByEmail returns every patient registered with email. Emails are not
// unique, so more than one row is possible.
func (r *patientRepoPG) ListByEmail(ctx context.Context, email string) ([]*Patient, error) {
	var out []*Patient
	err := db.WithConn(ctx, r.pool, func(q db.Querier) error {
		rows, err := q.Query(ctx, `SELECT `+patientColumns+` FROM patient WHERE email = $1 ORDER BY created_at, patient_id`, email)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			p, err := scanPatient(rows)
			if err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})
	return out, err
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DOB, &p.Sex, &p.Phone, &p.Email, &p.Address,
		&p.LocationID, &p.Allergies, &p.Conditions, &p.Medications, &p.Notes, &p.EmergencyContact,
		&p.PasswordHash, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
