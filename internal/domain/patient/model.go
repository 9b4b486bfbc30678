package patient

import (
	"time"

	"github.com/google/uuid"
)

// NoneValue is the canonical spelling stored when a clinical history field
// has nothing to report.
const NoneValue = "None"

// Patient maps to the patient table.
type Patient struct {
	ID               uuid.UUID `db:"patient_id" json:"patient_id"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	DOB              time.Time `db:"dob" json:"dob"`
	Sex              string    `db:"sex" json:"sex"`
	Phone            string    `db:"phone" json:"phone"`
	Email            string    `db:"email" json:"email"`
	Address          string    `db:"address" json:"address"`
	LocationID       uuid.UUID `db:"location_id" json:"location_id"`
	Allergies        string    `db:"allergies" json:"allergies"`
	Conditions       string    `db:"conditions" json:"conditions"`
	Medications      string    `db:"medications" json:"medications"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
	EmergencyContact string    `db:"emergency_contact" json:"emergency_contact"`
	PasswordHash     string    `db:"password_hash" json:"-"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// FullName returns "First Last".
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
