package staff

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleDoctor  = "doctor"
	RoleBilling = "billing"
	RoleRecords = "records"
	RoleNurse   = "nurse"
)

// Roles is the fixed set of staff roles in picker order.
var Roles = []string{RoleDoctor, RoleBilling, RoleRecords, RoleNurse}

// Staff maps to the staff table.
type Staff struct {
	ID           uuid.UUID `db:"staff_id" json:"staff_id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	Active       bool      `db:"active_flag" json:"active_flag"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
