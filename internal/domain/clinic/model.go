package clinic

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Location maps to the clinic_location table.
type Location struct {
	ID        uuid.UUID `db:"location_id" json:"location_id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	City      string    `db:"city" json:"city"`
	State     string    `db:"state" json:"state"`
	Zip       string    `db:"zip" json:"zip"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Summary is the projection used to populate a clinic picker.
type Summary struct {
	ID    uuid.UUID `json:"location_id"`
	Name  string    `json:"name"`
	City  string    `json:"city"`
	State string    `json:"state"`
}

// Label renders the summary as shown in a picker.
func (s Summary) Label() string {
	return fmt.Sprintf("%s (%s, %s)", s.Name, s.City, s.State)
}

// Patch carries the fields of an Update. A nil pointer leaves the column
// unchanged; it never clears it.
type Patch struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	Zip     *string `json:"zip,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// IsEmpty reports whether no field is set.
func (p Patch) IsEmpty() bool {
	return len(p.assignments()) == 0
}

type assignment struct {
	column string
	value  string
}

// assignments lists the set fields in a fixed column order. Column names
// come only from this list.
func (p Patch) assignments() []assignment {
	var out []assignment
	add := func(column string, v *string) {
		if v != nil {
			out = append(out, assignment{column: column, value: *v})
		}
	}
	add("name", p.Name)
	add("address", p.Address)
	add("city", p.City)
	add("state", p.State)
	add("zip", p.Zip)
	add("phone", p.Phone)
	return out
}
