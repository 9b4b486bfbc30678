package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrStaffNotFound = errors.New("staff member not found")

// StaffRepository defines the persistence interface for staff members.
type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
}
