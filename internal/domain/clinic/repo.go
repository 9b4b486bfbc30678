package clinic

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrLocationNotFound = errors.New("clinic location not found")
	ErrNothingToUpdate  = errors.New("nothing to update")
)

// LocationRepository defines the persistence interface for clinic locations.
// Implementations never physically delete a row.
type LocationRepository interface {
	Create(ctx context.Context, loc *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	Update(ctx context.Context, id uuid.UUID, patch Patch) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	ListActive(ctx context.Context) ([]Summary, error)
}
