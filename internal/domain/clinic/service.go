package clinic

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
)

type Service struct {
	locs LocationRepository
}

func NewService(locs LocationRepository) *Service {
	return &Service{locs: locs}
}

// ListActive returns every active location. Inactive locations never appear.
func (s *Service) ListActive(ctx context.Context) ([]Summary, error) {
	locs, err := s.locs.ListActive(ctx)
	if err != nil {
		return nil, form.Storage("list clinic locations", err)
	}
	return locs, nil
}

// Options returns the active locations as picker entries.
func (s *Service) Options(ctx context.Context) ([]form.Option, error) {
	locs, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]form.Option, 0, len(locs))
	for _, l := range locs {
		opts = append(opts, form.Option{Label: l.Label(), ID: l.ID.String()})
	}
	return opts, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Location, error) {
	loc, err := s.locs.GetByID(ctx, id)
	if err != nil {
		return nil, form.Storage("get clinic location", err)
	}
	return loc, nil
}

// Add validates and inserts a new active location.
func (s *Service) Add(ctx context.Context, loc *Location) error {
	loc.Name = strings.TrimSpace(loc.Name)
	loc.Address = strings.TrimSpace(loc.Address)
	loc.City = strings.TrimSpace(loc.City)
	loc.State = strings.TrimSpace(loc.State)
	loc.Zip = strings.TrimSpace(loc.Zip)
	if loc.Phone != nil {
		phone := strings.TrimSpace(*loc.Phone)
		if phone == "" {
			loc.Phone = nil
		} else {
			loc.Phone = &phone
		}
	}

	required := form.Fields{
		"name":    loc.Name,
		"address": loc.Address,
		"city":    loc.City,
		"state":   loc.State,
		"zip":     loc.Zip,
	}
	if missing := required.Missing([]string{"name", "address", "city", "state", "zip"}); len(missing) > 0 {
		return form.MissingError(missing)
	}

	loc.Status = StatusActive
	return form.Storage("add clinic location", s.locs.Create(ctx, loc))
}

// Update applies only the fields set in patch.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	patch = trimPatch(patch)
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}
	for _, a := range patch.assignments() {
		if a.column != "phone" && a.value == "" {
			return form.Invalid(a.column, "cannot be blank; omit the field to leave it unchanged")
		}
	}
	return form.Storage("update clinic location", s.locs.Update(ctx, id, patch))
}

// Remove marks the location inactive. Removing an inactive location succeeds.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	return form.Storage("remove clinic location", s.locs.SetStatus(ctx, id, StatusInactive))
}

// IsNotFound reports whether err means the location id does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLocationNotFound)
}

func trimPatch(p Patch) Patch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	return Patch{
		Name:    trim(p.Name),
		Address: trim(p.Address),
		City:    trim(p.City),
		State:   trim(p.State),
		Zip:     trim(p.Zip),
		Phone:   trim(p.Phone),
	}
}
