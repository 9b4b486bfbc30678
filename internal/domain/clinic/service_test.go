package clinic

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
)

// -- Mock Repository --

type mockLocRepo struct {
	locs    map[uuid.UUID]*Location
	err     error
	creates int
}

func newMockLocRepo() *mockLocRepo {
	return &mockLocRepo{locs: make(map[uuid.UUID]*Location)}
}

func (m *mockLocRepo) Create(_ context.Context, loc *Location) error {
	if m.err != nil {
		return m.err
	}
	loc.ID = uuid.New()
	loc.CreatedAt = time.Now()
	loc.UpdatedAt = loc.CreatedAt
	cp := *loc
	m.locs[loc.ID] = &cp
	m.creates++
	return nil
}

func (m *mockLocRepo) GetByID(_ context.Context, id uuid.UUID) (*Location, error) {
	l, ok := m.locs[id]
	if !ok {
		return nil, ErrLocationNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *mockLocRepo) Update(_ context.Context, id uuid.UUID, patch Patch) error {
	if m.err != nil {
		return m.err
	}
	l, ok := m.locs[id]
	if !ok {
		return ErrLocationNotFound
	}
	for _, a := range patch.assignments() {
		v := a.value
		switch a.column {
		case "name":
			l.Name = v
		case "address":
			l.Address = v
		case "city":
			l.City = v
		case "state":
			l.State = v
		case "zip":
			l.Zip = v
		case "phone":
			l.Phone = &v
		}
	}
	return nil
}

func (m *mockLocRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	if m.err != nil {
		return m.err
	}
	l, ok := m.locs[id]
	if !ok {
		return ErrLocationNotFound
	}
	l.Status = status
	return nil
}

func (m *mockLocRepo) ListActive(_ context.Context) ([]Summary, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []Summary
	for _, l := range m.locs {
		if l.Status == StatusActive {
			out = append(out, Summary{ID: l.ID, Name: l.Name, City: l.City, State: l.State})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *mockLocRepo) {
	repo := newMockLocRepo()
	return NewService(repo), repo
}

func validLocation(name string) *Location {
	return &Location{
		Name:    name,
		Address: "1 Main St",
		City:    "Rochester",
		State:   "MI",
		Zip:     "48309",
	}
}

// -- Add --

func TestAdd_SetsActive(t *testing.T) {
	svc, repo := newTestService()
	loc := validLocation("Main Clinic")
	loc.Status = StatusInactive

	if err := svc.Add(context.Background(), loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.ID == uuid.Nil {
		t.Fatal("expected ID to be assigned")
	}
	if got := repo.locs[loc.ID].Status; got != StatusActive {
		t.Errorf("expected status active, got %s", got)
	}
}

func TestAdd_PhoneOptional(t *testing.T) {
	svc, repo := newTestService()

	loc := validLocation("No Phone")
	if err := svc.Add(context.Background(), loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.locs[loc.ID].Phone != nil {
		t.Error("expected nil phone")
	}

	blank := validLocation("Blank Phone")
	blank.Phone = strPtr("   ")
	if err := svc.Add(context.Background(), blank); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.locs[blank.ID].Phone != nil {
		t.Error("expected blank phone to be stored as nil")
	}
}

func TestAdd_RequiredFields(t *testing.T) {
	cases := map[string]func(*Location){
		"name":    func(l *Location) { l.Name = "" },
		"address": func(l *Location) { l.Address = "  " },
		"city":    func(l *Location) { l.City = "" },
		"state":   func(l *Location) { l.State = "" },
		"zip":     func(l *Location) { l.Zip = "\t" },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			svc, repo := newTestService()
			loc := validLocation("Clinic")
			mutate(loc)

			err := svc.Add(context.Background(), loc)
			var ve *form.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != field {
				t.Errorf("expected field %s, got %q", field, ve.Field)
			}
			if repo.creates != 0 {
				t.Error("expected no insert on validation failure")
			}
		})
	}
}

func TestAdd_StorageError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("disk full")

	err := svc.Add(context.Background(), validLocation("Clinic"))
	if !form.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if !errors.Is(err, repo.err) {
		t.Error("expected underlying error to be preserved")
	}
}

// -- Update --

func TestUpdate_PartialPatch(t *testing.T) {
	svc, repo := newTestService()
	loc := validLocation("Main Clinic")
	loc.Phone = strPtr("555-0100")
	svc.Add(context.Background(), loc)

	err := svc.Update(context.Background(), loc.ID, Patch{City: strPtr(" Troy ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := repo.locs[loc.ID]
	if got.City != "Troy" {
		t.Errorf("expected city Troy, got %s", got.City)
	}
	if got.Name != "Main Clinic" || got.Address != "1 Main St" || got.Zip != "48309" {
		t.Errorf("unset fields changed: %+v", got)
	}
	if got.Phone == nil || *got.Phone != "555-0100" {
		t.Error("expected phone left unchanged")
	}
}

func TestUpdate_NothingToUpdate(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Update(context.Background(), uuid.New(), Patch{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService()
	err := svc.Update(context.Background(), uuid.New(), Patch{Name: strPtr("Ghost")})
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !form.IsStorage(err) {
		t.Error("expected not found to surface as a storage failure")
	}
}

func TestUpdate_BlankRequiredField(t *testing.T) {
	svc, repo := newTestService()
	loc := validLocation("Main Clinic")
	svc.Add(context.Background(), loc)

	err := svc.Update(context.Background(), loc.ID, Patch{Name: strPtr("  ")})
	if !form.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.locs[loc.ID].Name != "Main Clinic" {
		t.Error("name should be unchanged")
	}
}

func TestUpdate_ClearPhone(t *testing.T) {
	svc, repo := newTestService()
	loc := validLocation("Main Clinic")
	loc.Phone = strPtr("555-0100")
	svc.Add(context.Background(), loc)

	if err := svc.Update(context.Background(), loc.ID, Patch{Phone: strPtr("")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := repo.locs[loc.ID].Phone; p == nil || *p != "" {
		t.Errorf("expected phone cleared, got %v", p)
	}
}

// -- Remove / ListActive --

func TestRemove_SoftDeleteIsIdempotent(t *testing.T) {
	svc, repo := newTestService()
	keep := validLocation("Keep")
	drop := validLocation("Drop")
	svc.Add(context.Background(), keep)
	svc.Add(context.Background(), drop)

	for i := 0; i < 2; i++ {
		if err := svc.Remove(context.Background(), drop.ID); err != nil {
			t.Fatalf("remove #%d: unexpected error: %v", i+1, err)
		}
	}

	if _, ok := repo.locs[drop.ID]; !ok {
		t.Fatal("row must never be physically deleted")
	}
	if repo.locs[drop.ID].Status != StatusInactive {
		t.Errorf("expected inactive, got %s", repo.locs[drop.ID].Status)
	}

	active, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != keep.ID {
		t.Errorf("expected only %s active, got %+v", keep.ID, active)
	}
}

func TestRemove_NotFound(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Remove(context.Background(), uuid.New()); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	svc, _ := newTestService()
	a := validLocation("Alpha")
	b := validLocation("Beta")
	b.City, b.State = "Troy", "MI"
	svc.Add(context.Background(), a)
	svc.Add(context.Background(), b)
	svc.Remove(context.Background(), a.ID)

	opts, err := svc.Options(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d", len(opts))
	}
	if opts[0].Label != "Beta (Troy, MI)" || opts[0].ID != b.ID.String() {
		t.Errorf("unexpected option: %+v", opts[0])
	}
}

func TestListActive_StorageError(t *testing.T) {
	svc, repo := newTestService()
	repo.err = errors.New("connection refused")
	if _, err := svc.Options(context.Background()); !form.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestGet(t *testing.T) {
	svc, _ := newTestService()
	loc := validLocation("Main Clinic")
	svc.Add(context.Background(), loc)

	got, err := svc.Get(context.Background(), loc.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Main Clinic" {
		t.Errorf("expected Main Clinic, got %s", got.Name)
	}
	if _, err := svc.Get(context.Background(), uuid.New()); !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
