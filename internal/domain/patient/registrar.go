package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/validate"
)

// RequiredFields lists the form fields that must be non-blank, in the order
// they are reported when missing.
var RequiredFields = []string{
	"first_name", "last_name", "dob", "sex", "phone", "email", "address",
	"allergies", "conditions", "medications", "emergency_contact",
	"password", "confirm_password",
}

// LocationSource supplies the clinic picker entries.
type LocationSource interface {
	Options(ctx context.Context) ([]form.Option, error)
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
}

// Options is a snapshot of the selectable clinic locations taken when the
// form was opened. Submit resolves the chosen location against it.
type Options struct {
	locations []form.Option
}

// NewOptions builds a snapshot from locations. The slice is copied.
func NewOptions(locations []form.Option) Options {
	return Options{locations: append([]form.Option(nil), locations...)}
}

// Locations returns a copy of the clinic entries.
func (o Options) Locations() []form.Option {
	return append([]form.Option(nil), o.locations...)
}

type Registrar struct {
	patients  PatientRepository
	locations LocationSource
	hasher    PasswordHasher
}

func NewRegistrar(patients PatientRepository, locations LocationSource, hasher PasswordHasher) *Registrar {
	return &Registrar{patients: patients, locations: locations, hasher: hasher}
}

// LoadOptions reads the active clinic locations.
func (r *Registrar) LoadOptions(ctx context.Context) (Options, error) {
	locs, err := r.locations.Options(ctx)
	if err != nil {
		return Options{}, err
	}
	return NewOptions(locs), nil
}

// Submit validates f and inserts one patient row. Validation failures return
// a *form.ValidationError and touch no storage. On success f is cleared.
func (r *Registrar) Submit(ctx context.Context, opts Options, f form.Fields) (*Patient, error) {
	if missing := f.Missing(RequiredFields); len(missing) > 0 {
		return nil, form.MissingError(missing)
	}

	loc, ok := form.Resolve(opts.locations, f.Get("location"))
	if !ok {
		return nil, form.Invalid("location", "select an active clinic location")
	}
	locationID, err := uuid.Parse(loc.ID)
	if err != nil {
		return nil, form.Invalid("location", "clinic location has an invalid id %q", loc.ID)
	}

	dobText := f.Get("dob")
	if !validate.Date(dobText) {
		return nil, form.Invalid("dob", "must be a date in YYYY-MM-DD format, e.g. 1990-05-10")
	}
	sex := validate.NormalizeSex(f.Get("sex"))
	if sex == "" {
		return nil, form.Invalid("sex", "must be M or F (Male/Female also accepted)")
	}
	if !validate.Phone(f.Get("phone")) {
		return nil, form.Invalid("phone", "must look like 555-1234")
	}
	if !validate.Email(f.Get("email")) {
		return nil, form.Invalid("email", "must look like name@example.com")
	}

	password := f["password"]
	if !validate.PasswordLength(password) {
		return nil, form.Invalid("password", "must be at least %d characters", validate.MinPasswordLength)
	}
	if f["confirm_password"] != password {
		return nil, form.Invalid("confirm_password", "passwords do not match")
	}

	dob, err := validate.ParseDate(dobText)
	if err != nil {
		return nil, form.Invalid("dob", "must be a date in YYYY-MM-DD format, e.g. 1990-05-10")
	}

	p := &Patient{
		FirstName:        f.Get("first_name"),
		LastName:         f.Get("last_name"),
		DOB:              dob,
		Sex:              sex,
		Phone:            f.Get("phone"),
		Email:            f.Get("email"),
		Address:          f.Get("address"),
		LocationID:       locationID,
		Allergies:        normalizeNone(f.Get("allergies")),
		Conditions:       normalizeNone(f.Get("conditions")),
		Medications:      normalizeNone(f.Get("medications")),
		EmergencyContact: f.Get("emergency_contact"),
	}
	if notes := f.Get("notes"); notes != "" {
		p.Notes = &notes
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash patient password: %w", err)
	}
	p.PasswordHash = hash

	if err := r.patients.Create(ctx, p); err != nil {
		return nil, form.Storage("register patient", err)
	}

	f.Reset()
	return p, nil
}

func normalizeNone(v string) string {
	if strings.EqualFold(v, "none") {
		return NoneValue
	}
	return v
}
