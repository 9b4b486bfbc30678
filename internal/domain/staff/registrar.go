package staff

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/validate"
)

// ConfirmationCode is the shared code every staff registration must present.
// It is the same for all staff and is not a per-user secret.
const ConfirmationCode = "CAREFLOW-STAFF-2024"

var RequiredFields = []string{
	"first_name", "last_name", "email", "phone", "password", "confirm_password", "role",
}

type PasswordHasher interface {
	Hash(secret string) (string, error)
}

// Options is the role picker snapshot.
type Options struct {
	roles []form.Option
}

// Roles returns a copy of the role entries.
func (o Options) Roles() []form.Option {
	return append([]form.Option(nil), o.roles...)
}

// RoleOptions returns one picker entry per role, labelled in title case.
func RoleOptions() []form.Option {
	out := make([]form.Option, 0, len(Roles))
	for _, r := range Roles {
		out = append(out, form.Option{Label: strings.ToUpper(r[:1]) + r[1:], ID: r})
	}
	return out
}

type Registrar struct {
	staff  StaffRepository
	hasher PasswordHasher
	code   string
}

func NewRegistrar(staff StaffRepository, hasher PasswordHasher) *Registrar {
	return &Registrar{staff: staff, hasher: hasher, code: ConfirmationCode}
}

// LoadOptions returns the role picker. Roles are fixed, so it never fails.
func (r *Registrar) LoadOptions(_ context.Context) (Options, error) {
	return Options{roles: RoleOptions()}, nil
}

// Submit validates f and inserts one active staff row. On success f is
// cleared.
func (r *Registrar) Submit(ctx context.Context, opts Options, f form.Fields) (*Staff, error) {
	if missing := f.Missing(RequiredFields); len(missing) > 0 {
		return nil, form.MissingError(missing)
	}

	if subtle.ConstantTimeCompare([]byte(f.Get("code")), []byte(r.code)) != 1 {
		return nil, form.Invalid("code", "confirmation code is incorrect")
	}

	role, ok := form.Resolve(opts.roles, f.Get("role"))
	if !ok {
		return nil, form.Invalid("role", "must be one of %s", strings.Join(Roles, ", "))
	}

	if !validate.Email(f.Get("email")) {
		return nil, form.Invalid("email", "must look like name@example.com")
	}
	if !validate.Phone(f.Get("phone")) {
		return nil, form.Invalid("phone", "must look like 555-1234")
	}

	password := f["password"]
	if !validate.PasswordLength(password) {
		return nil, form.Invalid("password", "must be at least %d characters", validate.MinPasswordLength)
	}
	if f["confirm_password"] != password {
		return nil, form.Invalid("confirm_password", "passwords do not match")
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash staff password: %w", err)
	}

	s := &Staff{
		FirstName:    f.Get("first_name"),
		LastName:     f.Get("last_name"),
		Email:        f.Get("email"),
		Phone:        f.Get("phone"),
		Role:         role.ID,
		Active:       true,
		PasswordHash: hash,
	}
	if err := r.staff.Create(ctx, s); err != nil {
		return nil, form.Storage("register staff", err)
	}

	f.Reset()
	return s, nil
}
