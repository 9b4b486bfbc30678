//go:build integration

package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/clinic"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/patient"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/staff"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/credential"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
)

func janeDoe(location string) form.Fields {
	return form.Fields{
		"first_name":        "Jane",
		"last_name":         "Doe",
		"dob":               "1990-05-10",
		"sex":               "F",
		"phone":             "555-1111",
		"email":             "jane@x.com",
		"address":           "1 Rd",
		"location":          location,
		"allergies":         "None",
		"conditions":        "None",
		"medications":       "None",
		"emergency_contact": "555-2222",
		"password":          "password1",
		"confirm_password":  "password1",
	}
}

func TestPatientRegistration_JaneDoe(t *testing.T) {
	ctx := context.Background()
	pool, _ := readySchema(t, "pat")
	clinics := clinic.NewService(clinic.NewLocationRepo(pool))
	loc := createTestLocation(t, clinics, "Main Clinic")

	repo := patient.NewPatientRepo(pool)
	reg := patient.NewRegistrar(repo, clinics, credential.NewHasher(credential.DefaultIterations))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)

	p, err := reg.Submit(ctx, opts, janeDoe(loc.ID.String()))
	require.NoError(t, err)
	assert.Equal(t, 1, countRows(t, pool, "patient"))

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "pbkdf2_sha256$200000$"), stored.PasswordHash)
	assert.Equal(t, loc.ID, stored.LocationID)
	assert.Equal(t, "F", stored.Sex)
	assert.Equal(t, "1990-05-10", stored.DOB.Format("2006-01-02"))
	assert.Nil(t, stored.Notes)

	ok, err := credential.Verify("password1", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPatientRegistration_ShortPasswordWritesNothing(t *testing.T) {
	ctx := context.Background()
	pool, _ := readySchema(t, "short")
	clinics := clinic.NewService(clinic.NewLocationRepo(pool))
	loc := createTestLocation(t, clinics, "Main Clinic")

	reg := patient.NewRegistrar(patient.NewPatientRepo(pool), clinics, credential.NewHasher(1000))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)

	f := janeDoe(loc.ID.String())
	f["password"] = "passwd1"
	f["confirm_password"] = "passwd1"

	_, err = reg.Submit(ctx, opts, f)
	require.Error(t, err)
	assert.True(t, form.IsValidation(err))
	assert.Equal(t, 0, countRows(t, pool, "patient"))
}

func TestPatientRegistration_DuplicateEmailNotRejected(t *testing.T) {
	ctx := context.Background()
	pool, _ := readySchema(t, "dup")
	clinics := clinic.NewService(clinic.NewLocationRepo(pool))
	loc := createTestLocation(t, clinics, "Main Clinic")

	repo := patient.NewPatientRepo(pool)
	reg := patient.NewRegistrar(repo, clinics, credential.NewHasher(1000))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)

	_, err = reg.Submit(ctx, opts, janeDoe(loc.ID.String()))
	require.NoError(t, err)
	_, err = reg.Submit(ctx, opts, janeDoe(loc.ID.String()))
	require.NoError(t, err)

	rows, err := repo.ListByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestPatientRegistration_InactiveLocationNotOffered(t *testing.T) {
	ctx := context.Background()
	pool, _ := readySchema(t, "inact")
	clinics := clinic.NewService(clinic.NewLocationRepo(pool))
	loc := createTestLocation(t, clinics, "Closed Clinic")
	require.NoError(t, clinics.Remove(ctx, loc.ID))

	reg := patient.NewRegistrar(patient.NewPatientRepo(pool), clinics, credential.NewHasher(1000))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, opts.Locations())

	_, err = reg.Submit(ctx, opts, janeDoe(loc.ID.String()))
	require.Error(t, err)
	assert.True(t, form.IsValidation(err))
	assert.Equal(t, 0, countRows(t, pool, "patient"))
}

func TestPatientRegistration_WithoutCredentialColumn(t *testing.T) {
	ctx := context.Background()
	pool, schema := newSchemaPool(t, "legacy")
	_, err := db.NewMigrator(pool, db.EmbeddedMigrations()).Up(ctx, schema)
	require.NoError(t, err)

	clinics := clinic.NewService(clinic.NewLocationRepo(pool))
	loc := createTestLocation(t, clinics, "Main Clinic")
	reg := patient.NewRegistrar(patient.NewPatientRepo(pool), clinics, credential.NewHasher(1000))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)

	_, err = reg.Submit(ctx, opts, janeDoe(loc.ID.String()))
	require.Error(t, err)
	assert.True(t, form.IsStorage(err))
	assert.Contains(t, err.Error(), "password_hash")
	assert.Equal(t, 0, countRows(t, pool, "patient"))
}

func TestStaffRegistration(t *testing.T) {
	ctx := context.Background()
	pool, _ := readySchema(t, "staff")

	repo := staff.NewStaffRepo(pool)
	reg := staff.NewRegistrar(repo, credential.NewHasher(1000))
	opts, err := reg.LoadOptions(ctx)
	require.NoError(t, err)

	f := form.Fields{
		"first_name":       "Sam",
		"last_name":        "Rivera",
		"email":            "sam@clinic.com",
		"phone":            "555-3030",
		"role":             "Doctor",
		"code":             staff.ConfirmationCode,
		"password":         "password1",
		"confirm_password": "password1",
	}
	s, err := reg.Submit(ctx, opts, f)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, stored.Active)
	assert.Equal(t, staff.RoleDoctor, stored.Role)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "pbkdf2_sha256$1000$"))

	bad := form.Fields{
		"first_name":       "Eve",
		"last_name":        "Smith",
		"email":            "eve@clinic.com",
		"phone":            "555-4040",
		"role":             "nurse",
		"code":             "guess",
		"password":         "password1",
		"confirm_password": "password1",
	}
	_, err = reg.Submit(ctx, opts, bad)
	require.Error(t, err)
	assert.Equal(t, 1, countRows(t, pool, "staff"))
}
