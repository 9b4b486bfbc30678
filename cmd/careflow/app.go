package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/config"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/clinic"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/patient"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/staff"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/credential"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/logging"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/middleware"
)

// app holds everything a command needs once the store is reachable.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	pool   *pgxpool.Pool
	out    io.Writer

	clinics  *clinic.Service
	patients *patient.Registrar
	staff    *staff.Registrar
}

type bootMode int

const (
	// bootReady applies pending migrations and runs the column guard.
	bootReady bootMode = iota
	// bootConnectOnly opens the pool and nothing else.
	bootConnectOnly
)

func bootstrap(ctx context.Context, mode bootMode) (*app, error) {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Logger
	logger, err := logging.New(os.Stderr, cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Database
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBSchema, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Debug().Str("schema", cfg.DBSchema).Msg("connected to database")

	a := &app{cfg: cfg, logger: logger, pool: pool, out: os.Stdout}
	if mode == bootReady {
		if _, err := a.migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
	}

	a.clinics = clinic.NewService(clinic.NewLocationRepo(pool))
	hasher := credential.NewHasher(credential.DefaultIterations)
	a.patients = patient.NewRegistrar(patient.NewPatientRepo(pool), a.clinics, hasher)
	a.staff = staff.NewRegistrar(staff.NewStaffRepo(pool), hasher)
	return a, nil
}

// migrate applies pending migrations, then makes sure the credential columns
// exist. Guard failures are warnings; the store stays usable without them.
func (a *app) migrate(ctx context.Context) (int, error) {
	migrator := db.NewMigrator(a.pool, db.EmbeddedMigrations())
	count, err := migrator.Up(ctx, a.cfg.DBSchema)
	if err != nil {
		return 0, fmt.Errorf("migration failed: %w", err)
	}
	if count > 0 {
		a.logger.Info().Int("applied", count).Str("schema", a.cfg.DBSchema).Msg("migrations applied")
	}

	added, err := db.NewCredentialGuard(a.pool, a.cfg.DBSchema).Ensure(ctx)
	for _, table := range added {
		a.logger.Info().Str("table", table).Str("column", db.CredentialColumn).Msg("added credential column")
	}
	if err != nil {
		a.logger.Warn().Err(err).Msg("credential column check failed; registrations may fail until it is fixed")
	}
	return count, nil
}

// run executes op with the operation middleware stack.
func (a *app) run(ctx context.Context, name string, op middleware.Operation) error {
	return middleware.Chain(op,
		middleware.OperationID(),
		middleware.Recovery(a.logger),
		middleware.Logger(a.logger, name),
		middleware.Timeout(a.cfg.OpTimeout),
	)(ctx)
}

func (a *app) Close() {
	a.pool.Close()
}

// withApp boots the app, runs op under name and closes the pool.
func withApp(ctx context.Context, mode bootMode, name string, op func(ctx context.Context, a *app) error) error {
	a, err := bootstrap(ctx, mode)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.run(ctx, name, func(ctx context.Context) error {
		return op(ctx, a)
	})
}
