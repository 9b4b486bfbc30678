package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CredentialColumn must exist on every table in CredentialTables before a
// registrar writes to it.
const CredentialColumn = "password_hash"

// CredentialTables lists the tables that store a password hash.
var CredentialTables = []string{"patient", "staff"}

// ColumnGuard adds a nullable TEXT column to tables that lack it. It probes
// the live catalog first, so running it any number of times is safe.
type ColumnGuard struct {
	pool   *pgxpool.Pool
	schema string
	tables []string
	column string
}

// NewCredentialGuard returns a guard for CredentialColumn on CredentialTables.
func NewCredentialGuard(pool *pgxpool.Pool, schema string) *ColumnGuard {
	return &ColumnGuard{
		pool:   pool,
		schema: schema,
		tables: CredentialTables,
		column: CredentialColumn,
	}
}

// Ensure checks every table and adds the column where it is missing. A
// failure on one table does not stop the others; all failures are returned
// joined. added lists the tables that were altered.
func (g *ColumnGuard) Ensure(ctx context.Context) (added []string, err error) {
	if err := ValidateSchema(g.schema); err != nil {
		return nil, err
	}

	var errs []error
	for _, table := range g.tables {
		altered, err := g.ensureTable(ctx, table)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.%s: %w", table, g.column, err))
			continue
		}
		if altered {
			added = append(added, table)
		}
	}
	return added, errors.Join(errs...)
}

func (g *ColumnGuard) ensureTable(ctx context.Context, table string) (bool, error) {
	altered := false
	err := WithConn(ctx, g.pool, func(q Querier) error {
		cols, err := columnSet(ctx, q, g.schema, table)
		if err != nil {
			return err
		}
		if len(cols) == 0 {
			return fmt.Errorf("table %s.%s not found", g.schema, table)
		}
		if cols[g.column] {
			return nil
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT",
			pgx.Identifier{g.schema, table}.Sanitize(),
			pgx.Identifier{g.column}.Sanitize(),
		)
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("add column: %w", err)
		}
		altered = true
		return nil
	})
	return altered, err
}

func columnSet(ctx context.Context, q Querier, schema, table string) (map[string]bool, error) {
	rows, err := q.Query(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2`, schema, table)
	if err != nil {
		return nil, fmt.Errorf("inspect columns: %w", err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	return cols, nil
}
