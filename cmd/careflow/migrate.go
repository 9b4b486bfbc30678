package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations and ensure credential columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), bootConnectOnly, "migrate.up", func(ctx context.Context, a *app) error {
				fmt.Fprintf(a.out, "Running migrations on schema: %s\n", a.cfg.DBSchema)
				count, err := a.migrate(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Applied %d migration(s) successfully.\n", count)
				return nil
			})
		},
	})

	// migrate status
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), bootConnectOnly, "migrate.status", func(ctx context.Context, a *app) error {
				migrator := db.NewMigrator(a.pool, db.EmbeddedMigrations())
				statuses, err := migrator.Status(ctx, a.cfg.DBSchema)
				if err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}

				fmt.Fprintf(a.out, "Migration status for schema: %s\n", a.cfg.DBSchema)
				fmt.Fprintf(a.out, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
				fmt.Fprintln(a.out, "---------- ---------------------------------------- ---------- --------------------")
				for _, s := range statuses {
					status := "pending"
					appliedAt := ""
					if s.Applied {
						status = "applied"
						if s.AppliedAt != nil {
							appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
						}
					}
					fmt.Fprintf(a.out, "%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
				}
				return nil
			})
		},
	})

	return cmd
}
