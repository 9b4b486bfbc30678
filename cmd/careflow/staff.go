package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/staff"
	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/branding"
)

var staffFlags = []string{
	"first-name", "last-name", "email", "phone", "role", "code",
	"password", "confirm-password",
}

func staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Register staff members",
	}

	// staff roles
	cmd.AddCommand(&cobra.Command{
		Use:   "roles",
		Short: "List staff roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printOptions(cmd.OutOrStdout(), staff.RoleOptions())
			return nil
		},
	})

	// staff register
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new staff member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := fieldsFromFlags(cmd, staffFlags)

			return withApp(cmd.Context(), bootReady, "staff.register", func(ctx context.Context, a *app) error {
				fmt.Fprintln(a.out, branding.Load(a.cfg.BannerPath, a.logger))
				if err := promptPasswords(a.out, fields); err != nil {
					return err
				}

				opts, err := a.staff.LoadOptions(ctx)
				if err != nil {
					return err
				}
				s, err := a.staff.Submit(ctx, opts, fields)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Registered %s %s %s (%s).\n", s.Role, s.FirstName, s.LastName, s.ID)
				return nil
			})
		},
	}
	for _, name := range staffFlags {
		registerCmd.Flags().String(name, "", "Staff "+fieldName(name))
	}
	registerCmd.Flags().Lookup("role").Usage = "Role: doctor, billing, records or nurse"
	registerCmd.Flags().Lookup("code").Usage = "Staff confirmation code"
	cmd.AddCommand(registerCmd)

	return cmd
}
