package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/branding"
)

var patientFlags = []string{
	"first-name", "last-name", "dob", "sex", "phone", "email", "address", "location",
	"allergies", "conditions", "medications", "notes", "emergency-contact",
	"password", "confirm-password",
}

var patientFlagUsage = map[string]string{
	"dob":      "Date of birth (YYYY-MM-DD)",
	"sex":      "M or F",
	"phone":    "Phone number (555-1234)",
	"location": "Clinic location id or label (see 'patient options')",
	"notes":    "Optional notes",
	"password": "Password (prompted when omitted on a terminal)",
}

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Register patients",
	}

	// patient options
	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "List the clinic locations a patient can be registered at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), bootReady, "patient.options", func(ctx context.Context, a *app) error {
				opts, err := a.patients.LoadOptions(ctx)
				if err != nil {
					return err
				}
				printOptions(a.out, opts.Locations())
				return nil
			})
		},
	})

	// patient register
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := fieldsFromFlags(cmd, patientFlags)

			return withApp(cmd.Context(), bootReady, "patient.register", func(ctx context.Context, a *app) error {
				fmt.Fprintln(a.out, branding.Load(a.cfg.BannerPath, a.logger))
				if err := promptPasswords(a.out, fields); err != nil {
					return err
				}

				opts, err := a.patients.LoadOptions(ctx)
				if err != nil {
					return err
				}
				p, err := a.patients.Submit(ctx, opts, fields)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Registered patient %s (%s).\n", p.ID, p.FullName())
				return nil
			})
		},
	}
	for _, name := range patientFlags {
		usage, ok := patientFlagUsage[name]
		if !ok {
			usage = "Patient " + fieldName(name)
		}
		registerCmd.Flags().String(name, "", usage)
	}
	cmd.AddCommand(registerCmd)

	return cmd
}
