package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/domain/clinic"
)

var locationFields = []string{"name", "address", "city", "state", "zip", "phone"}

func locationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage clinic locations",
	}

	// location list
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active clinic locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), bootReady, "location.list", func(ctx context.Context, a *app) error {
				locs, err := a.clinics.ListActive(ctx)
				if err != nil {
					return err
				}
				printSummaries(a.out, locs)
				return nil
			})
		},
	})

	// location add
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a clinic location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := &clinic.Location{}
			loc.Name, _ = cmd.Flags().GetString("name")
			loc.Address, _ = cmd.Flags().GetString("address")
			loc.City, _ = cmd.Flags().GetString("city")
			loc.State, _ = cmd.Flags().GetString("state")
			loc.Zip, _ = cmd.Flags().GetString("zip")
			if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
				loc.Phone = &phone
			}

			return withApp(cmd.Context(), bootReady, "location.add", func(ctx context.Context, a *app) error {
				if err := a.clinics.Add(ctx, loc); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Added clinic location %s (%s).\n", loc.ID, clinicLabel(loc))
				return nil
			})
		},
	}
	addLocationFlags(addCmd)
	cmd.AddCommand(addCmd)

	// location update
	updateCmd := &cobra.Command{
		Use:   "update <location-id>",
		Short: "Change selected fields of a clinic location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLocationID(args[0])
			if err != nil {
				return err
			}
			patch := patchFromFlags(cmd)

			return withApp(cmd.Context(), bootReady, "location.update", func(ctx context.Context, a *app) error {
				if err := a.clinics.Update(ctx, id, patch); err != nil {
					return err
				}
				loc, err := a.clinics.Get(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Updated clinic location %s (%s).\n", loc.ID, clinicLabel(loc))
				return nil
			})
		},
	}
	addLocationFlags(updateCmd)
	cmd.AddCommand(updateCmd)

	// location remove
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <location-id>",
		Short: "Deactivate a clinic location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseLocationID(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), bootReady, "location.remove", func(ctx context.Context, a *app) error {
				if err := a.clinics.Remove(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Clinic location %s is inactive.\n", id)
				return nil
			})
		},
	})

	return cmd
}

func addLocationFlags(cmd *cobra.Command) {
	for _, name := range locationFields {
		cmd.Flags().String(name, "", "Clinic "+name)
	}
}

// patchFromFlags sets only the fields whose flags were given, so an explicit
// empty --phone clears the phone while an omitted flag leaves it alone.
func patchFromFlags(cmd *cobra.Command) clinic.Patch {
	var p clinic.Patch
	targets := map[string]**string{
		"name":    &p.Name,
		"address": &p.Address,
		"city":    &p.City,
		"state":   &p.State,
		"zip":     &p.Zip,
		"phone":   &p.Phone,
	}
	for _, name := range locationFields {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, _ := cmd.Flags().GetString(name)
		*targets[name] = &v
	}
	return p
}

func parseLocationID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid location id %q: %w", s, err)
	}
	return id, nil
}

func clinicLabel(loc *clinic.Location) string {
	return clinic.Summary{ID: loc.ID, Name: loc.Name, City: loc.City, State: loc.State}.Label()
}

func printSummaries(w io.Writer, locs []clinic.Summary) {
	if len(locs) == 0 {
		fmt.Fprintln(w, "No active clinic locations.")
		return
	}
	fmt.Fprintf(w, "%-36s %s\n", "ID", "LOCATION")
	for _, l := range locs {
		fmt.Fprintf(w, "%-36s %s\n", l.ID, l.Label())
	}
}
