package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LoganTemp/CSI-4999-Senior-Capstone-Project/internal/platform/form"
)

// fieldsFromFlags copies each named flag into a form field. Flag names use
// hyphens, field names use underscores.
func fieldsFromFlags(cmd *cobra.Command, names []string) form.Fields {
	f := form.Fields{}
	for _, name := range names {
		v, _ := cmd.Flags().GetString(name)
		f[fieldName(name)] = v
	}
	return f
}

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

func fieldName(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// promptPasswords fills password and confirm_password from the terminal
// when they were not given as flags. Off a terminal it does nothing and the
// registrar reports the fields as missing.
func promptPasswords(w io.Writer, f form.Fields) error {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return nil
	}
	for _, p := range []struct{ field, label string }{
		{"password", "Password: "},
		{"confirm_password", "Confirm password: "},
	} {
		if f[p.field] != "" {
			continue
		}
		fmt.Fprint(w, p.label)
		secret, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return fmt.Errorf("read %s: %w", p.field, err)
		}
		f[p.field] = string(secret)
	}
	return nil
}

func printOptions(w io.Writer, opts []form.Option) {
	fmt.Fprintf(w, "%-36s %s\n", "ID", "LABEL")
	for _, o := range opts {
		fmt.Fprintf(w, "%-36s %s\n", o.ID, o.Label)
	}
}
