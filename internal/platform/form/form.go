// Package form defines the contract between a data-entry front end and the
// registrars: raw field values in, a typed record or a structured error out.
package form

import (
	"errors"
	"fmt"
	"strings"
)

// Fields maps a field name to the raw string the operator entered.
type Fields map[string]string

// Get returns the named value with surrounding whitespace removed.
func (f Fields) Get(name string) string {
	return strings.TrimSpace(f[name])
}

// Missing returns the names from required whose trimmed value is empty,
// in the order given.
func (f Fields) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if f.Get(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// Reset clears every entered value.
func (f Fields) Reset() {
	for k := range f {
		delete(f, k)
	}
}

// Option is one entry of a selection widget.
type Option struct {
	Label string `json:"label"`
	ID    string `json:"id"`
}

// Resolve finds the option whose label or id equals choice.
func Resolve(options []Option, choice string) (Option, bool) {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return Option{}, false
	}
	for _, o := range options {
		if o.Label == choice || o.ID == choice {
			return o, true
		}
	}
	return Option{}, false
}

// ValidationError reports input that was rejected before reaching storage.
// Field is empty when the failure is not tied to a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MissingError reports every required field left blank.
func MissingError(names []string) *ValidationError {
	field := ""
	if len(names) == 1 {
		field = names[0]
	}
	return &ValidationError{
		Field:   field,
		Message: "missing required fields: " + strings.Join(names, ", "),
	}
}

// StorageError wraps a database failure. The operation that produced it was
// abandoned and nothing was written.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError unless it is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage reports whether err is or wraps a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
