// Package validate holds the format checks applied to registration input.
// Every function is pure and safe to call from any goroutine.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DateLayout is the only accepted calendar date format.
	DateLayout = "2006-01-02"

	MinPasswordLength = 8
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^\d{3}-\d{4}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Date reports whether s is a real calendar date written as YYYY-MM-DD.
func Date(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseDate parses a date already accepted by Date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NormalizeSex maps M/MALE to "M" and F/FEMALE to "F", ignoring case.
// Any other input yields "".
func NormalizeSex(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE":
		return "M"
	case "F", "FEMALE":
		return "F"
	default:
		return ""
	}
}

// Phone reports whether s is exactly three digits, a hyphen and four digits.
func Phone(s string) bool {
	return phonePattern.MatchString(s)
}

// Email is a coarse local@domain.tld check. It is not RFC 5322 validation.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// PasswordLength reports whether s has at least MinPasswordLength characters.
// Characters are counted as runes, not bytes.
func PasswordLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLength
}
