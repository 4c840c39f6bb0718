package validate

import (
	"regexp"
	"strings"
)

// Errors collects per-field validation messages, keyed by the wire name of
// the offending field.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Flatten joins all messages into a single line, for callers that cannot
// render per-field errors.
func (e Errors) Flatten() string {
	var parts []string
	for _, msgs := range e {
		parts = append(parts, msgs...)
	}
	return strings.Join(parts, ", ")
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Indonesian mobile numbers: +62/62/0 prefix, then 8, then a non-zero
	// digit, then 6-11 more digits.
	phoneRe = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,11}$`)
)

func Email(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// NormalizePhone strips spaces and hyphens before matching.
func NormalizePhone(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func Phone(s string) bool {
	return phoneRe.MatchString(NormalizePhone(s))
}

// Blank reports whether the value is empty after trimming.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
