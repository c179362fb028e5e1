// Package checks provides the argument validation primitives used by the
// builder types. Every check reports a violation as an *ArgumentError so
// callers can distinguish misuse from external contract failures.
package checks

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// AlphanumericWithDash matches names made of lowercase letters, digits and dashes.
var AlphanumericWithDash = regexp.MustCompile(`^[a-z0-9-]+$`)

// ArgumentError signals that a caller passed an invalid argument.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func newError(format string, args ...any) *ArgumentError {
	return &ArgumentError{Message: fmt.Sprintf(format, args...)}
}

// NotEmpty fails if value is empty.
func NotEmpty(value string, name string) error {
	if len(value) == 0 {
		return newError("%s may not be empty", name)
	}

	return nil
}

// NotLonger fails if value exceeds maxLen characters. Length is counted in
// characters, not encoded bytes, so multibyte values are not penalized.
func NotLonger(value string, maxLen int, name string) error {
	if utf8.RuneCountInString(value) > maxLen {
		return newError("%s may not be longer than %d characters", name, maxLen)
	}

	return nil
}

// Matches fails if value does not match the provided pattern.
func Matches(value string, pattern *regexp.Regexp, name string) error {
	if !pattern.MatchString(value) {
		return newError("%s must match regex %s", name, pattern.String())
	}

	return nil
}

// IsLowercase fails if value contains any uppercase characters.
func IsLowercase(value string, name string) error {
	if value != strings.ToLower(value) {
		return newError("%s must be lowercase only", name)
	}

	return nil
}

// Check fails with the given message if the condition does not hold.
func Check(condition bool, format string, args ...any) error {
	if !condition {
		return newError(format, args...)
	}

	return nil
}
