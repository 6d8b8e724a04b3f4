// Package validate holds the input checks applied before request bodies reach
// the use case layer.
package validate

import (
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Username trims and validates a signup username (minimum 3 characters).
func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > 255 {
		return s, false
	}
	return s, true
}

// Email trims, lowercases and validates an email address.
func Email(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > 255 {
		return s, false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces the minimum password length for signup.
func Password(s string) bool {
	return len(s) >= 8
}

// Title trims and validates a displayable title with a max length of 255.
func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 255 {
		return s, false
	}
	return s, true
}
