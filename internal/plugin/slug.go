package plugin

import (
	"errors"
	"regexp"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ErrInvalidSlug is returned when a slug contains anything other than
// lowercase ASCII letters, digits, and hyphens. Its text is user-facing.
var ErrInvalidSlug = errors.New("Slug must contain only lowercase letters, numbers, and hyphens.")

// ValidateSlug reports whether slug is usable as a plugin directory and text domain.
// The empty string is rejected.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}
