package plugin

import "strings"

// Names holds the PHP identifiers derived from a slug.
type Names struct {
	ClassName      string // e.g., "My_Plugin"
	ConstantPrefix string // e.g., "MY_PLUGIN"
	FunctionSlug   string // e.g., "my_plugin"
}

// DeriveNames computes the class, constant, and function identifiers for slug.
func DeriveNames(slug string) Names {
	underscored := strings.ReplaceAll(slug, "-", "_")
	return Names{
		ClassName:      titleCase(underscored),
		ConstantPrefix: strings.ToUpper(underscored),
		FunctionSlug:   underscored,
	}
}

// titleCase upper-cases every ASCII letter that follows a non-letter and
// lower-cases the rest, so "2fa_login" becomes "2Fa_Login".
func titleCase(s string) string {
	b := []byte(s)
	prevLetter := false
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			if !prevLetter {
				b[i] = c - ('a' - 'A')
			}
			prevLetter = true
		case c >= 'A' && c <= 'Z':
			if prevLetter {
				b[i] = c + ('a' - 'A')
			}
			prevLetter = true
		default:
			prevLetter = false
		}
	}
	return string(b)
}
