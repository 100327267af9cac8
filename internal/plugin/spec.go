package plugin

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults stamped into generated plugins.
const (
	DefaultVersion     = "1.0.0"
	DefaultTags        = "booking, schedule"
	DefaultRequiresWP  = "5.0"
	DefaultTestedUpTo  = "6.0"
	DefaultRequiresPHP = "7.4"
	DefaultLicense     = "GPLv2 or later"
)

// Spec describes the plugin to scaffold.
type Spec struct {
	Name        string // Human-readable plugin name, e.g., "Demo Plugin"
	Slug        string // Directory name and text domain, e.g., "demo"
	Description string
	Author      string
	Destination string // Parent directory of the plugin root
	Version     string // Semver, e.g., "1.0.0"
	Readme      Readme
}

// Readme holds the header fields of readme.txt.
type Readme struct {
	Tags        string
	RequiresWP  string
	TestedUpTo  string
	RequiresPHP string
	License     string
}

// DefaultReadme returns the readme header used when nothing overrides it.
func DefaultReadme() Readme {
	return Readme{
		Tags:        DefaultTags,
		RequiresWP:  DefaultRequiresWP,
		TestedUpTo:  DefaultTestedUpTo,
		RequiresPHP: DefaultRequiresPHP,
		License:     DefaultLicense,
	}
}

// NewSpec creates a Spec with version and readme defaults populated.
func NewSpec(name, slug, description, author, destination string) *Spec {
	return &Spec{
		Name:        name,
		Slug:        slug,
		Description: description,
		Author:      author,
		Destination: destination,
		Version:     DefaultVersion,
		Readme:      DefaultReadme(),
	}
}

// Root returns the plugin root directory, destination/slug.
func (s *Spec) Root() string {
	dest := s.Destination
	if dest == "" {
		dest = "."
	}
	return joinPath(dest, s.Slug)
}

// Names returns the identifiers derived from the slug.
func (s *Spec) Names() Names {
	return DeriveNames(s.Slug)
}

// Validate checks the version fields. The slug is checked separately by
// ValidateSlug so its error keeps a fixed message.
func (s *Spec) Validate() error {
	var errs []error

	if _, err := semver.StrictNewVersion(s.Version); err != nil {
		errs = append(errs, fmt.Errorf("invalid plugin version %q: %w", s.Version, err))
	}

	minWP, err := parseLoose("requires_wp", s.Readme.RequiresWP)
	if err != nil {
		errs = append(errs, err)
	}
	tested, err := parseLoose("tested_up_to", s.Readme.TestedUpTo)
	if err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLoose("requires_php", s.Readme.RequiresPHP); err != nil {
		errs = append(errs, err)
	}
	if minWP != nil && tested != nil && minWP.GreaterThan(tested) {
		errs = append(errs, fmt.Errorf("requires_wp %s is newer than tested_up_to %s",
			s.Readme.RequiresWP, s.Readme.TestedUpTo))
	}

	return errors.Join(errs...)
}

// parseLoose accepts WordPress-style versions such as "5.0" or "6.4.2".
func parseLoose(field, v string) (*semver.Version, error) {
	if strings.TrimSpace(v) == "" {
		return nil, fmt.Errorf("%s must not be empty", field)
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", field, v, err)
	}
	return ver, nil
}

// joinPath appends name to dir without cleaning, so "." stays visible in
// messages ("./demo") the way the user typed it.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
