package manifest

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/wpscaffold/internal/plugin"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestLoadFull(t *testing.T) {
	m, err := Load(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Name != "Antigravity Booking" {
		t.Errorf("Name = %q", m.Name)
	}
	if m.Slug != "antigravity-booking" {
		t.Errorf("Slug = %q", m.Slug)
	}
	if m.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", m.Version, "1.2.0")
	}
	if m.Readme == nil || m.Readme.RequiresPHP != "8.0" {
		t.Errorf("Readme = %+v, want requires_php 8.0", m.Readme)
	}
}

func TestLoadPartial(t *testing.T) {
	m, err := Load(testPath("valid-partial.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Author != "" || m.Readme != nil {
		t.Errorf("unexpected fields decoded: %+v", m)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		file     string
		wantPath string
	}{
		{"invalid-unknown-field.yaml", ""},
		{"invalid-version-number.yaml", "/version"},
		{"invalid-readme.yaml", "/readme"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(testPath(tt.file))
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("Load() error = %v, want *InvalidError", err)
			}
			if len(invalid.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range invalid.Issues {
				if issue.Message == "" || issue.Keyword == "" {
					t.Errorf("issue has empty fields: %+v", issue)
				}
				if strings.HasPrefix(issue.Path, tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue under %q: %v", tt.wantPath, invalid.Issues)
			}
			if !strings.Contains(err.Error(), tt.file) {
				t.Errorf("error should name the file: %v", err)
			}
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(testPath("invalid-not-yaml.yaml"))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		t.Errorf("malformed YAML should not be a schema error: %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	if _, err := Load(testPath("nonexistent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateEmptyDocument(t *testing.T) {
	result, err := Validate([]byte(""))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty document should be valid, got %v", result.Issues)
	}
}

func TestApply(t *testing.T) {
	m, err := Load(testPath("valid-full.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	spec := plugin.NewSpec("", "", "", "Someone Else", ".")
	m.Apply(spec)

	if spec.Name != "Antigravity Booking" || spec.Slug != "antigravity-booking" {
		t.Errorf("name/slug not applied: %+v", spec)
	}
	if spec.Author != "Jane Doe" {
		t.Errorf("Author = %q, want file value", spec.Author)
	}
	if spec.Destination != "./plugins" {
		t.Errorf("Destination = %q", spec.Destination)
	}
	if spec.Readme.TestedUpTo != "6.4" || spec.Readme.License != "GPLv2 or later" {
		t.Errorf("Readme = %+v", spec.Readme)
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("applied spec should validate: %v", err)
	}
}

func TestApplyKeepsDefaults(t *testing.T) {
	m, err := Load(testPath("valid-partial.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	spec := plugin.NewSpec("", "", "", "", ".")
	m.Apply(spec)

	if spec.Version != plugin.DefaultVersion {
		t.Errorf("Version = %q, want default", spec.Version)
	}
	if spec.Readme != plugin.DefaultReadme() {
		t.Errorf("Readme = %+v, want defaults", spec.Readme)
	}
}
