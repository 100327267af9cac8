package manifest

import "github.com/agentx-labs/wpscaffold/internal/plugin"

// PluginManifest is the decoded form of a plugin spec file.
// Empty fields leave the corresponding spec value untouched.
type PluginManifest struct {
	Name        string       `yaml:"name" json:"name"`
	Slug        string       `yaml:"slug" json:"slug"`
	Description string       `yaml:"description" json:"description"`
	Author      string       `yaml:"author" json:"author"`
	Version     string       `yaml:"version,omitempty" json:"version,omitempty"`
	Dest        string       `yaml:"dest,omitempty" json:"dest,omitempty"`
	Readme      *ReadmeBlock `yaml:"readme,omitempty" json:"readme,omitempty"`
}

// ReadmeBlock overrides readme.txt header fields.
type ReadmeBlock struct {
	Tags        string `yaml:"tags,omitempty" json:"tags,omitempty"`
	RequiresWP  string `yaml:"requires_wp,omitempty" json:"requires_wp,omitempty"`
	TestedUpTo  string `yaml:"tested_up_to,omitempty" json:"tested_up_to,omitempty"`
	RequiresPHP string `yaml:"requires_php,omitempty" json:"requires_php,omitempty"`
	License     string `yaml:"license,omitempty" json:"license,omitempty"`
}

// Apply overlays the non-empty manifest fields onto spec.
func (m *PluginManifest) Apply(spec *plugin.Spec) {
	setIf(&spec.Name, m.Name)
	setIf(&spec.Slug, m.Slug)
	setIf(&spec.Description, m.Description)
	setIf(&spec.Author, m.Author)
	setIf(&spec.Version, m.Version)
	setIf(&spec.Destination, m.Dest)

	if m.Readme == nil {
		return
	}
	setIf(&spec.Readme.Tags, m.Readme.Tags)
	setIf(&spec.Readme.RequiresWP, m.Readme.RequiresWP)
	setIf(&spec.Readme.TestedUpTo, m.Readme.TestedUpTo)
	setIf(&spec.Readme.RequiresPHP, m.Readme.RequiresPHP)
	setIf(&spec.Readme.License, m.Readme.License)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
