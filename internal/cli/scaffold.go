package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentx-labs/wpscaffold/internal/config"
	"github.com/agentx-labs/wpscaffold/internal/manifest"
	"github.com/agentx-labs/wpscaffold/internal/plugin"
	"github.com/agentx-labs/wpscaffold/internal/report"
	"github.com/agentx-labs/wpscaffold/internal/scaffold"
	"github.com/spf13/cobra"
)

// scaffoldOptions holds the root command's flags.
type scaffoldOptions struct {
	name          string
	slug          string
	description   string
	author        string
	dest          string
	specFile      string
	pluginVersion string
	verbose       bool
}

// requiredFlags must come from a flag or the spec file.
var requiredFlags = []string{"name", "slug", "description", "author"}

func (o *scaffoldOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.name, "name", "", "Plugin name (required)")
	f.StringVar(&o.slug, "slug", "", "Plugin slug: lowercase letters, numbers, and hyphens (required)")
	f.StringVar(&o.description, "description", "", "Plugin description (required)")
	f.StringVar(&o.author, "author", "", "Plugin author (required)")
	f.StringVar(&o.dest, "dest", "", "Destination directory (default: the dest config key, else the current directory)")
	f.StringVar(&o.specFile, "spec-file", "", "YAML file with plugin fields; flags override its values")
	f.StringVar(&o.pluginVersion, "plugin-version", plugin.DefaultVersion, "Version stamped into the generated plugin")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Print each created directory and file to stderr")
}

func runScaffold(cmd *cobra.Command, opts *scaffoldOptions) error {
	config.Load()

	spec, err := opts.buildSpec(cmd)
	if err != nil {
		return err
	}

	var progress io.Writer
	if opts.verbose {
		progress = cmd.ErrOrStderr()
		fmt.Fprintf(progress, "Scaffolding %s into %s\n", spec.Slug, spec.Root())
	}

	result, err := scaffold.Generate(spec, scaffold.Options{Progress: progress})
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), report.Success(result.Root, result.Message))
}

// buildSpec layers built-in defaults, config, the spec file, and flags,
// in increasing precedence.
func (o *scaffoldOptions) buildSpec(cmd *cobra.Command) (*plugin.Spec, error) {
	spec := plugin.NewSpec("", "", "", "", config.GetOr(config.KeyDest, "."))
	spec.Readme = plugin.Readme{
		Tags:        config.GetOr(config.KeyReadmeTags, plugin.DefaultTags),
		RequiresWP:  config.GetOr(config.KeyReadmeRequiresWP, plugin.DefaultRequiresWP),
		TestedUpTo:  config.GetOr(config.KeyReadmeTestedUpTo, plugin.DefaultTestedUpTo),
		RequiresPHP: config.GetOr(config.KeyReadmeRequiresPHP, plugin.DefaultRequiresPHP),
		License:     config.GetOr(config.KeyReadmeLicense, plugin.DefaultLicense),
	}

	if o.specFile != "" {
		m, err := manifest.Load(o.specFile)
		if err != nil {
			return nil, err
		}
		m.Apply(spec)
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag  string
		value string
		dst   *string
	}{
		{"name", o.name, &spec.Name},
		{"slug", o.slug, &spec.Slug},
		{"description", o.description, &spec.Description},
		{"author", o.author, &spec.Author},
		{"dest", o.dest, &spec.Destination},
		{"plugin-version", o.pluginVersion, &spec.Version},
	}
	for _, ov := range overrides {
		if flags.Changed(ov.flag) {
			*ov.dst = ov.value
		}
	}

	var missing []string
	for _, name := range requiredFlags {
		if flags.Changed(name) {
			continue
		}
		if specField(spec, name) == "" {
			missing = append(missing, `"`+name+`"`)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
	}

	return spec, nil
}

func specField(spec *plugin.Spec, flag string) string {
	switch flag {
	case "name":
		return spec.Name
	case "slug":
		return spec.Slug
	case "description":
		return spec.Description
	case "author":
		return spec.Author
	default:
		return ""
	}
}
