package cli

import (
	"fmt"

	"github.com/agentx-labs/wpscaffold/internal/branding"
	"github.com/agentx-labs/wpscaffold/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.wpscaffold/config.yaml.

Known keys:
  dest                  default destination directory
  readme.tags           readme.txt Tags line
  readme.requires_wp    readme.txt Requires at least
  readme.tested_up_to   readme.txt Tested up to
  readme.requires_php   readme.txt Requires PHP
  readme.license        readme.txt License

Every key can also come from the environment, e.g. ` + branding.EnvVar("dest") + `
or ` + branding.EnvVar("readme_tags") + `.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	return configCmd
}
