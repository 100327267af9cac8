package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/wpscaffold/internal/branding"
	"github.com/agentx-labs/wpscaffold/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree with build info injected via ldflags.
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &scaffoldOptions{}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates a boilerplate WordPress plugin: the admin/public/includes
folder layout, the main plugin file, activator, deactivator, core class, and readme.txt.

The outcome is printed as a single JSON line on stdout.

Examples:
  wpscaffold --name "Demo Plugin" --slug demo --description "A test" --author Jane
  wpscaffold --spec-file plugin.yaml --dest ./wp-content/plugins`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, opts)
		},
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(newVersionCommand(version, commit, date))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// Execute runs the CLI against os.Args.
func Execute(version, commit, date string) error {
	return run(NewRootCommand(version, commit, date), os.Args[1:], os.Stdout, os.Stderr)
}

// run executes root with args. Failures of the scaffold command itself,
// including flag errors, become an error result line on stdout; subcommand
// failures go to stderr.
func run(root *cobra.Command, args []string, stdout, stderr io.Writer) error {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	if cmd == root {
		if werr := report.Write(stdout, report.Failure(err)); werr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", werr)
		}
		return err
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return err
}
