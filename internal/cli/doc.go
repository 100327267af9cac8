// Package cli defines the Cobra command tree for the wpscaffold CLI. The root
// command scaffolds a plugin; version and config are subcommands. Commands
// only handle flag parsing and I/O; the work is done by internal packages.
package cli
