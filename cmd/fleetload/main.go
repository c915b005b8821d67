// Package main is the entry point for the fleetload CLI.
//
// fleetload runs container loading scenarios against a fleet of cargo
// ships. It delegates all functionality to the internal/cli package,
// which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown"
// respectively.
package main

import (
	"github.com/shinji-kodama/fleetload/internal/cli"
)

// version, commit, and date are set at build time via ldflags. They
// provide binary identification for the --version flag output.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	// Execute handles error formatting and exit codes.
	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
