// Package model defines the domain types and value objects for the
// fleetload CLI.
//
// This package contains pure data structures with no external dependencies:
// container kinds and the hard-coded cargo rules attached to them (liquid
// fill fractions, refrigeration temperatures, gas residue), the typed errors
// raised when a load rule is violated, and the exit codes (ExitCode) plus the
// CLIError type used to translate failures into OS process exit codes.
package model
