// run.go implements the "fleetload run" command.
//
// The run command executes a scenario: the built-in one by default, or a
// YAML/JSONC manifest given with --file. In text mode the transcript (ship
// listings, hazard notifications, rejected-load messages) is written as it
// happens. In JSON mode the transcript is captured and emitted together
// with the per-block outcomes and the final ship state.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fleetload/internal/model"
	"github.com/shinji-kodama/fleetload/internal/scenario"
	"github.com/shinji-kodama/fleetload/internal/ship"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	file   string // --file: manifest path (default: built-in scenario)
	strict bool   // --strict: exit non-zero when any block was aborted
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a loading scenario",
		Long: `Run a loading scenario and print its transcript.

Without --file the built-in scenario is used. Blocks run in order; the
first rejected step aborts the rest of its block and the next block starts.

Examples:
  fleetload run
  fleetload run --file voyage.yaml
  fleetload run --file voyage.jsonc --strict
  fleetload run --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Scenario manifest (.yaml, .yml, .json, .jsonc)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with code 4 when any block is aborted")

	return cmd
}

// loadManifest returns the manifest at path, or the built-in scenario when
// path is empty.
func loadManifest(path string) (*scenario.Manifest, error) {
	if path == "" {
		VerboseLog("Using built-in scenario")
		m, err := scenario.Default()
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "failed to load built-in scenario", err)
		}
		return m, nil
	}

	VerboseLog("Loading manifest %s", path)
	return scenario.Load(path)
}

// runScenario is the main logic function for the run command.
func runScenario(w io.Writer, flags *runFlags) error {
	// Step 1: Load the manifest.
	m, err := loadManifest(flags.file)
	if err != nil {
		return err
	}

	// Step 2: Run it. In JSON mode the transcript is buffered so it can be
	// embedded in the JSON document.
	var transcript bytes.Buffer
	out := w
	if IsJSONOutput() {
		out = &transcript
	}

	runner := scenario.NewRunner(out, scenario.WithLogger(logger))
	result, err := runner.Run(m)
	if err != nil {
		var verrs scenario.ValidationErrors
		if errors.As(err, &verrs) {
			return model.WrapCLIError(model.ExitManifestInvalid,
				fmt.Sprintf("manifest has %d problem(s)", len(verrs)), err)
		}
		return model.WrapCLIError(model.ExitGeneralError, "scenario failed", err)
	}
	VerboseLog("Scenario %q finished: %d block(s), %d aborted", result.Scenario, len(result.Blocks), len(result.Failed()))

	// Step 3: Output.
	if IsJSONOutput() {
		if err := printRunResultJSON(w, result, transcript.String()); err != nil {
			return err
		}
	}

	// Step 4: Strict mode turns aborted blocks into a failing exit code.
	if flags.strict && result.HasFailures() {
		failed := result.Failed()
		names := make([]string, 0, len(failed))
		for _, b := range failed {
			names = append(names, b.Name)
		}
		return model.NewCLIError(model.ExitLoadRejected,
			fmt.Sprintf("%d scenario block(s) aborted: %s", len(failed), strings.Join(names, ", ")))
	}
	return nil
}

// runResultJSON is the JSON output structure for the run command.
type runResultJSON struct {
	Scenario   string                    `json:"scenario"`
	Transcript []string                  `json:"transcript"`
	Blocks     []scenario.BlockResult    `json:"blocks"`
	Ships      []ship.Snapshot           `json:"ships"`
	Containers []scenario.ContainerState `json:"containers"`
}

// printRunResultJSON writes the result and transcript as indented JSON.
func printRunResultJSON(w io.Writer, result *scenario.Result, transcript string) error {
	doc := runResultJSON{
		Scenario:   result.Scenario,
		Transcript: splitLines(transcript),
		Blocks:     result.Blocks,
		Ships:      result.Ships,
		Containers: result.Containers,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode result", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// splitLines splits a transcript into lines, dropping the trailing newline.
// It always returns a non-nil slice so JSON output shows [] rather than null.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
