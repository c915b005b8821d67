// validate.go implements the "fleetload validate" command.
//
// The validate command decodes a manifest and checks it for structural
// problems without running it. Load-rule outcomes (a cold reefer, a full
// ship) are not problems; only broken references and malformed entries are.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fleetload/internal/model"
	"github.com/shinji-kodama/fleetload/internal/scenario"
)

// validateFlags holds the flag values for the validate command.
type validateFlags struct {
	file string
}

// NewValidateCommand creates the "validate" cobra command.
func NewValidateCommand() *cobra.Command {
	flags := &validateFlags{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a scenario manifest without running it",
		Long: `Decode a scenario manifest and report every structural problem.

Without --file the built-in scenario is checked.

Examples:
  fleetload validate --file voyage.yaml
  fleetload validate --file voyage.jsonc --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Scenario manifest (.yaml, .yml, .json, .jsonc)")

	return cmd
}

// validateResultJSON is the JSON output structure for the validate command.
type validateResultJSON struct {
	Valid      bool          `json:"valid"`
	Ships      int           `json:"ships"`
	Containers int           `json:"containers"`
	Blocks     int           `json:"blocks"`
	Problems   []problemJSON `json:"problems"`
}

type problemJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// runValidate is the main logic function for the validate command.
func runValidate(w io.Writer, flags *validateFlags) error {
	m, err := loadManifest(flags.file)
	if err != nil {
		return err
	}

	errs := scenario.Validate(m)
	VerboseLog("Validation found %d problem(s)", len(errs))

	source := flags.file
	if source == "" {
		source = "built-in scenario"
	}

	if IsJSONOutput() {
		doc := validateResultJSON{
			Valid:      len(errs) == 0,
			Ships:      len(m.Ships),
			Containers: len(m.Containers),
			Blocks:     len(m.Blocks),
			Problems:   make([]problemJSON, 0, len(errs)),
		}
		for _, e := range errs {
			doc.Problems = append(doc.Problems, problemJSON{Field: e.Field, Message: e.Message})
		}
		data, _ := json.MarshalIndent(doc, "", "  ")
		fmt.Fprintln(w, string(data))
	} else if len(errs) == 0 {
		fmt.Fprintf(w, "%s is valid: %d ship(s), %d container(s), %d block(s)\n",
			source, len(m.Ships), len(m.Containers), len(m.Blocks))
	} else {
		fmt.Fprintf(w, "%s has %d problem(s):\n", source, len(errs))
		for _, e := range errs {
			fmt.Fprintf(w, "  %-32s %s\n", e.Field, e.Message)
		}
	}

	if len(errs) > 0 {
		return model.NewCLIError(model.ExitManifestInvalid,
			fmt.Sprintf("manifest has %d problem(s)", len(errs)))
	}
	return nil
}
