// rules.go implements the "fleetload rules" and
// "fleetload scenario" commands, which print the fixed cargo rules and the
// built-in scenario respectively.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/fleetload/internal/model"
	"github.com/shinji-kodama/fleetload/internal/scenario"
)

// NewRulesCommand creates the "rules" cobra command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the load rules of each container kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRules(cmd.OutOrStdout())
			return nil
		},
	}
}

// ruleJSON describes one container kind in the rules output.
type ruleJSON struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Hazardous bool   `json:"hazardous"`
	Rule      string `json:"rule"`
}

// kindRule returns the one-line description of a kind's load rule.
func kindRule(kind model.ContainerKind) string {
	switch kind {
	case model.KindLiquid:
		return fmt.Sprintf("fill up to %s%% of max load (%s%% for %s)",
			model.FormatNumber(model.LiquidFillFraction("")*100),
			model.FormatNumber(model.LiquidFillFraction(model.ProductFuel)*100),
			model.ProductFuel)
	case model.KindGas:
		return fmt.Sprintf("fill up to max load; unloading keeps %s%% residue",
			model.FormatNumber(model.GasResidueFraction*100))
	case model.KindRefrigerated:
		parts := make([]string, 0, len(model.KnownRefrigeratedProducts()))
		for _, p := range model.KnownRefrigeratedProducts() {
			parts = append(parts, fmt.Sprintf("%s >= %s°C", p, model.FormatNumber(model.RequiredTemperature(p))))
		}
		return fmt.Sprintf("fill up to max load when warm enough (%s, others >= %s°C)",
			strings.Join(parts, ", "), model.FormatNumber(model.RequiredTemperature("")))
	default:
		return ""
	}
}

// printRules writes the rule table in text or JSON format.
func printRules(w io.Writer) {
	if IsJSONOutput() {
		rules := make([]ruleJSON, 0, len(model.ContainerKinds))
		for _, k := range model.ContainerKinds {
			rules = append(rules, ruleJSON{
				Kind:      k.String(),
				Code:      k.Code(),
				Hazardous: k.IsHazardous(),
				Rule:      kindRule(k),
			})
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"rules": rules}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	fmt.Fprintf(w, "%-14s %-5s %-10s %s\n", "KIND", "CODE", "HAZARDOUS", "RULE")
	for _, k := range model.ContainerKinds {
		hazardous := "no"
		if k.IsHazardous() {
			hazardous = "yes"
		}
		fmt.Fprintf(w, "%-14s %-5s %-10s %s\n", k, k.Code(), hazardous, kindRule(k))
	}
}

// NewScenarioCommand creates the "scenario" cobra command, which prints the
// built-in scenario as a starting point for custom manifests.
func NewScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Print the built-in scenario manifest",
		Long: `Print the built-in scenario manifest.

YAML by default; with --json the manifest is printed as JSON, which
"run --file" accepts as well.

Examples:
  fleetload scenario > voyage.yaml
  fleetload scenario --json > voyage.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printScenario(cmd.OutOrStdout())
		},
	}
}

func printScenario(w io.Writer) error {
	if !IsJSONOutput() {
		_, err := w.Write(scenario.DefaultSource())
		return err
	}

	m, err := scenario.Default()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to load built-in scenario", err)
	}
	data, err := scenario.Encode(m, scenario.FormatJSONC)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode built-in scenario", err)
	}
	_, err = w.Write(data)
	return err
}
