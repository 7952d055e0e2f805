// ipsctl is the offline command-line interface to the guideline engine.
// It runs the deterministic template path only: no network, no API keys.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ohjihoon05/ipswriter/internal/classify"
	"github.com/ohjihoon05/ipswriter/internal/domain"
	"github.com/ohjihoon05/ipswriter/internal/generate"
	"github.com/ohjihoon05/ipswriter/internal/validate"
	"github.com/spf13/cobra"
)

var (
	// generate flags
	flagCategory string
	flagSafety   string
	flagUnit     string
	flagValue    string
	flagStyle    string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ipsctl",
	Short: "IPS guideline text toolkit",
	Long: `ipsctl generates, validates, and classifies UI text for semiconductor
equipment interfaces following the IPS writing guidelines.

All commands run the local rule engine and print JSON to stdout.`,
	SilenceUsage: true,
}

// generateCmd produces localized UI text from a context description.
var generateCmd = &cobra.Command{
	Use:   "generate [context]",
	Short: "Generate localized UI text from a context description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := domain.GenerationRequest{
			Context:     strings.Join(args, " "),
			Category:    domain.ComponentCategory(flagCategory),
			SafetyLevel: domain.SafetyLevel(flagSafety),
			Unit:        domain.UnitCategory(flagUnit),
			Value:       domain.FlexValue(flagValue),
			UsageStyle:  domain.UsageStyle(flagStyle),
		}
		if flagCategory != "" && !req.Category.IsValid() {
			return fmt.Errorf("unknown category %q", flagCategory)
		}
		if flagSafety != "" && !req.SafetyLevel.IsValid() {
			return fmt.Errorf("unknown safety level %q", flagSafety)
		}
		if flagUnit != "" && !req.Unit.IsValid() {
			return fmt.Errorf("unknown unit %q", flagUnit)
		}

		result := generate.NewTemplateGenerator().Generate(req)
		return printJSON(result)
	},
}

// validateCmd scores existing text against the guidelines.
var validateCmd = &cobra.Command{
	Use:   "validate [text]",
	Short: "Validate UI text against the guidelines",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := validate.Validate(strings.Join(args, " "))

		passed := true
		for _, r := range results {
			if !r.Passed {
				passed = false
			}
		}
		if err := printJSON(results); err != nil {
			return err
		}
		if !passed {
			// Non-zero exit so CI pipelines can gate on guideline failures.
			os.Exit(1)
		}
		return nil
	},
}

// classifyCmd infers component category, safety level, and unit.
var classifyCmd = &cobra.Command{
	Use:   "classify [context]",
	Short: "Infer component category, safety level, and unit from context",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(classify.Classify(strings.Join(args, " ")))
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func init() {
	generateCmd.Flags().StringVar(&flagCategory, "category", "", "component category (button, alert, input, status, parameter, action, measurement)")
	generateCmd.Flags().StringVar(&flagSafety, "safety", "", "safety level (critical, danger, warning, blocked)")
	generateCmd.Flags().StringVar(&flagUnit, "unit", "", "unit category (temperature, pressure, flow, power, voltage, current, time, rpm)")
	generateCmd.Flags().StringVar(&flagValue, "value", "", "numeric value to interpolate")
	generateCmd.Flags().StringVar(&flagStyle, "style", "", "usage style (button, popup, alert, manual, parameter)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(classifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
