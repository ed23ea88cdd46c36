package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [cards...]",
	Short: "Validate a hand",
	Long: `Validate checks that the cards make up a playable Truco hand: three distinct
cards from the 40-card deck.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, err := card.ParseHand(strings.Join(args, ","))
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		v := validator.NewValidator()
		results := v.ValidateHand(hand)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Hand '%s' is valid.\n", strings.Join(args, " "))
		} else {
			fmt.Fprintf(out, "❌ Hand '%s' has %d validation errors:\n", strings.Join(args, " "), len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
