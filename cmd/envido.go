package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/trucoworld/internal/card"
	"github.com/arcanaland/trucoworld/internal/envido"
	"github.com/spf13/cobra"
)

// envidoCmd represents the envido command
var envidoCmd = &cobra.Command{
	Use:   "envido [cards...]",
	Short: "Count the envido points of a hand",
	Example: `  trucoworld envido 1e 7e 12o
  trucoworld envido 5c,6c,7c`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, err := card.ParseHand(strings.Join(args, ","))
		if err != nil {
			return err
		}

		result, err := envido.Breakdown(hand)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Suit == "" {
			fmt.Fprintf(out, "Envido: %d (no suit pair, highest card %s)\n", result.Points, formatCards(result.Cards))
			return nil
		}

		parts := make([]string, 0, len(result.Cards))
		for _, c := range result.Cards {
			parts = append(parts, paint(c.Suit, c.String()))
		}

		fmt.Fprintf(out, "Envido: %d (%s + %d)\n", result.Points, strings.Join(parts, " + "), envido.Bonus)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(envidoCmd)
}
