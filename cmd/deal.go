package cmd

import (
	"fmt"

	"github.com/arcanaland/trucoworld/internal/envido"
	"github.com/spf13/cobra"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal three cards to every participant",
	Long: `Deal shuffles a deck, deals three cards to every participant and shows each
hand along with its envido points. Use --rounds to keep dealing from the same deck.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, _ := cmd.Flags().GetInt("rounds")

		state, err := newTable()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for round := 1; round <= rounds; round++ {
			if err := state.Deal(); err != nil {
				return fmt.Errorf("round %d: %w", round, err)
			}

			if rounds > 1 {
				fmt.Fprintf(out, "Round %d\n", round)
			}

			for _, id := range state.Participants() {
				hand, _ := state.Hand(id)
				points, err := envido.Score(hand)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Player %d: %s (envido %d)\n", id, formatCards(hand), points)
			}
		}

		fmt.Fprintf(out, "%d cards left in the deck\n", state.CardsLeft())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().IntP("rounds", "r", 1, "Number of deals from the same deck")
}
