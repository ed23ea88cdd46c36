package cmd

import (
	"fmt"

	"github.com/arcanaland/trucoworld/internal/config"
	"github.com/arcanaland/trucoworld/internal/deck"
	"github.com/arcanaland/trucoworld/internal/rng"
	"github.com/arcanaland/trucoworld/internal/validator"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the deck and manage configuration",
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a shuffled deck, top card last",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var gen rng.Generator = rng.Crypto{}
		if settings.Seed != 0 {
			gen = rng.NewSeeded(settings.Seed)
		}

		cards := deck.New(gen).Cards()

		if results := validator.NewValidator().ValidateDeck(cards); !results.Valid() {
			return fmt.Errorf("deck is incomplete: %v", results.Errors)
		}

		out := cmd.OutOrStdout()
		for i, c := range cards {
			fmt.Fprintf(out, "%2d. %s\n", i+1, paint(c.Suit, c.String()))
		}

		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.Init()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckInitCmd)
}
