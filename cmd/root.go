package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/trucoworld/internal/config"
	"github.com/arcanaland/trucoworld/internal/game"
	"github.com/arcanaland/trucoworld/internal/logging"
	"github.com/arcanaland/trucoworld/internal/rng"
	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trucoworld",
	Short: "Deal Truco hands and count envido",
	Long: `Trucoworld deals hands from the 40-card Spanish deck used in Argentine Truco
and computes the envido points of each hand.

Cards are written as <rank><suit>, where suit is e (espadas), b (bastos),
o (oros) or c (copas). For example: 1e 7e 12o`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// settings resolved from the config file, the environment and the flags
var settings *config.Config

func init() {
	flags := RootCmd.PersistentFlags()
	flags.Int64("seed", 0, "Seed for the deck shuffle (0 for a random deck)")
	flags.IntSlice("players", nil, "Participant IDs to deal to (default 1,2)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Bool("log-json", false, "Log in JSON format")
	flags.Bool("no-color", false, "Disable colored output")
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("players") {
		cfg.Participants, _ = flags.GetIntSlice("players")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.Color = false
	}

	if _, err := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogJSON); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	if !cfg.Color {
		colorize.NoColor = true
	}

	settings = cfg
	return nil
}

// newTable returns a game state with every configured participant registered
func newTable() (*game.State, error) {
	var gen rng.Generator = rng.Crypto{}
	if settings.Seed != 0 {
		gen = rng.NewSeeded(settings.Seed)
	}

	ids := make([]game.ParticipantID, len(settings.Participants))
	for i, id := range settings.Participants {
		ids[i] = game.ParticipantID(id)
	}

	return game.New(
		game.WithGenerator(gen),
		game.WithLogger(logrus.WithField("component", "game")),
		game.WithParticipants(ids...),
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
