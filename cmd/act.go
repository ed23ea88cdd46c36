package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/trucoworld/internal/game"
	"github.com/spf13/cobra"
)

// actCmd represents the act command
var actCmd = &cobra.Command{
	Use:   "act [participant] [action] [key=value...]",
	Short: "Dispatch an action for a participant",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid participant %q: %w", args[0], err)
		}

		params := make(map[string]string)
		for _, kv := range args[2:] {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid parameter %q, expected key=value", kv)
			}
			params[key] = value
		}

		state, err := newTable()
		if err != nil {
			return err
		}

		if err := state.Dispatch(game.ParticipantID(id), args[1], params); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Player %d: %s\n", id, args[1])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(actCmd)
}
