package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/arcanaland/trucoworld/internal/game"
	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query [participant] [property]",
	Short: "Deal a round and query a participant's state",
	Long: `Query deals a round and prints the response envelope for one participant.
Properties: hand, envido_points, scores.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid participant %q: %w", args[0], err)
		}

		state, err := newTable()
		if err != nil {
			return err
		}

		if err := state.Deal(); err != nil {
			return err
		}

		resp, queryErr := state.QueryByName(game.ParticipantID(id), args[1])

		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return queryErr
	},
}

func init() {
	RootCmd.AddCommand(queryCmd)
}
