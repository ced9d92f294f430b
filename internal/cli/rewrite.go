package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ehrlich-b/cubefold/internal/algebra"
	"github.com/ehrlich-b/cubefold/internal/logging"
	"github.com/ehrlich-b/cubefold/internal/optimizer"
	"github.com/ehrlich-b/cubefold/internal/render"
	"github.com/spf13/cobra"
)

type rewriteResponse struct {
	Moves *string `json:"moves"`
	Cost  int     `json:"cost,omitempty"`
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <moves>",
	Short: "Rewrite a move sequence into a minimum-cost program",
	Long: `Rewrite parses a whitespace-separated sequence of face turns and emits an
equivalent, minimum-cost program that interleaves the original turns with
whole-cube reorientations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		moves, err := algebra.ParseMoves(args[0])
		if err != nil {
			return fmt.Errorf("parsing moves: %w", err)
		}

		entries, err := optimizer.Solve(context.Background(), moves)
		if err != nil {
			logging.Log.Info().Err(err).Str("input", args[0]).Msg("rewrite: no solution")
			return printRewriteResult(cmd, asJSON, nil, 0)
		}

		tokens := render.Flatten(entries)
		result := render.Format(tokens)
		return printRewriteResult(cmd, asJSON, &result, optimizer.Cost(entries))
	},
}

func printRewriteResult(cmd *cobra.Command, asJSON bool, moves *string, cost int) error {
	if !asJSON {
		if moves == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "None")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), *moves)
		return nil
	}

	resp := rewriteResponse{Moves: moves}
	if moves != nil {
		resp.Cost = cost
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(resp)
}

func init() {
	rewriteCmd.Flags().Bool("json", false, "emit the result as a JSON object")
}
