package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cubefold",
	Short: "Rewrite 3x3x3 move sequences with whole-cube rotations",
	Long: `Cubefold rewrites a sequence of face turns into an equivalent,
minimum-cost program that interleaves the turns with whole-cube
reorientations.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(serveCmd)
}
