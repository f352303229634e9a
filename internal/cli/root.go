package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "An optimal single-phase 3x3x3 Rubik's cube solver",
	Long: `cube solves the 3x3x3 Rubik's cube optimally in the face-turn metric,
using a single-phase IDA* search over three symmetric coordinate views
of the position and a large precomputed pruning table.`,
	Version: "1.0.0",
}

// Execute runs the root command, dispatching to whichever subcommand
// the arguments name.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(buildTablesCmd)
	rootCmd.AddCommand(serveCmd)
}
