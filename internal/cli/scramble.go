package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/cube"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Run: func(cmd *cobra.Command, args []string) {
		n, _ := cmd.Flags().GetInt("length")
		seed, _ := cmd.Flags().GetInt64("seed")

		rng := rand.New(rand.NewSource(seed))
		fmt.Println(cube.Scramble(n, rng))
	},
}

func init() {
	scrambleCmd.Flags().IntP("length", "n", 25, "number of face turns")
	scrambleCmd.Flags().Int64("seed", 1, "random seed")
}
