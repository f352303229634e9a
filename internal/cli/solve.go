package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/cube"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube optimally",
	Long: `solve finds the shortest possible maneuver (in the face-turn metric)
that returns the cube to the solved state.

The cube may be given as a scramble applied to the solved cube (the
positional argument), or directly as a 54-character facelet string via
--facelets (U1..U9,R1..R9,F1..F9,D1..D9,L1..L9,B1..B9).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facelets, _ := cmd.Flags().GetString("facelets")

		var cc *cubie.CubieCube
		var err error
		switch {
		case facelets != "":
			cc, err = cubie.FromFacelets(facelets)
		case len(args) == 1:
			cc, err = cube.Apply(args[0])
		default:
			cc = cubie.Solved()
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := cc.Verify(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		s, err := loadSolver(".")
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		result := s.Solve(cc)
		fmt.Println(result.String())
	},
}

func init() {
	solveCmd.Flags().String("facelets", "", "54-character facelet string to solve instead of a scramble")
}
