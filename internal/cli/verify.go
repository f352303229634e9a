package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/cube"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [scramble]",
	Short: "Check that a cube position is physically reachable",
	Long: `verify reports whether a position (given as a scramble applied to the
solved cube, or as a 54-character facelet string via --facelets) could
arise from a solved cube by turning its faces: permutation parity matches,
corner orientations sum to 0 mod 3, and edge orientations sum to 0 mod 2.`,
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
		fmt.Println("valid")
	},
}

func init() {
	verifyCmd.Flags().String("facelets", "", "54-character facelet string to verify instead of a scramble")
}
