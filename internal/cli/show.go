package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehrlich-b/bigoptcube/internal/cube"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show the cube state after an optional scramble",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cc *cubie.CubieCube
		var err error
		if len(args) == 1 {
			cc, err = cube.Apply(args[0])
		} else {
			cc = cubie.Solved()
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println(unfolded(cc.ToFacelets()))
	},
}

// unfolded renders a 54-character facelet string as the standard
// cross-shaped net: U above, L F R B across the middle, D below.
func unfolded(f string) string {
	face := func(start int) [3]string {
		var rows [3]string
		for r := 0; r < 3; r++ {
			rows[r] = f[start+r*3 : start+r*3+3]
		}
		return rows
	}
	u, r, fr, d, l, b := face(0), face(9), face(18), face(27), face(36), face(45)

	var sb strings.Builder
	pad := "      "
	for i := 0; i < 3; i++ {
		sb.WriteString(pad + spaced(u[i]) + "\n")
	}
	for i := 0; i < 3; i++ {
		sb.WriteString(spaced(l[i]) + " " + spaced(fr[i]) + " " + spaced(r[i]) + " " + spaced(b[i]) + "\n")
	}
	for i := 0; i < 3; i++ {
		sb.WriteString(pad + spaced(d[i]) + "\n")
	}
	return sb.String()
}

func spaced(row string) string {
	return strings.Join(strings.Split(row, ""), " ")
}
