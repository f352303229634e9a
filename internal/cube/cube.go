// Package cube holds the thin external-collaborator helpers §1 calls
// out as out-of-scope-but-present: random scramble generation, move-
// notation formatting, and applying a scramble string to the solved
// cube, built on top of the cubie model.
// None of these contribute to the core design; they exist so the CLI
// and web surfaces have something simple to call.
package cube

import (
	"math/rand"
	"strings"

	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

// Scramble returns a random sequence of n face turns, formatted as
// space-separated move tokens, with the same successor constraint the
// solver's search uses (no immediate same-face or same-axis-reversed
// repeat) so the result never trivially simplifies.
func Scramble(n int, rng *rand.Rand) string {
	moves := make([]cubie.Move, 0, n)
	for len(moves) < n {
		m := cubie.Move(rng.Intn(int(cubie.NumMoves)))
		if len(moves) > 0 && redundant(moves[len(moves)-1], m) {
			continue
		}
		moves = append(moves, m)
	}
	return FormatMoves(moves)
}

func redundant(prev, m cubie.Move) bool {
	pf, mf := prev.Face(), m.Face()
	return pf == mf || pf-mf == 3
}

// FormatMoves renders a move sequence as space-separated tokens.
func FormatMoves(moves []cubie.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// Apply returns the cube reached by scrambling the solved cube with
// the given space-separated move string.
func Apply(scramble string) (*cubie.CubieCube, error) {
	moves, err := cubie.ParseMoves(scramble)
	if err != nil {
		return nil, err
	}
	cc := cubie.Solved()
	for _, m := range moves {
		cc.ApplyInPlace(m)
	}
	return cc, nil
}
