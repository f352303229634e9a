package cli

import (
	"fmt"

	"github.com/ehrlich-b/bigoptcube/internal/prune"
	"github.com/ehrlich-b/bigoptcube/internal/solver"
)

// loadSolver loads (or, on first run in dir, builds) the pruning
// tables and wraps them in a Solver. solve passes the current working
// directory; serve passes its --dir flag.
func loadSolver(dir string) (*solver.Solver, error) {
	tables, corner, err := prune.LoadOrBuild(dir)
	if err != nil {
		return nil, fmt.Errorf("loading pruning tables: %w", err)
	}
	return solver.New(tables, corner), nil
}
