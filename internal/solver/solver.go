// Package solver implements §4.H: single-phase IDA* over the full
// 18-move set, guided by the maximum of three symmetric pruning
// lookups and a corner-permutation heuristic, with a successor filter
// that eliminates redundant face sequences.
package solver

import (
	"fmt"
	"strings"

	"github.com/ehrlich-b/bigoptcube/internal/coordcube"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/movetable"
	"github.com/ehrlich-b/bigoptcube/internal/prune"
)

// MaxDepth is God's number in the face-turn metric: no legal cube ever
// needs a bound beyond this, so IDA*'s iterative deepening is
// guaranteed to terminate.
const MaxDepth = 20

// Solver holds the immutable pruning tables every solve reads.
type Solver struct {
	tables *prune.Table
	corner prune.CornerTable
}

// New builds a Solver over already-built (or loaded) pruning tables,
// and forces construction of the move tables up front so the first
// IDA* iteration doesn't pay lazy-build latency mid-search.
func New(tables *prune.Table, corner prune.CornerTable) *Solver {
	movetable.BuildAll()
	return &Solver{tables: tables, corner: corner}
}

// Result is a solved maneuver.
type Result struct {
	Moves []cubie.Move
	// Optimal is always true: this solver's IDA* bound only ever
	// increases, so the first solution found is provably shortest.
	Optimal bool
}

// String formats the maneuver per the external interface (§6):
// space-separated move tokens followed by "(<n>f*)".
func (r Result) String() string {
	var b strings.Builder
	for _, m := range r.Moves {
		b.WriteString(m.String())
		b.WriteByte(' ')
	}
	star := ""
	if r.Optimal {
		star = "*"
	}
	return fmt.Sprintf("%s(%df%s)", b.String(), len(r.Moves), star)
}

// Solve runs IDA* from cc, returning the optimal maneuver. The bound
// starts at max(dist_UD, dist_RL, dist_FB) for the start cube and
// increases by one each time an iteration exhausts without finding a
// solution (§4.H); the first solution found at any bound is therefore
// optimal.
func (s *Solver) Solve(cc *cubie.CubieCube) Result {
	start := coordcube.New(cc, s.tables, s.corner)
	togo := baseDist(start)

	path := make([]cubie.Move, 0, MaxDepth)
	for {
		if sol, ok := s.search(start, togo, 0, false, path); ok {
			return Result{Moves: sol, Optimal: true}
		}
		togo++
	}
}

// search is the recursive IDA* expansion of §4.H. prevMove/hasPrevMove
// carry the single scalar the successor filter needs; togo is the
// remaining depth budget at this frame.
func (s *Solver) search(cc *coordcube.CoordCube, togo int, prevMove cubie.Move, hasPrevMove bool, path []cubie.Move) ([]cubie.Move, bool) {
	if togo == 0 {
		if cc.Corners == 0 {
			sol := make([]cubie.Move, len(path))
			copy(sol, path)
			return sol, true
		}
		return nil, false
	}

	for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
		if hasPrevMove && rejects(prevMove, m) {
			continue
		}
		child := cc.Move(m)
		if heuristic(child) >= togo {
			continue
		}
		if sol, ok := s.search(child, togo-1, m, true, append(path, m)); ok {
			return sol, true
		}
	}
	return nil, false
}

// rejects implements the successor filter of §4.H step 1: reject m
// following prevMove if they turn the same face (p//3 == m//3), or
// opposite faces on the same axis in the fixed order that already
// covers the other ordering (p//3 - m//3 == 3). This eliminates the
// trivial redundancies F F', F F, F2 F, and the axis-ordering
// duplicate U D vs D U.
func rejects(prevMove, m cubie.Move) bool {
	pf, mf := prevMove.Face(), m.Face()
	if pf == mf {
		return true
	}
	return pf-mf == 3
}

// baseDist is max(dist_UD, dist_RL, dist_FB), the plain three-way
// heuristic used as the initial IDA* bound.
func baseDist(cc *coordcube.CoordCube) int {
	h := cc.Dist[coordcube.UD]
	if cc.Dist[coordcube.RL] > h {
		h = cc.Dist[coordcube.RL]
	}
	if cc.Dist[coordcube.FB] > h {
		h = cc.Dist[coordcube.FB]
	}
	return h
}

// heuristic is the full per-move admissible lower bound of §4.H step 4:
// the three-way max, incremented by one when all three axis distances
// coincide and are nonzero (a correct but non-obvious refinement — see
// DESIGN.md), then maxed again against the corner-permutation BFS
// distance.
func heuristic(cc *coordcube.CoordCube) int {
	h := baseDist(cc)
	du, dr, df := cc.Dist[coordcube.UD], cc.Dist[coordcube.RL], cc.Dist[coordcube.FB]
	if du != 0 && du == dr && dr == df {
		h++
	}
	if cd := cc.CornerDist(); cd > h {
		h = cd
	}
	return h
}
