package prune

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/movetable"
)

// BuildCornerDepth computes the exact BFS distance of every corner
// permutation back to the identity over the full 18-move set (§3's
// corner_depth), using lvlath's core/bfs packages the way their own
// example programs build a small explicit state graph and run BFS from
// a single source. corner_depth is only 40,320 vertices — small enough
// to hand the whole state graph to a general-purpose BFS library,
// unlike the 3.3G-entry fsstc table the builder in builder.go fills
// directly over packed shards (see DESIGN.md for why that one can't
// use the same approach).
func BuildCornerDepth() (CornerTable, error) {
	g := core.NewGraph(core.WithMultiEdges())
	for c := 0; c < coord.NCorners; c++ {
		if err := g.AddVertex(strconv.Itoa(c)); err != nil {
			return nil, fmt.Errorf("prune: corner graph vertex %d: %w", c, err)
		}
	}
	for c := 0; c < coord.NCorners; c++ {
		for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
			c2 := movetable.Corners(c, m)
			if _, err := g.AddEdge(strconv.Itoa(c), strconv.Itoa(c2), 0); err != nil {
				return nil, fmt.Errorf("prune: corner graph edge %d->%d: %w", c, c2, err)
			}
		}
	}

	result, err := bfs.BFS(g, "0")
	if err != nil {
		return nil, fmt.Errorf("prune: corner BFS: %w", err)
	}

	depth := make(CornerTable, coord.NCorners)
	for c := 0; c < coord.NCorners; c++ {
		d, ok := result.Depth[strconv.Itoa(c)]
		if !ok {
			return nil, fmt.Errorf("prune: corner %d unreached by BFS", c)
		}
		depth[c] = int8(d)
	}
	return depth, nil
}
