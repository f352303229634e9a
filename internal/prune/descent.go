package prune

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// distance implements the spec's 60-entry O(1) update table: given a
// parent's absolute distance i (0..19) and a child's mod-3 table entry
// j, distance[3*i+j] is the unique value in {i-1, i, i+1} congruent to
// j mod 3 — the cheap per-move update used throughout search, as
// opposed to the guided descent AbsoluteDistance runs once per solve.
var distance [60]int

func init() {
	for i := 0; i < 20; i++ {
		for j := 0; j < 3; j++ {
			v := 3*(i/3) + j
			switch {
			case i%3 == 2 && j == 0:
				v += 3
			case i%3 == 0 && j == 2:
				v -= 3
			}
			distance[3*i+j] = v
		}
	}
}

// NextDistance returns the child's absolute distance given the
// parent's absolute distance d and the child's mod-3 table entry.
func NextDistance(d, mod3 int) int {
	return distance[3*d+mod3]
}

// AbsoluteDistance recovers the absolute distance to the solved
// substate for (u, class, twist) by guided descent (§4.F): repeatedly
// step to any move-neighbour whose mod-3 entry is one less than the
// current one — monotonicity guarantees that decreases the true
// distance by exactly 1 — until the solved triple (0,0,0) is reached.
func (t *Table) AbsoluteDistance(u, class, twist int) int {
	dist := 0
	for u != 0 || class != 0 || twist != 0 {
		cur := t.Get(u, class, twist)
		want := (cur + 2) % 3
		advanced := false
		for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
			u2, c2, t2 := neighbor(u, class, twist, m)
			if t.Get(u2, c2, t2) == want {
				u, class, twist = u2, c2, t2
				dist++
				advanced = true
				break
			}
		}
		if !advanced {
			panic("prune: guided descent found no decreasing neighbour")
		}
	}
	return dist
}
