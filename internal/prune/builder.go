package prune

import (
	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/symmetry"
)

// Table is the built (or loaded) fsstc_depth3 pruning table: one packed
// shard per udcorners value.
type Table struct {
	shards [coord.NUDCorners]*shard
}

// Build runs the breadth-first fill of §4.E from scratch: the solved
// triple (0,0,0) starts at depth 0, and depths alternate forward-expand
// (0..10) and backward-fill (11+) sweeps until every slot across all 35
// shards is filled.
func Build() *Table {
	t := &Table{}
	for u := range t.shards {
		t.shards[u] = newShard(entriesPerShard)
	}

	total := entriesPerShard * coord.NUDCorners
	t.shards[0].set(key(0, 0), 0)
	done := 1

	for depth := 0; done < total; depth++ {
		mod := depth % 3
		if depth <= 10 {
			done += t.forwardExpand(mod)
		} else {
			done += t.backwardFill(mod)
		}
	}
	return t
}

// forwardExpand visits every slot holding depth mod 3 == mod and
// propagates to unfilled neighbours, marking them (mod+1)%3. It returns
// the number of slots newly filled, including any fanned out via
// self-symmetry (§4.E step 3).
func (t *Table) forwardExpand(mod int) int {
	filled := 0
	next := (mod + 1) % 3
	for u := 0; u < coord.NUDCorners; u++ {
		sh := t.shards[u]
		for word := 0; word*16 < entriesPerShard; word++ {
			if sh.words[word] == 0xffffffff {
				continue // fast-skip: the whole aligned word is still unfilled
			}
			base := word * 16
			end := base + 16
			if end > entriesPerShard {
				end = entriesPerShard
			}
			for i := base; i < end; i++ {
				if sh.get(i) != mod {
					continue
				}
				class := i / coord.NTwist
				twist := i % coord.NTwist
				filled += t.expandOne(u, class, twist, next)
			}
		}
	}
	return filled
}

// backwardFill visits every still-unfilled slot and marks it (mod+1)%3
// if any of its 18 move-neighbours already holds depth mod 3 == mod.
// The table produced is identical to forwardExpand's; this mode is
// only faster once most slots are filled and scanning filled slots for
// their neighbours wastes more work than scanning the few that remain.
func (t *Table) backwardFill(mod int) int {
	filled := 0
	next := (mod + 1) % 3
	for u := 0; u < coord.NUDCorners; u++ {
		sh := t.shards[u]
		for i := 0; i < entriesPerShard; i++ {
			if sh.get(i) != Unfilled {
				continue
			}
			class := i / coord.NTwist
			twist := i % coord.NTwist
			for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
				u2, c2, t2 := neighbor(u, class, twist, m)
				if t.shards[u2].get(key(c2, t2)) == mod {
					sh.set(i, next)
					filled++
					break
				}
			}
		}
	}
	return filled
}

// expandOne propagates a single depth-d slot to every move-neighbour.
// Each neighbour it newly fills with depth d+1 is fanned out, at that
// same depth, to every other physical slot that the neighbour class's
// self-symmetries identify with it: a self-symmetry k of the class
// conjugates (u, twist) to a distinct slot that names the same
// equivalence-class member (§4.E step 3).
func (t *Table) expandOne(u, class, twist, next int) int {
	filled := 0
	for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
		u2, c2, t2 := neighbor(u, class, twist, m)
		if t.markIfUnfilled(u2, c2, t2, next) == 0 {
			continue
		}
		filled++

		bits := symmetry.FlipSliceSortedSymBits(c2)
		for k := 1; k < coord.NumD4h; k++ {
			if bits&(1<<uint(k)) == 0 {
				continue
			}
			uk := symmetry.UDCornersConj(u2, k)
			tk := symmetry.TwistConj(t2, k)
			filled += t.markIfUnfilled(uk, c2, tk, next)
		}
	}
	return filled
}

func (t *Table) markIfUnfilled(u, class, twist, v int) int {
	i := key(class, twist)
	sh := t.shards[u]
	if sh.get(i) != Unfilled {
		return 0
	}
	sh.set(i, v)
	return 1
}
