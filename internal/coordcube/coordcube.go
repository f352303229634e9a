// Package coordcube implements §4.G: the aggregate CoordCube holding
// the three rotated coordinate views of a cube position, advanced in
// lockstep on every move, each paired with its pruning-table distance.
package coordcube

import (
	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/movetable"
	"github.com/ehrlich-b/bigoptcube/internal/prune"
	"github.com/ehrlich-b/bigoptcube/internal/symmetry"
)

// Axis names the three 120-degree-rotated coordinate views: the
// original U/D frame and its images under the two nontrivial powers of
// the URF3 symmetry.
type Axis int

const (
	UD Axis = iota
	RL
	FB
	NumAxes
)

// rotSym is the symmetry index rotating the solved cube into each
// axis's frame: the identity for UD, symCube[16]/symCube[32] (the two
// nontrivial powers of URF3) for RL/FB.
var rotSym = [NumAxes]int{UD: 0, RL: 16, FB: 32}

// CoordCube holds, for each axis, the raw twist/flip/slice-sorted/
// udcorners coordinates of the cube as seen from that axis's rotated
// frame, plus the absolute pruning-table distance recovered for that
// view. Corners (the 8-corner permutation) and its exact BFS distance
// are shared across axes since they do not depend on the chosen frame.
type CoordCube struct {
	Twist       [NumAxes]int
	Flip        [NumAxes]int
	SliceSorted [NumAxes]int
	UDCorners   [NumAxes]int
	Dist        [NumAxes]int

	Corners int

	tables *prune.Table
	corner prune.CornerTable
}

// New builds the CoordCube for cc, rotating it into each axis's frame
// by conjugating with that frame's fixed symmetry element, then
// recovering each axis's absolute distance by guided descent (§4.F).
func New(cc *cubie.CubieCube, tables *prune.Table, corner prune.CornerTable) *CoordCube {
	out := &CoordCube{tables: tables, corner: corner}
	out.Corners = coord.Corners(cc)
	for axis := UD; axis < NumAxes; axis++ {
		view := rotate(cc, rotSym[axis])
		out.Twist[axis] = coord.Twist(view)
		out.Flip[axis] = coord.Flip(view)
		out.SliceSorted[axis] = coord.SliceSorted(view)
		out.UDCorners[axis] = coord.UDCorners(view)
		out.Dist[axis] = out.lookupDistance(axis, 0, true)
	}
	return out
}

// rotate returns symCube[s] * cc * symCube[s]^-1, the cube as seen from
// the frame that symmetry s rotates the solved cube into.
func rotate(cc *cubie.CubieCube, s int) *cubie.CubieCube {
	if s == 0 {
		return cc
	}
	return cubie.Multiplied(cubie.Multiplied(symmetry.SymCube(s), cc), symmetry.SymCube(symmetry.InvIdx(s)))
}

// axisMove returns the move that advances axis's rotated frame given
// move m in the fixed frame: m itself for UD, m conjugated by the
// axis's rotation symmetry for RL/FB (§4.G).
func axisMove(axis Axis, m cubie.Move) cubie.Move {
	s := rotSym[axis]
	if s == 0 {
		return m
	}
	return symmetry.ConjMove(s, m)
}

// classAndSym reduces a raw flipslicesorted coordinate to its class and
// the symmetry mapping it onto that class's representative.
func classAndSym(slice, flip int) (int, int) {
	raw := coord.NFlip*slice + flip
	return symmetry.FlipSliceSortedClass(raw), symmetry.FlipSliceSortedSym(raw)
}

// lookupDistance reduces axis's current raw coordinates to a pruning-
// table entry and returns the absolute distance: a full guided descent
// on construction (initial=true), or the O(1) parent-relative update
// thereafter, given the parent's distance parentDist.
func (c *CoordCube) lookupDistance(axis Axis, parentDist int, initial bool) int {
	class, s := classAndSym(c.SliceSorted[axis], c.Flip[axis])
	u := symmetry.UDCornersConj(c.UDCorners[axis], s)
	t := symmetry.TwistConj(c.Twist[axis], s)
	if initial {
		return c.tables.AbsoluteDistance(u, class, t)
	}
	mod3 := c.tables.Get(u, class, t)
	return prune.NextDistance(parentDist, mod3)
}

// Move returns the CoordCube reached by applying m, advancing every
// axis's raw coordinates via the precomputed move tables and the
// shared corner coordinate via the plain corner move table.
func (c *CoordCube) Move(m cubie.Move) *CoordCube {
	out := &CoordCube{tables: c.tables, corner: c.corner}
	out.Corners = movetable.Corners(c.Corners, m)
	for axis := UD; axis < NumAxes; axis++ {
		am := axisMove(axis, m)
		out.Twist[axis] = movetable.Twist(c.Twist[axis], am)
		out.Flip[axis] = movetable.Flip(c.Flip[axis], am)
		out.SliceSorted[axis] = movetable.SliceSorted(c.SliceSorted[axis], am)
		out.UDCorners[axis] = movetable.UDCorners(c.UDCorners[axis], am)
	}
	for axis := UD; axis < NumAxes; axis++ {
		out.Dist[axis] = out.lookupDistance(axis, c.Dist[axis], false)
	}
	return out
}

// CornerDist returns corner_depth[Corners], the exact BFS lower bound
// on solving the corner permutation alone.
func (c *CoordCube) CornerDist() int {
	return c.corner.Get(c.Corners)
}

// IsSolved reports whether every axis view and the corner permutation
// are simultaneously at distance zero.
func (c *CoordCube) IsSolved() bool {
	return c.Corners == 0 && c.Dist[UD] == 0 && c.Dist[RL] == 0 && c.Dist[FB] == 0
}
