// Package symmetry implements the §4.D symmetry machinery: the
// 48-element cube symmetry group, its 16-element D4h subgroup fixing the
// U/D axis, conjugation tables for moves and sub-coordinates, and the
// flipslicesorted equivalence classes the big pruning table is built
// over. All of it is derived from four geometric generators rather than
// hand-transcribed from a reference table, the same way the teacher
// derives its move cubes from six hardcoded face generators and then
// closes them under multiplication.
package symmetry

import (
	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

// mat3 is a signed permutation matrix acting on the (x,y,z) = (R,U,F)
// axes: every row and every column has exactly one nonzero entry, +1 or
// -1. The 48 such matrices are exactly the symmetry group of the cube
// as a geometric object (proper rotations and reflections alike).
type mat3 [3][3]int8

func (m mat3) apply(v [3]int8) [3]int8 {
	var out [3]int8
	for r := 0; r < 3; r++ {
		var s int8
		for c := 0; c < 3; c++ {
			s += m[r][c] * v[c]
		}
		out[r] = s
	}
	return out
}

// transpose is the inverse of m, since a signed permutation matrix is
// orthogonal.
func (m mat3) transpose() mat3 {
	var t mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// Generator matrices for URF3 (120 deg about the URF-DBL diagonal), F2
// (180 deg about the F/B axis), U4 (90 deg about the U/D axis) and LR2
// (reflection swapping L and R). {U4,F2,LR2} generate D4h; adding URF3
// generates the full 48-element group.
var (
	matURF3 = mat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	matF2   = mat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	matU4   = mat3{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}
	matLR2  = mat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
)

// cornerPos gives each corner identity's native position as a point in
// {-1,+1}^3, read directly off the same geometry facelet.go's
// cornerFacelet/cornerColor tables describe.
var cornerPos = [cubie.NumCorners][3]int8{
	cubie.URF: {1, 1, 1},
	cubie.UFL: {-1, 1, 1},
	cubie.ULB: {-1, 1, -1},
	cubie.UBR: {1, 1, -1},
	cubie.DFR: {1, -1, 1},
	cubie.DLF: {-1, -1, 1},
	cubie.DBL: {-1, -1, -1},
	cubie.DRB: {1, -1, -1},
}

// edgePos gives each edge identity's native position; exactly one
// coordinate is 0.
var edgePos = [cubie.NumEdges][3]int8{
	cubie.UR: {1, 1, 0},
	cubie.UF: {0, 1, 1},
	cubie.UL: {-1, 1, 0},
	cubie.UB: {0, 1, -1},
	cubie.DR: {1, -1, 0},
	cubie.DF: {0, -1, 1},
	cubie.DL: {-1, -1, 0},
	cubie.DB: {0, -1, -1},
	cubie.FR: {1, 0, 1},
	cubie.FL: {-1, 0, 1},
	cubie.BL: {-1, 0, -1},
	cubie.BR: {1, 0, -1},
}

func findCorner(v [3]int8) int {
	for i, p := range cornerPos {
		if p == v {
			return i
		}
	}
	panic("symmetry: no corner at position")
}

func findEdge(v [3]int8) int {
	for i, p := range edgePos {
		if p == v {
			return i
		}
	}
	panic("symmetry: no edge at position")
}

// cornerChirality is sign(x*y*z), which alternates between the 8
// corners and fixes which of the two remaining axes (besides U/D)
// comes first in that corner's solved color order — the same
// alternation visible in cornerColor between, say, URF ({U,R,F}) and
// UFL ({U,F,L}).
func cornerChirality(v [3]int8) int8 {
	p := int(v[0]) * int(v[1]) * int(v[2])
	if p < 0 {
		return -1
	}
	return 1
}

// edgePrimaryAxis is the axis (1 for y/U-D, 2 for z/F-B) that edge
// orientation is read against: U/D for the eight non-slice edges, F/B
// for the four slice edges, matching the standard convention that
// keeps eo well behaved under F and B turns.
func edgePrimaryAxis(v [3]int8) int {
	if v[1] != 0 {
		return 1
	}
	return 2
}

// axisOf returns the row index of the nonzero entry in column c of m:
// the axis that a unit vector along input axis c is sent to.
func axisOf(m mat3, c int) int {
	for r := 0; r < 3; r++ {
		if m[r][c] != 0 {
			return r
		}
	}
	panic("symmetry: degenerate matrix")
}

// cubeFromMatrix builds the CubieCube corresponding to the rigid
// transform m applied to the solved cube, by direct geometric
// computation rather than by reading off facelets and decoding them:
// FromFacelets only recognizes cyclic rotations of a corner's native
// color triple, which a chirality-reversing m (a reflection, such as
// LR2) never produces. Working from positions and axis images instead
// handles proper and improper m identically.
func cubeFromMatrix(m mat3) *cubie.CubieCube {
	cc := &cubie.CubieCube{}
	mt := m.transpose()

	// The axis that the native y (U/D) direction maps to is the same
	// for every corner, since the native y-direction vector is always
	// (0,1,0) regardless of which corner it belongs to.
	rCorner := axisOf(m, 1)

	for j := 0; j < cubie.NumCorners; j++ {
		vj := cornerPos[j]
		vx := mt.apply(vj)
		x := findCorner(vx)
		cc.CP[j] = int8(x)

		chi := cornerChirality(cornerPos[x])
		var t int8
		switch rCorner {
		case 1:
			t = 0
		case 0:
			if chi == 1 {
				t = 1
			} else {
				t = 2
			}
		default: // 2
			if chi == 1 {
				t = 2
			} else {
				t = 1
			}
		}
		cc.CO[j] = t
	}

	for j := 0; j < cubie.NumEdges; j++ {
		vj := edgePos[j]
		vx := mt.apply(vj)
		x := findEdge(vx)
		cc.EP[j] = int8(x)

		p := edgePrimaryAxis(edgePos[x])
		r := axisOf(m, p)
		pj := edgePrimaryAxis(vj)
		if r == pj {
			cc.EO[j] = 0
		} else {
			cc.EO[j] = 1
		}
	}

	return cc
}

// closure returns every element reachable from the identity by
// repeated right-multiplication by the given generators, in BFS
// discovery order (so the identity is always first and the order is
// otherwise deterministic).
func closure(gens []*cubie.CubieCube) []*cubie.CubieCube {
	seen := map[string]bool{}
	id := cubie.Solved()
	order := []*cubie.CubieCube{id}
	seen[id.ToFacelets()] = true
	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, g := range gens {
			next := cubie.Multiplied(cur, g)
			k := next.ToFacelets()
			if !seen[k] {
				seen[k] = true
				order = append(order, next)
			}
		}
	}
	return order
}

const numSym = 48

const numMoves = int(cubie.NumMoves)

var (
	symCube [numSym]*cubie.CubieCube
	invIdx  [numSym]int
	conjMv  [numSym * numMoves]int8
)

func init() {
	u4 := cubeFromMatrix(matU4)
	f2 := cubeFromMatrix(matF2)
	lr2 := cubeFromMatrix(matLR2)
	urf3 := cubeFromMatrix(matURF3)

	d4h := closure([]*cubie.CubieCube{u4, f2, lr2})
	if len(d4h) != coord.NumD4h {
		panic("symmetry: D4h closure did not produce 16 elements")
	}
	full := closure([]*cubie.CubieCube{u4, f2, lr2, urf3})
	if len(full) != numSym {
		panic("symmetry: full closure did not produce 48 elements")
	}

	used := make(map[string]bool, numSym)
	for i, c := range d4h {
		symCube[i] = c
		used[c.ToFacelets()] = true
	}
	symCube[16] = urf3
	used[urf3.ToFacelets()] = true
	urf3sq := cubie.Multiplied(urf3, urf3)
	symCube[32] = urf3sq
	used[urf3sq.ToFacelets()] = true

	slots := make([]int, 0, 30)
	for i := 17; i < 32; i++ {
		slots = append(slots, i)
	}
	for i := 33; i < 48; i++ {
		slots = append(slots, i)
	}
	si := 0
	for _, c := range full {
		k := c.ToFacelets()
		if used[k] {
			continue
		}
		used[k] = true
		symCube[slots[si]] = c
		si++
	}
	if si != len(slots) {
		panic("symmetry: failed to place every remaining group element")
	}

	id := cubie.Solved()
	for s := 0; s < numSym; s++ {
		found := -1
		for t := 0; t < numSym; t++ {
			if cubie.Multiplied(symCube[s], symCube[t]).Equal(id) {
				found = t
				break
			}
		}
		if found < 0 {
			panic("symmetry: no inverse found for a group element")
		}
		invIdx[s] = found
	}

	for s := 0; s < numSym; s++ {
		inv := symCube[invIdx[s]]
		for m := 0; m < numMoves; m++ {
			conj := cubie.Multiplied(cubie.Multiplied(symCube[s], cubie.MoveCube(cubie.Move(m))), inv)
			found := -1
			for m2 := 0; m2 < numMoves; m2++ {
				if conj.Equal(cubie.MoveCube(cubie.Move(m2))) {
					found = m2
					break
				}
			}
			if found < 0 {
				panic("symmetry: conjugated move does not match any known move")
			}
			conjMv[s*numMoves+m] = int8(found)
		}
	}
}

// SymCube returns the s-th element of the 48-element symmetry group.
// Indices [0,16) are the D4h subgroup fixing the U/D axis (in that
// order); 16 and 32 are the two nontrivial powers of URF3, used to
// rotate a cube into the RL and FB frames respectively.
func SymCube(s int) *cubie.CubieCube { return symCube[s] }

// InvIdx returns the index of the group inverse of symCube[s].
func InvIdx(s int) int { return invIdx[s] }

// ConjMove returns the move m' such that symCube[s] * moveCube[m] *
// symCube[InvIdx(s)] == moveCube[m'] — move m performed in the frame
// rotated by s, expressed back in the fixed frame.
func ConjMove(s int, m cubie.Move) cubie.Move {
	return cubie.Move(conjMv[s*numMoves+int(m)])
}
