// Package movetable builds and serves the precomputed move-transition
// tables of §4.C: for each coordinate space and each of the 18 moves,
// the coordinate of the result of applying that move to the state
// denoted by the input coordinate. Every table is built lazily, once,
// on first use, and is immutable and safe for concurrent readers after
// that (the same sync.Once pattern the teacher uses for its own
// generated lookup data).
package movetable

import (
	"sync"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

const numMoves = int(cubie.NumMoves)

var (
	twistOnce sync.Once
	twistTbl  [coord.NTwist * numMoves]int16

	flipOnce sync.Once
	flipTbl  [coord.NFlip * numMoves]int16

	sliceOnce sync.Once
	sliceTbl  [coord.NSliceSorted * numMoves]int16

	udOnce sync.Once
	udTbl  [coord.NUDCorners * numMoves]int8

	cornersOnce sync.Once
	cornersTbl  [coord.NCorners * numMoves]int32
)

func buildTwist() {
	for t := 0; t < coord.NTwist; t++ {
		cc := cubie.Solved()
		coord.SetTwist(cc, t)
		for m := 0; m < numMoves; m++ {
			out := cc.Apply(cubie.Move(m))
			twistTbl[t*numMoves+m] = int16(coord.Twist(out))
		}
	}
}

// Twist returns the twist coordinate reached by applying move m to the
// state whose twist coordinate is t.
func Twist(t int, m cubie.Move) int {
	twistOnce.Do(buildTwist)
	return int(twistTbl[t*numMoves+int(m)])
}

func buildFlip() {
	for f := 0; f < coord.NFlip; f++ {
		cc := cubie.Solved()
		coord.SetFlip(cc, f)
		for m := 0; m < numMoves; m++ {
			out := cc.Apply(cubie.Move(m))
			flipTbl[f*numMoves+m] = int16(coord.Flip(out))
		}
	}
}

// Flip returns the flip coordinate reached by applying move m to the
// state whose flip coordinate is f.
func Flip(f int, m cubie.Move) int {
	flipOnce.Do(buildFlip)
	return int(flipTbl[f*numMoves+int(m)])
}

func buildSliceSorted() {
	for s := 0; s < coord.NSliceSorted; s++ {
		cc := cubie.Solved()
		coord.SetSliceSorted(cc, s)
		for m := 0; m < numMoves; m++ {
			out := cc.Apply(cubie.Move(m))
			sliceTbl[s*numMoves+m] = int16(coord.SliceSorted(out))
		}
	}
}

// SliceSorted returns the slice-sorted coordinate reached by applying
// move m to the state whose slice-sorted coordinate is s.
func SliceSorted(s int, m cubie.Move) int {
	sliceOnce.Do(buildSliceSorted)
	return int(sliceTbl[s*numMoves+int(m)])
}

func buildUDCorners() {
	for u := 0; u < coord.NUDCorners; u++ {
		cc := cubie.Solved()
		coord.SetUDCorners(cc, u)
		for m := 0; m < numMoves; m++ {
			out := cc.Apply(cubie.Move(m))
			udTbl[u*numMoves+m] = int8(coord.UDCorners(out))
		}
	}
}

// UDCorners returns the udcorners coordinate reached by applying move m
// to the state whose udcorners coordinate is u.
func UDCorners(u int, m cubie.Move) int {
	udOnce.Do(buildUDCorners)
	return int(udTbl[u*numMoves+int(m)])
}

func buildCorners() {
	for c := 0; c < coord.NCorners; c++ {
		cc := cubie.Solved()
		coord.SetCorners(cc, c)
		for m := 0; m < numMoves; m++ {
			out := cc.Apply(cubie.Move(m))
			cornersTbl[c*numMoves+m] = int32(coord.Corners(out))
		}
	}
}

// Corners returns the corner-permutation coordinate reached by applying
// move m to the state whose corner-permutation coordinate is c.
func Corners(c int, m cubie.Move) int {
	cornersOnce.Do(buildCorners)
	return int(cornersTbl[c*numMoves+int(m)])
}

// BuildAll forces construction of every table. The solver calls this
// once up front so the first search doesn't pay lazy-build latency
// mid-iteration; tests can call it directly to exercise the builders
// without going through the solver.
func BuildAll() {
	twistOnce.Do(buildTwist)
	flipOnce.Do(buildFlip)
	sliceOnce.Do(buildSliceSorted)
	udOnce.Do(buildUDCorners)
	cornersOnce.Do(buildCorners)
}
