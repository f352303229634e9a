package prune

import (
	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/movetable"
	"github.com/ehrlich-b/bigoptcube/internal/symmetry"
)

// neighbor returns the fsstc triple reached by applying move m to the
// triple (u, class, twist), expressed back in representative frame.
//
// A slot (u, class, twist) stands for the physical state whose raw
// flipslicesorted coordinate is exactly symmetry.FlipSliceSortedRep(class)
// and whose udcorners/twist coordinates are u and twist. Applying m
// directly to that representative's raw (slice, flip) halves lands on
// some other raw coordinate that is usually not itself a representative;
// symmetry.FlipSliceSortedClass/Sym fold it back onto its class's
// representative, and the same folding symmetry must be applied to the
// post-move udcorners and twist halves to keep the triple internally
// consistent (§4.D, §4.E).
func neighbor(u, class, twist int, m cubie.Move) (int, int, int) {
	rep := symmetry.FlipSliceSortedRep(class)
	slice := rep / coord.NFlip
	flip := rep % coord.NFlip

	slice2 := movetable.SliceSorted(slice, m)
	flip2 := movetable.Flip(flip, m)
	raw2 := coord.NFlip*slice2 + flip2

	class2 := symmetry.FlipSliceSortedClass(raw2)
	s := symmetry.FlipSliceSortedSym(raw2)

	u2 := movetable.UDCorners(u, m)
	t2 := movetable.Twist(twist, m)

	return symmetry.UDCornersConj(u2, s), class2, symmetry.TwistConj(t2, s)
}
