package symmetry

import (
	"sync"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

var (
	fsOnce    sync.Once
	fsClass   []int32  // len NFlipSliceSorted, class index per raw coordinate
	fsSym     []uint8  // len NFlipSliceSorted, symmetry mapping raw -> rep
	fsRep     []int32  // len NFlipSliceSortedClass, raw coordinate of the rep
	fsSymBits []uint16 // len NFlipSliceSortedClass, bitmask of self-symmetries
)

// buildFlipSliceSorted partitions the 24,330,240 raw (slice, flip)
// combinations into equivalence classes under conjugation by the
// 16-element D4h subgroup: the representative of each class is the
// smallest raw coordinate in its orbit (guaranteed by scanning in
// increasing order and assigning a class the first time an
// unclassified coordinate is seen), and fsSym[x] records the symmetry
// that maps x onto its class's representative. This mirrors the
// fs_sym construction the big pruning table builder relies on to fold
// 16 symmetric states into one table entry.
func buildFlipSliceSorted() {
	n := coord.NFlipSliceSorted
	fsClass = make([]int32, n)
	fsSym = make([]uint8, n)
	for i := range fsClass {
		fsClass[i] = -1
	}

	reps := make([]int32, 0, coord.NFlipSliceSortedClass)
	bits := make([]uint16, 0, coord.NFlipSliceSortedClass)

	for x := 0; x < n; x++ {
		if fsClass[x] != -1 {
			continue
		}
		slice := x / coord.NFlip
		flip := x % coord.NFlip
		base := cubie.Solved()
		coord.SetFlip(base, flip)
		coord.SetSliceSorted(base, slice)

		classIdx := int32(len(reps))
		reps = append(reps, int32(x))
		var self uint16

		for s := 0; s < coord.NumD4h; s++ {
			ss := cubie.Multiplied(cubie.Multiplied(symCube[s], base), symCube[invIdx[s]])
			y := coord.NFlip*coord.SliceSorted(ss) + coord.Flip(ss)
			if y == x {
				self |= 1 << uint(s)
			}
			if fsClass[y] == -1 {
				fsClass[y] = classIdx
				fsSym[y] = uint8(invIdx[s])
			}
		}
		bits = append(bits, self)
	}

	if len(reps) != coord.NFlipSliceSortedClass {
		panic("symmetry: flipslicesorted class count mismatch")
	}
	fsRep = reps
	fsSymBits = bits
}

// FlipSliceSortedClass returns the class index of raw flipslicesorted
// coordinate x, in [0, NFlipSliceSortedClass).
func FlipSliceSortedClass(x int) int {
	fsOnce.Do(buildFlipSliceSorted)
	return int(fsClass[x])
}

// FlipSliceSortedSym returns the symmetry s such that
// x == symCube[InvIdx(s)] * rep * symCube[s] — equivalently, conjugating
// x's coordinate by s yields the representative of its class.
func FlipSliceSortedSym(x int) int {
	fsOnce.Do(buildFlipSliceSorted)
	return int(fsSym[x])
}

// FlipSliceSortedRep returns the raw coordinate representing class c.
func FlipSliceSortedRep(c int) int {
	fsOnce.Do(buildFlipSliceSorted)
	return int(fsRep[c])
}

// FlipSliceSortedSymBits returns the bitmask (bit s set for each
// s in [0,16) that fixes class c's representative) used to fan a
// single pruning-table entry out to every coordinate the symmetry
// group maps onto that same representative.
func FlipSliceSortedSymBits(c int) uint16 {
	fsOnce.Do(buildFlipSliceSorted)
	return fsSymBits[c]
}

// BuildFlipSliceSortedTables forces construction of the class tables.
func BuildFlipSliceSortedTables() {
	fsOnce.Do(buildFlipSliceSorted)
}
