package coord

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// udClassOf maps the raw rank (in [0,70) = C(8,4)) of the position-set
// occupied by the four "U-type" corner identities (URF,UFL,ULB,UBR) to
// its class in [0,35): the quotient by the free involution that swaps
// that position-set with its complement (the "D-type" positions).
var udClassOf [70]int

// udRepPositions[c] holds the ascending positions of one representative
// of class c, used to reconstruct a cubie state from the coordinate.
var udRepPositions [NUDCorners][4]int

func init() {
	assigned := make([]bool, 70)
	next := 0
	for c := 0; c < 70; c++ {
		if assigned[c] {
			continue
		}
		positions := decodeCombination(cubie.NumCorners, 4, c)
		comp := complementOf8(positions)
		cComp := encodeCombination(comp)

		udClassOf[c] = next
		udClassOf[cComp] = next
		assigned[c] = true
		assigned[cComp] = true
		copy(udRepPositions[next][:], positions)
		next++
	}
	if next != NUDCorners {
		panic("coord: udcorners class count mismatch")
	}
}

func complementOf8(positions []int) []int {
	in := make([]bool, cubie.NumCorners)
	for _, p := range positions {
		in[p] = true
	}
	comp := make([]int, 0, cubie.NumCorners-len(positions))
	for j := 0; j < cubie.NumCorners; j++ {
		if !in[j] {
			comp = append(comp, j)
		}
	}
	return comp
}

// UDCorners returns the U/D-corner-location coordinate in [0,35): which
// four of the eight corner positions hold the U-layer corners
// (URF,UFL,ULB,UBR), quotiented by the U<->D complement symmetry. The
// same function, applied to a cube rotated into the RL or FB frame,
// yields that axis's corresponding location coordinate.
func UDCorners(cc *cubie.CubieCube) int {
	positions := make([]int, 0, 4)
	for j := 0; j < cubie.NumCorners; j++ {
		if cc.CP[j] < 4 {
			positions = append(positions, j)
		}
	}
	return udClassOf[encodeCombination(positions)]
}

// SetUDCorners writes a representative cubie permutation for class idx
// into cc: corner identities 0..3 at the class's positions, 4..7 at the
// complement. Orientations are left untouched. The representative is
// arbitrary within the class — safe because a move's action on the
// coordinate only depends on which positions hold a U-type identity,
// never on which specific one.
func SetUDCorners(cc *cubie.CubieCube, idx int) {
	positions := udRepPositions[idx]
	var inPos [cubie.NumCorners]bool
	for i, p := range positions {
		cc.CP[p] = int8(i)
		inPos[p] = true
	}
	d := int8(4)
	for j := 0; j < cubie.NumCorners; j++ {
		if !inPos[j] {
			cc.CP[j] = d
			d++
		}
	}
}
