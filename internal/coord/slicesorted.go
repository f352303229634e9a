package coord

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// SliceSorted returns the combined position+order coordinate of the
// four slice edges (FR,FL,BL,BR) in [0, 11880) = C(12,4)*4!. The value
// mod NPerm4 is the order of the four slice edges among their positions;
// the value / NPerm4 is the plain position coordinate ("slice"), ranked
// over mirrored positions 11-j so that the solved cube has coordinate 0.
func SliceSorted(cc *cubie.CubieCube) int {
	positions := make([]int, 0, 4)
	var idents [4]int8
	for j := 0; j < cubie.NumEdges; j++ {
		if cc.EP[j] >= cubie.FR {
			idents[len(positions)] = cc.EP[j]
			positions = append(positions, j)
		}
	}
	var mirrored [4]int
	for i, p := range positions {
		mirrored[3-i] = cubie.NumEdges - 1 - p
	}
	comb := encodeCombination(mirrored[:])

	var vals [4]int8
	for i, id := range idents {
		vals[i] = id - cubie.FR
	}
	perm := lehmerRank(vals[:])

	return NPerm4*comb + perm
}

// SetSliceSorted writes coordinate idx into cc's edge permutation: the
// four slice-edge positions and their identities, plus the remaining
// eight positions filled with UR..DB in order. Orientations are left
// untouched.
func SetSliceSorted(cc *cubie.CubieCube, idx int) {
	comb := idx / NPerm4
	perm := idx % NPerm4

	mirrored := decodeCombination(cubie.NumEdges, 4, comb)
	vals := lehmerUnrank(4, perm)

	for i := range cc.EP {
		cc.EP[i] = -1
	}
	for i := range vals {
		cc.EP[cubie.NumEdges-1-mirrored[3-i]] = cubie.FR + vals[i]
	}

	other := []int8{cubie.UR, cubie.UF, cubie.UL, cubie.UB, cubie.DR, cubie.DF, cubie.DL, cubie.DB}
	oi := 0
	for j := 0; j < cubie.NumEdges; j++ {
		if cc.EP[j] == -1 {
			cc.EP[j] = other[oi]
			oi++
		}
	}
}
