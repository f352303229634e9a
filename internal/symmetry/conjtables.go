package symmetry

import (
	"sync"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

var (
	twistConjOnce sync.Once
	twistConjTbl  [coord.NTwist * coord.NumD4h]int16

	udConjOnce sync.Once
	udConjTbl  [coord.NUDCorners * coord.NumD4h]int8
)

func buildTwistConj() {
	for t := 0; t < coord.NTwist; t++ {
		cc := cubie.Solved()
		coord.SetTwist(cc, t)
		for s := 0; s < coord.NumD4h; s++ {
			ss := cubie.Multiplied(cubie.Multiplied(symCube[s], cc), symCube[invIdx[s]])
			twistConjTbl[t*coord.NumD4h+s] = int16(coord.Twist(ss))
		}
	}
}

// TwistConj returns the twist coordinate of symCube[s] * C * symCube[s]^-1
// where C is the minimal cubie instance carrying twist coordinate t.
func TwistConj(t, s int) int {
	twistConjOnce.Do(buildTwistConj)
	return int(twistConjTbl[t*coord.NumD4h+s])
}

func buildUDConj() {
	for u := 0; u < coord.NUDCorners; u++ {
		cc := cubie.Solved()
		coord.SetUDCorners(cc, u)
		for s := 0; s < coord.NumD4h; s++ {
			ss := cubie.Multiplied(cubie.Multiplied(symCube[s], cc), symCube[invIdx[s]])
			udConjTbl[u*coord.NumD4h+s] = int8(coord.UDCorners(ss))
		}
	}
}

// UDCornersConj is the udcorners analogue of TwistConj.
func UDCornersConj(u, s int) int {
	udConjOnce.Do(buildUDConj)
	return int(udConjTbl[u*coord.NumD4h+s])
}

// BuildConjTables forces construction of the small conjugation tables.
func BuildConjTables() {
	twistConjOnce.Do(buildTwistConj)
	udConjOnce.Do(buildUDConj)
}
