package coord

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// Flip returns the edge-orientation coordinate: the binary encoding of
// eo[0..10] (eo[11] is fixed by the sum-to-0-mod-2 invariant).
func Flip(cc *cubie.CubieCube) int {
	f := 0
	for i := 0; i < cubie.NumEdges-1; i++ {
		f = f*2 + int(cc.EO[i])
	}
	return f
}

// SetFlip writes flip coordinate f into cc's edge orientations, leaving
// cc's edge permutation untouched.
func SetFlip(cc *cubie.CubieCube, f int) {
	sum := 0
	for i := cubie.NumEdges - 2; i >= 0; i-- {
		v := f % 2
		f /= 2
		cc.EO[i] = int8(v)
		sum += v
	}
	cc.EO[cubie.NumEdges-1] = int8((2 - sum%2) % 2)
}
