package coord

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// Twist returns the corner-orientation coordinate: the mixed-radix
// base-3 encoding of co[0..6] (co[7] is redundant, fixed by the
// sum-to-0-mod-3 invariant).
func Twist(cc *cubie.CubieCube) int {
	t := 0
	for i := 0; i < cubie.NumCorners-1; i++ {
		t = t*3 + int(cc.CO[i])
	}
	return t
}

// SetTwist writes twist coordinate t into cc's corner orientations,
// leaving cc's corner permutation untouched.
func SetTwist(cc *cubie.CubieCube, t int) {
	sum := 0
	for i := cubie.NumCorners - 2; i >= 0; i-- {
		v := t % 3
		t /= 3
		cc.CO[i] = int8(v)
		sum += v
	}
	cc.CO[cubie.NumCorners-1] = int8((3 - sum%3) % 3)
}
