// Package coord implements the bijective coordinate encoders of §3/§4.B:
// compact integer encodings of the cubie-level sub-invariants that the
// move tables, symmetry tables and pruning table all index by.
package coord

const (
	NumMove = 18

	NTwist  = 2187  // 3^7
	NFlip   = 2048  // 2^11
	NPerm4  = 24    // 4!
	NComb12 = 495   // C(12,4)

	NSliceSorted = NComb12 * NPerm4 // 11880
	NUDCorners   = 35               // C(8,4)/2
	NCorners     = 40320            // 8!

	NFlipSliceSorted = NFlip * NSliceSorted // 24330240

	// NFlipSliceSortedClass is the number of equivalence classes
	// flipslicesorted partitions into under the 16-element D4h subgroup.
	NFlipSliceSortedClass = 1523864

	// NumD4h is the size of the symmetry subgroup fixing the U/D axis.
	NumD4h = 16
)

// binomial[n][k] = C(n,k) for n,k in [0,12], precomputed once.
var binomial [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		binomial[n][0] = 1
		for k := 1; k <= n; k++ {
			binomial[n][k] = binomial[n-1][k-1] + prevOrZero(n, k)
		}
	}
}

func prevOrZero(n, k int) int {
	if k <= n-1 {
		return binomial[n-1][k]
	}
	return 0
}

// Cnk returns C(n,k), the number of ways to choose k items from n, or 0
// when the choice is impossible.
func Cnk(n, k int) int {
	if k < 0 || k > n || n < 0 || n > 12 {
		return 0
	}
	return binomial[n][k]
}
