package coord

import "github.com/ehrlich-b/bigoptcube/internal/cube/cubie"

// Corners returns the corner-permutation coordinate: the Lehmer rank of
// cp in [0, 8!).
func Corners(cc *cubie.CubieCube) int {
	rank := 0
	for i := 0; i < cubie.NumCorners-1; i++ {
		count := 0
		for j := i + 1; j < cubie.NumCorners; j++ {
			if cc.CP[j] < cc.CP[i] {
				count++
			}
		}
		rank = rank*(cubie.NumCorners-i) + count
	}
	return rank
}

// SetCorners writes corner-permutation coordinate idx into cc's
// permutation, leaving orientations untouched.
func SetCorners(cc *cubie.CubieCube, idx int) {
	var digits [cubie.NumCorners - 1]int
	for i := cubie.NumCorners - 2; i >= 0; i-- {
		radix := cubie.NumCorners - i
		digits[i] = idx % radix
		idx /= radix
	}
	avail := []int8{0, 1, 2, 3, 4, 5, 6, 7}
	for i := 0; i < cubie.NumCorners-1; i++ {
		d := digits[i]
		cc.CP[i] = avail[d]
		avail = append(avail[:d], avail[d+1:]...)
	}
	cc.CP[cubie.NumCorners-1] = avail[0]
}
