package coord

import (
	"testing"

	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

func TestCnkKnownValues(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{12, 4, 495},
		{8, 4, 70},
		{0, 0, 1},
		{5, 0, 1},
		{5, 5, 1},
	}
	for _, c := range cases {
		if got := Cnk(c.n, c.k); got != c.want {
			t.Errorf("Cnk(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestCnkOutOfRangeIsZero(t *testing.T) {
	cases := []struct{ n, k int }{{5, 6}, {5, -1}, {-1, 0}, {13, 1}}
	for _, c := range cases {
		if got := Cnk(c.n, c.k); got != 0 {
			t.Errorf("Cnk(%d,%d) = %d, want 0", c.n, c.k, got)
		}
	}
}

func TestSolvedCubeCoordinatesAreZero(t *testing.T) {
	cc := cubie.Solved()
	if got := Twist(cc); got != 0 {
		t.Errorf("Twist(solved) = %d, want 0", got)
	}
	if got := Flip(cc); got != 0 {
		t.Errorf("Flip(solved) = %d, want 0", got)
	}
	if got := SliceSorted(cc); got != 0 {
		t.Errorf("SliceSorted(solved) = %d, want 0", got)
	}
	if got := UDCorners(cc); got != 0 {
		t.Errorf("UDCorners(solved) = %d, want 0", got)
	}
	if got := Corners(cc); got != 0 {
		t.Errorf("Corners(solved) = %d, want 0", got)
	}
}

func TestTwistRoundTrip(t *testing.T) {
	cc := cubie.Solved()
	for _, tw := range []int{0, 1, 2186, 1093, 7} {
		SetTwist(cc, tw)
		if got := Twist(cc); got != tw {
			t.Errorf("Twist(SetTwist(%d)) = %d", tw, got)
		}
		sum := 0
		for _, v := range cc.CO {
			sum += int(v)
		}
		if sum%3 != 0 {
			t.Errorf("corner orientations after SetTwist(%d) sum to %d, not 0 mod 3", tw, sum)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	cc := cubie.Solved()
	for _, f := range []int{0, 1, 2047, 1024, 13} {
		SetFlip(cc, f)
		if got := Flip(cc); got != f {
			t.Errorf("Flip(SetFlip(%d)) = %d", f, got)
		}
		sum := 0
		for _, v := range cc.EO {
			sum += int(v)
		}
		if sum%2 != 0 {
			t.Errorf("edge orientations after SetFlip(%d) sum to %d, not 0 mod 2", f, sum)
		}
	}
}

func TestSliceSortedRoundTrip(t *testing.T) {
	cc := cubie.Solved()
	for _, s := range []int{0, 1, 11879, 6000, 24} {
		SetSliceSorted(cc, s)
		if got := SliceSorted(cc); got != s {
			t.Errorf("SliceSorted(SetSliceSorted(%d)) = %d", s, got)
		}
	}
}

func TestUDCornersRoundTrip(t *testing.T) {
	cc := cubie.Solved()
	for idx := 0; idx < NUDCorners; idx++ {
		SetUDCorners(cc, idx)
		if got := UDCorners(cc); got != idx {
			t.Errorf("UDCorners(SetUDCorners(%d)) = %d", idx, got)
		}
	}
}

func TestUDCornersComplementSharesClass(t *testing.T) {
	// Swapping which 4 positions hold the U-type identities with their
	// complement must land on the same class: the coordinate quotients
	// by exactly that involution.
	cc := cubie.Solved()
	SetUDCorners(cc, 0)
	before := UDCorners(cc)

	var swapped [8]int8
	for j := 0; j < cubie.NumCorners; j++ {
		if cc.CP[j] < 4 {
			swapped[j] = cc.CP[j] + 4
		} else {
			swapped[j] = cc.CP[j] - 4
		}
	}
	cc.CP = swapped
	if got := UDCorners(cc); got != before {
		t.Errorf("UDCorners after complementing identities = %d, want %d", got, before)
	}
}

func TestCornersRoundTrip(t *testing.T) {
	cc := cubie.Solved()
	for _, idx := range []int{0, 1, 40319, 20000, 5} {
		SetCorners(cc, idx)
		if got := Corners(cc); got != idx {
			t.Errorf("Corners(SetCorners(%d)) = %d", idx, got)
		}
	}
}
