package symmetry

import (
	"testing"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

func TestSymCubeIdentityFirst(t *testing.T) {
	if !SymCube(0).IsSolved() {
		t.Fatalf("symCube[0] must be the identity")
	}
}

func TestSymCubeInverses(t *testing.T) {
	id := cubie.Solved()
	for s := 0; s < 48; s++ {
		got := cubie.Multiplied(SymCube(s), SymCube(InvIdx(s)))
		if !got.Equal(id) {
			t.Fatalf("symCube[%d] * symCube[InvIdx(%d)] != identity", s, s)
		}
	}
}

func TestURF3HasOrderThree(t *testing.T) {
	urf3 := SymCube(16)
	sq := cubie.Multiplied(urf3, urf3)
	if !sq.Equal(SymCube(32)) {
		t.Fatalf("symCube[32] must equal symCube[16]^2")
	}
	cube := cubie.Multiplied(sq, urf3)
	if !cube.IsSolved() {
		t.Fatalf("URF3 must have order 3")
	}
}

func TestSymCubeAllDistinct(t *testing.T) {
	seen := map[string]bool{}
	for s := 0; s < 48; s++ {
		k := SymCube(s).ToFacelets()
		if seen[k] {
			t.Fatalf("symCube[%d] duplicates an earlier element", s)
		}
		seen[k] = true
	}
}

func TestConjMoveIdentitySymmetry(t *testing.T) {
	for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
		if ConjMove(0, m) != m {
			t.Fatalf("conjugating move %v by the identity symmetry should be a no-op", m)
		}
	}
}

func TestConjMoveRoundTrip(t *testing.T) {
	for s := 0; s < 16; s++ {
		inv := InvIdx(s)
		for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
			back := ConjMove(inv, ConjMove(s, m))
			if back != m {
				t.Fatalf("conjugating move %v by s=%d then inv(s) should round-trip, got %v", m, s, back)
			}
		}
	}
}

func TestTwistConjIdentity(t *testing.T) {
	for _, twist := range []int{0, 1, 500, 2186} {
		if got := TwistConj(twist, 0); got != twist {
			t.Fatalf("TwistConj(%d, identity) = %d, want %d", twist, got, twist)
		}
	}
}

func TestUDCornersConjIdentity(t *testing.T) {
	for u := 0; u < coord.NUDCorners; u++ {
		if got := UDCornersConj(u, 0); got != u {
			t.Fatalf("UDCornersConj(%d, identity) = %d, want %d", u, got, u)
		}
	}
}

func TestFlipSliceSortedRepIsOwnClassMin(t *testing.T) {
	if rep := FlipSliceSortedRep(0); rep != 0 {
		t.Fatalf("the first discovered class must be represented by raw coordinate 0, got %d", rep)
	}
	if c := FlipSliceSortedClass(0); c != 0 {
		t.Fatalf("raw coordinate 0 must belong to class 0, got %d", c)
	}
}

func TestFlipSliceSortedSymBitsIncludesIdentity(t *testing.T) {
	bits := FlipSliceSortedSymBits(0)
	if bits&1 == 0 {
		t.Fatalf("every class representative is trivially self-symmetric under the identity")
	}
}

func TestFlipSliceSortedRepRoundTrip(t *testing.T) {
	for c := 0; c < 1000; c++ {
		rep := FlipSliceSortedRep(c)
		if got := FlipSliceSortedClass(rep); got != c {
			t.Fatalf("class %d representative %d maps back to class %d", c, rep, got)
		}
	}
}
