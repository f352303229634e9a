package cubie

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Error("Solved().IsSolved() = false")
	}
	if err := Solved().Verify(); err != nil {
		t.Errorf("Verify() on solved cube: %v", err)
	}
}

func TestInverseUndoesMove(t *testing.T) {
	for m := Move(0); int(m) < int(NumMoves); m++ {
		cc := Solved().Apply(m)
		undone := Multiplied(cc, cc.Inverse())
		if !undone.IsSolved() {
			t.Errorf("%s * %s^-1 is not solved", m, m)
		}
	}
}

func TestInverseMoveMatchesGroupInverse(t *testing.T) {
	for m := Move(0); int(m) < int(NumMoves); m++ {
		cc := Solved().Apply(m)
		back := cc.Apply(Inverse(m))
		if !back.IsSolved() {
			t.Errorf("applying %s then Inverse(%s) did not return to solved", m, m)
		}
	}
}

func TestMultiplyIsAssociativeOnSmallSample(t *testing.T) {
	a := Solved().Apply(U)
	b := Solved().Apply(R)
	c := Solved().Apply(F)
	left := Multiplied(Multiplied(a, b), c)
	right := Multiplied(a, Multiplied(b, c))
	if !left.Equal(right) {
		t.Error("(a*b)*c != a*(b*c)")
	}
}

func TestFourQuarterTurnsOfSameFaceIsIdentity(t *testing.T) {
	cc := Solved()
	for i := 0; i < 4; i++ {
		cc = cc.Apply(U)
	}
	if !cc.IsSolved() {
		t.Error("four U turns did not return to solved")
	}
}

func TestVerifyRejectsBadParity(t *testing.T) {
	cc := Solved()
	cc.CP[0], cc.CP[1] = cc.CP[1], cc.CP[0] // single corner transposition only
	if err := cc.Verify(); !errors.Is(err, ErrUnsolvableCubie) {
		t.Errorf("Verify() on a single corner swap = %v, want ErrUnsolvableCubie", err)
	}
}

func TestVerifyRejectsBadOrientationSum(t *testing.T) {
	cc := Solved()
	cc.CO[0] = 1
	if err := cc.Verify(); !errors.Is(err, ErrUnsolvableCubie) {
		t.Errorf("Verify() on a single corner twist = %v, want ErrUnsolvableCubie", err)
	}
}

func TestVerifyRejectsInvalidPermutation(t *testing.T) {
	cc := Solved()
	cc.CP[0] = cc.CP[1]
	if err := cc.Verify(); !errors.Is(err, ErrUnsolvableCubie) {
		t.Errorf("Verify() on a duplicate corner identity = %v, want ErrUnsolvableCubie", err)
	}
}

func TestRandomProducesLegalCubes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		cc := Random(rng)
		if err := cc.Verify(); err != nil {
			t.Fatalf("Random() produced an illegal cube: %v", err)
		}
	}
}

func TestToFaceletsFromFaceletsRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		cc := Random(rng)
		s := cc.ToFacelets()
		back, err := FromFacelets(s)
		if err != nil {
			t.Fatalf("FromFacelets: %v", err)
		}
		if !cc.Equal(back) {
			t.Errorf("round trip mismatch for %+v", cc)
		}
	}
}

func TestFromFaceletsRejectsWrongLength(t *testing.T) {
	if _, err := FromFacelets("too short"); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("FromFacelets(short) = %v, want ErrInvalidFacelets", err)
	}
}

func TestFromFaceletsRejectsIllegalCharacter(t *testing.T) {
	s := Solved().ToFacelets()
	bad := []byte(s)
	bad[0] = 'X'
	if _, err := FromFacelets(string(bad)); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("FromFacelets with illegal character = %v, want ErrInvalidFacelets", err)
	}
}

func TestFromFaceletsRejectsWrongColorCount(t *testing.T) {
	s := Solved().ToFacelets()
	bad := []byte(s)
	bad[1] = 'R' // steal a U sticker for R, unbalancing the counts
	if _, err := FromFacelets(string(bad)); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("FromFacelets with unbalanced colours = %v, want ErrInvalidFacelets", err)
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	for m := Move(0); int(m) < int(NumMoves); m++ {
		got, err := ParseMove(m.String())
		if err != nil {
			t.Fatalf("ParseMove(%s): %v", m, err)
		}
		if got != m {
			t.Errorf("ParseMove(%s) = %s, want %s", m, got, m)
		}
	}
}

func TestParseMoveApostropheAndThreeAgree(t *testing.T) {
	a, err := ParseMove("R'")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseMove("R3")
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != R3 {
		t.Errorf("R' = %s, R3 = %s, want both %s", a, b, R3)
	}
}

func TestParseMoveRejectsUnknownFace(t *testing.T) {
	if _, err := ParseMove("Q"); err == nil {
		t.Error("ParseMove(\"Q\") should have errored")
	}
}
