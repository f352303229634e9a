package cube

import (
	"math/rand"
	"testing"

	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
)

func TestApplyEmptyScrambleIsSolved(t *testing.T) {
	cc, err := Apply("")
	if err != nil {
		t.Fatalf("Apply(\"\"): %v", err)
	}
	if err := cc.Verify(); err != nil {
		t.Fatalf("Verify(): %v", err)
	}
	if *cc != *cubie.Solved() {
		t.Error("Apply(\"\") did not return the solved cube")
	}
}

func TestApplyInvalidMoveErrors(t *testing.T) {
	if _, err := Apply("Q"); err == nil {
		t.Fatal("Apply(\"Q\") should have errored on an unknown face")
	}
}

func TestApplyRoundTripsWithInverse(t *testing.T) {
	cc, err := Apply("R U R' U'")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := cc.Verify(); err != nil {
		t.Fatalf("Verify(): %v", err)
	}
	undone, err := Apply("R U R' U' U R U' R'")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if *undone != *cubie.Solved() {
		t.Error("applying a maneuver then its inverse should return to solved")
	}
}

func TestFormatMovesRoundTrip(t *testing.T) {
	moves := []cubie.Move{cubie.R, cubie.U2, cubie.F3}
	s := FormatMoves(moves)
	if got, want := s, "R U2 F3"; got != want {
		t.Errorf("FormatMoves = %q, want %q", got, want)
	}
	parsed, err := cubie.ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(parsed) != len(moves) {
		t.Fatalf("len(parsed) = %d, want %d", len(parsed), len(moves))
	}
	for i, m := range moves {
		if parsed[i] != m {
			t.Errorf("parsed[%d] = %s, want %s", i, parsed[i], m)
		}
	}
}

func TestScrambleHasNoRedundantConsecutiveMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := Scramble(50, rng)
	moves, err := cubie.ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(moves) != 50 {
		t.Fatalf("len(moves) = %d, want 50", len(moves))
	}
	for i := 1; i < len(moves); i++ {
		if redundant(moves[i-1], moves[i]) {
			t.Errorf("moves[%d]=%s is redundant after moves[%d]=%s", i, moves[i], i-1, moves[i-1])
		}
	}
}

func TestScrambleIsDeterministicForSameSeed(t *testing.T) {
	a := Scramble(20, rand.New(rand.NewSource(7)))
	b := Scramble(20, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("scrambles with the same seed differ: %q vs %q", a, b)
	}
}
