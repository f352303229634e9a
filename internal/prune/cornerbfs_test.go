package prune

import (
	"testing"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
)

func TestBuildCornerDepthSolvedIsZero(t *testing.T) {
	ct, err := BuildCornerDepth()
	if err != nil {
		t.Fatalf("BuildCornerDepth: %v", err)
	}
	if got := ct.Get(0); got != 0 {
		t.Fatalf("corner_depth[0] = %d, want 0", got)
	}
}

func TestBuildCornerDepthEveryEntryReached(t *testing.T) {
	ct, err := BuildCornerDepth()
	if err != nil {
		t.Fatalf("BuildCornerDepth: %v", err)
	}
	if len(ct) != coord.NCorners {
		t.Fatalf("len(ct) = %d, want %d", len(ct), coord.NCorners)
	}
	for c, d := range ct {
		if d < 0 {
			t.Fatalf("corner %d unreached (negative depth %d)", c, d)
		}
	}
}

func TestBuildCornerDepthDiameterIsEleven(t *testing.T) {
	ct, err := BuildCornerDepth()
	if err != nil {
		t.Fatalf("BuildCornerDepth: %v", err)
	}
	if got := ct.Max(); got != 11 {
		t.Fatalf("corner_depth diameter = %d, want 11", got)
	}
}
