package coordcube

import (
	"testing"

	"github.com/ehrlich-b/bigoptcube/internal/cube/cubie"
	"github.com/ehrlich-b/bigoptcube/internal/movetable"
)

func TestMain(m *testing.M) {
	movetable.BuildAll()
	m.Run()
}

// Solved-state construction never touches the pruning tables: the
// guided descent in AbsoluteDistance returns immediately when the
// triple is already (0,0,0), so a nil *prune.Table is safe here.
func TestNewFromSolvedIsAllZero(t *testing.T) {
	cc := New(cubie.Solved(), nil, nil)
	for axis := UD; axis < NumAxes; axis++ {
		if cc.Twist[axis] != 0 {
			t.Errorf("axis %d Twist = %d, want 0", axis, cc.Twist[axis])
		}
		if cc.Flip[axis] != 0 {
			t.Errorf("axis %d Flip = %d, want 0", axis, cc.Flip[axis])
		}
		if cc.SliceSorted[axis] != 0 {
			t.Errorf("axis %d SliceSorted = %d, want 0", axis, cc.SliceSorted[axis])
		}
		if cc.UDCorners[axis] != 0 {
			t.Errorf("axis %d UDCorners = %d, want 0", axis, cc.UDCorners[axis])
		}
		if cc.Dist[axis] != 0 {
			t.Errorf("axis %d Dist = %d, want 0", axis, cc.Dist[axis])
		}
	}
	if cc.Corners != 0 {
		t.Errorf("Corners = %d, want 0", cc.Corners)
	}
	if !cc.IsSolved() {
		t.Error("IsSolved() = false for the solved cube")
	}
}

func TestRotateIdentitySymmetryIsNoOp(t *testing.T) {
	cc := cubie.Solved()
	if got := rotate(cc, 0); got != cc {
		t.Error("rotate with symmetry 0 should return the same pointer unchanged")
	}
}

func TestAxisMoveIdentityForUD(t *testing.T) {
	for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
		if got := axisMove(UD, m); got != m {
			t.Errorf("axisMove(UD, %s) = %s, want %s", m, got, m)
		}
	}
}

func TestAxisMoveRLandFBDiffer(t *testing.T) {
	same := 0
	for m := cubie.Move(0); int(m) < int(cubie.NumMoves); m++ {
		if axisMove(RL, m) == axisMove(FB, m) {
			same++
		}
	}
	if same == int(cubie.NumMoves) {
		t.Error("axisMove(RL, .) and axisMove(FB, .) agree on every move, expected the two nontrivial rotations to differ")
	}
}

func TestClassAndSymOfSolvedIsClassZero(t *testing.T) {
	class, _ := classAndSym(0, 0)
	if class != 0 {
		t.Errorf("classAndSym(0, 0) class = %d, want 0", class)
	}
}
