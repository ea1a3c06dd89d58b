package projection

import (
	"testing"

	"github.com/ehrlich-b/locky/internal/puzzle"
)

func TestProjectionDeterminism(t *testing.T) {
	s := puzzle.Solved()
	algo := puzzle.Algo{{Face: puzzle.R, Turns: puzzle.Clockwise1}, {Face: puzzle.U, Turns: puzzle.Double}}
	algo.Apply(&s)

	if Lock(&s) != Lock(&s) {
		t.Error("Lock is not deterministic")
	}
	if Corner(&s) != Corner(&s) {
		t.Error("Corner is not deterministic")
	}
	if ArrowAxis(&s) != ArrowAxis(&s) {
		t.Error("ArrowAxis is not deterministic")
	}
	if CoUd(&s) != CoUd(&s) || CoFb(&s) != CoFb(&s) || CoRl(&s) != CoRl(&s) {
		t.Error("Co*Proj is not deterministic")
	}
	if CornerUd(&s) != CornerUd(&s) || CornerFb(&s) != CornerFb(&s) || CornerRl(&s) != CornerRl(&s) {
		t.Error("Corner*Proj is not deterministic")
	}
}

func TestProjectionEqualStatesEqualKeys(t *testing.T) {
	a := puzzle.Solved()
	b := puzzle.Solved()
	algo := puzzle.Algo{{Face: puzzle.F, Turns: puzzle.Counter1}, {Face: puzzle.L, Turns: puzzle.Double}}
	algo.Apply(&a)
	algo.Apply(&b)
	if Corner(&a) != Corner(&b) {
		t.Error("structurally equal states produced different CornerKeys")
	}
	if ArrowAxis(&a) != ArrowAxis(&b) {
		t.Error("structurally equal states produced different ArrowAxisKeys")
	}
}

func TestLockKeyDeterminesLockedFaces(t *testing.T) {
	s := puzzle.Solved()
	algo := puzzle.Algo{{Face: puzzle.R, Turns: puzzle.Clockwise1}, {Face: puzzle.U, Turns: puzzle.Counter1}, {Face: puzzle.F, Turns: puzzle.Double}}
	algo.Apply(&s)
	other := s // same LockKey implies same lock status on every face
	if Lock(&s) != Lock(&other) {
		t.Fatal("expected equal LockKeys for identical states")
	}
	for f := puzzle.Face(0); f < puzzle.NumFaces; f++ {
		if s.IsLocked(f) != other.IsLocked(f) {
			t.Errorf("face %s: lock status differs despite identical LockKey", f)
		}
	}
}

func TestCombinePair(t *testing.T) {
	s := puzzle.Solved()
	pair := Combine(ArrowAxis, Corner)
	key := pair(&s)
	if key.A != ArrowAxis(&s) || key.B != Corner(&s) {
		t.Error("Combine did not produce the component projections")
	}
}
