package puzzle

import "testing"

// assertFaces checks only the face label of every sticker, matching the
// ground-truth fixtures below (arrow directions are not compared here;
// TestSolvedUnlocked checks the lock status of the solved state).
func assertFaces(t *testing.T, s *State, want [48]Face) {
	t.Helper()
	for i, w := range want {
		if got := s[i].Face; got != w {
			t.Errorf("sticker %d: got face %s, want %s", i, got, w)
		}
	}
}

func TestApplyUMove(t *testing.T) {
	s := Solved()
	Move{Face: U, Turns: Counter1}.Apply(&s)
	want := [48]Face{
		U, U, U, U, U, U, U, U,
		D, D, D, D, D, D, D, D,
		L, L, L, F, F, F, F, F,
		R, R, R, B, B, B, B, B,
		F, F, F, R, R, R, R, R,
		B, B, B, L, L, L, L, L,
	}
	assertFaces(t, &s, want)
}

func TestApplyRMoveDouble(t *testing.T) {
	s := Solved()
	Move{Face: R, Turns: Double}.Apply(&s)
	want := [48]Face{
		U, U, D, U, D, U, U, D,
		D, D, U, D, U, D, D, U,
		F, F, B, F, B, F, F, B,
		F, B, B, F, B, F, B, B,
		R, R, R, R, R, R, R, R,
		L, L, L, L, L, L, L, L,
	}
	assertFaces(t, &s, want)
}

func TestApplyBMoveCounter(t *testing.T) {
	s := Solved()
	Move{Face: B, Turns: Counter1}.Apply(&s)
	want := [48]Face{
		L, L, L, U, U, U, U, U,
		D, D, D, D, D, R, R, R,
		F, F, F, F, F, F, F, F,
		B, B, B, B, B, B, B, B,
		R, R, U, R, U, R, R, U,
		D, L, L, D, L, D, L, L,
	}
	assertFaces(t, &s, want)
}

func TestApplyScrambleUCounterRDouble(t *testing.T) {
	s := Solved()
	algo := Algo{{Face: U, Turns: Counter1}, {Face: R, Turns: Double}}
	algo.Apply(&s)
	want := [48]Face{
		U, U, D, U, D, U, U, D,
		D, D, U, D, U, D, D, U,
		L, L, B, F, B, F, F, R,
		F, R, R, F, B, L, B, B,
		R, R, R, R, R, F, F, F,
		B, B, B, L, L, L, L, L,
	}
	assertFaces(t, &s, want)
}

func TestApplyScrambleDBDouble(t *testing.T) {
	s := Solved()
	algo := Algo{{Face: D, Turns: Clockwise1}, {Face: B, Turns: Double}}
	algo.Apply(&s)
	want := [48]Face{
		D, D, D, U, U, U, U, U,
		D, D, D, D, D, U, U, U,
		F, F, F, F, F, L, L, L,
		R, R, R, B, B, B, B, B,
		R, R, B, R, L, F, F, L,
		F, L, L, R, L, R, B, B,
	}
	assertFaces(t, &s, want)
}

func TestApplyScrambleF2LCounter(t *testing.T) {
	s := Solved()
	algo := Algo{{Face: F, Turns: Double}, {Face: L, Turns: Counter1}}
	algo.Apply(&s)
	want := [48]Face{
		F, U, U, F, U, F, D, D,
		B, U, U, B, D, B, D, D,
		U, F, F, D, F, D, F, F,
		B, B, D, B, U, B, B, U,
		L, R, R, L, R, L, R, R,
		R, R, R, L, L, L, L, L,
	}
	assertFaces(t, &s, want)
}

func TestApplyLongScramble(t *testing.T) {
	algo := Algo{
		{Face: U, Turns: Clockwise1}, {Face: F, Turns: Counter1},
		{Face: D, Turns: Counter1}, {Face: B, Turns: Double},
		{Face: F, Turns: Clockwise1}, {Face: R, Turns: Double},
		{Face: F, Turns: Double}, {Face: L, Turns: Counter1},
		{Face: D, Turns: Double}, {Face: B, Turns: Clockwise1},
		{Face: U, Turns: Clockwise1}, {Face: R, Turns: Double},
		{Face: D, Turns: Clockwise1}, {Face: R, Turns: Double},
		{Face: B, Turns: Double}, {Face: D, Turns: Clockwise1},
		{Face: L, Turns: Double}, {Face: F, Turns: Double},
		{Face: L, Turns: Double}, {Face: U, Turns: Clockwise1},
		{Face: B, Turns: Double},
	}
	s := algo.State()
	want := [48]Face{
		L, B, R, F, R, L, U, B,
		U, D, L, B, U, R, D, B,
		F, L, L, L, R, R, B, U,
		F, R, B, R, L, R, F, D,
		U, F, U, U, D, F, B, D,
		D, U, D, D, F, F, L, B,
	}
	assertFaces(t, &s, want)
}

func TestMoveReversibility(t *testing.T) {
	for _, m := range AllMoves {
		s := Solved()
		scramble := Algo{{Face: F, Turns: Clockwise1}, {Face: R, Turns: Double}, {Face: U, Turns: Counter1}}
		scramble.Apply(&s)
		before := s
		m.Apply(&s)
		m.Inverse().Apply(&s)
		if s != before {
			t.Errorf("move %s is not reversible", m)
		}
	}
}

func TestSolvedIsSolved(t *testing.T) {
	s := Solved()
	if !s.IsSolved() {
		t.Error("Solved() is not IsSolved()")
	}
}

func TestSolvedUnlocked(t *testing.T) {
	s := Solved()
	for f := Face(0); f < NumFaces; f++ {
		if s.IsLocked(f) {
			t.Errorf("face %s reported locked in solved state", f)
		}
	}
}
