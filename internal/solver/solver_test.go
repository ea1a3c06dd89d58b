package solver

import (
	"testing"

	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/projection"
	"github.com/ehrlich-b/locky/internal/puzzle"
)

func TestSolveSolvedAtDepthZero(t *testing.T) {
	s := puzzle.Solved()
	algo, ok := SolveSerial(&s, heuristic.Nop{}, 0)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(algo) != 0 {
		t.Errorf("got %v, want empty Algo", algo)
	}
}

func TestSolveSingleMoveUndo(t *testing.T) {
	scramble, err := puzzle.ParseAlgo("L'")
	if err != nil {
		t.Fatalf("ParseAlgo: %v", err)
	}
	s := scramble.State()
	algo, ok := SolveSerial(&s, heuristic.Nop{}, 1)
	if !ok {
		t.Fatal("expected a solution")
	}
	if got := algo.String(); got != "L" {
		t.Errorf("got %q, want %q", got, "L")
	}
}

func TestSolveFiveMoveScramble(t *testing.T) {
	scramble, err := puzzle.ParseAlgo("B D2 B' U2 L2")
	if err != nil {
		t.Fatalf("ParseAlgo: %v", err)
	}
	s := scramble.State()

	if _, ok := SolveSerial(&s, heuristic.Nop{}, 4); ok {
		t.Error("expected no solution at depth 4")
	}
	algo, ok := SolveSerial(&s, heuristic.Nop{}, 5)
	if !ok {
		t.Fatal("expected a solution at depth 5")
	}
	if got := algo.String(); got != "L2 U2 B D2 B'" {
		t.Errorf("got %q, want %q", got, "L2 U2 B D2 B'")
	}
}

func TestProjSolveLockProjTPerm(t *testing.T) {
	tPerm, err := puzzle.ParseAlgo("R U R' U' R' F R2 U' R' U' R U R' F'")
	if err != nil {
		t.Fatalf("ParseAlgo: %v", err)
	}
	s := tPerm.State()
	algo, ok := ProjSolveSerial(&s, heuristic.Nop{}, 1, projection.Lock)
	if !ok {
		t.Fatal("expected a solution")
	}
	if got := algo.String(); got != "U2" {
		t.Errorf("got %q, want %q", got, "U2")
	}
}

func TestSolveParallelMatchesSerialLength(t *testing.T) {
	scramble, err := puzzle.ParseAlgo("B D2 B' U2 L2")
	if err != nil {
		t.Fatalf("ParseAlgo: %v", err)
	}
	s := scramble.State()
	algo, ok := Solve(&s, heuristic.Nop{}, 5)
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(algo) != 5 {
		t.Errorf("got length %d, want 5", len(algo))
	}
	result := s
	algo.Apply(&result)
	if !result.IsSolved() {
		t.Error("parallel solution did not actually solve the state")
	}
}

func TestSolveReturnsNoneWhenUnreachable(t *testing.T) {
	s := puzzle.Solved()
	s[0].Face = puzzle.D // corrupt the state so it cannot be solved by any legal move sequence
	if _, ok := SolveSerial(&s, heuristic.Nop{}, 3); ok {
		t.Error("expected no solution for an unreachable depth bound")
	}
}
