// Package solver implements the locky puzzle's IDA*-style search: a
// single-threaded depth-bounded recursion, a root-parallel variant that
// distributes first-ply moves across goroutines, and a projection-goal
// variant used by the multi-stage solver.
package solver

import (
	"sync"

	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/puzzle"
)

type goal func(*puzzle.State) bool

func isSolved(s *puzzle.State) bool { return s.IsSolved() }

// search is the depth-first recursion shared by every public entry
// point: it differs only in the goal predicate it is handed.
func search(state *puzzle.State, h heuristic.Heuristic, depth uint8, history *puzzle.Algo, gen puzzle.MoveGenerator, isGoal goal) bool {
	if isGoal(state) {
		return true
	}
	if depth == 0 {
		return false
	}
	if h.LowerBound(state) > depth {
		return false
	}
	for newGen, m := range gen.Successors() {
		if state.IsLocked(m.Face) {
			continue
		}
		newState := *state
		m.Apply(&newState)
		*history = append(*history, m)
		if search(&newState, h, depth-1, history, newGen, isGoal) {
			return true
		}
		*history = (*history)[:len(*history)-1]
	}
	return false
}

func solveSerialGoal(state *puzzle.State, h heuristic.Heuristic, depth uint8, isGoal goal) (puzzle.Algo, bool) {
	history := make(puzzle.Algo, 0, depth)
	if search(state, h, depth, &history, puzzle.NewMoveGenerator(), isGoal) {
		return history, true
	}
	return nil, false
}

// solveGoal is the root-parallel entry point: the first branching step
// is unrolled across goroutines, one per allowed first move. Each
// worker that finds a solution sends its history down a channel; the
// coordinator waits for every worker to finish (the Go analogue of a
// scoped-thread join guarantee — no worker outlives this call) and
// then returns the shortest solution received, a barge-in pattern with
// no cancellation.
func solveGoal(state *puzzle.State, h heuristic.Heuristic, depth uint8, isGoal goal) (puzzle.Algo, bool) {
	if isGoal(state) {
		return puzzle.Algo{}, true
	}
	if depth == 0 {
		return nil, false
	}

	results := make(chan puzzle.Algo)
	var wg sync.WaitGroup
	for gen, m := range puzzle.NewMoveGenerator().Successors() {
		if state.IsLocked(m.Face) {
			continue
		}
		gen, m := gen, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := *state
			m.Apply(&local)
			hist := puzzle.Algo{m}
			if search(&local, h, depth-1, &hist, gen, isGoal) {
				results <- hist
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var best puzzle.Algo
	for sol := range results {
		if best == nil || len(sol) < len(best) {
			best = sol
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Solve searches for a solution of length <= depth, distributing the
// first-ply moves across goroutines. The caller iterates depth =
// 0, 1, 2, ... to realize iterative deepening.
func Solve(state *puzzle.State, h heuristic.Heuristic, depth uint8) (puzzle.Algo, bool) {
	return solveGoal(state, h, depth, isSolved)
}

// SolveSerial is Solve's single-threaded, fully deterministic twin.
func SolveSerial(state *puzzle.State, h heuristic.Heuristic, depth uint8) (puzzle.Algo, bool) {
	return solveSerialGoal(state, h, depth, isSolved)
}

// ProjSolve is identical to Solve except the goal is reaching any State
// whose projection equals the solved State's projection, rather than
// reaching the solved State itself. This lets a multi-stage solver
// stage halt as soon as it has achieved its projection's subgoal.
func ProjSolve[K comparable](state *puzzle.State, h heuristic.Heuristic, depth uint8, project func(*puzzle.State) K) (puzzle.Algo, bool) {
	solved := puzzle.Solved()
	target := project(&solved)
	return solveGoal(state, h, depth, func(s *puzzle.State) bool { return project(s) == target })
}

// ProjSolveSerial is ProjSolve's single-threaded twin.
func ProjSolveSerial[K comparable](state *puzzle.State, h heuristic.Heuristic, depth uint8, project func(*puzzle.State) K) (puzzle.Algo, bool) {
	solved := puzzle.Solved()
	target := project(&solved)
	return solveSerialGoal(state, h, depth, func(s *puzzle.State) bool { return project(s) == target })
}
