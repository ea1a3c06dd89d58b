package solver

import (
	"github.com/ehrlich-b/locky/internal/heuristic"
	"github.com/ehrlich-b/locky/internal/projection"
	"github.com/ehrlich-b/locky/internal/puzzle"
)

// MultiStepError distinguishes which stage of the multi-stage solver
// reported failure.
type MultiStepError struct {
	Stage string
}

func (e *MultiStepError) Error() string {
	return "multi-stage solve failed: " + e.Stage
}

var (
	// ErrInvalidEdges is returned when stage 1 (ArrowAxisProj, with its
	// LockProj+ArrowAxisProj fallback) cannot find a solution.
	ErrInvalidEdges = &MultiStepError{Stage: "invalid edges"}
	// ErrInvalidCorners is returned when stage 2 (the PairProj over
	// ArrowAxis/CoFb/CoRl/CoUd) cannot find a solution.
	ErrInvalidCorners = &MultiStepError{Stage: "invalid corners"}
	// ErrInvalidState is returned when stage 3 or the final full solve
	// cannot find a solution.
	ErrInvalidState = &MultiStepError{Stage: "invalid state"}
)

// combo1Key is the stage-2 composite projection:
// Pair(Pair(Arrow, CoFb), Pair(CoRl, CoUd)).
type combo1Key = projection.Pair[projection.Pair[projection.ArrowAxisKey, projection.CoKey], projection.Pair[projection.CoKey, projection.CoKey]]

// combo2Key is the stage-3/stage-4 composite projection: Pair(Arrow, Corner).
type combo2Key = projection.Pair[projection.ArrowAxisKey, projection.CornerKey]

// MultiStage chains the five projection-restricted searches described
// in §4.8 to solve states whose full, unbounded search would be
// intractable on its own.
type MultiStage struct {
	tables *heuristic.DefaultTables
}

// NewMultiStage builds the default pattern-database tables (depth-7
// projection tables, depth-8 for LockProj) and returns a ready-to-use
// MultiStage solver.
func NewMultiStage() *MultiStage {
	return &MultiStage{tables: heuristic.BuildDefaultTables()}
}

// NewMultiStageFromTables wires an already-built set of tables into a
// MultiStage solver, letting a caller that builds its own tables once
// (e.g. a long-lived server) reuse them across many Solve calls instead
// of rebuilding the pattern databases per call. Tests also use this to
// exercise the stage pipeline against shallower, cheaper tables than
// the production depths.
func NewMultiStageFromTables(tables *heuristic.DefaultTables) *MultiStage {
	return &MultiStage{tables: tables}
}

// Result is the multi-stage solver's output: the concatenated Algo and
// the per-stage decomposition it was built from. Stages has length 4
// when stage 1 solved ArrowAxisProj directly, or 5 when the
// LockProj+ArrowAxisProj fallback was needed.
type Result struct {
	Algo   puzzle.Algo
	Stages []puzzle.Algo
}

// Solve runs the five-stage pipeline against state.
func (m *MultiStage) Solve(state *puzzle.State) (Result, error) {
	s := *state
	var stages []puzzle.Algo

	stage1, err := m.solveStage1(&s)
	if err != nil {
		return Result{}, err
	}
	stages = append(stages, stage1...)
	for _, a := range stage1 {
		a.Apply(&s)
	}

	combo1 := projection.Combine(projection.Combine(projection.ArrowAxis, projection.CoFb), projection.Combine(projection.CoRl, projection.CoUd))
	combo1Heuristic := heuristic.Max{m.tables.Arrow, m.tables.CoFb, m.tables.CoRl, m.tables.CoUd}
	stage2, ok := iterativeProjSolve(&s, combo1Heuristic, combo1)
	if !ok {
		return Result{}, ErrInvalidCorners
	}
	stages = append(stages, stage2)
	stage2.Apply(&s)

	combo2 := projection.Combine(projection.ArrowAxis, projection.Corner)
	combo2Heuristic := heuristic.Max{m.tables.Arrow, m.tables.Corner}
	stage3, ok := iterativeProjSolve(&s, combo2Heuristic, combo2)
	if !ok {
		return Result{}, ErrInvalidState
	}
	stages = append(stages, stage3)
	stage3.Apply(&s)

	var stage4 puzzle.Algo
	found := false
	for depth := uint8(0); depth <= 254; depth++ {
		if algo, ok := Solve(&s, combo2Heuristic, depth); ok {
			stage4 = algo
			found = true
			break
		}
	}
	if !found {
		return Result{}, ErrInvalidState
	}
	stages = append(stages, stage4)

	var total int
	for _, a := range stages {
		total += len(a)
	}
	full := make(puzzle.Algo, 0, total)
	for _, a := range stages {
		full = append(full, a...)
	}
	return Result{Algo: full, Stages: stages}, nil
}

// iterativeProjSolve realizes iterative deepening over ProjSolve,
// trying depth = 0, 1, 2, ... up to and including 255 and returning the
// first (and therefore shortest) solution found. depth is looped as an
// int so the bound comparison doesn't wrap at uint8's max value.
func iterativeProjSolve[K comparable](s *puzzle.State, h heuristic.Heuristic, project func(*puzzle.State) K) (puzzle.Algo, bool) {
	for depth := 0; depth <= 255; depth++ {
		if algo, ok := ProjSolve(s, h, uint8(depth), project); ok {
			return algo, true
		}
	}
	return nil, false
}

// solveStage1 implements §4.8 stage 1: try ArrowAxisProj within a small
// bound first; only fall back to LockProj+ArrowAxisProj when that
// fails. Returns the sub-algos making up the stage (one if the direct
// attempt succeeded, two if the fallback was used).
func (m *MultiStage) solveStage1(s *puzzle.State) ([]puzzle.Algo, error) {
	for depth := uint8(0); depth <= 14; depth++ {
		if algo, ok := ProjSolve(s, m.tables.Arrow, depth, projection.ArrowAxis); ok {
			return []puzzle.Algo{algo}, nil
		}
	}

	var lockAlgo puzzle.Algo
	foundLock := false
	for depth := uint8(0); depth <= 13; depth++ {
		if algo, ok := ProjSolve(s, m.tables.Lock, depth, projection.Lock); ok {
			lockAlgo = algo
			foundLock = true
			break
		}
	}
	if !foundLock {
		return nil, ErrInvalidEdges
	}
	afterLock := *s
	lockAlgo.Apply(&afterLock)

	if algo, ok := iterativeProjSolve(&afterLock, m.tables.Arrow, projection.ArrowAxis); ok {
		return []puzzle.Algo{lockAlgo, algo}, nil
	}
	return nil, ErrInvalidEdges
}
