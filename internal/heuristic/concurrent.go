package heuristic

import "github.com/ehrlich-b/locky/internal/projection"

// DefaultTables holds the pattern-database heuristics the multi-stage
// solver is built from by default: depth-7 projection tables, and a
// depth-8 LockProj table (the mandatory base projection is cheap
// enough to build one layer deeper).
type DefaultTables struct {
	Lock   *ProjHeuristic[projection.LockKey]
	Arrow  *ProjHeuristic[projection.ArrowAxisKey]
	CoUd   *ProjHeuristic[projection.CoKey]
	CoFb   *ProjHeuristic[projection.CoKey]
	CoRl   *ProjHeuristic[projection.CoKey]
	Corner *ProjHeuristic[projection.CornerKey]
}

// BuildDefaultTables builds all six tables concurrently: each runs on
// its own goroutine, and the caller blocks on each result channel
// before assembling the aggregate. This mirrors the original solver's
// per-table spawn-then-block pattern, translated to Go's channel and
// goroutine primitives in place of scoped native threads.
func BuildDefaultTables() *DefaultTables {
	return buildTablesAtDepth(7, 8)
}

func buildTablesAtDepth(projDepth, lockDepth uint8) *DefaultTables {
	lockCh := make(chan *ProjHeuristic[projection.LockKey], 1)
	arrowCh := make(chan *ProjHeuristic[projection.ArrowAxisKey], 1)
	coUdCh := make(chan *ProjHeuristic[projection.CoKey], 1)
	coFbCh := make(chan *ProjHeuristic[projection.CoKey], 1)
	coRlCh := make(chan *ProjHeuristic[projection.CoKey], 1)
	cornerCh := make(chan *ProjHeuristic[projection.CornerKey], 1)

	go func() { lockCh <- Build(lockDepth, projection.Lock) }()
	go func() { arrowCh <- Build(projDepth, projection.ArrowAxis) }()
	go func() { coUdCh <- Build(projDepth, projection.CoUd) }()
	go func() { coFbCh <- Build(projDepth, projection.CoFb) }()
	go func() { coRlCh <- Build(projDepth, projection.CoRl) }()
	go func() { cornerCh <- Build(projDepth, projection.Corner) }()

	return &DefaultTables{
		Lock:   <-lockCh,
		Arrow:  <-arrowCh,
		CoUd:   <-coUdCh,
		CoFb:   <-coFbCh,
		CoRl:   <-coRlCh,
		Corner: <-cornerCh,
	}
}
