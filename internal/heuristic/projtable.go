package heuristic

import "github.com/ehrlich-b/locky/internal/puzzle"

// ProjHeuristic is a pattern-database heuristic over a projection
// P: State -> K. Go generics parameterize it directly on the
// comparable key type, so K itself is usable as a map key with no
// separate Hash/Eq implementation — the natural Go analogue of the
// `Proj: Clone + Eq + Hash` trait bound this is ported from.
type ProjHeuristic[K comparable] struct {
	Table   map[K]uint8
	Default uint8
	Project func(*puzzle.State) K
}

// LowerBound looks up the projected value in the table, falling back to
// Default (depth+1 of the table that built it) when absent.
func (h *ProjHeuristic[K]) LowerBound(s *puzzle.State) uint8 {
	if v, ok := h.Table[h.Project(s)]; ok {
		return v
	}
	return h.Default
}

type queueItem[K comparable] struct {
	gen   puzzle.MoveGenerator
	state puzzle.State
}

// Build runs the breadth-first pattern-database construction from
// §4.5: a BFS layered over (MoveGenerator, State) pairs — not over
// projection values alone, since MoveGenerator's successors depend on
// prior axis choices — using the projection only to deduplicate and
// to record distances. The queue starts at solved and expands depth
// layers 0..depth, skipping moves on locked faces.
func Build[K comparable](depth uint8, project func(*puzzle.State) K) *ProjHeuristic[K] {
	table := make(map[K]uint8)
	solved := puzzle.Solved()
	table[project(&solved)] = 0

	queue := []queueItem[K]{{gen: puzzle.NewMoveGenerator(), state: solved}}
	for layer := uint8(0); layer < depth && len(queue) > 0; layer++ {
		var next []queueItem[K]
		for _, item := range queue {
			for newGen, m := range item.gen.Successors() {
				if item.state.IsLocked(m.Face) {
					continue
				}
				newState := item.state
				m.Apply(&newState)
				key := project(&newState)
				if _, seen := table[key]; seen {
					continue
				}
				table[key] = layer + 1
				next = append(next, queueItem[K]{gen: newGen, state: newState})
			}
		}
		queue = next
	}

	return &ProjHeuristic[K]{Table: table, Default: depth + 1, Project: project}
}
