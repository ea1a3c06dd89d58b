// Package heuristic implements the locky puzzle's lower-bound
// heuristic framework: a common interface, a zero heuristic, a
// max-combinator, and a projection-table heuristic backed by a
// breadth-first pattern database.
package heuristic

import "github.com/ehrlich-b/locky/internal/puzzle"

// Heuristic returns an admissible lower bound on the number of moves
// needed to solve (or reach a projection's goal from) a State.
// Implementations must be safe to share read-only across goroutines.
type Heuristic interface {
	LowerBound(s *puzzle.State) uint8
}

// Nop is the zero heuristic: always admissible, never informative.
type Nop struct{}

func (Nop) LowerBound(*puzzle.State) uint8 { return 0 }

// Max combines a set of heuristics by taking their maximum, which
// preserves admissibility because every component is itself admissible.
type Max []Heuristic

func (m Max) LowerBound(s *puzzle.State) uint8 {
	var best uint8
	for _, h := range m {
		if b := h.LowerBound(s); b > best {
			best = b
		}
	}
	return best
}
