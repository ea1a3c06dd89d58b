package puzzle

import "iter"

// AxisState tracks how much of an axis remains available after a move
// on it, per the symmetry-pruning rule in §4.3.
type AxisState int

const (
	Enabled AxisState = iota
	HalfDisabled
	Disabled
)

// MoveGenerator is a lazy enumerator of legal successor moves, carrying
// just enough state (last axis turned, and how much of it remains
// available) to prune redundant move orderings. Values are small and
// copied freely; the zero value is not a valid generator — use
// NewMoveGenerator.
type MoveGenerator struct {
	axis  Axis
	state AxisState
}

// NewMoveGenerator returns the initial generator: (UD, Enabled),
// equivalent to "no prior axis constraint" since axis_state == Enabled
// makes the axis field irrelevant on the first step.
func NewMoveGenerator() MoveGenerator {
	return MoveGenerator{axis: AxisUD, state: Enabled}
}

// Successors yields each allowed move together with the generator
// state that should be used to expand beyond it.
func (g MoveGenerator) Successors() iter.Seq2[MoveGenerator, Move] {
	return func(yield func(MoveGenerator, Move) bool) {
		for _, m := range AllMoves {
			axis, primary := decomposeFace(m.Face)
			var next MoveGenerator
			switch {
			case axis != g.axis || g.state == Enabled:
				if primary {
					next = MoveGenerator{axis: axis, state: HalfDisabled}
				} else {
					next = MoveGenerator{axis: axis, state: Disabled}
				}
			case g.state == HalfDisabled && !primary:
				next = MoveGenerator{axis: axis, state: Disabled}
			default:
				continue
			}
			if !yield(next, m) {
				return
			}
		}
	}
}
