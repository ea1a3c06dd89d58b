// Package puzzle implements the locky puzzle: a fixed 48-sticker cube
// variant where certain stickers carry a clockwise or counter-clockwise
// arrow instead of a plain color, and a face may not be turned while it
// is "locked" (carrying both a clockwise and a counter arrow at once).
package puzzle

// Face identifies one of the six faces of the cube. The face order
// U, D, F, B, R, L fixes the layout of the flat 48-sticker State array:
// face f occupies slots [f*8, f*8+8).
type Face int

const (
	U Face = iota
	D
	F
	B
	R
	L
)

// NumFaces is the number of faces on the cube.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Axis groups the three pairs of opposite faces the move generator's
// symmetry pruning reasons about.
type Axis int

const (
	AxisUD Axis = iota
	AxisFB
	AxisRL
)

func (a Axis) String() string {
	switch a {
	case AxisUD:
		return "UD"
	case AxisFB:
		return "FB"
	case AxisRL:
		return "RL"
	default:
		return "?"
	}
}

// axisOf reports which axis a face belongs to.
func axisOf(f Face) Axis {
	switch f {
	case U, D:
		return AxisUD
	case F, B:
		return AxisFB
	default:
		return AxisRL
	}
}

// decomposeFace splits a face into its axis and whether it is the
// "primary" face of that axis (U, F, R are primary; D, B, L are not).
func decomposeFace(f Face) (axis Axis, primary bool) {
	switch f {
	case U:
		return AxisUD, true
	case D:
		return AxisUD, false
	case F:
		return AxisFB, true
	case B:
		return AxisFB, false
	case R:
		return AxisRL, true
	default: // L
		return AxisRL, false
	}
}

// Direction is the arrow a sticker carries, if any.
type Direction int

const (
	Clockwise Direction = iota
	Counter
	Neutral
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return ""
	case Counter:
		return "'"
	default:
		return ""
	}
}

// standardDirection is the arrow direction a face's own stickers carry
// in the solved state, used by the sticker-entry notation to fill in
// the direction of an edge sticker from its '^' marker alone.
func standardDirection(f Face) Direction {
	switch f {
	case U, B, L:
		return Counter
	default: // D, F, R
		return Clockwise
	}
}
