package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

// CoKey is the corner-orientation projection: for each of the eight
// corners, a 2-bit code relative to a chosen axis, computed by
// inspecting that corner's UD-slot and FB-slot stickers. Sixteen bits
// (two bytes), plus the embedded LockKey.
type CoKey struct {
	Lock LockKey
	Bits uint16
}

func coOrientation(s *puzzle.State, chosen puzzle.Axis) CoKey {
	var key CoKey
	key.Lock = Lock(s)
	for i, idx := range cornerIndices {
		udFace := s[idx.ud].Face
		fbFace := s[idx.fb].Face
		var code uint16
		switch {
		case axisOf(udFace) == chosen:
			code = 0
		case axisOf(fbFace) == chosen:
			code = 1
		default:
			code = 2
		}
		key.Bits |= code << uint(i*2)
	}
	return key
}

func axisOf(f puzzle.Face) puzzle.Axis {
	switch f {
	case puzzle.U, puzzle.D:
		return puzzle.AxisUD
	case puzzle.F, puzzle.B:
		return puzzle.AxisFB
	default:
		return puzzle.AxisRL
	}
}

// CoUd projects a State to corner orientation relative to the UD axis.
func CoUd(s *puzzle.State) CoKey { return coOrientation(s, puzzle.AxisUD) }

// CoFb projects a State to corner orientation relative to the FB axis.
func CoFb(s *puzzle.State) CoKey { return coOrientation(s, puzzle.AxisFB) }

// CoRl projects a State to corner orientation relative to the RL axis.
func CoRl(s *puzzle.State) CoKey { return coOrientation(s, puzzle.AxisRL) }
