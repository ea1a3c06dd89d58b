package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

func axisCode(f puzzle.Face) byte {
	switch f {
	case puzzle.U, puzzle.D:
		return 0
	case puzzle.F, puzzle.B:
		return 1
	default: // R, L
		return 2
	}
}

// ArrowAxisKey tracks, for each face, the axis of the face-label
// currently sitting at each of that face's four edge slots, for edge
// slots whose sticker currently carries a non-Neutral arrow (Neutral
// edges code as 0, same as the UD axis — this collision is as
// specified). One byte per face, six bytes total, plus the embedded
// LockKey.
type ArrowAxisKey struct {
	Lock LockKey
	Axes [puzzle.NumFaces]byte
}

// ArrowAxis projects a State to its ArrowAxisKey.
func ArrowAxis(s *puzzle.State) ArrowAxisKey {
	var key ArrowAxisKey
	key.Lock = Lock(s)
	for f := 0; f < puzzle.NumFaces; f++ {
		face := s.Face(puzzle.Face(f))
		var b byte
		for i, slot := range edgeSlots {
			sticker := face[slot]
			var code byte
			if sticker.Direction != puzzle.Neutral {
				code = axisCode(sticker.Face)
			}
			b |= code << uint(i*2)
		}
		key.Axes[f] = b
	}
	return key
}
