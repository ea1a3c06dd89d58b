package puzzle

// Sticker is a single facelet: a face label plus an arrow direction that
// may restrict turning of the face it currently sits on.
type Sticker struct {
	Face      Face
	Direction Direction
}

func (s Sticker) String() string {
	return s.Face.String() + s.Direction.String()
}

// State is the flat 48-sticker configuration of the puzzle. Slot i of
// face f lives at index f*8+i. States are plain value types: assignment
// and parameter passing copy the whole array, matching the cheap-clone
// lifecycle the search relies on.
type State [NumFaces * 8]Sticker

// solvedArrows gives, for each face, which of its two native slots
// carries an arrow and in which direction. Every other slot is Neutral.
var solvedArrows = [NumFaces]struct {
	slots     [2]int
	direction Direction
}{
	U: {[2]int{1, 6}, Counter},
	D: {[2]int{1, 6}, Clockwise},
	F: {[2]int{3, 4}, Clockwise},
	B: {[2]int{3, 4}, Counter},
	R: {[2]int{1, 6}, Clockwise},
	L: {[2]int{1, 6}, Counter},
}

// Solved returns the canonical solved State.
func Solved() State {
	var s State
	for f := 0; f < NumFaces; f++ {
		arrows := solvedArrows[f]
		for slot := 0; slot < 8; slot++ {
			dir := Neutral
			if slot == arrows.slots[0] || slot == arrows.slots[1] {
				dir = arrows.direction
			}
			s[f*8+slot] = Sticker{Face: Face(f), Direction: dir}
		}
	}
	return s
}

// Face returns the 8-sticker view belonging to face f. The returned
// slice aliases the State's backing array.
func (s *State) Face(f Face) []Sticker {
	base := int(f) * 8
	return s[base : base+8]
}

// IsSolved reports whether every sticker sits on its own face with no
// arrow direction displaced relative to the solved configuration.
func (s *State) IsSolved() bool {
	solved := Solved()
	return *s == solved
}

// IsLocked reports whether face f currently carries both a Clockwise
// and a Counter arrow among its 8 stickers.
func (s *State) IsLocked(f Face) bool {
	var sawCW, sawCCW bool
	for _, sticker := range s.Face(f) {
		switch sticker.Direction {
		case Clockwise:
			sawCW = true
		case Counter:
			sawCCW = true
		}
		if sawCW && sawCCW {
			return true
		}
	}
	return false
}

func (s State) String() string {
	out := make([]byte, 0, 256)
	out = append(out, '[')
	for f := 0; f < NumFaces; f++ {
		if f > 0 {
			out = append(out, ',', ' ')
		}
		for slot := 0; slot < 8; slot++ {
			if slot > 0 {
				out = append(out, ' ')
			}
			out = append(out, s[f*8+slot].String()...)
		}
	}
	out = append(out, ']')
	return string(out)
}
