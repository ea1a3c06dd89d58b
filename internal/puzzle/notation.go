package puzzle

import "fmt"

// InvalidStickerError reports malformed state-entry input: too few
// characters, an unknown face letter, a misplaced '^' marker, or a
// center sticker that doesn't match its face.
type InvalidStickerError struct {
	Reason string
}

func (e *InvalidStickerError) Error() string {
	return fmt.Sprintf("invalid sticker entry: %s", e.Reason)
}

// rowToSlot maps a 0-indexed position within the 9-character face row
// (center at index 4) to the 8-slot face-view index used by State.
var rowToSlot = [9]int{0, 1, 2, 3, -1, 4, 5, 6, 7}

// edgeRowIndex reports whether 0-indexed row position i is one of the
// four edge positions (1-indexed 2,4,6,8) a '^' marker may follow.
func edgeRowIndex(i int) bool {
	return i == 1 || i == 3 || i == 5 || i == 7
}

// ParseFaceRow parses a single face's entry: the face letter and its
// own label, followed by the 9-character row (face letters, with '^'
// immediately after an edge sticker's letter to mark it with that
// face's standard direction). The center character (row position 5,
// 1-indexed) must equal face and carry no marker.
func ParseFaceRow(face Face, row string) ([8]Sticker, error) {
	var out [8]Sticker
	pos := 0 // 0-indexed position within the 9-character row
	i := 0
	for pos < 9 {
		if i >= len(row) {
			return out, &InvalidStickerError{Reason: "row too short"}
		}
		letter, ok := faceLetters[row[i]]
		if !ok {
			return out, &InvalidStickerError{Reason: fmt.Sprintf("unknown face letter %q", row[i])}
		}
		i++
		hasArrow := i < len(row) && row[i] == '^'
		if hasArrow {
			i++
		}
		if pos == 4 {
			if letter != face {
				return out, &InvalidStickerError{Reason: "center sticker does not match face"}
			}
			if hasArrow {
				return out, &InvalidStickerError{Reason: "center sticker may not carry a direction marker"}
			}
			pos++
			continue
		}
		if hasArrow && !edgeRowIndex(pos) {
			return out, &InvalidStickerError{Reason: "'^' marker on a non-edge position"}
		}
		dir := Neutral
		if hasArrow {
			dir = standardDirection(letter)
		}
		out[rowToSlot[pos]] = Sticker{Face: letter, Direction: dir}
		pos++
	}
	if i != len(row) {
		return out, &InvalidStickerError{Reason: "trailing characters after row"}
	}
	return out, nil
}

// FormatFaceRow is the inverse of ParseFaceRow: it renders the 8
// stickers of a face view (plus the face's own center) back into the
// 9-character-plus-markers notation.
func FormatFaceRow(face Face, stickers [8]Sticker) string {
	out := make([]byte, 0, 13)
	for pos := 0; pos < 9; pos++ {
		if pos == 4 {
			out = append(out, byte(face.String()[0]))
			continue
		}
		s := stickers[rowToSlot[pos]]
		out = append(out, byte(s.Face.String()[0]))
		if edgeRowIndex(pos) && s.Direction != Neutral {
			out = append(out, '^')
		}
	}
	return string(out)
}

// ParseState parses a full State from one row per face.
func ParseState(rows [NumFaces]string) (State, error) {
	var s State
	faces := [NumFaces]Face{U, D, F, B, R, L}
	for _, f := range faces {
		stickers, err := ParseFaceRow(f, rows[f])
		if err != nil {
			return s, err
		}
		copy(s.Face(f), stickers[:])
	}
	return s, nil
}

// FormatState is the inverse of ParseState.
func FormatState(s *State) [NumFaces]string {
	var rows [NumFaces]string
	faces := [NumFaces]Face{U, D, F, B, R, L}
	for _, f := range faces {
		var stickers [8]Sticker
		copy(stickers[:], s.Face(f))
		rows[f] = FormatFaceRow(f, stickers)
	}
	return rows
}
