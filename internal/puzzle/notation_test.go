package puzzle

import "testing"

func TestFaceRowRoundTrip(t *testing.T) {
	s := Solved()
	rows := FormatState(&s)
	parsed, err := ParseState(rows)
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if parsed != s {
		t.Errorf("round trip did not reproduce solved state")
	}
}

func TestSolvedURowNotation(t *testing.T) {
	s := Solved()
	var stickers [8]Sticker
	copy(stickers[:], s.Face(U))
	got := FormatFaceRow(U, stickers)
	want := "UU^UUUUUU^U"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	parsed, err := ParseFaceRow(U, want)
	if err != nil {
		t.Fatalf("ParseFaceRow: %v", err)
	}
	for i, s := range parsed {
		if s != stickers[i] {
			t.Errorf("slot %d: got %+v, want %+v", i, s, stickers[i])
		}
	}
}

func TestParseFaceRowCenterMismatch(t *testing.T) {
	if _, err := ParseFaceRow(U, "UUUUDUUUU"); err == nil {
		t.Error("expected error for center sticker not matching face")
	}
}

func TestParseFaceRowMarkerOnCorner(t *testing.T) {
	if _, err := ParseFaceRow(U, "U^UUUUUUU"); err == nil {
		t.Error("expected error for '^' marker on a corner position")
	}
}

func TestParseFaceRowUnknownLetter(t *testing.T) {
	if _, err := ParseFaceRow(U, "UUUUUUUUX"); err == nil {
		t.Error("expected error for unknown face letter")
	}
}

func TestParseFaceRowTooShort(t *testing.T) {
	if _, err := ParseFaceRow(U, "UUUU"); err == nil {
		t.Error("expected error for row too short")
	}
}
