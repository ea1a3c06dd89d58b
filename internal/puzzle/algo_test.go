package puzzle

import "testing"

func TestParseMoveErrors(t *testing.T) {
	for _, bad := range []string{"R3 U", "RU", "X", "R''"} {
		if _, err := ParseAlgo(bad); err == nil {
			t.Errorf("ParseAlgo(%q) succeeded, want error", bad)
		}
	}
}

func TestParseAlgoEmpty(t *testing.T) {
	a, err := ParseAlgo("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != 0 {
		t.Errorf("got %d moves, want 0", len(a))
	}
}

func TestAlgoStringFormat(t *testing.T) {
	a := Algo{
		{Face: R, Turns: Counter1},
		{Face: U, Turns: Clockwise1},
		{Face: D, Turns: Counter1},
		{Face: F, Turns: Double},
		{Face: L, Turns: Counter1},
		{Face: B, Turns: Double},
	}
	got := a.String()
	want := "R' U D' F2 L' B2"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAlgoRoundTrip(t *testing.T) {
	for _, s := range []string{"", "U", "R' U D' F2 L' B2", "U D F B R L U2 D2 F2 B2 R2 L2 U' D' F' B' R' L'"} {
		a, err := ParseAlgo(s)
		if err != nil {
			t.Fatalf("ParseAlgo(%q): %v", s, err)
		}
		roundTripped, err := ParseAlgo(a.String())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", a.String(), err)
		}
		if len(roundTripped) != len(a) {
			t.Fatalf("round trip length mismatch for %q", s)
		}
		for i := range a {
			if a[i] != roundTripped[i] {
				t.Errorf("round trip mismatch at %d for %q", i, s)
			}
		}
	}
}
