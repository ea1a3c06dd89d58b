package puzzle

import (
	"fmt"
	"strings"
)

// Algo is an ordered sequence of Moves.
type Algo []Move

// ParseMoveError reports an unrecognized token encountered while
// parsing an Algo string.
type ParseMoveError struct {
	Token string
}

func (e *ParseMoveError) Error() string {
	return fmt.Sprintf("unrecognized move token %q", e.Token)
}

var faceLetters = map[byte]Face{
	'U': U, 'D': D, 'F': F, 'B': B, 'R': R, 'L': L,
}

// ParseMove parses a single move token: a face letter optionally
// followed by '2' (Double) or '\'' (Counter); no suffix means Clockwise.
func ParseMove(token string) (Move, error) {
	if len(token) < 1 || len(token) > 2 {
		return Move{}, &ParseMoveError{Token: token}
	}
	f, ok := faceLetters[token[0]]
	if !ok {
		return Move{}, &ParseMoveError{Token: token}
	}
	turns := Clockwise1
	if len(token) == 2 {
		switch token[1] {
		case '2':
			turns = Double
		case '\'':
			turns = Counter1
		default:
			return Move{}, &ParseMoveError{Token: token}
		}
	}
	return Move{Face: f, Turns: turns}, nil
}

// ParseAlgo parses whitespace-separated move tokens. An empty (or
// all-whitespace) string yields an empty Algo.
func ParseAlgo(s string) (Algo, error) {
	fields := strings.Fields(s)
	algo := make(Algo, 0, len(fields))
	for _, tok := range fields {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, err
		}
		algo = append(algo, m)
	}
	return algo, nil
}

// String formats the Algo as space-separated move tokens, no trailing
// whitespace.
func (a Algo) String() string {
	tokens := make([]string, len(a))
	for i, m := range a {
		tokens[i] = m.String()
	}
	return strings.Join(tokens, " ")
}

// Apply applies each move in order, left to right, mutating s.
func (a Algo) Apply(s *State) {
	for _, m := range a {
		m.Apply(s)
	}
}

// State returns the result of applying a to the solved State.
func (a Algo) State() State {
	s := Solved()
	a.Apply(&s)
	return s
}

// Inverse returns the Algo that undoes a: moves reversed in order, each
// individually inverted.
func (a Algo) Inverse() Algo {
	inv := make(Algo, len(a))
	for i, m := range a {
		inv[len(a)-1-i] = m.Inverse()
	}
	return inv
}
