package puzzle

// Turns is how far a face is turned in one Move.
type Turns int

const (
	Clockwise1 Turns = iota // 90° clockwise
	Double                  // 180°
	Counter1                // 90° counter-clockwise
)

// repetitions is how many times the single-step clockwise rotation is
// applied to realize a given Turns value.
func (t Turns) repetitions() int {
	switch t {
	case Clockwise1:
		return 1
	case Double:
		return 2
	default: // Counter1
		return 3
	}
}

func (t Turns) suffix() string {
	switch t {
	case Clockwise1:
		return ""
	case Double:
		return "2"
	default:
		return "'"
	}
}

// Move is a single face turn.
type Move struct {
	Face  Face
	Turns Turns
}

// Inverse returns the turn-inverted Move: Clockwise and Counter swap,
// Double is its own inverse.
func (m Move) Inverse() Move {
	switch m.Turns {
	case Clockwise1:
		return Move{Face: m.Face, Turns: Counter1}
	case Counter1:
		return Move{Face: m.Face, Turns: Clockwise1}
	default:
		return m
	}
}

func (m Move) String() string {
	return m.Face.String() + m.Turns.suffix()
}

// cornerCycle and edgeCycle list the face-local slots in content-flow
// order: the sticker at cornerCycle[i] moves to cornerCycle[i+1] (mod 4)
// under one clockwise face turn.
var cornerCycle = [4]int{0, 2, 7, 5}
var edgeCycle = [4]int{1, 4, 6, 3}

// ringNeighbors is the hard-coded adjacency table from §4.1: for each
// face, the 3 slots (absolute index, face_base+slot) contributed by
// each of its four neighbors, in clockwise order starting at the
// top-left-back neighbor.
var ringNeighbors = [NumFaces][4][3]int{
	U: {
		{face(B) + 2, face(B) + 1, face(B) + 0},
		{face(R) + 2, face(R) + 1, face(R) + 0},
		{face(F) + 2, face(F) + 1, face(F) + 0},
		{face(L) + 2, face(L) + 1, face(L) + 0},
	},
	D: {
		{face(F) + 5, face(F) + 6, face(F) + 7},
		{face(R) + 5, face(R) + 6, face(R) + 7},
		{face(B) + 5, face(B) + 6, face(B) + 7},
		{face(L) + 5, face(L) + 6, face(L) + 7},
	},
	F: {
		{face(U) + 5, face(U) + 6, face(U) + 7},
		{face(R) + 0, face(R) + 3, face(R) + 5},
		{face(D) + 2, face(D) + 1, face(D) + 0},
		{face(L) + 7, face(L) + 4, face(L) + 2},
	},
	B: {
		{face(U) + 2, face(U) + 1, face(U) + 0},
		{face(L) + 0, face(L) + 3, face(L) + 5},
		{face(D) + 5, face(D) + 6, face(D) + 7},
		{face(R) + 7, face(R) + 4, face(R) + 2},
	},
	R: {
		{face(U) + 7, face(U) + 4, face(U) + 2},
		{face(B) + 0, face(B) + 3, face(B) + 5},
		{face(D) + 7, face(D) + 4, face(D) + 2},
		{face(F) + 7, face(F) + 4, face(F) + 2},
	},
	L: {
		{face(U) + 0, face(U) + 3, face(U) + 5},
		{face(F) + 0, face(F) + 3, face(F) + 5},
		{face(D) + 0, face(D) + 3, face(D) + 5},
		{face(B) + 7, face(B) + 4, face(B) + 2},
	},
}

func face(f Face) int { return int(f) * 8 }

// rotate4 advances the contents at positions[0]->positions[1]->
// positions[2]->positions[3]->positions[0] by one step.
func rotate4(s *State, positions [4]int) {
	last := s[positions[3]]
	s[positions[3]] = s[positions[2]]
	s[positions[2]] = s[positions[1]]
	s[positions[1]] = s[positions[0]]
	s[positions[0]] = last
}

func applyFaceOnce(s *State, f Face) {
	base := face(f)
	var corners, edges [4]int
	for i, slot := range cornerCycle {
		corners[i] = base + slot
	}
	for i, slot := range edgeCycle {
		edges[i] = base + slot
	}
	rotate4(s, corners)
	rotate4(s, edges)
}

func applyRingOnce(s *State, f Face) {
	neighbors := ringNeighbors[f]
	for j := 0; j < 3; j++ {
		rotate4(s, [4]int{neighbors[0][j], neighbors[1][j], neighbors[2][j], neighbors[3][j]})
	}
}

// Apply mutates s in place, turning m.Face by m.Turns.
func (m Move) Apply(s *State) {
	for i := 0; i < m.Turns.repetitions(); i++ {
		applyFaceOnce(s, m.Face)
		applyRingOnce(s, m.Face)
	}
}

// AllMoves lists the 18 moves in canonical order: face order U,D,F,B,R,L,
// each with turns in order Clockwise, Double, Counter.
var AllMoves = func() [18]Move {
	var moves [18]Move
	faces := [NumFaces]Face{U, D, F, B, R, L}
	turns := [3]Turns{Clockwise1, Double, Counter1}
	i := 0
	for _, f := range faces {
		for _, t := range turns {
			moves[i] = Move{Face: f, Turns: t}
			i++
		}
	}
	return moves
}()
