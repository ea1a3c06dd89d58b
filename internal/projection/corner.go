package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

func faceCode(f puzzle.Face) byte {
	return byte(f)
}

// cornerSlots are the four corner-carrying slots of a face, in the
// fixed order CornerProj packs them.
var cornerSlots = [4]int{0, 2, 5, 7}

// cornerCarryingFaces are the four faces CornerProj tracks corner
// labels for.
var cornerCarryingFaces = [4]puzzle.Face{puzzle.U, puzzle.D, puzzle.F, puzzle.B}

// CornerKey tracks, for each of U/D/F/B, the face labels sitting at
// that face's four corner slots, packed two labels per byte (8 bytes),
// plus the embedded LockKey per §4.4.
type CornerKey struct {
	Lock    LockKey
	Corners [8]byte
}

// Corner projects a State to its CornerKey.
func Corner(s *puzzle.State) CornerKey {
	var key CornerKey
	key.Lock = Lock(s)
	byteIdx := 0
	for _, f := range cornerCarryingFaces {
		face := s.Face(f)
		for pair := 0; pair < 2; pair++ {
			lo := faceCode(face[cornerSlots[pair*2]].Face)
			hi := faceCode(face[cornerSlots[pair*2+1]].Face)
			key.Corners[byteIdx] = lo | hi<<4
			byteIdx++
		}
	}
	return key
}

// cornerIndex is the fixed (UD-slot, FB-slot, RL-slot) absolute index
// triple for each of the eight corners, per §4.4's canonical table.
type cornerIndex struct {
	ud, fb, rl int
}

var cornerIndices = [8]cornerIndex{
	{0, 26, 40},
	{2, 24, 34},
	{5, 16, 42},
	{7, 18, 32},
	{13, 31, 45},
	{15, 29, 39},
	{8, 21, 47},
	{10, 23, 37},
}
