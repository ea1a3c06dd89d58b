// Package projection implements the locky puzzle's family of
// projections: pure functions from a puzzle.State to a small,
// byte-packed, comparable key. Keys are plain structs usable directly
// as Go map keys — no separate Hash/Eq machinery is needed the way a
// Rust `Clone + Eq + Hash` trait bound would require, since Go map keys
// only need to satisfy `comparable`.
package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

// directionCode packs a Direction into the 2-bit code the projections
// use: Clockwise=0, Counter=1, Neutral=2.
func directionCode(d puzzle.Direction) byte {
	switch d {
	case puzzle.Clockwise:
		return 0
	case puzzle.Counter:
		return 1
	default:
		return 2
	}
}

// edgeSlots are the four edge-carrying slots of a face, in the fixed
// order LockProj and ArrowAxisProj both pack them.
var edgeSlots = [4]int{1, 3, 4, 6}

// LockKey is the mandatory base projection: two bits per edge slot of
// each face, one byte per face, six bytes total. It fully determines
// every face's lock status, since arrow directions never migrate off
// the edge slots under any legal move sequence.
type LockKey [puzzle.NumFaces]byte

// Lock projects a State to its LockKey.
func Lock(s *puzzle.State) LockKey {
	var key LockKey
	for f := 0; f < puzzle.NumFaces; f++ {
		face := s.Face(puzzle.Face(f))
		var b byte
		for i, slot := range edgeSlots {
			b |= directionCode(face[slot].Direction) << uint(i*2)
		}
		key[f] = b
	}
	return key
}
