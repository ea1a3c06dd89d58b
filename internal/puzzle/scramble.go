package puzzle

import (
	"errors"
	"math/rand"
)

// ErrScrambleUnreachable is returned when no sequence of the requested
// length could be found honoring the move generator and lock predicate.
// With the generator's branching factor (>=12 after pruning) this should
// not occur for any reasonable length, but the search backtracks and
// can in principle exhaust its options.
var ErrScrambleUnreachable = errors.New("puzzle: no scramble of the requested length found")

// Scramble returns a random Algo of exactly n moves, honoring the move
// generator's symmetry pruning and never turning a locked face.
func Scramble(n int, rng *rand.Rand) (Algo, error) {
	state := Solved()
	history := make(Algo, 0, n)
	if !scrambleSearch(&state, n, &history, NewMoveGenerator(), rng) {
		return nil, ErrScrambleUnreachable
	}
	return history, nil
}

func scrambleSearch(state *State, remaining int, history *Algo, gen MoveGenerator, rng *rand.Rand) bool {
	if remaining == 0 {
		return true
	}
	type option struct {
		gen MoveGenerator
		m   Move
	}
	var options []option
	for newGen, m := range gen.Successors() {
		if state.IsLocked(m.Face) {
			continue
		}
		options = append(options, option{gen: newGen, m: m})
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	for _, opt := range options {
		next := *state
		opt.m.Apply(&next)
		*history = append(*history, opt.m)
		if scrambleSearch(&next, remaining-1, history, opt.gen, rng) {
			return true
		}
		*history = (*history)[:len(*history)-1]
	}
	return false
}
