package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

// Func is a projection: a pure function from a State to a small,
// comparable key. Go's structural typing means any `func(*State) K`
// value already satisfies this without an explicit interface — Func is
// just a name for the shape, used where a named type reads better.
type Func[K comparable] func(*puzzle.State) K

// Pair is the product-combinator key: PairProj<A,B> from §4.4.
type Pair[A, B comparable] struct {
	A A
	B B
}

// Combine builds the product projection of two projections.
func Combine[A, B comparable](a Func[A], b Func[B]) Func[Pair[A, B]] {
	return func(s *puzzle.State) Pair[A, B] {
		return Pair[A, B]{A: a(s), B: b(s)}
	}
}
