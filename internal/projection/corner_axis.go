package projection

import "github.com/ehrlich-b/locky/internal/puzzle"

// CornerAxisKey is the corner-axis-membership projection: one bit per
// corner indicating whether any of its three stickers carries the
// chosen axis's primary face label (U, F or R). Every corner carries
// exactly one label from each axis, so the bit tells which of the
// axis's two faces the corner piece belongs to. Eight bits (one byte),
// plus the embedded LockKey.
type CornerAxisKey struct {
	Lock LockKey
	Bits byte
}

func cornerAxisMembership(s *puzzle.State, chosen puzzle.Axis) CornerAxisKey {
	var key CornerAxisKey
	key.Lock = Lock(s)
	primary := [3]puzzle.Face{puzzle.AxisUD: puzzle.U, puzzle.AxisFB: puzzle.F, puzzle.AxisRL: puzzle.R}[chosen]
	for i, idx := range cornerIndices {
		member := s[idx.ud].Face == primary ||
			s[idx.fb].Face == primary ||
			s[idx.rl].Face == primary
		if member {
			key.Bits |= 1 << uint(i)
		}
	}
	return key
}

// CornerUd projects a State to corner/UD-axis membership.
func CornerUd(s *puzzle.State) CornerAxisKey { return cornerAxisMembership(s, puzzle.AxisUD) }

// CornerFb projects a State to corner/FB-axis membership.
func CornerFb(s *puzzle.State) CornerAxisKey { return cornerAxisMembership(s, puzzle.AxisFB) }

// CornerRl projects a State to corner/RL-axis membership.
func CornerRl(s *puzzle.State) CornerAxisKey { return cornerAxisMembership(s, puzzle.AxisRL) }
