// pkg/geom/resolver.go
package geom

// Outcome records which branch of the axis resolution was taken.
type Outcome int

const (
	// OutcomeFree: no diagonal tie-break was needed; each axis was decided
	// by its own probe.
	OutcomeFree Outcome = iota
	// OutcomeXOnly: diagonal move, both axes blocked, and the obstacle that
	// closed the second axis only touches the Y candidate.
	OutcomeXOnly
	// OutcomeYOnly: as OutcomeXOnly with the axes swapped.
	OutcomeYOnly
	// OutcomeBothBlocked: diagonal move whose combined candidate also hits
	// the obstacle, or whose isolated re-probes both hit it.
	OutcomeBothBlocked
	// OutcomeBothBlockedFallback: both isolated re-probes against the
	// obstacle came back clear; both axes stay closed.
	OutcomeBothBlockedFallback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeXOnly:
		return "x-only"
	case OutcomeYOnly:
		return "y-only"
	case OutcomeBothBlocked:
		return "both-blocked"
	case OutcomeBothBlockedFallback:
		return "both-blocked-fallback"
	}
	return "free"
}

// MoveResult is the outcome of ResolveMove.
type MoveResult struct {
	DX, DY   float64 // displacement actually allowed
	BlockedX bool
	BlockedY bool
	Outcome  Outcome
}

// Blocked reports whether any requested, non-zero axis was refused.
func (r MoveResult) Blocked(dx, dy float64) bool {
	return (dx != 0 && r.DX != dx) || (dy != 0 && r.DY != dy)
}

// ResolveMove decides which axes of the displacement (dx, dy) self may take
// without overlapping any obstacle. Obstacles are checked one at a time; when
// a diagonal move has both axes closed after obstacle o, the tie-break is
// decided against o alone. A blocked axis is simply not applied, so the
// result is always finite when dx and dy are.
func ResolveMove(self Shape, dx, dy float64, obstacles []Shape) MoveResult {
	candX := self.Translate(dx, 0)
	candY := self.Translate(0, dy)
	candXY := self.Translate(dx, dy)
	diagonal := dx != 0 && dy != 0

	canMoveX, canMoveY := true, true
	outcome := OutcomeFree
	for _, o := range obstacles {
		if CheckCollision(candX, o) {
			canMoveX = false
		}
		if CheckCollision(candY, o) {
			canMoveY = false
		}
		if !diagonal || canMoveX || canMoveY {
			continue
		}

		if CheckCollision(candXY, o) {
			outcome = OutcomeBothBlocked
			continue
		}
		canMoveX = !CheckCollision(candX, o)
		canMoveY = !CheckCollision(candY, o)
		switch {
		case canMoveX && canMoveY:
			// neither axis touches o on its own: stay put rather than guess
			canMoveX, canMoveY = false, false
			outcome = OutcomeBothBlockedFallback
		case canMoveX:
			outcome = OutcomeXOnly
		case canMoveY:
			outcome = OutcomeYOnly
		default:
			outcome = OutcomeBothBlocked
		}
	}

	res := MoveResult{BlockedX: !canMoveX, BlockedY: !canMoveY, Outcome: outcome}
	if canMoveX {
		res.DX = dx
	}
	if canMoveY {
		res.DY = dy
	}
	return res
}
