package geom

import "testing"

func TestResolveMoveFree(t *testing.T) {
	res := ResolveMove(NewRect(0, 0, 10, 10), 3, 4, nil)
	if res.DX != 3 || res.DY != 4 || res.Outcome != OutcomeFree {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Blocked(3, 4) {
		t.Fatalf("free move reported as blocked")
	}
}

func TestResolveMoveConcaveCornerBlocksBothAxes(t *testing.T) {
	self := NewRect(0, 0, 10, 10)
	obstacles := []Shape{
		NewRect(10, 0, 10, 10),
		NewRect(0, 10, 10, 10),
	}
	res := ResolveMove(self, 5, 5, obstacles)
	if res.DX != 0 || res.DY != 0 {
		t.Fatalf("expected no movement into the corner, got (%f, %f)", res.DX, res.DY)
	}
	if res.Outcome != OutcomeBothBlocked {
		t.Fatalf("expected both-blocked outcome, got %s", res.Outcome)
	}
	if !res.Blocked(5, 5) {
		t.Fatalf("expected the move to be reported as blocked")
	}
}

func TestResolveMoveSlidesAlongWall(t *testing.T) {
	self := NewRect(0, 0, 10, 10)
	wall := []Shape{NewRect(12, -100, 10, 200)}
	res := ResolveMove(self, 5, 5, wall)
	if res.DX != 0 || res.DY != 5 {
		t.Fatalf("expected to slide along Y, got (%f, %f)", res.DX, res.DY)
	}
	if res.Outcome != OutcomeFree {
		t.Fatalf("single-axis block must not use the tie-break, got %s", res.Outcome)
	}
}

func TestResolveMoveTwoPostsAllowsX(t *testing.T) {
	// The first post closes X; the second closes Y but the diagonal clears
	// it and only the Y candidate touches it, so X reopens.
	self := NewRect(0, 0, 10, 10)
	obstacles := []Shape{
		NewRect(12, 0, 5, 3),
		NewRect(0, 12, 3, 5),
	}
	res := ResolveMove(self, 5, 5, obstacles)
	if res.Outcome != OutcomeXOnly {
		t.Fatalf("outcome = %s, want x-only", res.Outcome)
	}
	if res.DX != 5 || res.DY != 0 || res.BlockedX || !res.BlockedY {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestResolveMoveTwoPostsAllowsY(t *testing.T) {
	self := NewRect(0, 0, 10, 10)
	obstacles := []Shape{
		NewRect(0, 12, 3, 5),
		NewRect(12, 0, 5, 3),
	}
	res := ResolveMove(self, 5, 5, obstacles)
	if res.Outcome != OutcomeYOnly {
		t.Fatalf("outcome = %s, want y-only", res.Outcome)
	}
	if res.DX != 0 || res.DY != 5 || !res.BlockedX || res.BlockedY {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestResolveMoveFallbackKeepsBothClosed(t *testing.T) {
	// The corner closes both axes; a later obstacle touching neither
	// candidate lands in the conservative branch.
	self := NewRect(0, 0, 10, 10)
	obstacles := []Shape{
		NewRect(10, 0, 10, 10),
		NewRect(0, 10, 10, 10),
		NewRect(500, 500, 5, 5),
	}
	res := ResolveMove(self, 5, 5, obstacles)
	if res.Outcome != OutcomeBothBlockedFallback {
		t.Fatalf("outcome = %s, want both-blocked-fallback", res.Outcome)
	}
	if res.DX != 0 || res.DY != 0 {
		t.Fatalf("expected no movement, got (%f, %f)", res.DX, res.DY)
	}
}

func TestResolveMoveStraightMoveSkipsTieBreak(t *testing.T) {
	self := NewRect(0, 0, 10, 10)
	res := ResolveMove(self, 5, 0, []Shape{NewRect(12, 0, 5, 3), NewRect(500, 500, 5, 5)})
	if res.Outcome != OutcomeFree || res.DX != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestResolveMoveCircleAgainstCircle(t *testing.T) {
	self := NewCircle(0, 0, 5)
	res := ResolveMove(self, 4, 0, []Shape{NewCircle(12, 0, 5)})
	if res.DX != 0 || !res.BlockedX {
		t.Fatalf("expected X blocked, got %+v", res)
	}
	res = ResolveMove(self, 1, 0, []Shape{NewCircle(12, 0, 5)})
	if res.DX != 1 {
		t.Fatalf("expected free move short of contact, got %+v", res)
	}
}

func TestResolveMoveZeroDisplacement(t *testing.T) {
	res := ResolveMove(NewCircle(0, 0, 5), 0, 0, []Shape{NewRect(100, 100, 1, 1)})
	if res.DX != 0 || res.DY != 0 || res.Blocked(0, 0) {
		t.Fatalf("zero move must be a no-op, got %+v", res)
	}
}
