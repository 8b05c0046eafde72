package geom

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	n := Vector2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Fatalf("expected zero vector, got %+v", n)
	}
	if n.IsNaN() {
		t.Fatalf("normalize of zero produced NaN")
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := V(3, 4)
	if a.Length() != 5 {
		t.Fatalf("expected length 5, got %f", a.Length())
	}
	n := a.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Fatalf("expected unit length, got %f", n.Length())
	}
	if d := a.Distance(V(0, 0)); d != 5 {
		t.Fatalf("expected distance 5, got %f", d)
	}
	if got := a.Add(V(1, 1)).Sub(V(2, 2)).Mul(2); got != V(4, 6) {
		t.Fatalf("unexpected arithmetic result %+v", got)
	}
	if a.Dot(V(1, 0)) != 3 {
		t.Fatalf("unexpected dot product")
	}
}

func TestCircleCollisionStrictAtTangency(t *testing.T) {
	cases := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"tangent", NewCircle(0, 0, 2), NewCircle(3, 4, 3), false},
		{"overlap", NewCircle(0, 0, 2), NewCircle(3, 4, 3.01), true},
		{"apart", NewCircle(0, 0, 1), NewCircle(10, 0, 1), false},
		{"concentric", NewCircle(5, 5, 1), NewCircle(5, 5, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CheckCollision(tc.a, tc.b); got != tc.want {
				t.Fatalf("CheckCollision = %v, want %v", got, tc.want)
			}
			if got := CheckCollision(tc.b, tc.a); got != tc.want {
				t.Fatalf("CheckCollision not symmetric")
			}
		})
	}
}

func TestCircleCollisionMatchesDistanceRule(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float64(i%17) - 8
		y := float64(i%23) - 11
		r1 := 1 + float64(i%5)
		r2 := 0.5 + float64(i%7)
		a := NewCircle(0, 0, r1)
		b := NewCircle(x, y, r2)
		want := V(0, 0).Distance(V(x, y)) < r1+r2
		if got := CheckCollision(a, b); got != want {
			t.Fatalf("case %d: got %v want %v", i, got, want)
		}
	}
}

func TestRectCollisionEdgesDoNotOverlap(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if CheckCollision(a, NewRect(10, 0, 10, 10)) {
		t.Fatalf("rectangles sharing an edge must not collide")
	}
	if !CheckCollision(a, NewRect(9.5, 9.5, 10, 10)) {
		t.Fatalf("overlapping rectangles must collide")
	}
}

func TestCircleRectCollision(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !CheckCollision(NewCircle(12, 5, 2.5), r) {
		t.Fatalf("circle reaching into the rectangle side must collide")
	}
	if CheckCollision(NewCircle(12, 5, 2), r) {
		t.Fatalf("circle touching the side must not collide")
	}
	// corner: nearest point is (10,10), distance sqrt(8)
	if CheckCollision(NewCircle(12, 12, 2.8), r) {
		t.Fatalf("circle outside the corner must not collide")
	}
	if !CheckCollision(r, NewCircle(12, 12, 2.9)) {
		t.Fatalf("circle overlapping the corner must collide")
	}
}

func TestRayIntersect(t *testing.T) {
	tHit, ok := RayIntersect(V(0, 5), V(1, 0), NewRect(10, 0, 10, 10))
	if !ok || math.Abs(tHit-10) > 1e-9 {
		t.Fatalf("expected hit at t=10, got %f ok=%v", tHit, ok)
	}
	if _, ok := RayIntersect(V(0, 50), V(1, 0), NewRect(10, 0, 10, 10)); ok {
		t.Fatalf("ray passing above must miss")
	}
	tHit, ok = RayIntersect(V(0, 0), V(1, 0), NewCircle(10, 0, 2))
	if !ok || math.Abs(tHit-8) > 1e-9 {
		t.Fatalf("expected circle hit at t=8, got %f ok=%v", tHit, ok)
	}
	if _, ok := RayIntersect(V(0, 0), V(-1, 0), NewCircle(10, 0, 2)); ok {
		t.Fatalf("circle behind the ray must miss")
	}
}

func TestSegmentBlocked(t *testing.T) {
	wall := []Shape{NewRect(40, -10, 5, 20)}
	if !SegmentBlocked(V(0, 0), V(100, 0), wall) {
		t.Fatalf("segment through the wall must be blocked")
	}
	if SegmentBlocked(V(0, 0), V(30, 0), wall) {
		t.Fatalf("segment ending before the wall must be clear")
	}
}
