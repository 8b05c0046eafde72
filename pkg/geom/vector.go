// pkg/geom/vector.go
package geom

import "math"

// Vector2 is a 2D point or displacement. Methods never mutate the receiver.
type Vector2 struct {
	X, Y float64
}

// V is shorthand for Vector2{x, y}.
func V(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// FromAngle returns the unit vector pointing along angle (radians).
func FromAngle(angle float64) Vector2 {
	return Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (a Vector2) Add(b Vector2) Vector2      { return Vector2{a.X + b.X, a.Y + b.Y} }
func (a Vector2) Sub(b Vector2) Vector2      { return Vector2{a.X - b.X, a.Y - b.Y} }
func (a Vector2) Mul(s float64) Vector2      { return Vector2{a.X * s, a.Y * s} }
func (a Vector2) Dot(b Vector2) float64      { return a.X*b.X + a.Y*b.Y }
func (a Vector2) Length() float64            { return math.Hypot(a.X, a.Y) }
func (a Vector2) Distance(b Vector2) float64 { return a.Sub(b).Length() }

// Normalize returns the unit vector of a. A zero vector normalizes to zero,
// which callers treat as "no movement".
func (a Vector2) Normalize() Vector2 {
	l := a.Length()
	if l == 0 {
		return Vector2{}
	}
	return Vector2{a.X / l, a.Y / l}
}

// Angle returns the bearing of a in radians.
func (a Vector2) Angle() float64 { return math.Atan2(a.Y, a.X) }

// IsZero reports whether both components are zero.
func (a Vector2) IsZero() bool { return a.X == 0 && a.Y == 0 }

// IsNaN reports whether either component is NaN.
func (a Vector2) IsNaN() bool { return math.IsNaN(a.X) || math.IsNaN(a.Y) }
