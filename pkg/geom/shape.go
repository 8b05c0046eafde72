// pkg/geom/shape.go
package geom

import "math"

// ShapeKind selects how a Shape is interpreted.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Rectangle
)

func (k ShapeKind) String() string {
	if k == Rectangle {
		return "rectangle"
	}
	return "circle"
}

// Shape is a hitbox or a piece of level geometry. Circles are positioned by
// their center, rectangles by their top-left corner and are axis-aligned.
type Shape struct {
	Kind   ShapeKind
	Pos    Vector2
	Radius float64
	Width  float64
	Height float64
}

// NewCircle returns a circle centered at (x, y).
func NewCircle(x, y, radius float64) Shape {
	return Shape{Kind: Circle, Pos: Vector2{x, y}, Radius: radius}
}

// NewRect returns an axis-aligned rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h float64) Shape {
	return Shape{Kind: Rectangle, Pos: Vector2{x, y}, Width: w, Height: h}
}

// Translate returns s moved by (dx, dy).
func (s Shape) Translate(dx, dy float64) Shape {
	s.Pos = Vector2{s.Pos.X + dx, s.Pos.Y + dy}
	return s
}

// At returns s moved so that its anchor (center or top-left) is p.
func (s Shape) At(p Vector2) Shape {
	s.Pos = p
	return s
}

// Center returns the geometric center of s.
func (s Shape) Center() Vector2 {
	if s.Kind == Rectangle {
		return Vector2{s.Pos.X + s.Width/2, s.Pos.Y + s.Height/2}
	}
	return s.Pos
}

// Bounds returns the axis-aligned bounding box as min and max corners.
func (s Shape) Bounds() (lo, hi Vector2) {
	if s.Kind == Rectangle {
		return s.Pos, Vector2{s.Pos.X + s.Width, s.Pos.Y + s.Height}
	}
	return Vector2{s.Pos.X - s.Radius, s.Pos.Y - s.Radius}, Vector2{s.Pos.X + s.Radius, s.Pos.Y + s.Radius}
}

// Scale grows the shape's size by factor around its anchor.
func (s Shape) Scale(factor float64) Shape {
	if s.Kind == Rectangle {
		s.Width *= factor
		s.Height *= factor
		return s
	}
	s.Radius *= factor
	return s
}

// CheckCollision reports whether a and b overlap. Edges and tangency do not
// count as overlap. The function is pure.
func CheckCollision(a, b Shape) bool {
	switch {
	case a.Kind == Circle && b.Kind == Circle:
		return a.Pos.Distance(b.Pos) < a.Radius+b.Radius
	case a.Kind == Rectangle && b.Kind == Rectangle:
		return a.Pos.X < b.Pos.X+b.Width &&
			a.Pos.X+a.Width > b.Pos.X &&
			a.Pos.Y < b.Pos.Y+b.Height &&
			a.Pos.Y+a.Height > b.Pos.Y
	case a.Kind == Circle:
		return circleRect(a, b)
	default:
		return circleRect(b, a)
	}
}

func circleRect(c, r Shape) bool {
	nx := clamp(c.Pos.X, r.Pos.X, r.Pos.X+r.Width)
	ny := clamp(c.Pos.Y, r.Pos.Y, r.Pos.Y+r.Height)
	dx := c.Pos.X - nx
	dy := c.Pos.Y - ny
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// ContainsPoint reports whether p lies strictly inside s.
func (s Shape) ContainsPoint(p Vector2) bool {
	if s.Kind == Rectangle {
		return p.X > s.Pos.X && p.X < s.Pos.X+s.Width && p.Y > s.Pos.Y && p.Y < s.Pos.Y+s.Height
	}
	return p.Distance(s.Pos) < s.Radius
}

// RayIntersect returns the smallest t >= 0 such that origin + dir*t lies on the
// boundary of s. dir need not be normalized; t is expressed in multiples of dir.
func RayIntersect(origin, dir Vector2, s Shape) (float64, bool) {
	if dir.IsZero() {
		return 0, false
	}
	if s.Kind == Rectangle {
		return rayRect(origin, dir, s)
	}
	return rayCircle(origin, dir, s)
}

func rayCircle(o, d Vector2, c Shape) (float64, bool) {
	f := o.Sub(c.Pos)
	a := d.Dot(d)
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - c.Radius*c.Radius
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 >= 0 {
		return t1, true
	}
	if t2 >= 0 {
		// origin is inside the circle
		return 0, true
	}
	return 0, false
}

// slab test
func rayRect(o, d Vector2, r Shape) (float64, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	lo := [2]float64{r.Pos.X, r.Pos.Y}
	hi := [2]float64{r.Pos.X + r.Width, r.Pos.Y + r.Height}
	org := [2]float64{o.X, o.Y}
	dir := [2]float64{d.X, d.Y}
	for i := 0; i < 2; i++ {
		if dir[i] == 0 {
			if org[i] < lo[i] || org[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - org[i]) / dir[i]
		t2 := (hi[i] - org[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// SegmentBlocked reports whether the segment from -> to crosses any shape.
func SegmentBlocked(from, to Vector2, shapes []Shape) bool {
	d := to.Sub(from)
	for _, s := range shapes {
		if t, ok := RayIntersect(from, d, s); ok && t <= 1 {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
