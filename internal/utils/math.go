// internal/utils/math.go
package utils

import "math"

// Lerp does a plain linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Easing maps linear progress in [0,1] to eased progress.
type Easing int

const (
	EaseLinear Easing = iota
	EaseInOutQuad
	EaseOutCubic
	EaseInCubic
)

// Apply evaluates the easing curve at t, clamped to [0,1].
func (e Easing) Apply(t float64) float64 {
	t = Clamp(t, 0, 1)
	switch e {
	case EaseInOutQuad:
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	case EaseOutCubic:
		return 1 - math.Pow(1-t, 3)
	case EaseInCubic:
		return t * t * t
	}
	return t
}
