// internal/component/movement.go
package component

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

// Steering — компонент движения к цели.
type Steering struct {
	Target       geom.Vector2
	TargetRadius float64
	Speed        float64 // units per ms
	Stuck        float64 // ms of blocked movement
	// Targeting=false означает, что цель задаётся извне и авто-смены цели нет.
	Targeting bool
	// Ghosted entities ignore obstacles entirely.
	Ghosted bool
}

// Desired returns this tick's displacement toward the target, never
// overshooting it.
func (s *Steering) Desired(pos geom.Vector2, dt float64) geom.Vector2 {
	to := s.Target.Sub(pos)
	dist := to.Length()
	step := s.Speed * dt
	if dist <= step {
		return to
	}
	return to.Normalize().Mul(step)
}

// Arrived reports whether pos is within the arrival distance of the target.
func (s *Steering) Arrived(pos geom.Vector2) bool {
	return pos.Distance(s.Target) < config.ArrivalDistance
}

// TrackMovement updates the stuck timer from the desired and applied
// displacement. It returns true once the timer passes the threshold, and
// resets the timer when it does.
func (s *Steering) TrackMovement(desired, applied geom.Vector2, dt float64) bool {
	blocked := math.Abs(applied.X) < math.Abs(desired.X) || math.Abs(applied.Y) < math.Abs(desired.Y)
	if desired.IsZero() || !blocked {
		s.Stuck = 0
		return false
	}
	s.Stuck += dt
	if s.Stuck > config.StuckThreshold {
		s.Stuck = 0
		return true
	}
	return false
}

// Retarget picks a new target within ±90° of the bearing to player, at a
// uniformly random distance up to TargetRadius.
func (s *Steering) Retarget(from, player geom.Vector2, rng *utils.PRNGService) {
	bearing := player.Sub(from).Angle()
	angle := bearing + rng.AngleOffset(math.Pi/2)
	dist := rng.Range(0, s.TargetRadius)
	s.Target = from.Add(geom.FromAngle(angle).Mul(dist))
}
