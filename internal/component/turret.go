// internal/component/turret.go
package component

import (
	"math"

	"go-arena-shooter/internal/utils"
)

// Aim отвечает за плавный поворот ствола или самонаводящегося снаряда.
type Aim struct {
	// Angle - текущий угол в радианах.
	Angle float64
	// TurnRate - скорость поворота в радианах за мс. 0 means instant.
	TurnRate float64
}

// TurnToward rotates Angle toward target by at most TurnRate*dt.
func (a *Aim) TurnToward(target, dt float64) {
	if a.TurnRate <= 0 {
		a.Angle = utils.NormalizeAngle(target)
		return
	}
	diff := utils.NormalizeAngle(target - a.Angle)
	max := a.TurnRate * dt
	if math.Abs(diff) <= max {
		a.Angle = utils.NormalizeAngle(target)
		return
	}
	a.Angle = utils.NormalizeAngle(a.Angle + math.Copysign(max, diff))
}
