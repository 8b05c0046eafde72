// internal/system/movement.go
package system

import (
	"go-arena-shooter/internal/entity"
)

// EnemySystem runs spawners, then moves every enemy and applies contact
// damage. It does nothing while the world has enemies paused.
type EnemySystem struct {
	world *entity.World
}

func NewEnemySystem(world *entity.World) *EnemySystem {
	return &EnemySystem{world: world}
}

func (s *EnemySystem) Update(deltaTime float64) {
	w := s.world
	if w.EnemiesPaused {
		return
	}

	// enemies spawned this pass start moving next tick
	n := len(w.Enemies)
	for _, sp := range w.Spawners {
		sp.Update(w, deltaTime)
	}

	for i := 0; i < n; i++ {
		e := w.Enemies[i]
		e.Update(w, deltaTime)
		e.TouchDamage(w)
	}
	w.ReapEnemies()
}
