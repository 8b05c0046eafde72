// internal/system/projectile.go
package system

import (
	"go-arena-shooter/internal/entity"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Player bullets run first, then enemy bullets; both before enemies move.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// UpdatePlayerBullets moves player bullets against the enemy population.
func (s *ProjectileSystem) UpdatePlayerBullets(deltaTime float64) {
	w := s.world
	w.Index.Rebuild(w.Enemies)
	// bullets appended during the pass (explosions) start next tick
	n := len(w.PlayerBullets)
	for i := 0; i < n; i++ {
		w.PlayerBullets[i].Update(w, deltaTime)
	}
	w.ReapEnemies()
}

// UpdateEnemyBullets moves enemy bullets against the player.
func (s *ProjectileSystem) UpdateEnemyBullets(deltaTime float64) {
	w := s.world
	n := len(w.EnemyBullets)
	for i := 0; i < n; i++ {
		w.EnemyBullets[i].Update(w, deltaTime)
	}
	w.ReapBullets()
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.UpdatePlayerBullets(deltaTime)
	s.UpdateEnemyBullets(deltaTime)
}
