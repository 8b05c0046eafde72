// internal/entity/spawner.go
package entity

import (
	"log"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

// Spawner is a non-damageable factory bound to a level point. It spawns
// enemies of Kind every SpawnRate ms while SpawnsRemaining > 0.
type Spawner struct {
	ID              types.EntityID
	Kind            defs.EnemyKind
	Pos             geom.Vector2
	SpawnRate       float64
	BaseRate        float64
	SpawnsRemaining int
	Scale           defs.ScaleFactors

	timer float64
}

func NewSpawner(w *World, kind defs.EnemyKind, pos geom.Vector2) *Spawner {
	if _, err := defs.LookupEnemy(kind); err != nil {
		log.Printf("spawner at %v: %v; spawner stays inert", pos, err)
	}
	return &Spawner{
		ID:        w.NewEntity(),
		Kind:      kind,
		Pos:       pos,
		SpawnRate: config.DefaultSpawnRate,
		BaseRate:  config.DefaultSpawnRate,
		Scale:     defs.Unit,
	}
}

// Configure arms the spawner for a wave.
func (s *Spawner) Configure(count int, scale defs.ScaleFactors, rate float64) {
	s.SpawnsRemaining = count
	s.Scale = scale.Normalized()
	s.SpawnRate = s.BaseRate
	if rate > 0 {
		s.SpawnRate = rate
	}
	s.timer = 0
}

// Update spawns at most one enemy and returns it, or nil.
func (s *Spawner) Update(w *World, dt float64) *Enemy {
	if s.SpawnsRemaining <= 0 {
		return nil
	}
	s.timer += dt
	if s.timer <= s.SpawnRate {
		return nil
	}

	e, err := NewEnemy(w, s.Kind, s.Pos)
	if err != nil {
		log.Printf("spawner %d: %v", s.ID, err)
		s.SpawnsRemaining = 0
		return nil
	}
	e.ApplyScale(s.Scale)
	w.AddEnemy(e)
	s.timer = 0
	s.SpawnsRemaining--

	if e.Def.Boss {
		w.Events.Dispatch(event.Event{Type: event.BossSpawned, Data: event.BossData{ID: e.ID, Pos: e.Center()}})
		if e.Def.Music != "" {
			w.Sound.PlayMusic(e.Def.Music)
		}
	}
	return e
}
