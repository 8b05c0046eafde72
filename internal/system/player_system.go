// internal/system/player_system.go
package system

import (
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/pkg/geom"
)

// PlayerInput is one tick of player intent, filled in by a front-end.
type PlayerInput struct {
	Move geom.Vector2 // direction; length is ignored
	Aim  geom.Vector2 // world point to aim at
	Fire bool

	// AutoAim aims at the nearest enemy and ignores Aim.
	AutoAim bool
}

// PlayerSystem двигает игрока, стреляет и ведёт учёт валюты за убийства.
type PlayerSystem struct {
	world *entity.World
	State component.PlayerStateComponent
}

func NewPlayerSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlayerSystem {
	ps := &PlayerSystem{world: world}
	eventDispatcher.Subscribe(event.EnemyKilled, ps)
	return ps
}

func (s *PlayerSystem) Update(deltaTime float64, in PlayerInput) {
	p := s.world.Player
	if p == nil || p.Dead() {
		return
	}
	p.Tick(deltaTime)
	p.Move(s.world, in.Move, deltaTime)

	target := in.Aim
	if in.AutoAim {
		e := s.world.NearestEnemy(p.Pos)
		if e == nil {
			return
		}
		target = e.Center()
	}
	if d := target.Sub(p.Pos); !d.IsZero() {
		p.Aim = d.Angle()
	}
	if in.Fire || in.AutoAim {
		p.Shoot(s.world)
	}
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	kill, ok := e.Data.(event.KillData)
	if !ok {
		return
	}
	s.State.Currency += kill.Reward
	s.State.Kills++
}

// ResetSession zeroes the session counters.
func (s *PlayerSystem) ResetSession() {
	s.State = component.PlayerStateComponent{}
}
