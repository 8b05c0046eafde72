// internal/entity/player.go
package entity

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

// Player is the controlled avatar: a circle centered on Pos.
type Player struct {
	ID     types.EntityID
	Pos    geom.Vector2
	Radius float64
	Speed  float64
	Health component.Health
	Flash  component.DamageFlash
	Aim    float64
	Cannon *Cannon
}

// NewPlayer places a player at pos. cannon may be nil.
func NewPlayer(w *World, pos geom.Vector2, cannon *Cannon) *Player {
	if cannon == nil {
		log.Println("player: spawned without a cannon")
	}
	return &Player{
		ID:     w.NewEntity(),
		Pos:    pos,
		Radius: config.PlayerRadius,
		Speed:  config.PlayerSpeed,
		Health: component.NewHealth(config.PlayerHealth, config.PlayerInvincibility),
		Flash:  component.DamageFlash{Duration: 150},
		Cannon: cannon,
	}
}

func (p *Player) Shape() geom.Shape { return geom.NewCircle(p.Pos.X, p.Pos.Y, p.Radius) }

func (p *Player) Dead() bool { return p.Health.Dead() }

// Tick advances the player's timers.
func (p *Player) Tick(dt float64) {
	p.Health.Tick(dt)
	p.Flash.Tick(dt)
	if p.Cannon != nil {
		p.Cannon.Tick(dt)
	}
}

// Move walks along dir (any length, normalized here) against level geometry.
func (p *Player) Move(w *World, dir geom.Vector2, dt float64) geom.MoveResult {
	if p.Dead() {
		return geom.MoveResult{}
	}
	d := dir.Normalize().Mul(p.Speed * dt)
	res := geom.ResolveMove(p.Shape(), d.X, d.Y, w.LevelShapes())
	next := p.Pos.Add(geom.V(res.DX, res.DY))
	if next.IsNaN() {
		log.Printf("player: NaN position after move, ignoring")
		return geom.MoveResult{}
	}
	p.Pos = next
	return res
}

// Shoot fires the equipped cannon toward Aim and adds the bullets to w.
func (p *Player) Shoot(w *World) int {
	if p.Dead() || p.Cannon == nil {
		return 0
	}
	shots := p.Cannon.FireAll(w, p.Aim, p.Pos)
	for _, b := range shots {
		w.AddBullet(b)
	}
	return len(shots)
}

// Damage applies amount unless the player is invincible or dead.
func (p *Player) Damage(w *World, amount float64, at geom.Vector2) bool {
	applied, lethal := p.Health.Apply(amount)
	if !applied {
		return false
	}
	w.Sink.DamageNumber(amount, at, false)
	p.Flash.Trigger()
	if lethal {
		p.Destroy(w)
		return true
	}
	w.Sound.PlaySound("player_hit", 0.7)
	return true
}

// Destroy kills the player once and announces it.
func (p *Player) Destroy(w *World) {
	if !p.Health.MarkDead() {
		return
	}
	w.Sink.RemoveShape(p.ID)
	w.Sound.PlaySound("player_death", 1)
	w.Events.Dispatch(event.Event{Type: event.PlayerDied})
}
