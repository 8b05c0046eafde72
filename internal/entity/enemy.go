// internal/entity/enemy.go
package entity

import (
	"image/color"
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

// variant holds the per-kind override points. Any hook may be nil.
type variant struct {
	// update runs before movement each tick.
	update func(e *Enemy, w *World, dt float64)
	// onDestroy runs once, after the death guard, on non-silent deaths.
	onDestroy func(e *Enemy, w *World)
}

// Enemy is a damageable, steerable entity. Pos is the hitbox anchor:
// the center for circles, the top-left corner for rectangles.
type Enemy struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	Def      defs.EnemyDefinition
	Pos      geom.Vector2
	Health   component.Health
	Steering component.Steering
	Flash    component.DamageFlash
	Phase    component.Phase
	Cannon   *Cannon
	Color    color.RGBA
	// ContactDamage is dealt to the player on touch.
	ContactDamage float64

	hitbox    geom.Shape
	baseSpeed float64
	silent    bool
	hooks     variant
}

// NewEnemy builds an enemy of kind centered on pos.
func NewEnemy(w *World, kind defs.EnemyKind, pos geom.Vector2) (*Enemy, error) {
	def, err := defs.LookupEnemy(kind)
	if err != nil {
		return nil, err
	}

	e := &Enemy{
		ID:     w.NewEntity(),
		Kind:   kind,
		Def:    def,
		Health: component.NewHealth(def.HP, config.EnemyInvincibility),
		Steering: component.Steering{
			TargetRadius: def.TargetRadius,
			Speed:        def.Speed,
			Targeting:    !def.Scripted,
			Ghosted:      def.Ghosted,
		},
		Flash:         component.DamageFlash{Duration: 120},
		Color:         defs.ParseColor(def.Color, config.ObstacleColor),
		ContactDamage: def.Damage,
		hitbox:        def.Hitbox.At(geom.Vector2{}),
		baseSpeed:     def.Speed,
		hooks:         variants[kind],
	}
	if e.Steering.TargetRadius <= 0 {
		e.Steering.TargetRadius = config.DefaultTargetRadius
	}
	e.placeCenter(pos)

	if def.Cannon != "" {
		c, err := NewCannon(def.Cannon, component.Progression{}, defs.SideEnemy)
		if err != nil {
			log.Printf("enemy %s: no cannon: %v", kind, err)
		} else {
			e.Cannon = c
		}
	}
	if kind == defs.EnemyShrieker {
		e.Phase = component.Phase{Timer: config.ShriekWanderTime, Calm: config.ShriekWanderTime, Duration: config.ShriekBurstTime}
	}

	player, _ := w.PlayerPos()
	e.Steering.Target = e.Center()
	if e.Steering.Targeting {
		e.Steering.Retarget(e.Center(), player, w.RNG)
	} else {
		e.Steering.Target = player
	}
	return e, nil
}

func (e *Enemy) placeCenter(c geom.Vector2) {
	if e.hitbox.Kind == geom.Rectangle {
		e.Pos = geom.V(c.X-e.hitbox.Width/2, c.Y-e.hitbox.Height/2)
		return
	}
	e.Pos = c
}

// Shape returns the hitbox at the current position.
func (e *Enemy) Shape() geom.Shape { return e.hitbox.At(e.Pos) }

// Center returns the hitbox center.
func (e *Enemy) Center() geom.Vector2 { return e.Shape().Center() }

func (e *Enemy) Dead() bool { return e.Health.Dead() }

// ApplyScale multiplies hp, damage, speed and size. Size scales the
// radius of circles and both sides of rectangles.
func (e *Enemy) ApplyScale(s defs.ScaleFactors) {
	s = s.Normalized()
	center := e.Center()
	e.Health.Scale(s.HP)
	e.ContactDamage *= s.Damage
	e.Steering.Speed *= s.Speed
	e.baseSpeed *= s.Speed
	e.hitbox = e.hitbox.Scale(s.Size)
	e.placeCenter(center)
	if e.Cannon != nil {
		e.Cannon.DamageScale *= s.Damage
	}
}

// Damage applies amount unless the enemy is in its grace window or dead.
// It reports whether hp changed.
func (e *Enemy) Damage(w *World, amount float64, at geom.Vector2, crit bool) bool {
	applied, lethal := e.Health.Apply(amount)
	if !applied {
		return false
	}
	w.Sink.DamageNumber(amount, at, crit)
	e.Flash.Trigger()
	if lethal {
		e.Destroy(w)
		return true
	}
	w.Sound.PlaySound("hit", 0.5)
	return true
}

// Destroy kills the enemy. Only the first call has any effect.
func (e *Enemy) Destroy(w *World) {
	if !e.Health.MarkDead() {
		return
	}
	e.Health.HP = 0
	w.Sink.RemoveShape(e.ID)
	if e.silent {
		return
	}

	if e.hooks.onDestroy != nil {
		e.hooks.onDestroy(e, w)
	}
	w.Sound.PlaySound("enemy_death", 0.6)
	w.Events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{
		ID: e.ID, Kind: e.Kind, Reward: e.Def.Reward, Pos: e.Center(),
	}})
}

// DestroySilently kills the enemy without hooks, rewards or sounds.
func (e *Enemy) DestroySilently(w *World) {
	e.silent = true
	e.Destroy(w)
}

// Update advances timers, runs the variant hook and moves the enemy.
func (e *Enemy) Update(w *World, dt float64) {
	if e.Dead() {
		return
	}
	e.Health.Tick(dt)
	e.Flash.Tick(dt)
	if e.Cannon != nil {
		e.Cannon.Tick(dt)
	}

	if e.hooks.update != nil {
		e.hooks.update(e, w, dt)
		if e.Dead() {
			return
		}
	}
	e.move(w, dt)
}

func (e *Enemy) move(w *World, dt float64) {
	center := e.Center()
	desired := e.Steering.Desired(center, dt)
	prev := e.Pos

	if e.Steering.Ghosted {
		e.Pos = e.Pos.Add(desired)
	} else {
		res := geom.ResolveMove(e.Shape(), desired.X, desired.Y, e.obstacles(w))
		applied := geom.V(res.DX, res.DY)
		e.Pos = e.Pos.Add(applied)
		if e.Steering.TrackMovement(desired, applied, dt) && e.Steering.Targeting {
			player, _ := w.PlayerPos()
			e.Steering.Retarget(e.Center(), player, w.RNG)
		}
	}

	if e.Pos.IsNaN() {
		log.Printf("enemy %d: NaN position after move, reverting", e.ID)
		e.Pos = prev
		return
	}

	if e.Steering.Targeting && e.Steering.Arrived(e.Center()) {
		player, _ := w.PlayerPos()
		e.Steering.Retarget(e.Center(), player, w.RNG)
	}
}

// obstacles returns level shapes that block enemies plus every other live
// enemy this one does not already overlap.
func (e *Enemy) obstacles(w *World) []geom.Shape {
	level := w.EnemyLevelShapes()
	out := make([]geom.Shape, len(level), len(level)+len(w.Enemies))
	copy(out, level)
	self := e.Shape()
	for _, o := range w.Enemies {
		if o == e || o.Dead() || o.Steering.Ghosted {
			continue
		}
		s := o.Shape()
		if geom.CheckCollision(self, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// TouchDamage deals contact damage if the enemy overlaps the player.
func (e *Enemy) TouchDamage(w *World) {
	p := w.Player
	if e.Dead() || p == nil || p.Dead() {
		return
	}
	if geom.CheckCollision(e.Shape(), p.Shape()) {
		p.Damage(w, e.ContactDamage, p.Pos)
	}
}
