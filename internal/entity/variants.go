// internal/entity/variants.go
package entity

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/pkg/geom"
)

// variants maps each enemy kind to its override hooks. Kinds without an
// entry are plain wandering seekers.
var variants = map[defs.EnemyKind]variant{
	defs.EnemyShooter:    {update: shooterUpdate},
	defs.EnemyGhost:      {update: ghostUpdate},
	defs.EnemyToxicGreen: {update: toxicUpdate, onDestroy: toxicDestroy},
	defs.EnemyShrieker:   {update: shriekerUpdate},
	defs.EnemyBoss:       {update: shooterUpdate, onDestroy: bossDestroy},
}

// lineOfSight reports whether nothing static lies between a and b.
func lineOfSight(w *World, a, b geom.Vector2) bool {
	return !geom.SegmentBlocked(a, b, w.LevelShapes())
}

func shooterUpdate(e *Enemy, w *World, dt float64) {
	if e.Cannon == nil {
		return
	}
	player, ok := w.PlayerPos()
	if !ok {
		return
	}
	from := e.Center()
	if from.Distance(player) > e.Def.FireRange || !lineOfSight(w, from, player) {
		return
	}
	angle := player.Sub(from).Angle() + w.RNG.AngleOffset(config.EnemyAimSpread)
	for _, b := range e.Cannon.FireAll(w, angle, from) {
		w.AddBullet(b)
	}
}

func ghostUpdate(e *Enemy, w *World, dt float64) {
	if player, ok := w.PlayerPos(); ok {
		e.Steering.Target = player
	}
}

func toxicUpdate(e *Enemy, w *World, dt float64) {
	player, ok := w.PlayerPos()
	if !ok {
		return
	}
	from := e.Center()
	if from.Distance(player) <= e.Def.TriggerRadius && lineOfSight(w, from, player) {
		e.Destroy(w)
	}
}

func toxicDestroy(e *Enemy, w *World) {
	center := e.Center()
	dmg := config.ToxicRingDamage
	if e.Def.Damage > 0 {
		dmg *= e.ContactDamage / e.Def.Damage
	}
	for i := 0; i < config.ToxicRingSize; i++ {
		angle := 2 * math.Pi * float64(i) / config.ToxicRingSize
		b := NewBullet(defs.BulletPlain, defs.SideEnemy, center, angle, BulletStats{
			Speed: config.ToxicRingSpeed, Radius: 6, Damage: dmg,
			Pierce: 1, Lifetime: 1200,
		})
		b.Color = config.ToxicColor
		w.AddBullet(b)
	}
	w.Sound.PlaySound("toxic_burst", 0.8)
}

func shriekerUpdate(e *Enemy, w *World, dt float64) {
	player, _ := w.PlayerPos()
	if e.Phase.Tick(dt) {
		if e.Phase.Active {
			e.Steering.Targeting = false
			e.Steering.Speed = e.baseSpeed * config.ShriekSpeedMul
			w.Sound.PlaySound("shriek", 0.9)
		} else {
			e.Steering.Targeting = true
			e.Steering.Speed = e.baseSpeed
			e.Steering.Retarget(e.Center(), player, w.RNG)
		}
	}
	if e.Phase.Active {
		e.Steering.Target = player
	}
}

func bossDestroy(e *Enemy, w *World) {
	for _, o := range w.Enemies {
		if o != e {
			o.Destroy(w)
		}
	}
	w.Sound.StopMusic()
	w.Events.Dispatch(event.Event{Type: event.BossKilled, Data: event.KillData{
		ID: e.ID, Kind: e.Kind, Reward: e.Def.Reward, Pos: e.Center(),
	}})
}
