// internal/entity/bullet.go
package entity

import (
	"image/color"
	"log"
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

// BulletStats carries the per-shot numbers a cannon computed.
type BulletStats struct {
	Speed    float64
	Radius   float64
	Damage   float64
	Pierce   int
	Lifetime float64
	Crit     bool
}

// Bullet is a projectile. Side decides which population it lives in and
// what it may hit: player bullets hit enemies, enemy bullets hit the player.
type Bullet struct {
	ID     types.EntityID
	Kind   defs.BulletKind
	Side   defs.Side
	Pos    geom.Vector2
	Angle  float64
	Speed  float64
	Radius float64
	Damage float64
	Crit   bool
	Pierce component.Piercing
	Color  color.RGBA

	Lifetime    float64
	MaxLifetime float64

	// Aim steers drones.
	Aim component.Aim

	dead bool
}

// NewBullet builds a bullet of kind. Unknown kinds fall back to plain.
func NewBullet(kind defs.BulletKind, side defs.Side, pos geom.Vector2, angle float64, st BulletStats) *Bullet {
	b := &Bullet{
		Kind:        kind,
		Side:        side,
		Pos:         pos,
		Angle:       angle,
		Speed:       st.Speed,
		Radius:      st.Radius,
		Damage:      st.Damage,
		Crit:        st.Crit,
		Pierce:      component.NewPiercing(st.Pierce),
		Lifetime:    st.Lifetime,
		MaxLifetime: st.Lifetime,
		Color:       config.PlayerBulletCol,
	}
	if side == defs.SideEnemy {
		b.Color = config.EnemyBulletCol
	}
	if st.Crit {
		b.Color = config.CritColor
	}

	switch kind {
	case defs.BulletPlain, defs.BulletExplosive, defs.BulletHitscan:
	case defs.BulletDrone:
		b.Aim = component.Aim{Angle: angle, TurnRate: config.DroneTurnRate}
	case defs.BulletExplosion:
		b.Speed = 0
		b.Pierce = component.NewPiercing(math.MaxInt32)
		b.Lifetime, b.MaxLifetime = config.ExplosionLifetime, config.ExplosionLifetime
		b.Radius = config.ExplosionStartRadius
		b.Color = config.ExplosionColor
	default:
		log.Printf("bullet: unknown kind %q, treating as plain", kind)
		b.Kind = defs.BulletPlain
	}
	return b
}

// NewExplosion builds the child explosion of an explosive shell.
func NewExplosion(pos geom.Vector2, damage float64, side defs.Side) *Bullet {
	return NewBullet(defs.BulletExplosion, side, pos, 0, BulletStats{Damage: damage, Pierce: math.MaxInt32})
}

func (b *Bullet) Shape() geom.Shape { return geom.NewCircle(b.Pos.X, b.Pos.Y, b.Radius) }

func (b *Bullet) Dead() bool { return b.dead }

// Destroy removes the bullet. Repeated calls do nothing.
func (b *Bullet) Destroy(w *World) {
	if b.dead {
		return
	}
	b.dead = true
	w.Sink.RemoveShape(b.ID)
}

// Update ages, moves and collides the bullet.
func (b *Bullet) Update(w *World, dt float64) {
	if b.dead {
		return
	}
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		b.Destroy(w)
		return
	}

	if b.Kind == defs.BulletExplosion {
		progress := 1 - b.Lifetime/b.MaxLifetime
		b.Radius = utils.Lerp(config.ExplosionStartRadius, config.ExplosionMaxRadius, progress)
		b.collide(w)
		return
	}

	if b.Kind == defs.BulletDrone {
		if target := w.NearestEnemy(b.Pos); target != nil {
			b.Aim.TurnToward(target.Center().Sub(b.Pos).Angle(), dt)
			b.Angle = b.Aim.Angle
		}
	}

	// sub-step so fast bullets never skip a target thinner than themselves
	dist := b.Speed * dt
	stepLen := math.Max(b.Radius, config.BulletMinStep)
	steps := int(math.Ceil(dist / stepLen))
	if steps < 1 {
		steps = 1
	}
	step := geom.FromAngle(b.Angle).Mul(dist / float64(steps))
	for i := 0; i < steps; i++ {
		b.Pos = b.Pos.Add(step)
		if b.collide(w) {
			return
		}
	}

	if !w.InBounds(b.Pos) {
		b.Destroy(w)
	}
}

// collide runs hit detection at the current position and reports whether
// the bullet was destroyed.
func (b *Bullet) collide(w *World) bool {
	shape := b.Shape()

	if b.Kind != defs.BulletExplosion {
		for _, s := range w.LevelShapes() {
			if geom.CheckCollision(shape, s) {
				if b.Kind == defs.BulletExplosive {
					b.detonate(w)
				}
				b.Destroy(w)
				return true
			}
		}
	}

	if b.Side == defs.SideEnemy {
		p := w.Player
		if p == nil || p.Dead() || b.Pierce.AlreadyHit(p.ID) || !geom.CheckCollision(shape, p.Shape()) {
			return false
		}
		// a hit absorbed by invincibility leaves the bullet untouched
		if !p.Damage(w, b.Damage, b.Pos) {
			return false
		}
		if b.Pierce.Consume(p.ID) {
			b.Destroy(w)
			return true
		}
		return false
	}

	for _, e := range w.Index.Query(shape) {
		if e.Dead() || b.Pierce.AlreadyHit(e.ID) {
			continue
		}
		if !geom.CheckCollision(shape, e.Shape()) {
			continue
		}
		if b.hitEnemy(w, e) {
			return true
		}
	}
	return false
}

// hitEnemy applies the bullet to e and reports whether it was destroyed.
func (b *Bullet) hitEnemy(w *World, e *Enemy) bool {
	if b.Kind == defs.BulletExplosive {
		b.detonate(w)
		b.Destroy(w)
		return true
	}
	if !e.Damage(w, b.Damage, b.Pos, b.Crit) {
		return false
	}
	if b.Pierce.Consume(e.ID) {
		b.Destroy(w)
		return true
	}
	return false
}

func (b *Bullet) detonate(w *World) {
	w.AddBullet(NewExplosion(b.Pos, b.Damage, b.Side))
	w.Sound.PlaySound("explosion", 0.7)
}
