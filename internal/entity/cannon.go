// internal/entity/cannon.go
package entity

import (
	"fmt"
	"math"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/pkg/geom"
)

// Cannon is a bullet factory with a cooldown. Its rarity and star stats
// are fixed at construction; level scaling is applied per shot.
type Cannon struct {
	Def      defs.CannonDefinition
	Progress component.Progression
	Side     defs.Side
	Cooldown component.Cooldown
	// DamageScale multiplies shot damage (spawner scaling for enemy guns).
	DamageScale float64

	stats defs.StatBlock
}

// NewCannon builds a cannon of kind with the given progression.
func NewCannon(kind defs.CannonKind, prog component.Progression, side defs.Side) (*Cannon, error) {
	def, err := defs.LookupCannon(kind)
	if err != nil {
		return nil, err
	}
	if def.Bullet == "" {
		return nil, fmt.Errorf("cannon %q has no bullet kind", kind)
	}
	prog = prog.Clamp()
	return &Cannon{
		Def:         def,
		Progress:    prog,
		Side:        side,
		DamageScale: 1,
		stats:       def.Stats(prog.Rarity, prog.Star),
	}, nil
}

// Stats returns the rarity and star adjusted stats.
func (c *Cannon) Stats() defs.StatBlock { return c.stats }

// ShotStats returns Stats scaled by the level multiplier table.
func (c *Cannon) ShotStats() defs.StatBlock {
	return c.stats.Scaled(c.Def.LevelMul, c.Progress.Level)
}

func (c *Cannon) Tick(dt float64) { c.Cooldown.Tick(dt) }

// Fire shoots one bullet along angle from origin. It returns nil while
// the cooldown is running; callers must not add anything in that case.
func (c *Cannon) Fire(w *World, angle float64, origin geom.Vector2) *Bullet {
	if !c.Cooldown.Ready() {
		return nil
	}
	shot := c.ShotStats()
	b := c.shoot(w, angle, origin, shot)
	c.Cooldown.Start(shot.Rate)
	w.Sound.PlaySound(c.fireSound(), 0.4)
	return b
}

// FireAll shoots every pellet of a spread cannon in a fan centered on
// angle. Single-pellet cannons behave like Fire.
func (c *Cannon) FireAll(w *World, angle float64, origin geom.Vector2) []*Bullet {
	if c.Def.Pellets <= 1 {
		if b := c.Fire(w, angle, origin); b != nil {
			return []*Bullet{b}
		}
		return nil
	}
	if !c.Cooldown.Ready() {
		return nil
	}
	shot := c.ShotStats()
	n := c.Def.Pellets
	out := make([]*Bullet, 0, n)
	for i := 0; i < n; i++ {
		a := angle - c.Def.Spread/2 + c.Def.Spread*float64(i)/float64(n-1)
		out = append(out, c.shoot(w, a, origin, shot))
	}
	c.Cooldown.Start(shot.Rate)
	w.Sound.PlaySound(c.fireSound(), 0.5)
	return out
}

func (c *Cannon) shoot(w *World, angle float64, origin geom.Vector2, shot defs.StatBlock) *Bullet {
	muzzle := origin.Add(geom.FromAngle(angle).Mul(c.Def.BarrelLength / 2))
	dmg := shot.Damage * c.DamageScale
	crit := c.Def.CritChance > 0 && w.RNG.Chance(c.Def.CritChance)
	if crit {
		dmg *= c.Def.CritDamage
	}
	// any fractional gain from rarity, star or level buys a whole extra hit
	pierce := int(math.Ceil(shot.Pierce - 1e-9))
	return NewBullet(c.Def.Bullet, c.Side, muzzle, angle, BulletStats{
		Speed:    shot.Speed,
		Radius:   shot.Size,
		Damage:   dmg,
		Pierce:   pierce,
		Lifetime: c.Def.Lifetime,
		Crit:     crit,
	})
}

func (c *Cannon) fireSound() string {
	if c.Side == defs.SideEnemy {
		return "enemy_fire"
	}
	return "fire"
}
