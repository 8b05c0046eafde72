// internal/defs/types.go
package defs

import (
	"errors"

	"go-arena-shooter/pkg/geom"
)

// ErrUnknownKind is returned when a definition lookup misses.
var ErrUnknownKind = errors.New("unknown kind")

// EnemyKind names an enemy type. Wave specs key their counts by it.
type EnemyKind string

const (
	EnemyDefault    EnemyKind = "Default"
	EnemyShooter    EnemyKind = "Shooter"
	EnemyGhost      EnemyKind = "Ghost"
	EnemyToxicGreen EnemyKind = "ToxicGreen"
	EnemyShrieker   EnemyKind = "Shrieker"
	EnemyBoss       EnemyKind = "Boss"
)

// BulletKind selects bullet behavior.
type BulletKind string

const (
	BulletPlain     BulletKind = "plain"
	BulletExplosive BulletKind = "explosive"
	BulletHitscan   BulletKind = "hitscan"
	BulletDrone     BulletKind = "drone"
	BulletExplosion BulletKind = "explosion"
)

// CannonKind names a cannon type.
type CannonKind string

const (
	CannonBlaster    CannonKind = "Blaster"
	CannonLauncher   CannonKind = "Launcher"
	CannonRailgun    CannonKind = "Railgun"
	CannonDroneBay   CannonKind = "DroneBay"
	CannonEnemyGun   CannonKind = "EnemyGun"
	CannonBossSpread CannonKind = "BossSpread"
)

// Side says which population a bullet belongs to and what it may hit.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}

// ScaleFactors multiply an enemy's base stats. A zero field means 1.
type ScaleFactors struct {
	HP     float64 `json:"hp,omitempty"`
	Damage float64 `json:"damage,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

// Unit is the identity scale.
var Unit = ScaleFactors{HP: 1, Damage: 1, Speed: 1, Size: 1}

// Normalized replaces unset factors with 1.
func (s ScaleFactors) Normalized() ScaleFactors {
	one := func(v float64) float64 {
		if v == 0 {
			return 1
		}
		return v
	}
	return ScaleFactors{HP: one(s.HP), Damage: one(s.Damage), Speed: one(s.Speed), Size: one(s.Size)}
}

// Hitbox describes a collision shape independent of position.
type Hitbox struct {
	Shape  string  `json:"shape"` // "circle" or "rectangle"
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// At places the hitbox at p (center for circles, top-left for rectangles).
func (h Hitbox) At(p geom.Vector2) geom.Shape {
	if h.Shape == "rectangle" {
		return geom.NewRect(p.X, p.Y, h.Width, h.Height)
	}
	return geom.NewCircle(p.X, p.Y, h.Radius)
}
