// internal/defs/cannons.go
package defs

import (
	"fmt"
	"math"
)

// StatBlock is the set of cannon stats that rarity, stars and level scale.
// The same shape doubles as a per-stat multiplier table.
type StatBlock struct {
	Damage float64 `json:"damage"`
	Speed  float64 `json:"speed"`  // bullet speed, units per ms
	Pierce float64 `json:"pierce"` // rounded up when a bullet is created
	Rate   float64 `json:"rate"`   // cooldown between shots, ms
	Size   float64 `json:"size"`   // bullet radius
}

// Scaled multiplies each stat by mul^n.
func (s StatBlock) Scaled(mul StatBlock, n int) StatBlock {
	if n == 0 {
		return s
	}
	p := float64(n)
	return StatBlock{
		Damage: s.Damage * math.Pow(mul.Damage, p),
		Speed:  s.Speed * math.Pow(mul.Speed, p),
		Pierce: s.Pierce * math.Pow(mul.Pierce, p),
		Rate:   s.Rate * math.Pow(mul.Rate, p),
		Size:   s.Size * math.Pow(mul.Size, p),
	}
}

// CannonDefinition holds the base data for a cannon kind.
type CannonDefinition struct {
	Kind         CannonKind `json:"kind"`
	Name         string     `json:"name"`
	Bullet       BulletKind `json:"bullet"`
	Base         StatBlock  `json:"base"`
	CritChance   float64    `json:"crit_chance"`
	CritDamage   float64    `json:"crit_damage"`
	BarrelLength float64    `json:"barrel_length"`
	Lifetime     float64    `json:"lifetime"` // bullet lifetime, ms
	Pellets      int        `json:"pellets,omitempty"`
	Spread       float64    `json:"spread,omitempty"` // total fan angle for multi-pellet shots

	RarityMul StatBlock `json:"rarity_mul"`
	StarMul   StatBlock `json:"star_mul"`
	LevelMul  StatBlock `json:"level_mul"`
}

// Stats returns the base stats scaled by rarity and star count.
// Level is applied per shot.
func (d CannonDefinition) Stats(rarity, star int) StatBlock {
	return d.Base.Scaled(d.RarityMul, rarity).Scaled(d.StarMul, star)
}

var (
	playerRarityMul = StatBlock{Damage: 1.25, Speed: 1.05, Pierce: 1.2, Rate: 0.92, Size: 1.05}
	playerStarMul   = StatBlock{Damage: 1.10, Speed: 1.02, Pierce: 1.1, Rate: 0.96, Size: 1.02}
	playerLevelMul  = StatBlock{Damage: 1.06, Speed: 1.01, Pierce: 1.03, Rate: 0.99, Size: 1.01}
	flatMul         = StatBlock{Damage: 1, Speed: 1, Pierce: 1, Rate: 1, Size: 1}
)

// CannonLibrary is the library of all cannon definitions, keyed by kind.
var CannonLibrary = map[CannonKind]CannonDefinition{
	CannonBlaster: {
		Kind: CannonBlaster, Name: "Blaster", Bullet: BulletPlain,
		Base:       StatBlock{Damage: 10, Speed: 0.6, Pierce: 1, Rate: 220, Size: 5},
		CritChance: 0.1, CritDamage: 2, BarrelLength: 28, Lifetime: 1500,
		RarityMul: playerRarityMul, StarMul: playerStarMul, LevelMul: playerLevelMul,
	},
	CannonLauncher: {
		Kind: CannonLauncher, Name: "Launcher", Bullet: BulletExplosive,
		Base:       StatBlock{Damage: 18, Speed: 0.35, Pierce: 1, Rate: 700, Size: 8},
		CritChance: 0.05, CritDamage: 1.5, BarrelLength: 32, Lifetime: 1800,
		RarityMul: playerRarityMul, StarMul: playerStarMul, LevelMul: playerLevelMul,
	},
	CannonRailgun: {
		Kind: CannonRailgun, Name: "Railgun", Bullet: BulletHitscan,
		Base:       StatBlock{Damage: 25, Speed: 4.0, Pierce: 3, Rate: 900, Size: 3},
		CritChance: 0.2, CritDamage: 2.5, BarrelLength: 40, Lifetime: 250,
		RarityMul: playerRarityMul, StarMul: playerStarMul, LevelMul: playerLevelMul,
	},
	CannonDroneBay: {
		Kind: CannonDroneBay, Name: "Drone Bay", Bullet: BulletDrone,
		Base:       StatBlock{Damage: 6, Speed: 0.15, Pierce: 8, Rate: 1200, Size: 7},
		CritChance: 0.05, CritDamage: 2, BarrelLength: 20, Lifetime: 5000,
		RarityMul: playerRarityMul, StarMul: playerStarMul, LevelMul: playerLevelMul,
	},
	CannonEnemyGun: {
		Kind: CannonEnemyGun, Name: "Enemy Gun", Bullet: BulletPlain,
		Base:         StatBlock{Damage: 8, Speed: 0.3, Pierce: 1, Rate: 1400, Size: 6},
		BarrelLength: 20, Lifetime: 2500,
		RarityMul: flatMul, StarMul: flatMul, LevelMul: flatMul,
	},
	CannonBossSpread: {
		Kind: CannonBossSpread, Name: "Boss Spread", Bullet: BulletPlain,
		Base:         StatBlock{Damage: 12, Speed: 0.28, Pierce: 1, Rate: 1600, Size: 9},
		BarrelLength: 50, Lifetime: 3000, Pellets: 5, Spread: 0.5,
		RarityMul: flatMul, StarMul: flatMul, LevelMul: flatMul,
	},
}

// LookupCannon returns the definition for kind.
func LookupCannon(kind CannonKind) (CannonDefinition, error) {
	def, ok := CannonLibrary[kind]
	if !ok {
		return CannonDefinition{}, fmt.Errorf("cannon %q: %w", kind, ErrUnknownKind)
	}
	return def, nil
}
