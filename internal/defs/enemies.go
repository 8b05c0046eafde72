// internal/defs/enemies.go
package defs

import "fmt"

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Kind          EnemyKind  `json:"kind"`
	Name          string     `json:"name"`
	HP            float64    `json:"hp"`
	Damage        float64    `json:"damage"`
	Speed         float64    `json:"speed"` // units per ms
	Hitbox        Hitbox     `json:"hitbox"`
	TargetRadius  float64    `json:"target_radius"`
	Reward        int        `json:"reward"`
	Color         string     `json:"color"`
	Cannon        CannonKind `json:"cannon,omitempty"`
	FireRange     float64    `json:"fire_range,omitempty"`
	Ghosted       bool       `json:"ghosted,omitempty"`
	Scripted      bool       `json:"scripted,omitempty"` // target is driven externally
	TriggerRadius float64    `json:"trigger_radius,omitempty"`
	Boss          bool       `json:"boss,omitempty"`
	Music         string     `json:"music,omitempty"`
}

// EnemyLibrary is the library of all enemy definitions, keyed by kind.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyDefault: {
		Kind: EnemyDefault, Name: "Crawler",
		HP: 30, Damage: 10, Speed: 0.08,
		Hitbox:       Hitbox{Shape: "circle", Radius: 16},
		TargetRadius: 250, Reward: 1, Color: "#e04040",
	},
	EnemyShooter: {
		Kind: EnemyShooter, Name: "Gunner",
		HP: 25, Damage: 8, Speed: 0.06,
		Hitbox:       Hitbox{Shape: "circle", Radius: 15},
		TargetRadius: 300, Reward: 2, Color: "#ff8c1a",
		Cannon: CannonEnemyGun, FireRange: 450,
	},
	EnemyGhost: {
		Kind: EnemyGhost, Name: "Ghost",
		HP: 20, Damage: 12, Speed: 0.05,
		Hitbox:       Hitbox{Shape: "circle", Radius: 14},
		TargetRadius: 200, Reward: 2, Color: "rgba(200,200,255,0.6)",
		Ghosted: true, Scripted: true,
	},
	EnemyToxicGreen: {
		Kind: EnemyToxicGreen, Name: "Toxic",
		HP: 35, Damage: 6, Speed: 0.07,
		Hitbox:       Hitbox{Shape: "circle", Radius: 18},
		TargetRadius: 220, Reward: 3, Color: "#78ff50",
		TriggerRadius: 90,
	},
	EnemyShrieker: {
		Kind: EnemyShrieker, Name: "Shrieker",
		HP: 30, Damage: 14, Speed: 0.07,
		Hitbox:       Hitbox{Shape: "rectangle", Width: 26, Height: 26},
		TargetRadius: 260, Reward: 3, Color: "#b040ff",
	},
	EnemyBoss: {
		Kind: EnemyBoss, Name: "Warden",
		HP: 1500, Damage: 25, Speed: 0.04,
		Hitbox:       Hitbox{Shape: "rectangle", Width: 90, Height: 90},
		TargetRadius: 300, Reward: 50, Color: "#ff2050",
		Cannon: CannonBossSpread, FireRange: 700,
		Boss: true, Music: "boss",
	},
}

// SpawnMarkers maps level point tags to the enemy kind spawned there.
var SpawnMarkers = map[string]EnemyKind{
	"espawn":  EnemyDefault,
	"espawn2": EnemyShooter,
	"espawn3": EnemyGhost,
	"espawn4": EnemyToxicGreen,
	"espawn5": EnemyShrieker,
	"bspawn":  EnemyBoss,
}

// LookupEnemy returns the definition for kind.
func LookupEnemy(kind EnemyKind) (EnemyDefinition, error) {
	def, ok := EnemyLibrary[kind]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("enemy %q: %w", kind, ErrUnknownKind)
	}
	return def, nil
}
