// internal/defs/survival.go
package defs

// SurvivalEntry is one row of a survival weight table.
// Kind is the enemy kind and Weight its relative chance of being drawn.
type SurvivalEntry struct {
	Kind   EnemyKind `json:"kind"`
	Weight float64   `json:"weight"`
}

// SurvivalParams configures procedural wave generation.
type SurvivalParams struct {
	Entries    []SurvivalEntry `json:"entries"`
	EnemyCount int             `json:"enemy_count"` // count for wave index 0
	SpawnRate  float64         `json:"spawn_rate,omitempty"`
}

// SurvivalTables holds named weight tables. Wave tables reference them by name.
var SurvivalTables = map[string]SurvivalParams{
	"arena": {
		EnemyCount: 6,
		Entries: []SurvivalEntry{
			{Kind: EnemyDefault, Weight: 6},
			{Kind: EnemyShooter, Weight: 3},
			{Kind: EnemyShrieker, Weight: 2},
			{Kind: EnemyToxicGreen, Weight: 1.5},
			{Kind: EnemyGhost, Weight: 1},
		},
	},
}
