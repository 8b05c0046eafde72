// internal/defs/waves.go
package defs

import "fmt"

// WaveContext is what a wave's scripted callbacks may touch.
type WaveContext interface {
	PlayMusic(track string)
	StopMusic()
	ShowBanner(text string)
	LiveEnemies(kind EnemyKind) int
}

// WaveOptions overrides spawner settings while the wave is active.
type WaveOptions struct {
	Scale     ScaleFactors `json:"scale"`
	SpawnRate float64      `json:"spawn_rate,omitempty"` // 0 keeps the spawner's own rate
}

// WaveDefinition describes one wave. It is never mutated once declared.
type WaveDefinition struct {
	Enemies  map[EnemyKind]int `json:"enemies"`
	Options  *WaveOptions      `json:"options,omitempty"`
	Survival *SurvivalParams   `json:"survival,omitempty"`

	// SpecialInstructions runs once when the wave activates.
	SpecialInstructions func(ctx WaveContext) `json:"-"`
	// Completion, when set, must also hold for the wave to complete.
	Completion func(ctx WaveContext) bool `json:"-"`
}

// Total is the number of enemies the wave asks for per matching spawner.
func (w WaveDefinition) Total() int {
	n := 0
	for _, c := range w.Enemies {
		n += c
	}
	return n
}

// IsFake reports a zero-count wave used only to trigger a scripted event.
func (w WaveDefinition) IsFake() bool {
	return w.Survival == nil && w.Total() == 0
}

// Scale returns the wave's scale overrides, defaulting to identity.
func (w WaveDefinition) Scale() ScaleFactors {
	if w.Options == nil {
		return Unit
	}
	return w.Options.Scale.Normalized()
}

func playTrack(name string) func(WaveContext) {
	return func(ctx WaveContext) { ctx.PlayMusic(name) }
}

func announce(text string) func(WaveContext) {
	return func(ctx WaveContext) { ctx.ShowBanner(text) }
}

func bossDown(ctx WaveContext) bool {
	return ctx.LiveEnemies(EnemyBoss) == 0
}

// WaveTables maps a level number to its ordered wave list.
var WaveTables = map[int][]WaveDefinition{
	1: {
		{Enemies: map[EnemyKind]int{EnemyDefault: 4}},
		{Enemies: map[EnemyKind]int{EnemyDefault: 6}},
		{Enemies: map[EnemyKind]int{EnemyDefault: 6, EnemyShooter: 2}},
		{
			Enemies: map[EnemyKind]int{EnemyDefault: 8, EnemyShooter: 3},
			Options: &WaveOptions{Scale: ScaleFactors{HP: 1.2, Speed: 1.1}},
		},
	},
	2: {
		{Enemies: map[EnemyKind]int{EnemyDefault: 5, EnemyGhost: 2}},
		{Enemies: map[EnemyKind]int{EnemyShooter: 4, EnemyToxicGreen: 2}},
		{Enemies: map[EnemyKind]int{EnemyShrieker: 3, EnemyDefault: 6}},
		{
			Enemies:             map[EnemyKind]int{},
			SpecialInstructions: announce("Something approaches..."),
		},
		{
			Enemies:             map[EnemyKind]int{EnemyBoss: 1, EnemyDefault: 4},
			Options:             &WaveOptions{SpawnRate: 1500},
			SpecialInstructions: playTrack("boss"),
			Completion:          bossDown,
		},
	},
	3: {
		{Survival: &SurvivalParams{EnemyCount: 6}},
	},
}

// LookupWaves returns the wave list for level. Survival entries without
// their own weight table are filled in from SurvivalTables["arena"].
func LookupWaves(level int) ([]WaveDefinition, error) {
	waves, ok := WaveTables[level]
	if !ok {
		return nil, fmt.Errorf("wave table not found: %d: %w", level, ErrUnknownKind)
	}

	out := make([]WaveDefinition, len(waves))
	copy(out, waves)
	for i := range out {
		s := out[i].Survival
		if s == nil || len(s.Entries) > 0 {
			continue
		}
		params := SurvivalTables["arena"]
		if s.EnemyCount > 0 {
			params.EnemyCount = s.EnemyCount
		}
		if s.SpawnRate > 0 {
			params.SpawnRate = s.SpawnRate
		}
		out[i].Survival = &params
	}
	return out, nil
}
