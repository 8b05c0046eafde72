// internal/event/types.go
package event

import (
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

const (
	WaveStarted  EventType = "WaveStarted"  // Волна началась
	WaveEnded    EventType = "WaveEnded"    // Волна закончилась
	GameFinished EventType = "GameFinished" // Все волны пройдены
	EnemyKilled  EventType = "EnemyKilled"  // Враг уничтожен
	PlayerDied   EventType = "PlayerDied"
	BossSpawned  EventType = "BossSpawned"
	BossKilled   EventType = "BossKilled"
)

// WaveData is the payload of WaveStarted and WaveEnded.
type WaveData struct {
	Index int  // zero-based wave index
	Fake  bool // zero-count scripted wave
}

// KillData is the payload of EnemyKilled and BossKilled.
type KillData struct {
	ID     types.EntityID
	Kind   defs.EnemyKind
	Reward int
	Pos    geom.Vector2
}

// BossData is the payload of BossSpawned.
type BossData struct {
	ID  types.EntityID
	Pos geom.Vector2
}
