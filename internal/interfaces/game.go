// internal/interfaces/game.go
package interfaces

import (
	"image/color"

	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

// Sink receives fire-and-forget presentation calls from the simulation.
// Nothing it does may feed back into simulation state.
type Sink interface {
	// SyncShape registers or moves the visual for id.
	SyncShape(id types.EntityID, shape geom.Shape, clr color.RGBA)
	// RemoveShape drops the visual for id.
	RemoveShape(id types.EntityID)
	DamageNumber(amount float64, at geom.Vector2, crit bool)
	Banner(text string)
}

// SoundPlayer plays named sound effects and music tracks.
type SoundPlayer interface {
	PlaySound(name string, volume float64)
	PlayMusic(track string)
	StopMusic()
}

// LevelSource supplies static level geometry and named points.
type LevelSource interface {
	Obstacles() []defs.Obstacle
	Points() map[string][]geom.Vector2
	Bounds() (lo, hi geom.Vector2)
}

// NopSink discards every presentation call.
type NopSink struct{}

func (NopSink) SyncShape(types.EntityID, geom.Shape, color.RGBA) {}
func (NopSink) RemoveShape(types.EntityID)                       {}
func (NopSink) DamageNumber(float64, geom.Vector2, bool)         {}
func (NopSink) Banner(string)                                    {}

// NopSound discards every sound call.
type NopSound struct{}

func (NopSound) PlaySound(string, float64) {}
func (NopSound) PlayMusic(string)          {}
func (NopSound) StopMusic()                {}
