// internal/system/render.go
package system

import (
	"image/color"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/types"
)

// RenderSystem pushes entity shapes to the presentation sink. It only
// reads the world.
type RenderSystem struct {
	world    *entity.World
	levelIDs []types.EntityID
}

func NewRenderSystem(world *entity.World) *RenderSystem {
	return &RenderSystem{world: world}
}

// SyncLevel registers the static level shapes, replacing earlier ones.
func (s *RenderSystem) SyncLevel() {
	w := s.world
	for _, id := range s.levelIDs {
		w.Sink.RemoveShape(id)
	}
	s.levelIDs = s.levelIDs[:0]
	for _, o := range w.Obstacles {
		id := w.NewEntity()
		s.levelIDs = append(s.levelIDs, id)
		w.Sink.SyncShape(id, o.Shape, o.Color)
	}
}

// Sync updates every live entity's visual.
func (s *RenderSystem) Sync() {
	w := s.world
	if p := w.Player; p != nil && !p.Dead() {
		w.Sink.SyncShape(p.ID, p.Shape(), flashed(config.PlayerColor, p.Flash.Active()))
	}
	for _, e := range w.Enemies {
		if !e.Dead() {
			w.Sink.SyncShape(e.ID, e.Shape(), flashed(e.Color, e.Flash.Active()))
		}
	}
	for _, b := range w.PlayerBullets {
		if !b.Dead() {
			w.Sink.SyncShape(b.ID, b.Shape(), b.Color)
		}
	}
	for _, b := range w.EnemyBullets {
		if !b.Dead() {
			w.Sink.SyncShape(b.ID, b.Shape(), b.Color)
		}
	}
}

func flashed(c color.RGBA, on bool) color.RGBA {
	if on {
		return color.RGBA{c.A, c.A, c.A, c.A}
	}
	return c
}
