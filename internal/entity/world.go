// internal/entity/world.go
package entity

import (
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

// World owns every population the simulation mutates. It is passed by
// reference into each update call; entities only append to it or flag
// themselves dead, and the driver reaps dead entries after each pass.
type World struct {
	GameTime float64
	NextID   types.EntityID

	Player        *Player
	Enemies       []*Enemy
	Spawners      []*Spawner
	PlayerBullets []*Bullet
	EnemyBullets  []*Bullet

	Obstacles          []defs.Obstacle
	levelShapes        []geom.Shape
	enemyLevelShapes   []geom.Shape
	BoundsLo, BoundsHi geom.Vector2

	// EnemiesPaused freezes the enemy pass (boss intro).
	EnemiesPaused bool

	Sink   interfaces.Sink
	Sound  interfaces.SoundPlayer
	Events *event.Dispatcher
	RNG    *utils.PRNGService
	Index  *SpatialIndex
}

// NewWorld builds an empty world. Nil collaborators are replaced with no-ops.
func NewWorld(sink interfaces.Sink, sound interfaces.SoundPlayer, events *event.Dispatcher, rng *utils.PRNGService) *World {
	if sink == nil {
		sink = interfaces.NopSink{}
	}
	if sound == nil {
		sound = interfaces.NopSound{}
	}
	if events == nil {
		events = event.NewDispatcher()
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	w := &World{
		NextID:   1,
		Sink:     sink,
		Sound:    sound,
		Events:   events,
		RNG:      rng,
		BoundsHi: geom.V(config.ScreenWidth, config.ScreenHeight),
	}
	w.Index = NewSpatialIndex(w.BoundsLo, w.BoundsHi, config.SpatialCellSize)
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// SetLevel installs static geometry and world bounds.
func (w *World) SetLevel(obstacles []defs.Obstacle, lo, hi geom.Vector2) {
	w.Obstacles = obstacles
	w.levelShapes = w.levelShapes[:0]
	w.enemyLevelShapes = w.enemyLevelShapes[:0]
	for _, o := range obstacles {
		w.levelShapes = append(w.levelShapes, o.Shape)
		if o.Tag != config.TagEnemyPassable {
			w.enemyLevelShapes = append(w.enemyLevelShapes, o.Shape)
		}
	}
	w.BoundsLo, w.BoundsHi = lo, hi
	w.Index = NewSpatialIndex(lo, hi, config.SpatialCellSize)
}

// LevelShapes returns every static shape.
func (w *World) LevelShapes() []geom.Shape { return w.levelShapes }

// EnemyLevelShapes returns static shapes that block enemies.
func (w *World) EnemyLevelShapes() []geom.Shape { return w.enemyLevelShapes }

// InBounds reports whether p lies within the world plus a margin.
func (w *World) InBounds(p geom.Vector2) bool {
	m := config.WorldBoundMargin
	return p.X >= w.BoundsLo.X-m && p.X <= w.BoundsHi.X+m &&
		p.Y >= w.BoundsLo.Y-m && p.Y <= w.BoundsHi.Y+m
}

// PlayerPos returns the player's center, or the world center with no player.
func (w *World) PlayerPos() (geom.Vector2, bool) {
	if w.Player == nil || w.Player.Dead() {
		return w.BoundsLo.Add(w.BoundsHi).Mul(0.5), false
	}
	return w.Player.Pos, true
}

func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

func (w *World) AddSpawner(s *Spawner) {
	w.Spawners = append(w.Spawners, s)
}

// AddBullet routes b to the population matching its side. Nil is ignored.
func (w *World) AddBullet(b *Bullet) {
	if b == nil {
		return
	}
	if b.ID == 0 {
		b.ID = w.NewEntity()
	}
	if b.Side == defs.SideEnemy {
		w.EnemyBullets = append(w.EnemyBullets, b)
		return
	}
	w.PlayerBullets = append(w.PlayerBullets, b)
}

// LiveEnemies counts live enemies of kind. An empty kind counts all.
func (w *World) LiveEnemies(kind defs.EnemyKind) int {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead() && (kind == "" || e.Kind == kind) {
			n++
		}
	}
	return n
}

// NearestEnemy returns the closest live enemy to p, or nil.
func (w *World) NearestEnemy(p geom.Vector2) *Enemy {
	var best *Enemy
	bestDist := 0.0
	for _, e := range w.Enemies {
		if e.Dead() {
			continue
		}
		d := e.Center().Distance(p)
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// ReapEnemies drops dead enemies, keeping order.
func (w *World) ReapEnemies() {
	n := 0
	for _, e := range w.Enemies {
		if !e.Dead() {
			w.Enemies[n] = e
			n++
		}
	}
	clear(w.Enemies[n:])
	w.Enemies = w.Enemies[:n]
}

// ReapBullets drops dead bullets from both populations.
func (w *World) ReapBullets() {
	w.PlayerBullets = reapBullets(w.PlayerBullets)
	w.EnemyBullets = reapBullets(w.EnemyBullets)
}

func reapBullets(list []*Bullet) []*Bullet {
	n := 0
	for _, b := range list {
		if !b.Dead() {
			list[n] = b
			n++
		}
	}
	clear(list[n:])
	return list[:n]
}

// Teardown destroys every live entity without gameplay side effects and
// clears all populations.
func (w *World) Teardown() {
	for _, b := range w.PlayerBullets {
		b.Destroy(w)
	}
	for _, b := range w.EnemyBullets {
		b.Destroy(w)
	}
	for _, e := range w.Enemies {
		e.DestroySilently(w)
	}
	for _, s := range w.Spawners {
		s.SpawnsRemaining = 0
	}
	if w.Player != nil {
		w.Sink.RemoveShape(w.Player.ID)
	}
	w.Player = nil
	w.Enemies = nil
	w.Spawners = nil
	w.PlayerBullets = nil
	w.EnemyBullets = nil
	w.EnemiesPaused = false
	w.Index.Rebuild(nil)
}
