// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"sort"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/profile"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

// Game holds the main game state and logic.
type Game struct {
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	WaveSystem       *system.WaveSystem
	CameraSystem     *system.CameraSystem
	RenderSystem     *system.RenderSystem
	StateSystem      *system.StateSystem

	// Profile is read when the player is built and written when a level
	// is finished. Store may be nil for throwaway sessions.
	Profile *profile.Profile
	Store   *profile.Store

	// Game state
	level    interfaces.LevelSource
	levelNum int
	spawn    geom.Vector2
	gameTime float64
	isPaused bool
}

// NewGame initializes a new game instance. sink and sound may be nil.
func NewGame(sink interfaces.Sink, sound interfaces.SoundPlayer, seed int64) *Game {
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	world := entity.NewWorld(sink, sound, eventDispatcher, rng)

	g := &Game{
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Profile:         profile.Default(),
	}
	g.PlayerSystem = system.NewPlayerSystem(world, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.EnemySystem = system.NewEnemySystem(world)
	g.WaveSystem = system.NewWaveSystem(world, eventDispatcher, g)
	g.CameraSystem = system.NewCameraSystem(world)
	g.RenderSystem = system.NewRenderSystem(world)
	g.StateSystem = system.NewStateSystem(eventDispatcher)

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.BossSpawned, listener)
	eventDispatcher.Subscribe(event.BossKilled, listener)
	eventDispatcher.Subscribe(event.GameFinished, listener)

	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BossSpawned:
		if boss, ok := e.Data.(event.BossData); ok {
			l.game.CameraSystem.BossIntro(boss.Pos)
		}
	case event.BossKilled:
		l.game.CameraSystem.Interrupt()
	case event.GameFinished:
		l.game.bankSession()
	}
}

// ConfigureLevel tears down whatever is running and installs src as level
// levelNum: geometry, bounds, player, spawners and the wave table.
func (g *Game) ConfigureLevel(src interfaces.LevelSource, levelNum int) error {
	if src == nil {
		return fmt.Errorf("configure level %d: nil level source", levelNum)
	}
	waves, err := defs.LookupWaves(levelNum)
	if err != nil {
		log.Printf("failed to configure level %d: %v", levelNum, err)
		return err
	}

	g.Teardown()
	g.level = src
	g.levelNum = levelNum

	w := g.World
	lo, hi := src.Bounds()
	w.SetLevel(src.Obstacles(), lo, hi)
	// level shapes take the lowest ids so sinks drawing by id put them underneath
	g.RenderSystem.SyncLevel()

	points := src.Points()
	g.spawn = lo.Add(hi).Mul(0.5)
	if pts := points[defs.PointSpawn]; len(pts) > 0 {
		g.spawn = pts[0]
	} else {
		log.Printf("level %d has no spawn point, using world center", levelNum)
	}
	w.Player = entity.NewPlayer(w, g.spawn, g.loadout())

	// sorted so spawner order, and with it the RNG stream, is stable
	tags := make([]string, 0, len(defs.SpawnMarkers))
	for tag := range defs.SpawnMarkers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		for _, p := range points[tag] {
			w.AddSpawner(entity.NewSpawner(w, defs.SpawnMarkers[tag], p))
		}
	}

	g.WaveSystem.SetWaves(waves)
	g.CameraSystem.Reset()
	g.PlayerSystem.ResetSession()
	g.StateSystem.Restart()
	g.gameTime = 0
	g.isPaused = false

	log.Printf("level %d configured: %d obstacles, %d spawners, %d waves",
		levelNum, len(w.Obstacles), len(w.Spawners), len(waves))
	return nil
}

// loadout builds the player's cannon from the equipped profile record.
func (g *Game) loadout() *entity.Cannon {
	rec, ok := g.Profile.EquippedCannon()
	if !ok {
		rec = profile.CannonRecord{Type: defs.CannonBlaster}
	}
	c, err := entity.NewCannon(rec.Type, rec.Progression(), defs.SidePlayer)
	if err != nil {
		log.Printf("loadout: %v, falling back to %s", err, defs.CannonBlaster)
		c, _ = entity.NewCannon(defs.CannonBlaster, component.Progression{}, defs.SidePlayer)
	}
	return c
}

// Update advances one tick in strict order: player, player bullets,
// enemy bullets, enemies, waves, camera.
func (g *Game) Update(deltaTime float64, in system.PlayerInput) {
	if g.isPaused || g.level == nil {
		return
	}
	dt := deltaTime
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	if dt <= 0 {
		return
	}

	if g.StateSystem.Current() == component.PlayingState {
		g.gameTime += dt
		g.World.GameTime = g.gameTime

		g.PlayerSystem.Update(dt, in)
		g.ProjectileSystem.UpdatePlayerBullets(dt)
		g.ProjectileSystem.UpdateEnemyBullets(dt)
		g.EnemySystem.Update(dt)
		g.WaveSystem.Update(dt)
	}
	g.CameraSystem.Update(dt)
	g.RenderSystem.Sync()
}

// Teardown destroys every live entity, resets waves and camera and stops
// music. It leaves the level installed.
func (g *Game) Teardown() {
	g.World.Teardown()
	g.WaveSystem.Reset()
	g.CameraSystem.Interrupt()
	g.World.Sound.StopMusic()
}

// Reset restarts the current level from its first wave.
func (g *Game) Reset() error {
	if g.level == nil {
		return fmt.Errorf("reset: no level configured")
	}
	return g.ConfigureLevel(g.level, g.levelNum)
}

// Revive brings a dead player back at the spawn point with full health.
// Enemies and wave progress are kept.
func (g *Game) Revive() {
	if g.StateSystem.Current() != component.DeadState {
		return
	}
	w := g.World
	var cannon *entity.Cannon
	if w.Player != nil {
		cannon = w.Player.Cannon
	}
	if cannon == nil {
		cannon = g.loadout()
	}
	w.Player = entity.NewPlayer(w, g.spawn, cannon)
	g.CameraSystem.SnapTo(g.spawn)
	g.StateSystem.Restart()
	log.Println("player revived")
}

// bankSession moves the session's currency into the profile and unlocks
// the next level.
func (g *Game) bankSession() {
	earned := g.PlayerSystem.State.Currency
	g.Profile.Bank(earned, g.levelNum)
	g.PlayerSystem.State.Currency = 0
	log.Printf("level %d finished, banked %d", g.levelNum, earned)
	if g.Store == nil {
		return
	}
	if err := g.Store.Save(g.Profile); err != nil {
		log.Printf("failed to save profile: %v", err)
	}
}

// PlayMusic implements defs.WaveContext.
func (g *Game) PlayMusic(track string) { g.World.Sound.PlayMusic(track) }

// StopMusic implements defs.WaveContext.
func (g *Game) StopMusic() { g.World.Sound.StopMusic() }

// ShowBanner implements defs.WaveContext.
func (g *Game) ShowBanner(text string) { g.World.Sink.Banner(text) }

// LiveEnemies implements defs.WaveContext.
func (g *Game) LiveEnemies(kind defs.EnemyKind) int { return g.World.LiveEnemies(kind) }

func (g *Game) TogglePause() {
	if g.StateSystem.Current() == component.PlayingState {
		g.isPaused = !g.isPaused
	}
}

func (g *Game) IsPaused() bool { return g.isPaused }

func (g *Game) GetGameTime() float64 { return g.gameTime }

func (g *Game) LevelNum() int { return g.levelNum }

// Level returns the installed level source, or nil.
func (g *Game) Level() interfaces.LevelSource { return g.level }

// SessionCurrency is the currency earned since the level started.
func (g *Game) SessionCurrency() int { return g.PlayerSystem.State.Currency }
