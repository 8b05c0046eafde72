package system

import (
	"math"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

type fakeWaveContext struct {
	banners []string
	music   []string
	world   *entity.World
}

func (c *fakeWaveContext) PlayMusic(track string) { c.music = append(c.music, track) }
func (c *fakeWaveContext) StopMusic()             {}
func (c *fakeWaveContext) ShowBanner(text string) { c.banners = append(c.banners, text) }
func (c *fakeWaveContext) LiveEnemies(kind defs.EnemyKind) int {
	return c.world.LiveEnemies(kind)
}

func newWaveFixture(t *testing.T, seed int64) (*entity.World, *WaveSystem, *fakeWaveContext, *event.Dispatcher) {
	t.Helper()
	d := event.NewDispatcher()
	w := entity.NewWorld(nil, nil, d, utils.NewPRNGService(seed))
	w.SetLevel(nil, geom.V(0, 0), geom.V(1000, 1000))
	ctx := &fakeWaveContext{world: w}
	return w, NewWaveSystem(w, d, ctx), ctx, d
}

func TestEmptyWaveCompletesAfterDelay(t *testing.T) {
	_, ws, ctx, d := newWaveFixture(t, 1)
	finished := 0
	d.Subscribe(event.GameFinished, event.ListenerFunc(func(event.Event) { finished++ }))

	ws.SetWaves([]defs.WaveDefinition{{Enemies: map[defs.EnemyKind]int{}}})
	ws.Update(config.InterWaveDelay - 1)
	if ws.Completed() {
		t.Fatal("completed before the delay elapsed")
	}
	ws.Update(1)
	if !ws.Completed() {
		t.Fatalf("empty wave should complete once the delay elapses, state=%v", ws.State())
	}
	if len(ctx.banners) != 0 {
		t.Fatal("fake wave must not show praise")
	}

	ws.Update(1000)
	ws.Update(1000)
	if finished != 1 {
		t.Fatalf("game finished fired %d times", finished)
	}
}

func TestWaveArmsMatchingSpawnersOnly(t *testing.T) {
	w, ws, _, _ := newWaveFixture(t, 1)
	def := entity.NewSpawner(w, defs.EnemyDefault, geom.V(100, 100))
	shooter := entity.NewSpawner(w, defs.EnemyShooter, geom.V(900, 900))
	w.AddSpawner(def)
	w.AddSpawner(shooter)

	ws.SetWaves([]defs.WaveDefinition{{
		Enemies: map[defs.EnemyKind]int{defs.EnemyDefault: 3},
		Options: &defs.WaveOptions{Scale: defs.ScaleFactors{HP: 2}},
	}})
	ws.Update(config.InterWaveDelay)

	if ws.State() != WaveActive {
		t.Fatalf("state = %v", ws.State())
	}
	if def.SpawnsRemaining != 3 || shooter.SpawnsRemaining != 0 {
		t.Fatalf("remaining: default=%d shooter=%d", def.SpawnsRemaining, shooter.SpawnsRemaining)
	}
	if def.Scale.HP != 2 || def.Scale.Speed != 1 {
		t.Fatalf("scale = %+v", def.Scale)
	}
}

func TestWaveCompletesWhenPopulationClears(t *testing.T) {
	w, ws, ctx, _ := newWaveFixture(t, 3)
	sp := entity.NewSpawner(w, defs.EnemyDefault, geom.V(500, 500))
	w.AddSpawner(sp)
	ws.SetWaves([]defs.WaveDefinition{
		{Enemies: map[defs.EnemyKind]int{defs.EnemyDefault: 1}},
		{Enemies: map[defs.EnemyKind]int{defs.EnemyDefault: 1}},
	})

	ws.Update(config.InterWaveDelay)
	e := sp.Update(w, config.DefaultSpawnRate+1)
	if e == nil {
		t.Fatal("spawner should spawn once armed")
	}
	ws.Update(16)
	if ws.State() != WaveActive {
		t.Fatal("wave completed with a live enemy")
	}

	e.Destroy(w)
	w.ReapEnemies()
	ws.Update(16)
	if ws.State() != WaveDelaying || ws.CurrentWave() != 1 {
		t.Fatalf("state=%v wave=%d", ws.State(), ws.CurrentWave())
	}
	if len(ctx.banners) != 1 {
		t.Fatal("a real wave should be praised")
	}
	if _, visible := ws.Banner(); !visible {
		t.Fatal("banner should be visible")
	}
}

func TestCustomCompletionPredicate(t *testing.T) {
	_, ws, _, _ := newWaveFixture(t, 1)
	ready := false
	ws.SetWaves([]defs.WaveDefinition{{
		Enemies:    map[defs.EnemyKind]int{},
		Completion: func(defs.WaveContext) bool { return ready },
	}})
	ws.Update(config.InterWaveDelay)
	if ws.Completed() {
		t.Fatal("predicate not yet satisfied")
	}
	ready = true
	ws.Update(16)
	if !ws.Completed() {
		t.Fatal("should complete once the predicate holds")
	}
}

func TestSpecialInstructionsRunOnce(t *testing.T) {
	_, ws, ctx, _ := newWaveFixture(t, 1)
	ws.SetWaves([]defs.WaveDefinition{{
		Enemies:             map[defs.EnemyKind]int{},
		SpecialInstructions: func(c defs.WaveContext) { c.PlayMusic("boss") },
	}})
	for i := 0; i < 10; i++ {
		ws.Update(500)
	}
	if len(ctx.music) != 1 {
		t.Fatalf("special instructions ran %d times", len(ctx.music))
	}
}

func TestResetReproducesFirstWave(t *testing.T) {
	waves := []defs.WaveDefinition{
		{Enemies: map[defs.EnemyKind]int{defs.EnemyDefault: 2}, Options: &defs.WaveOptions{SpawnRate: 300}},
		{Enemies: map[defs.EnemyKind]int{defs.EnemyDefault: 5}},
	}

	snapshot := func(w *entity.World, ws *WaveSystem) (int, float64, WaveState) {
		ws.Update(config.InterWaveDelay)
		sp := w.Spawners[0]
		return sp.SpawnsRemaining, sp.SpawnRate, ws.State()
	}

	fw, fresh, _, _ := newWaveFixture(t, 9)
	fw.AddSpawner(entity.NewSpawner(fw, defs.EnemyDefault, geom.V(10, 10)))
	fresh.SetWaves(waves)
	wantN, wantRate, wantState := snapshot(fw, fresh)

	w, ws, _, _ := newWaveFixture(t, 9)
	sp := entity.NewSpawner(w, defs.EnemyDefault, geom.V(10, 10))
	w.AddSpawner(sp)
	ws.SetWaves(waves)
	ws.Update(config.InterWaveDelay)
	for i := 0; i < 3; i++ {
		if e := sp.Update(w, 301); e != nil {
			e.DestroySilently(w)
		}
		w.ReapEnemies()
		ws.Update(16)
	}
	ws.Update(400)

	ws.Reset()
	if ws.State() != WaveIdle || ws.CurrentWave() != 0 || ws.DelayRemaining() != 0 {
		t.Fatal("reset left orchestrator state behind")
	}
	if _, visible := ws.Banner(); visible {
		t.Fatal("reset left the banner visible")
	}
	if sp.SpawnsRemaining != 0 {
		t.Fatal("reset must disarm spawners")
	}

	gotN, gotRate, gotState := snapshot(w, ws)
	if gotN != wantN || gotRate != wantRate || gotState != wantState {
		t.Fatalf("after reset got (%d, %v, %v), want (%d, %v, %v)", gotN, gotRate, gotState, wantN, wantRate, wantState)
	}
}

func TestSurvivalWaveDistribution(t *testing.T) {
	rng := utils.NewPRNGService(42)
	params := defs.SurvivalParams{
		EnemyCount: 1000,
		Entries:    []defs.SurvivalEntry{{Kind: "A", Weight: 1}, {Kind: "B", Weight: 1}},
	}
	wave := GenerateSurvivalWave(params, 0, rng)
	a, b := wave.Enemies["A"], wave.Enemies["B"]
	if a+b != 1000 {
		t.Fatalf("drew %d enemies", a+b)
	}
	if math.Abs(float64(a)/1000-0.5) > 0.05 {
		t.Fatalf("distribution %d/%d is too far from 50/50", a, b)
	}
}

func TestSurvivalWaveGrowth(t *testing.T) {
	rng := utils.NewPRNGService(1)
	params := defs.SurvivalParams{EnemyCount: 10, Entries: []defs.SurvivalEntry{{Kind: defs.EnemyDefault, Weight: 1}}}

	w0 := GenerateSurvivalWave(params, 0, rng)
	w3 := GenerateSurvivalWave(params, 3, rng)
	if w0.Total() != 10 {
		t.Fatalf("wave 0 count = %d", w0.Total())
	}
	if w3.Total() != int(math.Round(10*math.Pow(1.2, 3))) {
		t.Fatalf("wave 3 count = %d", w3.Total())
	}
	s := w3.Options.Scale
	if math.Abs(s.HP-1.3) > 1e-9 || math.Abs(s.Damage-1.15) > 1e-9 || math.Abs(s.Speed-1.09) > 1e-9 {
		t.Fatalf("scale = %+v", s)
	}
}

func TestSurvivalNeverCompletes(t *testing.T) {
	_, ws, _, _ := newWaveFixture(t, 5)
	ws.SetWaves([]defs.WaveDefinition{{Survival: &defs.SurvivalParams{
		EnemyCount: 0,
		Entries:    []defs.SurvivalEntry{{Kind: defs.EnemyDefault, Weight: 1}},
	}}})
	for i := 0; i < 10; i++ {
		ws.Update(config.InterWaveDelay)
	}
	if ws.Completed() || !ws.Survival() || ws.TotalWaves() != -1 {
		t.Fatal("survival mode has no terminal state")
	}
	if ws.CurrentWave() < 5 {
		t.Fatalf("survival should keep advancing, at %d", ws.CurrentWave())
	}
}
