// internal/system/wave.go
package system

import (
	"log"
	"math"
	"sort"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/event"
	"go-arena-shooter/internal/utils"
)

// WaveState is the orchestrator's position in its state machine.
type WaveState int

const (
	WaveIdle WaveState = iota
	WaveDelaying
	WaveActive
	WaveCompleted
)

func (s WaveState) String() string {
	switch s {
	case WaveDelaying:
		return "delaying"
	case WaveActive:
		return "active"
	case WaveCompleted:
		return "completed"
	}
	return "idle"
}

// WaveSystem sequences wave definitions: it arms spawners, watches the
// enemy population and advances when a wave is cleared.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	ctx             defs.WaveContext
	rng             *utils.PRNGService

	waves    []defs.WaveDefinition
	survival *defs.SurvivalParams

	state    WaveState
	current  int
	delay    float64
	active   defs.WaveDefinition
	finished bool

	banner      string
	bannerTimer float64
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, ctx defs.WaveContext) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		ctx:             ctx,
		rng:             world.RNG,
	}
}

// SetWaves installs a wave list and resets. A first entry with survival
// parameters switches the orchestrator into survival mode.
func (s *WaveSystem) SetWaves(waves []defs.WaveDefinition) {
	s.waves = waves
	s.survival = nil
	if len(waves) > 0 && waves[0].Survival != nil {
		s.survival = waves[0].Survival
	}
	s.Reset()
}

// Reset returns to Idle with every counter, timer and flag cleared, and
// disarms all spawners.
func (s *WaveSystem) Reset() {
	s.state = WaveIdle
	s.current = 0
	s.delay = 0
	s.active = defs.WaveDefinition{}
	s.finished = false
	s.banner = ""
	s.bannerTimer = 0
	for _, sp := range s.world.Spawners {
		sp.Configure(0, defs.Unit, 0)
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
		if s.bannerTimer <= 0 {
			s.banner = ""
		}
	}

	switch s.state {
	case WaveIdle:
		if len(s.waves) == 0 {
			return
		}
		s.state = WaveDelaying
		s.delay = config.InterWaveDelay
		fallthrough
	case WaveDelaying:
		s.delay -= deltaTime
		if s.delay > 0 {
			return
		}
		s.delay = 0
		s.activate()
		s.checkCompletion()
	case WaveActive:
		s.checkCompletion()
	case WaveCompleted:
	}
}

func (s *WaveSystem) activate() {
	s.active = s.specAt(s.current)

	scale := s.active.Scale()
	rate := 0.0
	if s.active.Options != nil {
		rate = s.active.Options.SpawnRate
	}
	for _, sp := range s.world.Spawners {
		sp.Configure(s.active.Enemies[sp.Kind], scale, rate)
	}
	if s.active.SpecialInstructions != nil && s.ctx != nil {
		s.active.SpecialInstructions(s.ctx)
	}

	s.state = WaveActive
	log.Printf("wave %d started (%d enemies per spawner)", s.current+1, s.active.Total())
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Index: s.current, Fake: s.active.IsFake()}})
}

func (s *WaveSystem) specAt(i int) defs.WaveDefinition {
	if s.survival != nil {
		return GenerateSurvivalWave(*s.survival, i, s.rng)
	}
	if i < 0 || i >= len(s.waves) {
		log.Printf("wave %d out of range, using an empty wave", i)
		return defs.WaveDefinition{Enemies: map[defs.EnemyKind]int{}}
	}
	return s.waves[i]
}

// waveCleared reports whether the active wave is done: every spawner is
// exhausted, no enemy is alive and the wave's own predicate holds.
func (s *WaveSystem) waveCleared() bool {
	for _, sp := range s.world.Spawners {
		if sp.SpawnsRemaining != 0 {
			return false
		}
	}
	if s.world.LiveEnemies("") != 0 {
		return false
	}
	if s.active.Completion != nil && s.ctx != nil {
		return s.active.Completion(s.ctx)
	}
	return true
}

func (s *WaveSystem) checkCompletion() {
	if !s.waveCleared() {
		return
	}

	fake := s.active.IsFake()
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Index: s.current, Fake: fake}})
	if !fake {
		s.praise()
	}

	s.current++
	if s.survival != nil || s.current < len(s.waves) {
		s.state = WaveDelaying
		s.delay = config.InterWaveDelay
		return
	}

	s.state = WaveCompleted
	if !s.finished {
		s.finished = true
		log.Println("all waves cleared")
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameFinished})
	}
}

func (s *WaveSystem) praise() {
	word := config.PraiseWords[s.rng.Intn(len(config.PraiseWords))]
	s.banner = word
	s.bannerTimer = config.BannerDuration
	if s.ctx != nil {
		s.ctx.ShowBanner(word)
	}
}

// GenerateSurvivalWave synthesizes wave index from params: count weighted
// draws, with count growing 20% per wave and hp, damage and speed scaling
// linearly with the index.
func GenerateSurvivalWave(params defs.SurvivalParams, index int, rng *utils.PRNGService) defs.WaveDefinition {
	count := int(math.Round(float64(params.EnemyCount) * math.Pow(config.SurvivalCountGrowth, float64(index))))

	entries := make([]utils.WeightedEntry, 0, len(params.Entries))
	for _, e := range params.Entries {
		entries = append(entries, utils.WeightedEntry{Key: string(e.Kind), Weight: e.Weight})
	}

	enemies := make(map[defs.EnemyKind]int)
	for i := 0; i < count; i++ {
		if k := rng.ChooseWeighted(entries); k != "" {
			enemies[defs.EnemyKind(k)]++
		}
	}

	rate := params.SpawnRate
	if rate <= 0 {
		rate = config.SurvivalSpawnRate
	}
	idx := float64(index)
	return defs.WaveDefinition{
		Enemies: enemies,
		Options: &defs.WaveOptions{
			Scale: defs.ScaleFactors{
				HP:     1 + config.SurvivalHPGrowth*idx,
				Damage: 1 + config.SurvivalDamageGrowth*idx,
				Speed:  1 + config.SurvivalSpeedGrowth*idx,
				Size:   1,
			},
			SpawnRate: rate,
		},
	}
}

func (s *WaveSystem) State() WaveState { return s.state }

// CurrentWave is the zero-based index of the active or upcoming wave.
func (s *WaveSystem) CurrentWave() int { return s.current }

// TotalWaves returns the length of the wave list, or -1 in survival mode.
func (s *WaveSystem) TotalWaves() int {
	if s.survival != nil {
		return -1
	}
	return len(s.waves)
}

func (s *WaveSystem) Survival() bool { return s.survival != nil }

func (s *WaveSystem) Completed() bool { return s.state == WaveCompleted }

// BetweenWaves reports whether the inter-wave pause is running.
func (s *WaveSystem) BetweenWaves() bool { return s.state == WaveDelaying }

// DelayRemaining is the time left before the next wave activates.
func (s *WaveSystem) DelayRemaining() float64 { return s.delay }

// Banner returns the praise text while it is visible.
func (s *WaveSystem) Banner() (string, bool) { return s.banner, s.bannerTimer > 0 }

// Remaining counts enemies still to spawn plus enemies alive.
func (s *WaveSystem) Remaining() int {
	n := s.world.LiveEnemies("")
	for _, sp := range s.world.Spawners {
		n += sp.SpawnsRemaining
	}
	return n
}

// ActiveKinds lists the enemy kinds of the active wave, sorted.
func (s *WaveSystem) ActiveKinds() []defs.EnemyKind {
	kinds := make([]defs.EnemyKind, 0, len(s.active.Enemies))
	for k, n := range s.active.Enemies {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
