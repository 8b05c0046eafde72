// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/audio"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/profile"
	"go-arena-shooter/internal/state"
	"go-arena-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := float64(now.Sub(a.lastUpdateTime).Microseconds()) / 1000
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	level := flag.Int("level", 0, "start this level directly instead of the menu")
	seed := flag.Int64("seed", time.Now().UnixNano(), "simulation RNG seed")
	profilePath := flag.String("profile", config.ProfileFile, "profile file")
	pprof := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	if err := defs.LoadOverrides(config.DataDir); err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}

	store := profile.NewStore(*profilePath)
	prof, err := store.Load()
	if err != nil {
		log.Printf("failed to load profile, starting fresh: %v", err)
		prof = profile.Default()
	}

	sink := render.NewSink(render.LookupTheme(""))
	var sound interfaces.SoundPlayer
	if !*mute {
		sound = audio.NewToneBank()
	}
	g := app.NewGame(sink, sound, *seed)
	g.Profile = prof
	g.Store = store

	session := &state.Session{Game: g, Sink: sink}
	sm := state.NewStateMachine() // Создаём машину состояний
	if *level > 0 {
		if err := session.StartLevel(*level); err != nil {
			log.Fatalf("failed to start level %d: %v", *level, err)
		}
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Shooter")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
