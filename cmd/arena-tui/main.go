// cmd/arena-tui/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/audio"
	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/interfaces"
	"go-arena-shooter/internal/profile"
	"go-arena-shooter/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	level := flag.Int("level", 1, "level to play")
	seed := flag.Int64("seed", time.Now().UnixNano(), "simulation RNG seed")
	profilePath := flag.String("profile", config.ProfileFile, "profile file")
	logPath := flag.String("log", "arena-tui.log", "log file; the terminal is busy drawing")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if err := defs.LoadOverrides(config.DataDir); err != nil {
		log.Fatalf("failed to load definitions: %v", err)
	}
	lvl, err := defs.LoadLevel(filepath.Join(config.LevelDir, fmt.Sprintf("level%d.json", *level)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load level %d: %v\n", *level, err)
		os.Exit(1)
	}

	store := profile.NewStore(*profilePath)
	prof, err := store.Load()
	if err != nil {
		log.Printf("failed to load profile, starting fresh: %v", err)
		prof = profile.Default()
	}

	var sound interfaces.SoundPlayer
	if !*mute {
		bp := audio.NewBeepPlayer()
		if err := bp.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer bp.Close()
		sound = bp
	}

	sink := tui.NewSink()
	g := app.NewGame(sink, sound, *seed)
	g.Profile = prof
	g.Store = store
	if err := g.ConfigureLevel(lvl, *level); err != nil {
		fmt.Fprintf(os.Stderr, "failed to configure level: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, g, sink)
}

func resize(screen tcell.Screen, g *app.Game, sink *tui.Sink) {
	w, h := screen.Size()
	g.CameraSystem.SetView(float64(w)*sink.CellW, float64(h-1)*sink.CellH)
	g.CameraSystem.Reset()
}

func run(screen tcell.Screen, g *app.Game, sink *tui.Sink) {
	in := tui.NewInput()
	resize(screen, g, sink)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					g.Teardown()
					return
				}
				if !in.HandleKey(ev) {
					handleCommand(g, ev)
				}
			case *tcell.EventResize:
				screen.Sync()
				resize(screen, g, sink)
			}

		case now := <-ticker.C:
			dt := float64(now.Sub(last).Microseconds()) / 1000
			last = now

			from := g.CameraSystem.Pos
			if p, ok := g.World.PlayerPos(); ok {
				from = p
			}
			g.Update(dt, in.Tick(dt, from))
			if !g.IsPaused() {
				sink.Update(dt)
			}
			draw(screen, g, sink, in)
		}
	}
}

// handleCommand covers keys that act on the session rather than the player.
func handleCommand(g *app.Game, ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune && ev.Key() != tcell.KeyEnter {
		return
	}
	state := g.StateSystem.Current()
	switch {
	case ev.Rune() == 'p':
		g.TogglePause()
	case ev.Rune() == 'r' && state == component.DeadState:
		g.Revive()
	case ev.Key() == tcell.KeyEnter && state != component.PlayingState:
		if err := g.Reset(); err != nil {
			log.Printf("failed to reset level: %v", err)
		}
	}
}

func draw(screen tcell.Screen, g *app.Game, sink *tui.Sink, in *tui.Input) {
	cam := g.CameraSystem
	sink.Draw(screen, cam.Pos.Sub(cam.Offset))

	_, h := screen.Size()
	hp, maxHP := 0.0, 0.0
	if p := g.World.Player; p != nil {
		hp, maxHP = p.Health.HP, p.Health.MaxHP
	}
	ws := g.WaveSystem
	status := fmt.Sprintf(" HP %.0f/%.0f  Wave %d/%d  Left %d  Currency %d",
		hp, maxHP, ws.CurrentWave()+1, ws.TotalWaves(), ws.Remaining(), g.SessionCurrency())
	if in.AutoAim {
		status += "  [auto]"
	}
	switch {
	case g.IsPaused():
		status += "  PAUSED"
	case g.StateSystem.Current() == component.DeadState:
		status += "  DEAD: r revive, enter restart"
	case g.StateSystem.Current() == component.FinishedState:
		status += "  CLEARED: enter to replay, esc to quit"
	}
	tui.PutString(screen, 0, h-1, status, tcell.StyleDefault.Reverse(true))
	screen.Show()
}
