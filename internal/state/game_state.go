// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/ui"
	"go-arena-shooter/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	session  *Session
	health   *ui.PlayerHealthIndicator
	waves    *ui.WaveIndicator
	fontFace font.Face
	autoAim  bool
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		session:  session,
		health:   ui.NewPlayerHealthIndicator(20, 30, face),
		waves:    ui.NewWaveIndicator(config.ScreenWidth/2, 24, face),
		fontFace: face,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// readInput собирает ввод игрока за кадр.
func (g *GameState) readInput() system.PlayerInput {
	var move geom.Vector2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}

	x, y := ebiten.CursorPosition()
	aim := g.session.Game.CameraSystem.ScreenToWorld(geom.V(float64(x), float64(y)))
	return system.PlayerInput{
		Move:    move,
		Aim:     aim,
		Fire:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace),
		AutoAim: g.autoAim,
	}
}

func (g *GameState) Update(deltaTime float64) {
	game := g.session.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if game.StateSystem.Current() == component.PlayingState {
			g.sm.SetState(NewPauseState(g.sm, g, g.session))
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.autoAim = !g.autoAim
	}

	switch game.StateSystem.Current() {
	case component.DeadState:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			game.Revive()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := game.Reset(); err != nil {
				log.Printf("failed to reset level: %v", err)
			}
		}
	case component.FinishedState:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			game.Teardown()
			g.sm.SetState(NewMenuState(g.sm, g.session))
			return
		}
	}

	game.Update(deltaTime, g.readInput())
	g.session.Sink.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.session.Game
	g.session.Sink.Draw(screen, game.CameraSystem)

	if p := game.World.Player; p != nil {
		g.health.Draw(screen, p.Health.HP, p.Health.MaxHP)
	}

	ws := game.WaveSystem
	g.waves.Draw(screen, ui.WaveStatus{
		Wave:      ws.CurrentWave() + 1,
		Total:     ws.TotalWaves(),
		Remaining: ws.Remaining(),
		Between:   ws.BetweenWaves(),
		Delay:     ws.DelayRemaining(),
		Completed: ws.Completed(),
	})

	status := fmt.Sprintf("Level %d   Currency %d   Kills %d", game.LevelNum(), game.SessionCurrency(), game.PlayerSystem.State.Kills)
	if g.autoAim {
		status += "   [auto-aim]"
	}
	text.Draw(screen, status, g.fontFace, 20, config.ScreenHeight-16, config.TextLightColor)

	var overlay string
	switch game.StateSystem.Current() {
	case component.DeadState:
		overlay = "You died  -  R to revive, Enter to restart"
	case component.FinishedState:
		overlay = "Level cleared!  -  Enter to continue"
	}
	if overlay != "" {
		w := text.BoundString(g.fontFace, overlay).Dx()
		text.Draw(screen, overlay, g.fontFace, (config.ScreenWidth-w)/2, config.ScreenHeight/2, config.BannerColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
