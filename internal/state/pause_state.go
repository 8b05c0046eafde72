// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	session       *Session
}

func NewPauseState(sm *StateMachine, prevState State, session *Session) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		session:       session,
	}
}

func (s *PauseState) Enter() {
	if !s.session.Game.IsPaused() {
		s.session.Game.TogglePause()
	}
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.session.Game.Teardown()
		s.stateMachine.SetState(NewMenuState(s.stateMachine, s.session))
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := basicfont.Face7x13
	pauseText := "PAUSED  -  P to resume, Q to quit"
	w := text.BoundString(face, pauseText).Dx()
	text.Draw(screen, pauseText, face, (config.ScreenWidth-w)/2, config.ScreenHeight/2, color.White)
}

// Exit снимает игру с паузы, даже если выходим в меню.
func (s *PauseState) Exit() {
	if s.session.Game.IsPaused() {
		s.session.Game.TogglePause()
	}
}
