// internal/state/state.go
package state

import (
	"fmt"
	"path/filepath"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Session is shared by every screen: one simulation and its sink.
type Session struct {
	Game     *app.Game
	Sink     *render.Sink
	LevelDir string
}

// LevelPath returns the file for level n.
func (s *Session) LevelPath(n int) string {
	dir := s.LevelDir
	if dir == "" {
		dir = config.LevelDir
	}
	return filepath.Join(dir, fmt.Sprintf("level%d.json", n))
}

// StartLevel loads level n from disk and configures the game with it.
func (s *Session) StartLevel(n int) error {
	lvl, err := defs.LoadLevel(s.LevelPath(n))
	if err != nil {
		return err
	}
	s.Sink.Clear()
	s.Sink.Theme = render.LookupTheme(lvl.Theme)
	s.Sink.Lights = lvl.Lights
	return s.Game.ConfigureLevel(lvl, n)
}
