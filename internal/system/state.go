// internal/system/state.go
package system

import (
	"log"

	"go-arena-shooter/internal/component"
	"go-arena-shooter/internal/event"
)

// StateSystem tracks whether the session is playing, lost or won.
type StateSystem struct {
	state component.GameState
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{state: component.PlayingState}
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	eventDispatcher.Subscribe(event.GameFinished, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		if s.state == component.PlayingState {
			s.state = component.DeadState
			log.Println("player died")
		}
	case event.GameFinished:
		if s.state == component.PlayingState {
			s.state = component.FinishedState
		}
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.state
}

// Restart puts the session back into the playing state.
func (s *StateSystem) Restart() {
	s.state = component.PlayingState
}
