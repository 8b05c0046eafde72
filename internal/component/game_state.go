package component

// GameState — компонент для хранения состояния сессии
type GameState int

const (
	PlayingState GameState = iota
	DeadState
	FinishedState
)

func (s GameState) String() string {
	switch s {
	case DeadState:
		return "dead"
	case FinishedState:
		return "finished"
	}
	return "playing"
}
