// internal/tui/input.go
package tui

import (
	"go-arena-shooter/internal/system"
	"go-arena-shooter/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Terminals report presses only, so a direction stays held for this long
// after its last key event. Long enough to bridge the autorepeat delay.
const HoldTime = 300.0

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
	dirCount
)

var dirVectors = [dirCount]geom.Vector2{
	dirUp:    {X: 0, Y: -1},
	dirDown:  {X: 0, Y: 1},
	dirLeft:  {X: -1, Y: 0},
	dirRight: {X: 1, Y: 0},
}

// Input turns terminal key events into per-tick player input.
type Input struct {
	held    [dirCount]float64
	facing  geom.Vector2
	fire    float64
	AutoAim bool
}

func NewInput() *Input {
	return &Input{facing: geom.V(1, 0), AutoAim: true}
}

// HandleKey records a key press. It reports false for keys it does not use.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		in.press(dirUp)
	case tcell.KeyDown:
		in.press(dirDown)
	case tcell.KeyLeft:
		in.press(dirLeft)
	case tcell.KeyRight:
		in.press(dirRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.press(dirUp)
		case 's', 'S':
			in.press(dirDown)
		case 'a', 'A':
			in.press(dirLeft)
		case 'd', 'D':
			in.press(dirRight)
		case ' ':
			in.fire = HoldTime
		case 'f', 'F':
			in.AutoAim = !in.AutoAim
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (in *Input) press(d direction) {
	in.held[d] = HoldTime
	// opposite direction is released at once
	switch d {
	case dirUp:
		in.held[dirDown] = 0
	case dirDown:
		in.held[dirUp] = 0
	case dirLeft:
		in.held[dirRight] = 0
	case dirRight:
		in.held[dirLeft] = 0
	}
}

// Tick ages held keys and returns the input for this tick. Manual aim
// points from the player along the last movement direction.
func (in *Input) Tick(deltaTime float64, from geom.Vector2) system.PlayerInput {
	var move geom.Vector2
	for d := range in.held {
		if in.held[d] > 0 {
			move = move.Add(dirVectors[d])
			in.held[d] -= deltaTime
		}
	}
	if !move.IsZero() {
		in.facing = move.Normalize()
	}
	fire := in.fire > 0
	in.fire -= deltaTime

	return system.PlayerInput{
		Move:    move,
		Aim:     from.Add(in.facing.Mul(100)),
		Fire:    fire,
		AutoAim: in.AutoAim,
	}
}
