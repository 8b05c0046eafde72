// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"
	"sort"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var levelKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9}

// MenuState — выбор уровня среди открытых в профиле.
type MenuState struct {
	sm      *StateMachine
	session *Session
	message string
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{sm: sm, session: session}
}

// Levels returns the playable level numbers: those with a wave table
// that the profile has unlocked.
func Levels(maxLevel int) []int {
	var out []int
	for n := range defs.WaveTables {
		if n <= maxLevel {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	levels := Levels(m.session.Game.Profile.MaxLevel)
	for i, n := range levels {
		if i >= len(levelKeys) || !inpututil.IsKeyJustPressed(levelKeys[i]) {
			continue
		}
		if err := m.session.StartLevel(n); err != nil {
			log.Printf("failed to start level %d: %v", n, err)
			m.message = err.Error()
			return
		}
		m.sm.SetState(NewGameState(m.sm, m.session))
		return
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	p := m.session.Game.Profile

	y := config.ScreenHeight / 3
	text.Draw(screen, "SELECT LEVEL", face, config.ScreenWidth/2-40, y, config.BannerColor)
	y += 30
	for i, n := range Levels(p.MaxLevel) {
		line := fmt.Sprintf("[%d]  Level %d", i+1, n)
		text.Draw(screen, line, face, config.ScreenWidth/2-40, y, config.TextLightColor)
		y += 20
	}
	y += 20
	text.Draw(screen, fmt.Sprintf("Currency: %d", p.Currency), face, config.ScreenWidth/2-40, y, config.TextLightColor)
	if m.message != "" {
		text.Draw(screen, m.message, face, 20, config.ScreenHeight-20, config.CritColor)
	}
}

func (m *MenuState) Exit() {
	m.message = ""
}
