package tui

import (
	"image/color"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestCellProjection(t *testing.T) {
	s := NewSink()
	center := geom.V(0, 0)
	if x, y := s.CellOf(geom.V(0, 0), center, 20, 10); x != 10 || y != 5 {
		t.Errorf("CellOf(origin) = %d,%d", x, y)
	}
	if x, y := s.CellOf(geom.V(-17, 33), center, 20, 10); x != 8 || y != 6 {
		t.Errorf("CellOf = %d,%d", x, y)
	}
	p := s.WorldOf(10, 5, center, 20, 10)
	if x, y := s.CellOf(p, center, 20, 10); x != 10 || y != 5 {
		t.Errorf("WorldOf does not round-trip: %v -> %d,%d", p, x, y)
	}
}

func TestDrawShapes(t *testing.T) {
	screen := newScreen(t, 20, 11)
	s := NewSink()
	s.SyncShape(1, geom.NewRect(0, 0, 160, 64), color.RGBA{90, 90, 90, 255})
	s.SyncShape(2, geom.NewCircle(-100, -100, 4), color.RGBA{255, 255, 0, 255})
	s.Draw(screen, geom.V(0, 0))

	if r := runeAt(screen, 10, 5); r != '█' {
		t.Errorf("wall cell = %q", r)
	}
	if r := runeAt(screen, 9, 5); r == '█' {
		t.Error("wall spilled left of its bounds")
	}
	if r := runeAt(screen, 3, 1); r != '•' {
		t.Errorf("bullet cell = %q", r)
	}

	s.RemoveShape(2)
	s.Draw(screen, geom.V(0, 0))
	if r := runeAt(screen, 3, 1); r == '•' {
		t.Error("removed bullet still drawn")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestBannerAndNumbersExpire(t *testing.T) {
	s := NewSink()
	s.Banner("Wave II")
	s.DamageNumber(12.6, geom.V(0, 0), true)
	s.Update(config.DamageNumberLifetime)
	if len(s.numbers) != 0 {
		t.Errorf("numbers not expired: %v", s.numbers)
	}
	if s.banner == "" {
		t.Error("banner expired too early")
	}
	s.Update(config.BannerDuration)
	if s.banner != "" {
		t.Errorf("banner = %q", s.banner)
	}
}

func TestPutStringClips(t *testing.T) {
	screen := newScreen(t, 5, 2)
	PutString(screen, 3, 0, "abc", tcell.StyleDefault)
	PutString(screen, 0, 5, "zzz", tcell.StyleDefault)
	if runeAt(screen, 3, 0) != 'a' || runeAt(screen, 4, 0) != 'b' {
		t.Error("text not written")
	}
}
