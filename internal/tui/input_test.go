package tui

import (
	"testing"

	"go-arena-shooter/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func char(r rune) *tcell.EventKey     { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestHeldDirectionExpires(t *testing.T) {
	in := NewInput()
	in.HandleKey(key(tcell.KeyRight))
	in.HandleKey(char('w'))

	got := in.Tick(100, geom.V(0, 0))
	if got.Move != geom.V(1, -1) {
		t.Errorf("Move = %v", got.Move)
	}
	in.Tick(HoldTime, geom.V(0, 0))
	if got := in.Tick(16, geom.V(0, 0)); !got.Move.IsZero() {
		t.Errorf("direction still held: %v", got.Move)
	}
}

func TestOppositeReleases(t *testing.T) {
	in := NewInput()
	in.HandleKey(key(tcell.KeyLeft))
	in.HandleKey(char('d'))
	if got := in.Tick(16, geom.V(0, 0)); got.Move != geom.V(1, 0) {
		t.Errorf("Move = %v", got.Move)
	}
}

func TestManualAimFollowsFacing(t *testing.T) {
	in := NewInput()
	in.HandleKey(char('f'))
	if in.AutoAim {
		t.Fatal("f should toggle auto-aim off")
	}
	in.HandleKey(key(tcell.KeyDown))
	in.HandleKey(char(' '))
	got := in.Tick(16, geom.V(50, 50))
	if !got.Fire || got.AutoAim {
		t.Errorf("input = %+v", got)
	}
	if got.Aim != geom.V(50, 150) {
		t.Errorf("Aim = %v", got.Aim)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	in := NewInput()
	if in.HandleKey(char('z')) {
		t.Error("z should not be handled")
	}
	if in.HandleKey(key(tcell.KeyTab)) {
		t.Error("tab should not be handled")
	}
}
