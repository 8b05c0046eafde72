package render

import (
	"image/color"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"
)

func TestSinkRegistryOrder(t *testing.T) {
	s := NewSink(LookupTheme(""))
	s.SyncShape(5, geom.NewCircle(0, 0, 1), color.RGBA{})
	s.SyncShape(2, geom.NewRect(0, 0, 1, 1), color.RGBA{})
	s.SyncShape(9, geom.NewCircle(1, 1, 1), color.RGBA{})
	s.SyncShape(5, geom.NewCircle(3, 3, 1), color.RGBA{})

	got := s.sorted()
	want := []types.EntityID{2, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("ids = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
	if s.shapes[5].shape.Pos != geom.V(3, 3) {
		t.Error("sync should move an existing shape")
	}

	s.RemoveShape(2)
	s.RemoveShape(42)
	if s.Len() != 2 || len(s.sorted()) != 2 {
		t.Fatalf("after remove: len %d", s.Len())
	}
}

func TestSinkAgesNumbersAndBanner(t *testing.T) {
	s := NewSink(LookupTheme("night"))
	s.DamageNumber(12.6, geom.V(0, 0), true)
	if s.numbers[0].text != "13!" {
		t.Errorf("crit text = %q", s.numbers[0].text)
	}
	s.Banner("Nice!")

	s.Update(config.DamageNumberLifetime - 1)
	if len(s.numbers) != 1 {
		t.Fatal("number expired early")
	}
	s.Update(1)
	if len(s.numbers) != 0 {
		t.Fatal("number outlived its lifetime")
	}

	s.Update(config.BannerDuration)
	if _, ok := s.CurrentBanner(); ok {
		t.Fatal("banner should have expired")
	}
}

func TestFade(t *testing.T) {
	c := Fade(color.RGBA{200, 100, 50, 255}, 0.5)
	if c != (color.RGBA{100, 50, 25, 127}) {
		t.Errorf("Fade = %v", c)
	}
	if Fade(c, -1) != (color.RGBA{}) {
		t.Error("negative fade should clear")
	}
}

func TestLookupThemeFallback(t *testing.T) {
	if LookupTheme("nope") != Themes[""] {
		t.Error("unknown theme should fall back to default")
	}
}
