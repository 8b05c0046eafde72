// pkg/render/sink.go
package render

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Camera projects world points onto the screen.
type Camera interface {
	WorldToScreen(p geom.Vector2) geom.Vector2
}

type drawable struct {
	shape geom.Shape
	clr   color.RGBA
}

type damageNumber struct {
	text string
	pos  geom.Vector2
	age  float64
	crit bool
}

// Sink is the ebiten presentation sink. The simulation registers shapes,
// damage numbers and banners; Draw paints them each frame.
type Sink struct {
	Theme  Theme
	Lights []defs.Light

	shapes  map[types.EntityID]drawable
	order   []types.EntityID
	dirty   bool
	numbers []damageNumber

	banner    string
	bannerAge float64

	fontFace font.Face
}

func NewSink(theme Theme) *Sink {
	return &Sink{
		Theme:    theme,
		shapes:   make(map[types.EntityID]drawable),
		fontFace: basicfont.Face7x13,
	}
}

func (s *Sink) SyncShape(id types.EntityID, shape geom.Shape, clr color.RGBA) {
	if _, ok := s.shapes[id]; !ok {
		s.dirty = true
	}
	s.shapes[id] = drawable{shape: shape, clr: clr}
}

func (s *Sink) RemoveShape(id types.EntityID) {
	if _, ok := s.shapes[id]; ok {
		delete(s.shapes, id)
		s.dirty = true
	}
}

func (s *Sink) DamageNumber(amount float64, at geom.Vector2, crit bool) {
	txt := strconv.Itoa(int(math.Round(amount)))
	if crit {
		txt += "!"
	}
	s.numbers = append(s.numbers, damageNumber{text: txt, pos: at, crit: crit})
}

func (s *Sink) Banner(text string) {
	s.banner = text
	s.bannerAge = 0
}

// Len is the number of registered shapes.
func (s *Sink) Len() int { return len(s.shapes) }

// CurrentBanner returns the banner text currently shown, if any.
func (s *Sink) CurrentBanner() (string, bool) {
	return s.banner, s.banner != ""
}

// Update ages damage numbers and the banner.
func (s *Sink) Update(deltaTime float64) {
	live := s.numbers[:0]
	for _, n := range s.numbers {
		n.age += deltaTime
		if n.age < config.DamageNumberLifetime {
			live = append(live, n)
		}
	}
	s.numbers = live

	if s.banner != "" {
		s.bannerAge += deltaTime
		if s.bannerAge >= config.BannerDuration {
			s.banner = ""
		}
	}
}

// Clear drops everything registered.
func (s *Sink) Clear() {
	clear(s.shapes)
	s.order = s.order[:0]
	s.numbers = s.numbers[:0]
	s.banner = ""
}

// sorted returns registered ids in ascending order. Older entities (level
// geometry) are drawn first.
func (s *Sink) sorted() []types.EntityID {
	if !s.dirty {
		return s.order
	}
	s.order = s.order[:0]
	for id := range s.shapes {
		s.order = append(s.order, id)
	}
	sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })
	s.dirty = false
	return s.order
}

func (s *Sink) Draw(screen *ebiten.Image, cam Camera) {
	screen.Fill(s.Theme.BackgroundColor)

	for _, l := range s.Lights {
		p := cam.WorldToScreen(l.Pos)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(l.Radius), Fade(l.Color, 0.15), true)
	}

	for _, id := range s.sorted() {
		d := s.shapes[id]
		s.drawShape(screen, cam, d.shape, d.clr)
	}

	for _, n := range s.numbers {
		p := cam.WorldToScreen(n.pos)
		p.Y -= n.age * config.DamageNumberRise
		clr := s.Theme.TextColor
		if n.crit {
			clr = s.Theme.CritColor
		}
		clr = Fade(clr, 1-n.age/config.DamageNumberLifetime)
		w := text.BoundString(s.fontFace, n.text).Dx()
		text.Draw(screen, n.text, s.fontFace, int(p.X)-w/2, int(p.Y), clr)
	}

	if s.banner != "" {
		b := text.BoundString(s.fontFace, s.banner)
		x := (config.ScreenWidth - b.Dx()) / 2
		y := config.ScreenHeight / 4
		fade := 1.0
		if rest := config.BannerDuration - s.bannerAge; rest < 300 {
			fade = rest / 300
		}
		text.Draw(screen, s.banner, s.fontFace, x, y, Fade(s.Theme.BannerColor, fade))
	}
}

func (s *Sink) drawShape(screen *ebiten.Image, cam Camera, shape geom.Shape, clr color.RGBA) {
	p := cam.WorldToScreen(shape.Pos)
	x, y := float32(p.X), float32(p.Y)
	switch shape.Kind {
	case geom.Circle:
		r := float32(shape.Radius)
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
		vector.StrokeCircle(screen, x, y, r, 1, DarkenColor(clr), true)
	case geom.Rectangle:
		w, h := float32(shape.Width), float32(shape.Height)
		vector.DrawFilledRect(screen, x, y, w, h, clr, true)
		vector.StrokeRect(screen, x, y, w, h, 1, DarkenColor(clr), true)
	}
}
