// internal/tui/sink.go
package tui

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Terminal cells are about twice as tall as they are wide.
const (
	DefaultCellW = 16.0
	DefaultCellH = 32.0
)

type drawable struct {
	shape geom.Shape
	style tcell.Style
	glyph rune
}

type floater struct {
	text string
	pos  geom.Vector2
	age  float64
	crit bool
}

// Sink rasterizes simulation shapes onto a tcell screen.
type Sink struct {
	CellW, CellH float64

	shapes  map[types.EntityID]drawable
	numbers []floater
	banner  string
	bannerT float64
}

func NewSink() *Sink {
	return &Sink{
		CellW:  DefaultCellW,
		CellH:  DefaultCellH,
		shapes: make(map[types.EntityID]drawable),
	}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// glyphFor picks a rune by shape size: small shapes are bullets.
func glyphFor(s geom.Shape) rune {
	switch {
	case s.Kind == geom.Rectangle && s.Width*s.Height >= 2500:
		return '█'
	case s.Kind == geom.Rectangle:
		return '■'
	case s.Radius <= 6:
		return '•'
	case s.Radius >= 60:
		return '░'
	}
	return '●'
}

func (s *Sink) SyncShape(id types.EntityID, shape geom.Shape, clr color.RGBA) {
	s.shapes[id] = drawable{shape: shape, style: styleFor(clr), glyph: glyphFor(shape)}
}

func (s *Sink) RemoveShape(id types.EntityID) {
	delete(s.shapes, id)
}

func (s *Sink) DamageNumber(amount float64, at geom.Vector2, crit bool) {
	s.numbers = append(s.numbers, floater{text: strconv.Itoa(int(math.Round(amount))), pos: at, crit: crit})
}

func (s *Sink) Banner(text string) {
	s.banner = text
	s.bannerT = config.BannerDuration
}

func (s *Sink) Len() int { return len(s.shapes) }

// Update ages floating numbers and the banner.
func (s *Sink) Update(deltaTime float64) {
	live := s.numbers[:0]
	for _, n := range s.numbers {
		n.age += deltaTime
		if n.age < config.DamageNumberLifetime {
			live = append(live, n)
		}
	}
	s.numbers = live
	if s.bannerT > 0 {
		s.bannerT -= deltaTime
		if s.bannerT <= 0 {
			s.banner = ""
		}
	}
}

// CellOf maps a world point to a screen cell for a view centered on center.
func (s *Sink) CellOf(p, center geom.Vector2, w, h int) (int, int) {
	x := int(math.Floor((p.X-center.X)/s.CellW)) + w/2
	y := int(math.Floor((p.Y-center.Y)/s.CellH)) + h/2
	return x, y
}

// WorldOf returns the world point at the middle of cell (x, y).
func (s *Sink) WorldOf(x, y int, center geom.Vector2, w, h int) geom.Vector2 {
	return geom.V(
		center.X+(float64(x-w/2)+0.5)*s.CellW,
		center.Y+(float64(y-h/2)+0.5)*s.CellH,
	)
}

// Draw paints every shape, then numbers and the banner. The last line is
// left for the caller's status text.
func (s *Sink) Draw(screen tcell.Screen, center geom.Vector2) {
	w, h := screen.Size()
	screen.Clear()

	ids := make([]types.EntityID, 0, len(s.shapes))
	for id := range s.shapes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		s.drawShape(screen, s.shapes[id], center, w, h-1)
	}

	for _, n := range s.numbers {
		x, y := s.CellOf(n.pos, center, w, h-1)
		y -= int(n.age / 250)
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if n.crit {
			style = style.Foreground(tcell.ColorRed).Bold(true)
		}
		PutString(screen, x, y, n.text, style)
	}

	if s.banner != "" {
		PutString(screen, (w-len([]rune(s.banner)))/2, h/4, s.banner, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func (s *Sink) drawShape(screen tcell.Screen, d drawable, center geom.Vector2, w, h int) {
	lo, hi := d.shape.Bounds()
	x0, y0 := s.CellOf(lo, center, w, h)
	x1, y1 := s.CellOf(hi, center, w, h)
	if x1 < 0 || y1 < 0 || x0 >= w || y0 >= h {
		return
	}

	painted := false
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			if d.shape.Kind == geom.Circle {
				p := s.WorldOf(x, y, center, w, h)
				if p.Distance(d.shape.Pos) > d.shape.Radius+s.CellW/2 {
					continue
				}
			}
			screen.SetContent(x, y, d.glyph, nil, d.style)
			painted = true
		}
	}
	// shapes smaller than a cell still get one glyph
	if !painted {
		x, y := s.CellOf(d.shape.Center(), center, w, h)
		if x >= 0 && y >= 0 && x < w && y < h {
			screen.SetContent(x, y, d.glyph, nil, d.style)
		}
	}
}

// PutString writes text starting at (x, y), clipped to the screen.
func PutString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := screen.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= 0 && x < w {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
