// internal/defs/level.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go-arena-shooter/pkg/geom"
)

// Object types in a level file.
const (
	ObjectRectangle = "Rectangle"
	ObjectCircle    = "Circle"
	ObjectPoint     = "Point"
	ObjectLight     = "Light"
)

// Point tags outside the enemy spawn markers.
const (
	PointSpawn  = "spawn"
	PointTop    = "top"
	PointBottom = "bottom"
	PointLeft   = "left"
	PointRight  = "right"
)

var (
	defaultShapeColor = color.RGBA{128, 128, 128, 255}
	defaultLightColor = color.RGBA{255, 220, 0, 255}
)

// LevelObject is one entry of a level file.
type LevelObject struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Tag    string  `json:"tag,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// LevelFile is the on-disk level schema.
type LevelFile struct {
	Objects []LevelObject `json:"objects"`
	Theme   string        `json:"theme,omitempty"`
}

// Obstacle is a static level shape.
type Obstacle struct {
	Shape geom.Shape
	Tag   string
	Color color.RGBA
}

// Light is presentation-only level data.
type Light struct {
	Pos    geom.Vector2
	Radius float64
	Color  color.RGBA
}

// Level is a parsed level ready for configuration.
type Level struct {
	Name    string
	Theme   string
	Shapes  []Obstacle
	Markers map[string][]geom.Vector2
	Lights  []Light
}

// Obstacles returns the level's static shapes.
func (l *Level) Obstacles() []Obstacle { return l.Shapes }

// Points returns every named point, grouped by tag.
func (l *Level) Points() map[string][]geom.Vector2 { return l.Markers }

// Point returns the first point tagged tag.
func (l *Level) Point(tag string) (geom.Vector2, bool) {
	pts := l.Markers[tag]
	if len(pts) == 0 {
		return geom.Vector2{}, false
	}
	return pts[0], true
}

// Bounds derives the world rectangle from the boundary markers. Missing
// markers fall back to the extent of the level's shapes and points.
func (l *Level) Bounds() (lo, hi geom.Vector2) {
	lo = geom.V(math.Inf(1), math.Inf(1))
	hi = geom.V(math.Inf(-1), math.Inf(-1))
	grow := func(a, b geom.Vector2) {
		lo = geom.V(math.Min(lo.X, a.X), math.Min(lo.Y, a.Y))
		hi = geom.V(math.Max(hi.X, b.X), math.Max(hi.Y, b.Y))
	}
	for _, o := range l.Shapes {
		a, b := o.Shape.Bounds()
		grow(a, b)
	}
	for _, pts := range l.Markers {
		for _, p := range pts {
			grow(p, p)
		}
	}
	if math.IsInf(lo.X, 1) {
		lo, hi = geom.Vector2{}, geom.V(1, 1)
	}

	if p, ok := l.Point(PointLeft); ok {
		lo.X = p.X
	}
	if p, ok := l.Point(PointTop); ok {
		lo.Y = p.Y
	}
	if p, ok := l.Point(PointRight); ok {
		hi.X = p.X
	}
	if p, ok := l.Point(PointBottom); ok {
		hi.Y = p.Y
	}
	return lo, hi
}

func knownPointTag(tag string) bool {
	switch tag {
	case PointSpawn, PointTop, PointBottom, PointLeft, PointRight:
		return true
	}
	_, ok := SpawnMarkers[tag]
	return ok
}

// ParseLevel decodes a level file. Unknown object types and point tags are
// logged and skipped.
func ParseLevel(data []byte) (*Level, error) {
	var file LevelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if file.Objects == nil {
		return nil, fmt.Errorf("level has no objects array")
	}

	lvl := &Level{Theme: file.Theme, Markers: make(map[string][]geom.Vector2)}
	for i, o := range file.Objects {
		switch o.Type {
		case ObjectRectangle:
			if o.Width <= 0 || o.Height <= 0 {
				log.Printf("level: object %d: rectangle with non-positive size skipped", i)
				continue
			}
			lvl.Shapes = append(lvl.Shapes, Obstacle{
				Shape: geom.NewRect(o.X, o.Y, o.Width, o.Height),
				Tag:   o.Tag,
				Color: ParseColor(o.Color, defaultShapeColor),
			})
		case ObjectCircle:
			if o.Radius <= 0 {
				log.Printf("level: object %d: circle with non-positive radius skipped", i)
				continue
			}
			lvl.Shapes = append(lvl.Shapes, Obstacle{
				Shape: geom.NewCircle(o.X, o.Y, o.Radius),
				Tag:   o.Tag,
				Color: ParseColor(o.Color, defaultShapeColor),
			})
		case ObjectPoint:
			if !knownPointTag(o.Tag) {
				log.Printf("level: object %d: unknown point tag %q skipped", i, o.Tag)
				continue
			}
			lvl.Markers[o.Tag] = append(lvl.Markers[o.Tag], geom.V(o.X, o.Y))
		case ObjectLight:
			lvl.Lights = append(lvl.Lights, Light{
				Pos:    geom.V(o.X, o.Y),
				Radius: o.Radius,
				Color:  ParseColor(o.Color, defaultLightColor),
			})
		default:
			log.Printf("level: object %d: unknown type %q skipped", i, o.Type)
		}
	}
	return lvl, nil
}

// LoadLevel reads and parses a level file from disk.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lvl.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	return lvl, nil
}

// ParseColor accepts "#rrggbb", "rgb(r,g,b)" or "rgba(r,g,b,a)" where a is
// in [0,1]. Empty or malformed input returns fallback.
func ParseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return fallback
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return fallback
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fallback
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}

	var body string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		body, want = s[5:len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		body, want = s[4:len(s)-1], 3
	default:
		return fallback
	}

	parts := strings.Split(body, ",")
	if len(parts) != want {
		return fallback
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return fallback
		}
		ch[i] = uint8(v)
	}
	a := uint8(255)
	if want == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return fallback
		}
		a = uint8(math.Round(f * 255))
	}
	// color.RGBA is alpha-premultiplied
	return color.RGBA{
		R: uint8(uint16(ch[0]) * uint16(a) / 255),
		G: uint8(uint16(ch[1]) * uint16(a) / 255),
		B: uint8(uint16(ch[2]) * uint16(a) / 255),
		A: a,
	}
}
