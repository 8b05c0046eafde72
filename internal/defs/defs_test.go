package defs

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"testing"

	"go-arena-shooter/pkg/geom"
)

func TestParseColor(t *testing.T) {
	gray := color.RGBA{128, 128, 128, 255}
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}},
		{"#00FF80", color.RGBA{0, 255, 128, 255}},
		{"rgba(255, 0, 0, 1)", color.RGBA{255, 0, 0, 255}},
		{"rgba(200,100,50,0)", color.RGBA{0, 0, 0, 0}},
		{"rgb(10,20,30)", color.RGBA{10, 20, 30, 255}},
		{"", gray},
		{"#abc", gray},
		{"#gggggg", gray},
		{"rgba(1,2,3)", gray},
		{"rgba(300,0,0,1)", gray},
		{"rgba(0,0,0,2)", gray},
		{"hsl(0,0,0)", gray},
	}
	for _, c := range cases {
		if got := ParseColor(c.in, gray); got != c.want {
			t.Errorf("ParseColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	data := []byte(`{
		"theme": "night",
		"objects": [
			{"type": "Rectangle", "x": 0, "y": 0, "width": 100, "height": 20, "color": "#ff0000"},
			{"type": "Circle", "x": 50, "y": 50, "radius": 10, "tag": "enemy_passable"},
			{"type": "Point", "x": 10, "y": 10, "tag": "spawn"},
			{"type": "Point", "x": 80, "y": 80, "tag": "espawn2"},
			{"type": "Point", "x": 0, "y": 0, "tag": "nonsense"},
			{"type": "Point", "x": -100, "y": 0, "tag": "left"},
			{"type": "Point", "x": 500, "y": 0, "tag": "right"},
			{"type": "Light", "x": 5, "y": 5, "radius": 40},
			{"type": "Triangle", "x": 0, "y": 0}
		]
	}`)

	lvl, err := ParseLevel(data)
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	if lvl.Theme != "night" {
		t.Errorf("theme = %q", lvl.Theme)
	}
	if len(lvl.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(lvl.Shapes))
	}
	if lvl.Shapes[0].Shape.Kind != geom.Rectangle || lvl.Shapes[0].Color != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("unexpected rectangle %+v", lvl.Shapes[0])
	}
	if lvl.Shapes[1].Tag != "enemy_passable" || lvl.Shapes[1].Color != defaultShapeColor {
		t.Errorf("unexpected circle %+v", lvl.Shapes[1])
	}
	if _, ok := lvl.Point("nonsense"); ok {
		t.Error("unknown point tag should be skipped")
	}
	if p, ok := lvl.Point(PointSpawn); !ok || p != geom.V(10, 10) {
		t.Errorf("spawn point = %v, %v", p, ok)
	}
	if len(lvl.Lights) != 1 || lvl.Lights[0].Color != defaultLightColor {
		t.Errorf("unexpected lights %+v", lvl.Lights)
	}

	lo, hi := lvl.Bounds()
	if lo.X != -100 || hi.X != 500 {
		t.Errorf("x bounds should come from markers, got %v..%v", lo.X, hi.X)
	}
	if lo.Y != 0 || hi.Y != 80 {
		t.Errorf("y bounds should fall back to extent, got %v..%v", lo.Y, hi.Y)
	}
}

func TestParseLevelRejectsGarbage(t *testing.T) {
	if _, err := ParseLevel([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
	if _, err := ParseLevel([]byte(`{"theme":"x"}`)); err == nil {
		t.Fatal("expected error for missing objects")
	}
}

func TestLookupWaves(t *testing.T) {
	if _, err := LookupWaves(999); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}

	waves, err := LookupWaves(3)
	if err != nil {
		t.Fatalf("LookupWaves(3): %v", err)
	}
	s := waves[0].Survival
	if s == nil || len(s.Entries) == 0 {
		t.Fatal("survival wave should inherit the arena weight table")
	}
	if WaveTables[3][0].Survival.Entries != nil {
		t.Fatal("lookup must not mutate the declared table")
	}
}

func TestFakeWave(t *testing.T) {
	fake := WaveDefinition{Enemies: map[EnemyKind]int{}}
	if !fake.IsFake() {
		t.Error("empty wave should be fake")
	}
	real := WaveDefinition{Enemies: map[EnemyKind]int{EnemyDefault: 1}}
	if real.IsFake() {
		t.Error("wave with enemies is not fake")
	}
	if got := fake.Scale(); got != Unit {
		t.Errorf("default scale = %+v", got)
	}
}

func TestCannonStatsMonotonic(t *testing.T) {
	for kind, def := range CannonLibrary {
		if def.RarityMul.Damage <= 1 {
			continue // enemy cannons use flat tables
		}
		prev := def.Stats(0, 0)
		for r := 1; r <= 4; r++ {
			cur := def.Stats(r, 0)
			if cur.Damage <= prev.Damage || cur.Pierce <= prev.Pierce || cur.Speed <= prev.Speed {
				t.Errorf("%s rarity %d did not increase stats", kind, r)
			}
			if cur.Rate >= prev.Rate {
				t.Errorf("%s rarity %d did not shorten cooldown", kind, r)
			}
			prev = cur
		}
		prev = def.Stats(0, 0)
		for s := 1; s <= 5; s++ {
			cur := def.Stats(0, s)
			if cur.Damage <= prev.Damage || cur.Rate >= prev.Rate {
				t.Errorf("%s star %d not monotonic", kind, s)
			}
			prev = cur
		}
	}
}

func TestHitboxAt(t *testing.T) {
	c := Hitbox{Shape: "circle", Radius: 5}.At(geom.V(1, 2))
	if c.Kind != geom.Circle || c.Radius != 5 || c.Pos != geom.V(1, 2) {
		t.Errorf("circle hitbox %+v", c)
	}
	r := Hitbox{Shape: "rectangle", Width: 3, Height: 4}.At(geom.V(1, 2))
	if r.Kind != geom.Rectangle || r.Width != 3 || r.Height != 4 {
		t.Errorf("rect hitbox %+v", r)
	}
}

func TestShippedLevelsCoverTheirWaves(t *testing.T) {
	for num, waves := range WaveTables {
		lvl, err := LoadLevel(filepath.Join("..", "..", "assets", "levels", fmt.Sprintf("level%d.json", num)))
		if err != nil {
			t.Fatalf("level %d: %v", num, err)
		}
		if _, ok := lvl.Point(PointSpawn); !ok {
			t.Errorf("level %d has no spawn point", num)
		}

		kinds := make(map[EnemyKind]bool)
		for tag := range lvl.Markers {
			if k, ok := SpawnMarkers[tag]; ok {
				kinds[k] = true
			}
		}
		for _, w := range waves {
			for k := range w.Enemies {
				if !kinds[k] {
					t.Errorf("level %d: no spawner for %s", num, k)
				}
			}
		}

		lo, hi := lvl.Bounds()
		if hi.X <= lo.X || hi.Y <= lo.Y {
			t.Errorf("level %d: empty bounds %v..%v", num, lo, hi)
		}
	}
}
