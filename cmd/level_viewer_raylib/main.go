package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"go-arena-shooter/internal/app"
	"go-arena-shooter/internal/defs"
	"go-arena-shooter/internal/system"
	"go-arena-shooter/internal/types"
	"go-arena-shooter/pkg/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ColorLerp выполняет линейную интерполяцию между двумя цветами
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

func toRL(c color.RGBA) rl.Color    { return rl.NewColor(c.R, c.G, c.B, c.A) }
func vec(p geom.Vector2) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func drawShape(s geom.Shape, c rl.Color) {
	if s.Kind == geom.Rectangle {
		rl.DrawRectangleV(vec(s.Pos), rl.NewVector2(float32(s.Width), float32(s.Height)), c)
		return
	}
	rl.DrawCircleV(vec(s.Pos), float32(s.Radius), c)
}

// previewSink хранит фигуры запущенной симуляции для отрисовки поверх уровня.
type previewSink struct {
	shapes map[types.EntityID]previewShape
}

type previewShape struct {
	shape geom.Shape
	color rl.Color
}

func newPreviewSink() *previewSink {
	return &previewSink{shapes: make(map[types.EntityID]previewShape)}
}

func (p *previewSink) SyncShape(id types.EntityID, s geom.Shape, c color.RGBA) {
	p.shapes[id] = previewShape{s, toRL(c)}
}

func (p *previewSink) RemoveShape(id types.EntityID)            { delete(p.shapes, id) }
func (p *previewSink) DamageNumber(float64, geom.Vector2, bool) {}
func (p *previewSink) Banner(text string)                       { log.Printf("banner: %s", text) }

func (p *previewSink) draw() {
	ids := make([]types.EntityID, 0, len(p.shapes))
	for id := range p.shapes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		e := p.shapes[id]
		drawShape(e.shape, e.color)
	}
}

type viewer struct {
	path   string
	num    int
	level  *defs.Level
	err    error
	game   *app.Game
	sink   *previewSink
	simOn  bool
	camera rl.Camera2D
}

func (v *viewer) reload() {
	if v.simOn {
		v.game.Teardown()
		v.simOn = false
	}
	v.level, v.err = defs.LoadLevel(v.path)
	if v.err != nil {
		log.Printf("failed to load %s: %v", v.path, v.err)
		return
	}
	lo, hi := v.level.Bounds()
	v.camera.Target = vec(lo.Add(hi).Mul(0.5))
}

// toggleSim starts a headless run of the level: the player stands at the
// spawn with auto-aim while waves play out.
func (v *viewer) toggleSim() {
	if v.level == nil {
		return
	}
	if v.simOn {
		v.game.Teardown()
		v.simOn = false
		return
	}
	if err := v.game.ConfigureLevel(v.level, v.num); err != nil {
		log.Printf("simulation: %v", err)
		return
	}
	v.simOn = true
}

func main() {
	path := flag.String("file", "assets/levels/level1.json", "level file")
	num := flag.Int("n", 1, "level number used to pick the wave table for the simulation")
	flag.Parse()

	// --- Инициализация ---
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Level Viewer | Wheel - Zoom, RMB - Pan, R - Reload, S - Simulate")
	rl.SetTargetFPS(60)

	v := &viewer{path: *path, num: *num, sink: newPreviewSink()}
	v.game = app.NewGame(v.sink, nil, 1)
	v.camera = rl.Camera2D{Offset: rl.NewVector2(screenWidth/2, screenHeight/2), Zoom: 0.6}
	v.reload()

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyR) {
			v.reload()
		}
		if rl.IsKeyPressed(rl.KeyS) {
			v.toggleSim()
		}

		// Масштаб колесом относительно курсора
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			mouse := rl.GetMousePosition()
			before := rl.GetScreenToWorld2D(mouse, v.camera)
			v.camera.Zoom *= 1 + wheel*0.1
			if v.camera.Zoom < 0.05 {
				v.camera.Zoom = 0.05
			}
			after := rl.GetScreenToWorld2D(mouse, v.camera)
			v.camera.Target = rl.Vector2Add(v.camera.Target, rl.Vector2Subtract(before, after))
		}
		if rl.IsMouseButtonDown(rl.MouseButtonRight) {
			d := rl.GetMouseDelta()
			v.camera.Target = rl.Vector2Subtract(v.camera.Target, rl.Vector2Scale(d, 1/v.camera.Zoom))
		}

		if v.simOn {
			v.game.Update(float64(rl.GetFrameTime())*1000, system.PlayerInput{AutoAim: true})
		}

		// --- Отрисовка ---
		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)

		if v.level != nil {
			rl.BeginMode2D(v.camera)
			lo, hi := v.level.Bounds()
			rl.DrawRectangleLinesEx(rl.NewRectangle(float32(lo.X), float32(lo.Y), float32(hi.X-lo.X), float32(hi.Y-lo.Y)), 2/v.camera.Zoom, rl.DarkGray)

			for _, l := range v.level.Lights {
				c := toRL(l.Color)
				rl.DrawCircleGradient(int32(l.Pos.X), int32(l.Pos.Y), float32(l.Radius), rl.Fade(c, 0.4), rl.Fade(ColorLerp(c, backgroundColor, 0.7), 0))
			}
			if !v.simOn {
				for _, o := range v.level.Shapes {
					drawShape(o.Shape, toRL(o.Color))
				}
			}
			v.sink.draw()

			tags := make([]string, 0, len(v.level.Markers))
			for tag := range v.level.Markers {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			for _, tag := range tags {
				for _, p := range v.level.Markers[tag] {
					rl.DrawCircleV(vec(p), 6/v.camera.Zoom, rl.Gold)
					rl.DrawText(tag, int32(p.X+8), int32(p.Y-8), int32(14/v.camera.Zoom), rl.RayWhite)
				}
			}
			rl.EndMode2D()
		}

		// --- UI ---
		info := fmt.Sprintf("%s  zoom %.2f", v.path, v.camera.Zoom)
		if v.err != nil {
			info = v.err.Error()
		} else if v.simOn {
			ws := v.game.WaveSystem
			info += fmt.Sprintf("  simulating: wave %d/%d, %d enemies left", ws.CurrentWave()+1, ws.TotalWaves(), ws.Remaining())
		}
		rl.DrawText(info, 10, 10, 20, rl.White)
		rl.DrawFPS(10, 40)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
