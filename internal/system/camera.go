// internal/system/camera.go
package system

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/entity"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

// CommandKind tags a camera command.
type CommandKind int

const (
	CmdLerp CommandKind = iota
	CmdWait
	CmdShake
)

// CameraCommand is one step of a scripted camera sequence.
type CameraCommand struct {
	Kind      CommandKind
	Target    geom.Vector2 // CmdLerp
	Duration  float64
	Easing    utils.Easing // CmdLerp
	Magnitude float64      // CmdShake
	// OnComplete runs once when the command finishes.
	OnComplete func()

	from geom.Vector2
}

func LerpTo(target geom.Vector2, duration float64, easing utils.Easing) CameraCommand {
	return CameraCommand{Kind: CmdLerp, Target: target, Duration: duration, Easing: easing}
}

func Wait(duration float64) CameraCommand {
	return CameraCommand{Kind: CmdWait, Duration: duration}
}

func Shake(duration, magnitude float64) CameraCommand {
	return CameraCommand{Kind: CmdShake, Duration: duration, Magnitude: magnitude}
}

// CameraSystem follows the player, or runs queued commands one at a time.
// While a command is current the follow behavior is suspended.
type CameraSystem struct {
	world *entity.World

	// Pos is the view center in world units.
	Pos geom.Vector2
	// Offset is the shake displacement added when drawing.
	Offset geom.Vector2

	queue   []CameraCommand
	current *CameraCommand
	elapsed float64

	shakeT, shakeDur, shakeMag, shakePhase float64

	viewW, viewH float64
}

func NewCameraSystem(world *entity.World) *CameraSystem {
	return &CameraSystem{world: world, viewW: config.ScreenWidth, viewH: config.ScreenHeight}
}

// Enqueue appends commands to the sequence.
func (s *CameraSystem) Enqueue(cmds ...CameraCommand) {
	s.queue = append(s.queue, cmds...)
}

// Busy reports whether a command is current or queued.
func (s *CameraSystem) Busy() bool { return s.current != nil || len(s.queue) > 0 }

// Following reports whether the camera tracks the player.
func (s *CameraSystem) Following() bool { return !s.Busy() }

// SnapTo jumps to p with no interpolation.
func (s *CameraSystem) SnapTo(p geom.Vector2) { s.Pos = s.clamp(p) }

func (s *CameraSystem) Update(deltaTime float64) {
	if s.current == nil && len(s.queue) > 0 {
		s.begin()
	}

	if s.current != nil {
		s.elapsed += deltaTime
		if s.execute(s.current, deltaTime, s.elapsed) {
			cmd := s.current
			s.current = nil
			if cmd.OnComplete != nil {
				cmd.OnComplete()
			}
			if s.current == nil && len(s.queue) > 0 {
				s.begin()
			}
		}
	} else if player, ok := s.world.PlayerPos(); ok {
		s.Pos = s.Pos.Add(player.Sub(s.Pos).Mul(config.CameraFollowLerp))
	}

	s.Pos = s.clamp(s.Pos)
	s.updateShake(deltaTime)
}

// begin makes the head of the queue current and runs its init step.
func (s *CameraSystem) begin() {
	cmd := s.queue[0]
	s.queue = s.queue[1:]
	s.current = &cmd
	s.elapsed = 0

	switch cmd.Kind {
	case CmdLerp:
		s.current.from = s.Pos
	case CmdShake:
		s.shakeT = cmd.Duration
		s.shakeDur = cmd.Duration
		s.shakeMag = cmd.Magnitude
	}
}

func (s *CameraSystem) execute(cmd *CameraCommand, dt, elapsed float64) bool {
	switch cmd.Kind {
	case CmdLerp:
		if cmd.Duration <= 0 {
			s.Pos = cmd.Target
			return true
		}
		t := elapsed / cmd.Duration
		k := cmd.Easing.Apply(t)
		s.Pos = cmd.from.Add(cmd.Target.Sub(cmd.from).Mul(k))
		return t >= 1
	case CmdWait, CmdShake:
		return elapsed >= cmd.Duration
	}
	return true
}

func (s *CameraSystem) updateShake(dt float64) {
	if s.shakeT <= 0 {
		s.Offset = geom.Vector2{}
		return
	}

	s.shakeT -= dt
	s.shakePhase += dt
	if s.shakeT <= 0 {
		s.shakeT = 0
		s.Offset = geom.Vector2{}
		return
	}

	// fade out as the timer runs down
	t := utils.Clamp(s.shakeT/s.shakeDur, 0, 1)
	amp := s.shakeMag * t
	s.Offset = geom.V(
		math.Sin(s.shakePhase*config.ShakeFreqX*2*math.Pi)*amp,
		math.Cos(s.shakePhase*config.ShakeFreqY*2*math.Pi)*amp,
	)
}

// clamp keeps the view inside the level bounds when the level is larger
// than the view; otherwise it centers on the level.
func (s *CameraSystem) clamp(p geom.Vector2) geom.Vector2 {
	lo, hi := s.world.BoundsLo, s.world.BoundsHi
	axis := func(v, lo, hi, view float64) float64 {
		if hi-lo <= view {
			return (lo + hi) / 2
		}
		return utils.Clamp(v, lo+view/2, hi-view/2)
	}
	return geom.V(axis(p.X, lo.X, hi.X, s.viewW), axis(p.Y, lo.Y, hi.Y, s.viewH))
}

// BossIntro pans to the boss, holds, shakes and pans back to the player.
// Enemy updates are paused for the whole sequence.
func (s *CameraSystem) BossIntro(boss geom.Vector2) {
	s.world.EnemiesPaused = true
	player, _ := s.world.PlayerPos()
	back := LerpTo(player, config.BossIntroLerpOut, utils.EaseInOutQuad)
	back.OnComplete = func() { s.world.EnemiesPaused = false }
	s.Enqueue(
		LerpTo(boss, config.BossIntroLerpIn, utils.EaseInOutQuad),
		Wait(config.BossIntroHold),
		Shake(config.BossIntroShake, config.BossShakeMag),
		back,
	)
}

// Interrupt drops every queued command, returns to follow mode and
// unpauses enemies.
func (s *CameraSystem) Interrupt() {
	s.queue = nil
	s.current = nil
	s.elapsed = 0
	s.shakeT = 0
	s.Offset = geom.Vector2{}
	s.world.EnemiesPaused = false
}

// Reset interrupts and snaps to the player.
func (s *CameraSystem) Reset() {
	s.Interrupt()
	s.shakePhase = 0
	if p, ok := s.world.PlayerPos(); ok {
		s.SnapTo(p)
	}
}

// WorldToScreen converts a world point to screen pixels.
func (s *CameraSystem) WorldToScreen(p geom.Vector2) geom.Vector2 {
	return p.Sub(s.Pos).Add(s.Offset).Add(geom.V(s.viewW/2, s.viewH/2))
}

// ScreenToWorld converts screen pixels to a world point.
func (s *CameraSystem) ScreenToWorld(p geom.Vector2) geom.Vector2 {
	return p.Sub(geom.V(s.viewW/2, s.viewH/2)).Sub(s.Offset).Add(s.Pos)
}

// SetView changes the view size used for clamping and projection.
func (s *CameraSystem) SetView(w, h float64) { s.viewW, s.viewH = w, h }
