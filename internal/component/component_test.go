package component

import (
	"math"
	"testing"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/internal/utils"
	"go-arena-shooter/pkg/geom"
)

func TestHealthGraceWindow(t *testing.T) {
	h := NewHealth(30, 50)

	applied, lethal := h.Apply(10)
	if !applied || lethal || h.HP != 20 {
		t.Fatalf("first hit: applied=%v lethal=%v hp=%v", applied, lethal, h.HP)
	}
	if applied, _ := h.Apply(10); applied {
		t.Fatal("hit inside grace window should be ignored")
	}

	h.Tick(50)
	if applied, _ := h.Apply(10); !applied {
		t.Fatal("hit after grace window should apply")
	}
}

func TestHealthDeathGuard(t *testing.T) {
	h := NewHealth(10, 0)
	_, lethal := h.Apply(25)
	if !lethal || h.HP != 0 {
		t.Fatalf("expected lethal hit clamped to 0, got hp=%v", h.HP)
	}
	if !h.MarkDead() {
		t.Fatal("first MarkDead should succeed")
	}
	if h.MarkDead() {
		t.Fatal("second MarkDead must be a no-op")
	}
	if applied, _ := h.Apply(5); applied {
		t.Fatal("dead entities take no damage")
	}
}

func TestPiercingConsume(t *testing.T) {
	p := NewPiercing(2)
	if p.Consume(1) {
		t.Fatal("one hit should not exhaust pierce 2")
	}
	if !p.AlreadyHit(1) || p.AlreadyHit(2) {
		t.Fatal("hit set not tracked")
	}
	if !p.Consume(2) {
		t.Fatal("second hit should exhaust pierce")
	}
	p.Consume(3)
	if p.Remaining != 0 {
		t.Fatalf("pierce went negative: %d", p.Remaining)
	}
	if NewPiercing(0).Remaining != 1 {
		t.Fatal("pierce is at least one")
	}
}

func TestSteeringStuckTimer(t *testing.T) {
	s := Steering{Speed: 0.1, Targeting: true}
	desired := geom.V(1, 1)
	applied := geom.V(0, 0)

	if s.TrackMovement(desired, applied, 300) {
		t.Fatal("300ms is below the threshold")
	}
	if s.Stuck != 300 {
		t.Fatalf("stuck = %v", s.Stuck)
	}
	if !s.TrackMovement(desired, applied, 300) {
		t.Fatal("600ms should trigger a retarget")
	}
	if s.Stuck != 0 {
		t.Fatal("timer resets after triggering")
	}

	s.TrackMovement(desired, applied, 100)
	s.TrackMovement(desired, desired, 16)
	if s.Stuck != 0 {
		t.Fatal("free movement resets the timer")
	}
}

func TestSteeringRetargetBias(t *testing.T) {
	rng := utils.NewPRNGService(7)
	s := Steering{TargetRadius: 250}
	from := geom.V(0, 0)
	player := geom.V(100, 0)
	for i := 0; i < 500; i++ {
		s.Retarget(from, player, rng)
		d := s.Target.Distance(from)
		if d > 250+1e-9 {
			t.Fatalf("target too far: %v", d)
		}
		if s.Target.X < -1e-9 {
			t.Fatalf("target %v is behind the bearing to the player", s.Target)
		}
	}
}

func TestSteeringDesiredNoOvershoot(t *testing.T) {
	s := Steering{Target: geom.V(5, 0), Speed: 1}
	got := s.Desired(geom.V(0, 0), 16)
	if got != geom.V(5, 0) {
		t.Fatalf("desired = %v", got)
	}
	if !s.Arrived(geom.V(5-config.ArrivalDistance/2, 0)) {
		t.Fatal("should count as arrived")
	}
}

func TestAimTurnRate(t *testing.T) {
	a := Aim{Angle: 0, TurnRate: 0.01}
	a.TurnToward(math.Pi/2, 10)
	if math.Abs(a.Angle-0.1) > 1e-9 {
		t.Fatalf("angle = %v", a.Angle)
	}
	a.TurnToward(0.15, 100)
	if a.Angle != 0.15 {
		t.Fatalf("angle should snap to target, got %v", a.Angle)
	}
}

func TestPhaseAlternates(t *testing.T) {
	p := Phase{Timer: 100, Calm: 100, Duration: 50}
	if p.Tick(60) || p.Active {
		t.Fatal("flipped too early")
	}
	if !p.Tick(40) || !p.Active || p.Timer != 50 {
		t.Fatalf("expected active phase, got %+v", p)
	}
	if !p.Tick(50) || p.Active {
		t.Fatalf("expected calm phase, got %+v", p)
	}
}

func TestProgressionClamp(t *testing.T) {
	p := Progression{Level: -1, Star: 9, Rarity: -3}.Clamp()
	if p.Level != 0 || p.Star != MaxStar || p.Rarity != 0 {
		t.Fatalf("clamp = %+v", p)
	}
}
