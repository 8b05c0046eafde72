package utils

import (
	"math"
	"testing"
)

func TestChooseWeightedSkipsNonPositive(t *testing.T) {
	rng := NewPRNGService(7)
	entries := []WeightedEntry{{"never", 0}, {"a", 1}, {"neg", -3}, {"b", 3}}
	counts := map[string]int{}
	for i := 0; i < 4000; i++ {
		counts[rng.ChooseWeighted(entries)]++
	}
	if counts["never"] != 0 || counts["neg"] != 0 {
		t.Fatalf("non-positive weights drawn: %v", counts)
	}
	// b should win roughly three times as often as a
	ratio := float64(counts["b"]) / float64(counts["a"])
	if ratio < 2.4 || ratio > 3.8 {
		t.Errorf("b/a ratio = %.2f (%v)", ratio, counts)
	}
	if got := rng.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table = %q", got)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed diverged")
		}
	}
	if NewPRNGService(1).Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestLerpAngleShortestArc(t *testing.T) {
	got := LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.5)
	if math.Abs(math.Abs(got)-math.Pi) > 1e-9 {
		t.Errorf("LerpAngle across the seam = %v", got)
	}
	if n := NormalizeAngle(3 * math.Pi); math.Abs(math.Abs(n)-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3π) = %v", n)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseInOutQuad, EaseOutCubic, EaseInCubic} {
		if e.Apply(0) != 0 || e.Apply(1) != 1 {
			t.Errorf("easing %d endpoints = %v, %v", e, e.Apply(0), e.Apply(1))
		}
		if e.Apply(-1) != 0 || e.Apply(2) != 1 {
			t.Errorf("easing %d not clamped", e)
		}
	}
	if v := EaseInOutQuad.Apply(0.5); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("EaseInOutQuad(0.5) = %v", v)
	}
}
