// internal/component/status_effect.go
package component

// Phase alternates between a calm and an active state on fixed timers.
type Phase struct {
	Active   bool
	Timer    float64 // ms left in the current state
	Calm     float64 // duration of the calm state
	Duration float64 // duration of the active state
}

// Tick advances the timer and reports whether the state flipped.
func (p *Phase) Tick(dt float64) bool {
	p.Timer -= dt
	if p.Timer > 0 {
		return false
	}
	p.Active = !p.Active
	if p.Active {
		p.Timer = p.Duration
	} else {
		p.Timer = p.Calm
	}
	return true
}
