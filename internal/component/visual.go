// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

func (f *DamageFlash) Trigger() { f.Timer = f.Duration }

func (f *DamageFlash) Tick(dt float64) {
	if f.Timer > 0 {
		f.Timer -= dt
	}
}

// Active reports whether the flash is showing.
func (f *DamageFlash) Active() bool { return f.Timer > 0 }
