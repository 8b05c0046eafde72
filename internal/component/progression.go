// internal/component/progression.go
package component

const (
	MaxStar   = 5
	MaxRarity = 4
)

// Progression — уровни пушки: уровень, звёзды и редкость.
type Progression struct {
	Level  int
	Star   int // 0..MaxStar
	Rarity int // 0..MaxRarity
}

// Clamp caps every axis to its valid range.
func (p Progression) Clamp() Progression {
	clampInt := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}
	p.Level = clampInt(p.Level, 0, 1<<30)
	p.Star = clampInt(p.Star, 0, MaxStar)
	p.Rarity = clampInt(p.Rarity, 0, MaxRarity)
	return p
}
