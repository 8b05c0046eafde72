// internal/ui/player_health_indicator.go
package ui

import (
	"math"
	"strconv"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthBarWidth  = 220.0
	HealthBarHeight = 14.0
	HealthBarBorder = 2.0
)

// PlayerHealthIndicator отображает здоровье игрока полосой с подписью.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, face font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: face}
}

// FillWidth is the width of the filled part of the bar.
func FillWidth(hp, maxHP float64) float32 {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	f := math.Min(hp/maxHP, 1)
	return float32(f * (HealthBarWidth - HealthBarBorder*2))
}

// Draw рисует полосу здоровья.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, hp, maxHP float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, config.HealthBackColor, true)
	vector.DrawFilledRect(screen, i.X+HealthBarBorder, i.Y+HealthBarBorder,
		FillWidth(hp, maxHP), HealthBarHeight-HealthBarBorder*2, config.HealthFillColor, true)
	vector.StrokeRect(screen, i.X, i.Y, HealthBarWidth, HealthBarHeight, 1, config.IndicatorStroke, true)

	// Текстовое отображение здоровья над полосой
	label := strconv.Itoa(int(math.Ceil(math.Max(hp, 0)))) + "/" + strconv.Itoa(int(maxHP))
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)-4, config.TextLightColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	return HealthBarHeight + 16
}
