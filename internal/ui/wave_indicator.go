// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-arena-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveStatus is what the indicator needs to know about the orchestrator.
type WaveStatus struct {
	Wave      int // one-based
	Total     int // -1 in survival
	Remaining int
	Between   bool
	Delay     float64
	Completed bool
}

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.BannerColor,
		OutlineColor:     config.TextDarkColor,
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label builds the indicator text for st.
func Label(st WaveStatus) string {
	switch {
	case st.Completed:
		return "All waves cleared"
	case st.Wave <= 0:
		return ""
	case st.Between:
		return fmt.Sprintf("Wave %s in %.1fs", toRoman(st.Wave), st.Delay/1000)
	case st.Total < 0:
		return fmt.Sprintf("Wave %s  |  %d left", toRoman(st.Wave), st.Remaining)
	}
	return fmt.Sprintf("Wave %s / %s  |  %d left", toRoman(st.Wave), toRoman(st.Total), st.Remaining)
}

// Draw отрисовывает индикатор на экране, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, st WaveStatus) {
	label := Label(st)
	if label == "" {
		return
	}
	w := text.BoundString(i.fontFace, label).Dx()
	x := int(i.X) - w/2
	y := int(i.Y)

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, i.fontFace, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, i.fontFace, x, y, i.Color)
}
