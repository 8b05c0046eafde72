// pkg/render/color.go
package render

import "image/color"

// Theme holds the colors used to draw a level's background.
type Theme struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	TextColor       color.RGBA
	CritColor       color.RGBA
	BannerColor     color.RGBA
}

// Themes are selected by a level file's "theme" field.
var Themes = map[string]Theme{
	"": {
		BackgroundColor: color.RGBA{20, 20, 30, 255},
		GridColor:       color.RGBA{32, 32, 46, 255},
		TextColor:       color.RGBA{240, 240, 240, 255},
		CritColor:       color.RGBA{255, 60, 60, 255},
		BannerColor:     color.RGBA{255, 215, 0, 255},
	},
	"night": {
		BackgroundColor: color.RGBA{8, 8, 18, 255},
		GridColor:       color.RGBA{18, 18, 34, 255},
		TextColor:       color.RGBA{200, 210, 255, 255},
		CritColor:       color.RGBA{255, 80, 120, 255},
		BannerColor:     color.RGBA{140, 200, 255, 255},
	},
}

// LookupTheme returns the named theme or the default one.
func LookupTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[""]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales every premultiplied channel by f in [0,1].
func Fade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
