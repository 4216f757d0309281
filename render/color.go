package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBHorizon   = RGB{70, 70, 90}
	RGBCrosshair = RGB{230, 230, 230}
	RGBStatus    = RGB{160, 160, 160}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// FromColorful clamps a colorful color into 8-bit channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Hue returns a saturated color for a hue in degrees
func Hue(deg float64) RGB {
	return FromColorful(colorful.Hsv(deg, 0.85, 1.0))
}

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// ParseColorMode resolves "auto", "truecolor" or "256"; auto asks the screen
func ParseColorMode(s string, screen tcell.Screen) ColorMode {
	switch strings.ToLower(s) {
	case "truecolor":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	}
	if screen != nil && screen.Colors() < 1<<24 {
		return ColorMode256
	}
	return ColorModeTrueColor
}

var palette256 = func() []tcell.Color {
	p := make([]tcell.Color, 0, 240)
	for i := 16; i < 256; i++ {
		p = append(p, tcell.PaletteColor(i))
	}
	return p
}()

// Color converts c for the given mode
func (m ColorMode) Color(c RGB) tcell.Color {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	if m == ColorMode256 {
		return tcell.FindColor(rgb, palette256)
	}
	return rgb
}
