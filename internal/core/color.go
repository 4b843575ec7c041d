package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit colour with an opacity used when compositing onto a
// Screen. A is in [0, 1]; 1 is fully opaque.
type Color struct {
	R, G, B uint8
	A       float64
}

// Predefined colors for game elements.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorRed    = RGB(255, 0, 0)
	ColorGreen  = RGB(0, 128, 0)
	ColorSky    = RGB(176, 224, 230)
	ColorYellow = RGB(255, 215, 0)
	ColorGray   = RGB(138, 138, 138)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given opacity, clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: ClampF(a, 0, 1)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color, a float64) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the color as "#rrggbb", ignoring opacity.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// Opaque reports whether the color fully covers what is beneath it.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// Over composites c on top of dst and returns the resulting opaque color.
func (c Color) Over(dst Color) Color {
	if c.Opaque() {
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	return fromColorful(dst.colorful().BlendRgb(c.colorful(), c.A), 1)
}

// Lerp interpolates each channel linearly from a to b, rounding to the
// nearest integer. t is clamped to [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = ClampF(t, 0, 1)
	return fromColorful(a.colorful().BlendRgb(b.colorful(), t), 1)
}
