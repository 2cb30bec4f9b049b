package ggmesh

import (
	"image/color"
	"math"
)

// Color is a straight-alpha color with components nominally in [0, 1].
// Components are not clamped until they are written to pixels.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	White = Color{R: 1, G: 1, B: 1, A: 1}
	Red   = Color{R: 1, G: 0, B: 0, A: 1}
)

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Array returns the color as four float32 channels, the vertex layout order.
func (c Color) Array() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// ColorFromArray converts vertex color channels back to a Color.
func ColorFromArray(a [4]float32) Color {
	return Color{R: float64(a[0]), G: float64(a[1]), B: float64(a[2]), A: float64(a[3])}
}

// Premultiplied converts the color to a premultiplied 8-bit color.RGBA,
// clamping each channel to [0, 1] first.
func (c Color) Premultiplied() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clamp01(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
