// Package raster fills textured, vertex-colored triangles into an RGBA image.
//
// Pixels are sampled at their centers. Shared edges follow the top-left
// rule so adjacent triangles never cover a pixel twice.
package raster

import (
	"image"
	"math"
)

// Vertex is a screen-space triangle corner with straight-alpha color.
type Vertex struct {
	X, Y       float64
	U, V       float64
	R, G, B, A float64
}

// Sampler returns the premultiplied texel at normalized coordinates (u, v),
// each channel in [0, 1].
type Sampler interface {
	Sample(u, v float64) (r, g, b, a float64)
}

// edge is the signed area of (a, b, p), twice over.
// It is positive when p lies left of a→b in y-down coordinates.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// topLeft reports whether the edge a→b owns pixels lying exactly on it.
func topLeft(ax, ay, bx, by float64) bool {
	dx, dy := bx-ax, by-ay
	return dy < 0 || (dy == 0 && dx > 0)
}

// FillTriangle rasterizes one triangle into dst with source-over blending.
// tex may be nil for an untextured triangle. Zero-area triangles draw nothing.
func FillTriangle(dst *image.RGBA, v0, v1, v2 Vertex, tex Sampler) {
	area := edge(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if area == 0 || math.IsNaN(area) {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	b := dst.Rect
	minX := max(int(math.Floor(min(v0.X, v1.X, v2.X))), b.Min.X)
	maxX := min(int(math.Ceil(max(v0.X, v1.X, v2.X))), b.Max.X-1)
	minY := max(int(math.Floor(min(v0.Y, v1.Y, v2.Y))), b.Min.Y)
	maxY := min(int(math.Ceil(max(v0.Y, v1.Y, v2.Y))), b.Max.Y-1)
	if minX > maxX || minY > maxY {
		return
	}

	tl0 := topLeft(v1.X, v1.Y, v2.X, v2.Y)
	tl1 := topLeft(v2.X, v2.Y, v0.X, v0.Y)
	tl2 := topLeft(v0.X, v0.Y, v1.X, v1.Y)
	inv := 1 / area

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edge(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edge(v0.X, v0.Y, v1.X, v1.Y, px, py)
			if !covers(w0, tl0) || !covers(w1, tl1) || !covers(w2, tl2) {
				continue
			}
			l0, l1, l2 := w0*inv, w1*inv, w2*inv
			r, g, bl, a := shade(v0, v1, v2, l0, l1, l2, tex)
			BlendOver(dst, x, y, r, g, bl, a)
		}
	}
}

func covers(w float64, owns bool) bool {
	return w > 0 || (w == 0 && owns)
}

// shade interpolates the vertex attributes and returns a premultiplied color.
func shade(v0, v1, v2 Vertex, l0, l1, l2 float64, tex Sampler) (r, g, b, a float64) {
	cr := clamp01(l0*v0.R + l1*v1.R + l2*v2.R)
	cg := clamp01(l0*v0.G + l1*v1.G + l2*v2.G)
	cb := clamp01(l0*v0.B + l1*v1.B + l2*v2.B)
	ca := clamp01(l0*v0.A + l1*v1.A + l2*v2.A)
	if tex == nil {
		return cr * ca, cg * ca, cb * ca, ca
	}
	u := l0*v0.U + l1*v1.U + l2*v2.U
	v := l0*v0.V + l1*v1.V + l2*v2.V
	tr, tg, tb, ta := tex.Sample(u, v)
	return tr * cr * ca, tg * cg * ca, tb * cb * ca, ta * ca
}

// BlendOver composites a premultiplied color over the pixel at (x, y).
func BlendOver(dst *image.RGBA, x, y int, r, g, b, a float64) {
	if !(image.Point{X: x, Y: y}).In(dst.Rect) || a <= 0 {
		return
	}
	i := dst.PixOffset(x, y)
	p := dst.Pix[i : i+4 : i+4]
	inv := 1 - a
	p[0] = to8(r + float64(p[0])/255*inv)
	p[1] = to8(g + float64(p[1])/255*inv)
	p[2] = to8(b + float64(p[2])/255*inv)
	p[3] = to8(a + float64(p[3])/255*inv)
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
