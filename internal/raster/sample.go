package raster

import (
	"image"
	"math"
)

// Filter selects the texture sampling method.
type Filter uint8

const (
	// Nearest selects the texel containing the coordinate.
	Nearest Filter = iota
	// Bilinear blends the four texels around the coordinate.
	Bilinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// TextureSampler samples a premultiplied RGBA image with clamp-to-edge
// addressing.
type TextureSampler struct {
	img    *image.RGBA
	filter Filter
}

// NewSampler creates a sampler over img.
func NewSampler(img *image.RGBA, filter Filter) *TextureSampler {
	return &TextureSampler{img: img, filter: filter}
}

// Sample implements Sampler.
func (s *TextureSampler) Sample(u, v float64) (r, g, b, a float64) {
	if s.img.Rect.Empty() {
		return 0, 0, 0, 0
	}
	if s.filter == Nearest {
		return s.nearest(u, v)
	}
	return s.bilinear(u, v)
}

func (s *TextureSampler) nearest(u, v float64) (r, g, b, a float64) {
	w, h := s.img.Rect.Dx(), s.img.Rect.Dy()
	x := clamp(int(math.Floor(u*float64(w))), 0, w-1)
	y := clamp(int(math.Floor(v*float64(h))), 0, h-1)
	return s.texel(x, y)
}

func (s *TextureSampler) bilinear(u, v float64) (r, g, b, a float64) {
	w, h := s.img.Rect.Dx(), s.img.Rect.Dy()
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clamp(x0+1, 0, w-1)
	y1 := clamp(y0+1, 0, h-1)
	x0 = clamp(x0, 0, w-1)
	y0 = clamp(y0, 0, h-1)

	r00, g00, b00, a00 := s.texel(x0, y0)
	r10, g10, b10, a10 := s.texel(x1, y0)
	r01, g01, b01, a01 := s.texel(x0, y1)
	r11, g11, b11, a11 := s.texel(x1, y1)

	r = lerp2D(r00, r10, r01, r11, tx, ty)
	g = lerp2D(g00, g10, g01, g11, tx, ty)
	b = lerp2D(b00, b10, b01, b11, tx, ty)
	a = lerp2D(a00, a10, a01, a11, tx, ty)
	return r, g, b, a
}

func (s *TextureSampler) texel(x, y int) (r, g, b, a float64) {
	i := s.img.PixOffset(s.img.Rect.Min.X+x, s.img.Rect.Min.Y+y)
	p := s.img.Pix[i : i+4 : i+4]
	return float64(p[0]) / 255, float64(p[1]) / 255, float64(p[2]) / 255, float64(p[3]) / 255
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}
