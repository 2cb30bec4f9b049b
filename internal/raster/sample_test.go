package raster

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{A: 255})
	img.SetRGBA(0, 1, color.RGBA{A: 255})
	return img
}

func TestSampler_Nearest(t *testing.T) {
	s := NewSampler(checker(), Nearest)
	tests := []struct {
		u, v float64
		want float64
	}{
		{0.1, 0.1, 1},
		{0.49, 0.2, 1},
		{0.51, 0.2, 0},
		{0.9, 0.9, 1},
		{-3, -3, 1}, // clamped to texel (0,0)
		{5, 0, 0},   // clamped to texel (1,0)
	}
	for _, tt := range tests {
		r, _, _, a := s.Sample(tt.u, tt.v)
		if r != tt.want || a != 1 {
			t.Errorf("Sample(%v, %v) = r %v a %v, want r %v a 1", tt.u, tt.v, r, a, tt.want)
		}
	}
}

func TestSampler_Bilinear(t *testing.T) {
	s := NewSampler(checker(), Bilinear)

	// Texel centers reproduce the texel.
	if r, _, _, _ := s.Sample(0.25, 0.25); r != 1 {
		t.Errorf("center of white texel = %v, want 1", r)
	}
	// Halfway between all four texels blends to grey.
	r, _, _, a := s.Sample(0.5, 0.5)
	if math.Abs(r-0.5) > 1e-9 || a != 1 {
		t.Errorf("Sample(0.5, 0.5) = r %v a %v, want 0.5 and 1", r, a)
	}
}

func TestSampler_Empty(t *testing.T) {
	s := NewSampler(&image.RGBA{}, Bilinear)
	if r, g, b, a := s.Sample(0.5, 0.5); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Error("empty image should sample transparent")
	}
}

func TestFilterString(t *testing.T) {
	if Nearest.String() != "Nearest" || Bilinear.String() != "Bilinear" || Filter(9).String() != "Unknown" {
		t.Error("unexpected Filter.String() result")
	}
}
