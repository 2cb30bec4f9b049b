package ggmesh

import (
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// FilterMode selects how an image is sampled when it is scaled or rotated.
type FilterMode = gputypes.FilterMode

// Filter modes.
const (
	// FilterLinear blends neighboring texels. Default for new images.
	FilterLinear = gputypes.FilterModeLinear

	// FilterNearest picks the closest texel, keeping pixel art crisp.
	FilterNearest = gputypes.FilterModeNearest
)

// Image is a decoded raster resource.
//
// Pixels are stored premultiplied. The filter mode is a property of the
// image rather than of a draw call: once set it applies to every later draw
// of the image and to every mesh textured with it.
type Image struct {
	pix      *image.RGBA
	filter   FilterMode
	released bool
}

// NewImage copies src into a new Image with FilterLinear.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	pix := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), src, b.Min, draw.Src)
	return &Image{pix: pix, filter: FilterLinear}
}

func (*Image) isDrawable() {}

// Width returns the width in pixels.
func (img *Image) Width() int { return img.pix.Rect.Dx() }

// Height returns the height in pixels.
func (img *Image) Height() int { return img.pix.Rect.Dy() }

// Filter returns the current filter mode.
func (img *Image) Filter() FilterMode { return img.filter }

// SetFilter sets the filter mode used by all subsequent draws.
func (img *Image) SetFilter(mode FilterMode) { img.filter = mode }

// Pixels returns the premultiplied pixel buffer, or nil once released.
// Callers must not modify it.
func (img *Image) Pixels() *image.RGBA {
	if img.released {
		return nil
	}
	return img.pix
}

// Released reports whether Release has been called.
func (img *Image) Released() bool { return img.released }

// Release drops the pixel data. Drawing a released image fails with
// ErrResourceReleased. The dimensions stay readable.
func (img *Image) Release() {
	if img.released {
		return
	}
	img.released = true
	img.pix = &image.RGBA{Rect: img.pix.Rect}
}
