package ggmesh

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io/fs"
	"os"
	"strings"
	"time"

	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/gogpu/ggmesh/internal/raster"
)

// Presenter receives every finished frame from a SoftwareHost.
// The image is only valid for the duration of the call.
type Presenter interface {
	Present(frame uint64, img *image.RGBA) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(frame uint64, img *image.RGBA) error

// Present calls f.
func (f PresenterFunc) Present(frame uint64, img *image.RGBA) error { return f(frame, img) }

// SoftwareOption configures a SoftwareHost during creation.
type SoftwareOption func(*softwareOptions)

type softwareOptions struct {
	resources fs.FS
	presenter Presenter
	now       func() time.Time
}

func defaultSoftwareOptions() softwareOptions {
	return softwareOptions{
		resources: os.DirFS("."),
		now:       time.Now,
	}
}

// WithResources sets the file system LoadImage reads from.
// Paths are resolved relative to its root; a leading slash is ignored.
func WithResources(fsys fs.FS) SoftwareOption {
	return func(o *softwareOptions) {
		o.resources = fsys
	}
}

// WithPresenter sets the sink for finished frames.
func WithPresenter(p Presenter) SoftwareOption {
	return func(o *softwareOptions) {
		o.presenter = p
	}
}

// WithClock replaces time.Now for fixed-step timing. Used by tests.
func WithClock(now func() time.Time) SoftwareOption {
	return func(o *softwareOptions) {
		o.now = now
	}
}

// SoftwareHost is a Host that rasterizes on the CPU into an RGBA image.
//
// Images are drawn with golang.org/x/image/draw using the image's filter
// mode. Meshes are rasterized triangle by triangle with premultiplied
// source-over blending, in submission order and without a depth test.
type SoftwareHost struct {
	target    *image.RGBA
	front     *image.RGBA
	resources fs.FS
	presenter Presenter
	now       func() time.Time

	last  time.Time
	step  FixedStep
	frame uint64
}

var _ Host = (*SoftwareHost)(nil)

// NewSoftwareHost creates a host with a width x height render target.
func NewSoftwareHost(width, height int, opts ...SoftwareOption) *SoftwareHost {
	o := defaultSoftwareOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := image.Rect(0, 0, width, height)
	return &SoftwareHost{
		target:    image.NewRGBA(r),
		front:     image.NewRGBA(r),
		resources: o.resources,
		presenter: o.presenter,
		now:       o.now,
	}
}

// Target returns the frame being drawn.
func (h *SoftwareHost) Target() *image.RGBA { return h.target }

// Presented returns a copy of the last presented frame.
func (h *SoftwareHost) Presented() *image.RGBA {
	out := image.NewRGBA(h.front.Rect)
	copy(out.Pix, h.front.Pix)
	return out
}

// Frames returns the number of frames presented so far.
func (h *SoftwareHost) Frames() uint64 { return h.frame }

// LoadImage decodes an image from the host's resources.
// PNG, JPEG, GIF, BMP and WebP are supported.
func (h *SoftwareHost) LoadImage(path string) (*Image, error) {
	name := strings.TrimPrefix(path, "/")
	f, err := h.resources.Open(name)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, &ImageLoadError{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	img := NewImage(src)
	Logger().Info("ggmesh: image loaded", "path", path, "format", format,
		"width", img.Width(), "height", img.Height())
	return img, nil
}

// SetFilter sets the filter mode of img.
func (h *SoftwareHost) SetFilter(img *Image, mode FilterMode) {
	img.SetFilter(mode)
}

// BuildMesh validates and copies the buffers into a Mesh.
func (h *SoftwareHost) BuildMesh(vertices []Vertex, indices []uint32, texture *Image) (*Mesh, error) {
	return NewMesh(vertices, indices, texture)
}

// Clear fills the render target with c.
func (h *SoftwareHost) Clear(c Color) {
	draw.Draw(h.target, h.target.Rect, image.NewUniform(c.Premultiplied()), image.Point{}, draw.Src)
}

// Draw draws d with the transform p.
func (h *SoftwareHost) Draw(d Drawable, p DrawParam) error {
	if err := checkDrawable(d); err != nil {
		return &RenderError{Index: -1, Err: err}
	}
	switch v := d.(type) {
	case *Image:
		h.drawImage(v, p)
	case *Mesh:
		if tex := v.Texture(); tex != nil && tex.Released() {
			return &RenderError{Index: -1, Err: fmt.Errorf("mesh texture: %w", ErrResourceReleased)}
		}
		h.drawMesh(v, p)
	}
	return nil
}

func (h *SoftwareHost) drawImage(img *Image, p DrawParam) {
	src := img.Pixels()
	interp := draw.Interpolator(draw.ApproxBiLinear)
	if img.Filter() == FilterNearest {
		interp = draw.NearestNeighbor
	}
	interp.Transform(h.target, p.Matrix().Aff3(), src, src.Rect, draw.Over, nil)
}

func (h *SoftwareHost) drawMesh(m *Mesh, p DrawParam) {
	mat := p.Matrix()
	var tex raster.Sampler
	if t := m.Texture(); t != nil {
		tex = raster.NewSampler(t.Pixels(), rasterFilter(t.Filter()))
	}
	for i := range m.TriangleCount() {
		tri := m.Triangle(i)
		raster.FillTriangle(h.target,
			rasterVertex(mat, tri[0]), rasterVertex(mat, tri[1]), rasterVertex(mat, tri[2]), tex)
	}
}

func rasterFilter(mode FilterMode) raster.Filter {
	if mode == FilterNearest {
		return raster.Nearest
	}
	return raster.Bilinear
}

func rasterVertex(m Matrix, v Vertex) raster.Vertex {
	p := m.TransformPoint(v.Position())
	return raster.Vertex{
		X: p.X, Y: p.Y,
		U: float64(v.UV[0]), V: float64(v.UV[1]),
		R: float64(v.Color[0]), G: float64(v.Color[1]), B: float64(v.Color[2]), A: float64(v.Color[3]),
	}
}

// Present ends the frame: the target is copied to the front buffer and
// handed to the presenter. Drawing continues on the same target, so a
// scene that does not clear accumulates over previous frames.
func (h *SoftwareHost) Present() error {
	copy(h.front.Pix, h.target.Pix)
	h.frame++
	if h.presenter == nil {
		return nil
	}
	if err := h.presenter.Present(h.frame, h.front); err != nil {
		return &PresentError{Frame: h.frame, Err: err}
	}
	return nil
}

// ElapsedFixedSteps returns the ticks at rate Hz due since the previous
// call. The first call only starts the clock and returns zero.
func (h *SoftwareHost) ElapsedFixedSteps(rate uint32) int {
	now := h.now()
	if h.last.IsZero() {
		h.last = now
		return 0
	}
	delta := now.Sub(h.last)
	h.last = now
	return h.step.Advance(delta, rate)
}

// ColorAt returns the straight-alpha color of a pixel in the render target.
func (h *SoftwareHost) ColorAt(x, y int) Color {
	return FromColor(h.target.RGBAAt(x, y))
}
