package ggmesh

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"
)

var (
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	opaqueBlack = color.RGBA{A: 255}
)

// checkerImage returns a 2x2 image with white on the diagonal.
func checkerImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, opaqueWhite)
	img.SetRGBA(1, 1, opaqueWhite)
	img.SetRGBA(1, 0, opaqueBlack)
	img.SetRGBA(0, 1, opaqueBlack)
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func rectMesh(t *testing.T, r Rect, c Color) *Mesh {
	t.Helper()
	mb := NewMeshBuilder()
	if err := mb.Rectangle(Fill(), r, c); err != nil {
		t.Fatal(err)
	}
	m, err := mb.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestSoftwareHost_PainterOrder(t *testing.T) {
	red := rectMesh(t, NewRect(2, 2, 10, 10), Red)
	blue := rectMesh(t, NewRect(6, 6, 10, 10), RGB(0, 0, 1))

	tests := []struct {
		name  string
		order []*Mesh
		want  color.RGBA
	}{
		{"red then blue", []*Mesh{red, blue}, color.RGBA{B: 255, A: 255}},
		{"blue then red", []*Mesh{blue, red}, color.RGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSoftwareHost(20, 20)
			var f Frame
			f.Clear = &Black
			for _, m := range tt.order {
				f.Add(m, DefaultDrawParam())
			}
			if err := Render(h, f); err != nil {
				t.Fatal(err)
			}
			if got := h.Presented().RGBAAt(8, 8); got != tt.want {
				t.Errorf("overlap pixel = %v, want %v", got, tt.want)
			}
			// Outside the overlap both shapes keep their own color.
			if got := h.Presented().RGBAAt(3, 3); got != (color.RGBA{R: 255, A: 255}) {
				t.Errorf("red-only pixel = %v", got)
			}
			if got := h.Presented().RGBAAt(14, 14); got != (color.RGBA{B: 255, A: 255}) {
				t.Errorf("blue-only pixel = %v", got)
			}
		})
	}
}

func TestSoftwareHost_MeshTransform(t *testing.T) {
	h := NewSoftwareHost(40, 40)
	h.Clear(Black)
	m := rectMesh(t, NewRect(0, 0, 4, 2), White)

	// Scale 2 then translate to (10, 20): covers x 10..18, y 20..24.
	if err := h.Draw(m, DefaultDrawParam().WithDest(Pt(10, 20)).WithScale(2, 2)); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 20, opaqueWhite},
		{17, 23, opaqueWhite},
		{18, 20, opaqueBlack},
		{10, 24, opaqueBlack},
		{9, 21, opaqueBlack},
	}
	for _, tt := range tests {
		if got := h.Target().RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// nearestExpected reports the checker texel a destination pixel should show
// for an image drawn at dest with an integer scale.
func nearestExpected(x, y, destX, scale int) color.RGBA {
	tx, ty := (x-destX)/scale, y/scale
	if tx == ty {
		return opaqueWhite
	}
	return opaqueBlack
}

func TestSoftwareHost_NearestFilterPersists(t *testing.T) {
	h := NewSoftwareHost(48, 16)
	h.Clear(Red)
	img := NewImage(checkerImage())
	h.SetFilter(img, FilterNearest)

	draws := []struct {
		destX, scale int
	}{
		{0, 4},
		{16, 8},
	}
	for _, d := range draws {
		p := DefaultDrawParam().WithDest(Pt(float64(d.destX), 0)).WithScale(float64(d.scale), float64(d.scale))
		if err := h.Draw(img, p); err != nil {
			t.Fatal(err)
		}
	}
	if img.Filter() != FilterNearest {
		t.Fatal("drawing reset the filter mode")
	}

	for _, d := range draws {
		size := 2 * d.scale
		for y := 0; y < size; y++ {
			for x := d.destX; x < d.destX+size; x++ {
				want := nearestExpected(x, y, d.destX, d.scale)
				if got := h.Target().RGBAAt(x, y); got != want {
					t.Fatalf("scale %d: pixel (%d,%d) = %v, want %v", d.scale, x, y, got, want)
				}
			}
		}
	}
}

func TestSoftwareHost_LinearFilterBlends(t *testing.T) {
	h := NewSoftwareHost(16, 16)
	h.Clear(Red)
	img := NewImage(checkerImage())
	if img.Filter() != FilterLinear {
		t.Fatal("new images should default to FilterLinear")
	}
	if err := h.Draw(img, DefaultDrawParam().WithScale(8, 8)); err != nil {
		t.Fatal(err)
	}
	blended := false
	for x := 0; x < 16; x++ {
		c := h.Target().RGBAAt(x, 4)
		if c.R > 0 && c.R < 255 && c.R == c.G {
			blended = true
			break
		}
	}
	if !blended {
		t.Error("linear filtering produced no intermediate grey along row 4")
	}
}

func TestSoftwareHost_ReleasedResources(t *testing.T) {
	h := NewSoftwareHost(8, 8)
	img := NewImage(checkerImage())
	img.Release()
	m := newTestMesh(t)
	m.Release()

	tex := NewImage(checkerImage())
	textured, err := NewMesh(triangleVertices(), []uint32{0, 1, 2}, tex)
	if err != nil {
		t.Fatal(err)
	}
	tex.Release()

	var nilImage *Image
	for _, d := range []Drawable{img, m, textured, nilImage} {
		err := h.Draw(d, DefaultDrawParam())
		var rerr *RenderError
		if !errors.As(err, &rerr) {
			t.Errorf("Draw(%T) error = %v, want *RenderError", d, err)
		}
	}
	if err := h.Draw(img, DefaultDrawParam()); !errors.Is(err, ErrResourceReleased) {
		t.Errorf("Draw(released image) error = %v, want ErrResourceReleased", err)
	}
}

func TestSoftwareHost_FailedFrameDoesNotCorruptNext(t *testing.T) {
	h := NewSoftwareHost(8, 8)
	good := rectMesh(t, NewRect(0, 0, 8, 8), White)
	gone := rectMesh(t, NewRect(0, 0, 8, 8), Red)
	gone.Release()

	var bad Frame
	bad.Add(good, DefaultDrawParam()).Add(gone, DefaultDrawParam())
	if err := Render(h, bad); err == nil {
		t.Fatal("Render() with a released mesh succeeded")
	}
	if h.Frames() != 0 {
		t.Errorf("failed frame was presented")
	}

	var next Frame
	next.Clear = &Black
	next.Add(good, DefaultDrawParam())
	if err := Render(h, next); err != nil {
		t.Fatalf("next frame: %v", err)
	}
	if h.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", h.Frames())
	}
}

func TestSoftwareHost_Presenter(t *testing.T) {
	var got []uint64
	h := NewSoftwareHost(4, 4, WithPresenter(PresenterFunc(func(frame uint64, img *image.RGBA) error {
		got = append(got, frame)
		if img.RGBAAt(1, 1) != opaqueWhite {
			t.Errorf("frame %d not cleared to white", frame)
		}
		return nil
	})))
	for range 3 {
		if err := Render(h, Frame{Clear: &White}); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 3 || got[2] != 3 {
		t.Errorf("presented frames = %v, want [1 2 3]", got)
	}

	boom := errors.New("display gone")
	h = NewSoftwareHost(4, 4, WithPresenter(PresenterFunc(func(uint64, *image.RGBA) error { return boom })))
	err := Render(h, Frame{})
	var perr *PresentError
	if !errors.As(err, &perr) || perr.Frame != 1 || !errors.Is(err, boom) {
		t.Errorf("Render() error = %v, want PresentError{Frame: 1} wrapping %v", err, boom)
	}
}

func TestSoftwareHost_LoadImage(t *testing.T) {
	fsys := fstest.MapFS{
		"shot.png": {Data: encodePNG(t, checkerImage())},
		"bad.png":  {Data: []byte("not an image")},
	}
	h := NewSoftwareHost(4, 4, WithResources(fsys))

	img, err := h.LoadImage("/shot.png")
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Errorf("size = %dx%d, want 2x2", img.Width(), img.Height())
	}
	if got := img.Pixels().RGBAAt(0, 0); got != opaqueWhite {
		t.Errorf("pixel (0,0) = %v, want white", got)
	}

	_, err = h.LoadImage("/missing.png")
	var lerr *ImageLoadError
	if !errors.As(err, &lerr) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadImage(missing) error = %v, want ImageLoadError wrapping fs.ErrNotExist", err)
	}
	if _, err := h.LoadImage("bad.png"); !errors.As(err, &lerr) {
		t.Errorf("LoadImage(bad) error = %v, want *ImageLoadError", err)
	}
}

func TestSoftwareHost_ElapsedFixedSteps(t *testing.T) {
	now := time.Unix(1000, 0)
	h := NewSoftwareHost(1, 1, WithClock(func() time.Time { return now }))

	if n := h.ElapsedFixedSteps(60); n != 0 {
		t.Errorf("first call = %d, want 0", n)
	}
	now = now.Add(50 * time.Millisecond)
	if n := h.ElapsedFixedSteps(60); n != 3 {
		t.Errorf("after 50ms = %d, want 3", n)
	}
	now = now.Add(5 * time.Millisecond)
	if n := h.ElapsedFixedSteps(60); n != 0 {
		t.Errorf("after 5ms = %d, want 0", n)
	}
	now = now.Add(15 * time.Millisecond)
	if n := h.ElapsedFixedSteps(60); n != 1 {
		t.Errorf("after 20ms total = %d, want 1", n)
	}
}

func TestSoftwareHost_BuildMesh(t *testing.T) {
	h := NewSoftwareHost(1, 1)
	if _, err := h.BuildMesh(triangleVertices(), []uint32{0, 1, 9}, nil); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("BuildMesh() error = %v, want ErrIndexOutOfRange", err)
	}
	m, err := h.BuildMesh(triangleVertices(), []uint32{0, 1, 2}, nil)
	if err != nil || m.TriangleCount() != 1 {
		t.Errorf("BuildMesh() = %v, %v", m, err)
	}
}
