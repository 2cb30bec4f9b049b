package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggmesh"
)

func TestPNGPresenter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	p, err := newPNGPresenter(dir, 2)
	if err != nil {
		t.Fatalf("newPNGPresenter() error = %v", err)
	}
	defer p.Close()

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 255, A: 255})
	if err := p.Present(7, img); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "frame_0007.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), img.Bounds())
	}
	if r, _, _, a := got.At(1, 2).RGBA(); r != 0xffff || a != 0xffff {
		t.Errorf("pixel (1,2) = %v, want opaque red", got.At(1, 2))
	}
}

func TestPresenters_StopAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	var calls []int
	ps := presenters{
		ggmesh.PresenterFunc(func(uint64, *image.RGBA) error { calls = append(calls, 1); return nil }),
		ggmesh.PresenterFunc(func(uint64, *image.RGBA) error { calls = append(calls, 2); return boom }),
		ggmesh.PresenterFunc(func(uint64, *image.RGBA) error { calls = append(calls, 3); return nil }),
	}
	if err := ps.Present(1, image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, boom) {
		t.Errorf("Present() error = %v, want boom", err)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Errorf("calls = %v, want [1 2]", calls)
	}
}

func TestSimulatedClock(t *testing.T) {
	clock := simulatedClock(ggmesh.StepDuration(ggmesh.DesiredRate))
	h := ggmesh.NewSoftwareHost(1, 1, ggmesh.WithClock(clock))
	h.ElapsedFixedSteps(ggmesh.DesiredRate)
	for i := 0; i < 5; i++ {
		if n := h.ElapsedFixedSteps(ggmesh.DesiredRate); n != 1 {
			t.Fatalf("frame %d: ticks = %d, want 1", i, n)
		}
	}
}
