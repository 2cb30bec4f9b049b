package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/ggmesh"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
)

// pngPresenter writes every presented frame to dir as frame_NNNN.png.
type pngPresenter struct {
	dir string
	bar *progressbar.ProgressBar
}

func newPNGPresenter(dir string, frames int) (*pngPresenter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	total := int64(frames)
	if frames == 0 {
		total = -1
	}
	return &pngPresenter{dir: dir, bar: progressbar.Default(total, "export")}, nil
}

func (p *pngPresenter) Present(frame uint64, img *image.RGBA) error {
	name := filepath.Join(p.dir, fmt.Sprintf("frame_%04d.png", frame))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return p.bar.Add(1)
}

func (p *pngPresenter) Close() error { return p.bar.Close() }

// termPresenter shows frames in the terminal, two pixels per cell using
// the upper half block: foreground is the top pixel, background the bottom.
type termPresenter struct {
	screen tcell.Screen
	cells  *image.RGBA
	pace   *time.Ticker
}

// newTermPresenter takes over the terminal. Escape, q or Ctrl-C call cancel.
func newTermPresenter(cancel context.CancelFunc) (*termPresenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	p := &termPresenter{
		screen: screen,
		pace:   time.NewTicker(time.Second / time.Duration(ggmesh.DesiredRate)),
	}
	go p.pollEvents(cancel)
	return p, nil
}

func (p *termPresenter) pollEvents(cancel context.CancelFunc) {
	for {
		switch ev := p.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				cancel()
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}
	}
}

func (p *termPresenter) Present(_ uint64, img *image.RGBA) error {
	<-p.pace.C
	w, h := p.screen.Size()
	bounds := image.Rect(0, 0, w, h*2)
	if p.cells == nil || p.cells.Rect != bounds {
		p.cells = image.NewRGBA(bounds)
	}
	draw.ApproxBiLinear.Scale(p.cells, bounds, img, img.Bounds(), draw.Src, nil)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := p.cells.RGBAAt(x, 2*y)
			bottom := p.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			p.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	p.screen.Show()
	return nil
}

func (p *termPresenter) Close() error {
	p.pace.Stop()
	p.screen.Fini()
	return nil
}

// presenters fans a frame out to each presenter in order.
type presenters []ggmesh.Presenter

func (ps presenters) Present(frame uint64, img *image.RGBA) error {
	for _, p := range ps {
		if err := p.Present(frame, img); err != nil {
			return err
		}
	}
	return nil
}
