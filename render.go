package ggmesh

import "errors"

// DrawItem pairs a drawable with where to draw it.
type DrawItem struct {
	Drawable Drawable
	Param    DrawParam
}

// Frame is one frame's worth of draw calls.
// Items are drawn in order; later items cover earlier ones.
type Frame struct {
	// Clear, when non-nil, fills the target before the first draw.
	Clear *Color
	Items []DrawItem
}

// Add appends a draw call and returns the frame for chaining.
func (f *Frame) Add(d Drawable, p DrawParam) *Frame {
	f.Items = append(f.Items, DrawItem{Drawable: d, Param: p})
	return f
}

// Render submits a frame to r and presents it.
//
// The first failed draw aborts the frame: later items are not drawn and
// Present is not called. The error is a *RenderError whose Index is the
// failing item. Present failures are returned as *PresentError.
func Render(r Renderer, f Frame) error {
	if f.Clear != nil {
		r.Clear(*f.Clear)
	}
	for i, item := range f.Items {
		if err := r.Draw(item.Drawable, item.Param); err != nil {
			return indexRenderErr(i, err)
		}
	}
	if err := r.Present(); err != nil {
		var perr *PresentError
		if errors.As(err, &perr) {
			return err
		}
		return &PresentError{Err: err}
	}
	return nil
}

func indexRenderErr(i int, err error) error {
	var rerr *RenderError
	if errors.As(err, &rerr) {
		return &RenderError{Index: i, Err: rerr.Err}
	}
	return &RenderError{Index: i, Err: err}
}
