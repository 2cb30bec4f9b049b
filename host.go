package ggmesh

// ImageLoader loads images from the host's resource system.
// Failures are reported as *ImageLoadError.
type ImageLoader interface {
	LoadImage(path string) (*Image, error)
}

// Renderer is the part of the host that draws a frame.
//
// Draw returns a *RenderError when the drawable's resource is gone.
// Present ends the frame and returns a *PresentError on failure.
type Renderer interface {
	Clear(c Color)
	Draw(d Drawable, p DrawParam) error
	Present() error
}

// Ticker reports how many fixed steps at rate Hz are due since the last call.
type Ticker interface {
	ElapsedFixedSteps(rate uint32) int
}

// Host is the runtime a scene runs in: a window or offscreen target,
// a resource system and a clock.
type Host interface {
	ImageLoader
	Renderer
	Ticker

	// SetFilter sets the filter mode of an image for all later draws.
	SetFilter(img *Image, mode FilterMode)

	// BuildMesh uploads a vertex/index buffer. It returns a *GeometryError
	// for malformed buffers.
	BuildMesh(vertices []Vertex, indices []uint32, texture *Image) (*Mesh, error)
}
