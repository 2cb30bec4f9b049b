package ggmesh

import (
	"errors"
	"fmt"
)

// Geometry errors. They are wrapped in a *GeometryError naming the
// builder operation that failed.
var (
	// ErrEmptyMesh is returned by Build when no primitive was accumulated.
	ErrEmptyMesh = errors.New("ggmesh: mesh has no geometry")

	// ErrIndexOutOfRange is returned when an index refers past the vertex slice.
	ErrIndexOutOfRange = errors.New("ggmesh: index out of range")

	// ErrIndexCount is returned when the index count is not a multiple of 3.
	ErrIndexCount = errors.New("ggmesh: index count is not a multiple of 3")

	// ErrInvalidTolerance is returned for a non-positive curve tolerance.
	ErrInvalidTolerance = errors.New("ggmesh: tolerance must be positive")

	// ErrInvalidWidth is returned for a non-positive stroke width.
	ErrInvalidWidth = errors.New("ggmesh: width must be positive")

	// ErrTooFewPoints is returned when a polyline has fewer than two distinct points.
	ErrTooFewPoints = errors.New("ggmesh: need at least two distinct points")

	// ErrTextureConflict is returned when one builder is given two different textures.
	ErrTextureConflict = errors.New("ggmesh: mesh already has a different texture")
)

// Render errors.
var (
	// ErrResourceReleased is returned when drawing an image or mesh
	// whose backing resource has been released.
	ErrResourceReleased = errors.New("ggmesh: resource released")

	// ErrNilDrawable is returned when a nil image or mesh is drawn.
	ErrNilDrawable = errors.New("ggmesh: nil drawable")

	// ErrQuit is returned by a Handler to stop Run without error.
	ErrQuit = errors.New("ggmesh: quit")
)

// GeometryError reports a malformed primitive or build.
type GeometryError struct {
	Op  string
	Err error
}

func (e *GeometryError) Error() string {
	return "ggmesh: " + e.Op + ": " + e.Err.Error()
}

func (e *GeometryError) Unwrap() error { return e.Err }

// RenderError reports a draw call that failed. Index is the position of
// the item within the frame, or -1 when the draw was issued directly.
type RenderError struct {
	Index int
	Err   error
}

func (e *RenderError) Error() string {
	if e.Index < 0 {
		return "ggmesh: draw: " + e.Err.Error()
	}
	return fmt.Sprintf("ggmesh: draw item %d: %v", e.Index, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// ImageLoadError reports a host failure to load or decode an image.
type ImageLoadError struct {
	Path string
	Err  error
}

func (e *ImageLoadError) Error() string {
	return "ggmesh: load image " + e.Path + ": " + e.Err.Error()
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

// PresentError reports a host failure to present a finished frame.
type PresentError struct {
	Frame uint64
	Err   error
}

func (e *PresentError) Error() string {
	return fmt.Sprintf("ggmesh: present frame %d: %v", e.Frame, e.Err)
}

func (e *PresentError) Unwrap() error { return e.Err }

func geometryErr(op string, err error) error {
	return &GeometryError{Op: op, Err: err}
}
