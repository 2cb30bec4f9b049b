package ggmesh

import "fmt"

// Defaults of the generative scene.
const (
	GenerativeShapeCount = 8
	GenerativeTolerance  = 0.1
)

// GenerativeScene draws a fixed set of random shapes.
// The shape meshes are rebuilt on every Draw and released after the frame.
type GenerativeScene struct {
	Shapes    []Shape
	Tolerance float64
	// Background, when non-nil, clears each frame first.
	Background *Color
}

// NewGenerativeScene generates count shapes within ReferenceBounds.
func NewGenerativeScene(count int, rng Rand) *GenerativeScene {
	return &GenerativeScene{
		Shapes:    Generate(count, rng, ReferenceBounds),
		Tolerance: GenerativeTolerance,
	}
}

// Update implements Handler. The scene is static.
func (s *GenerativeScene) Update(Host) error { return nil }

// Draw implements Handler.
func (s *GenerativeScene) Draw(h Host) error {
	f := Frame{Clear: s.Background, Items: make([]DrawItem, 0, len(s.Shapes))}
	defer func() {
		for _, item := range f.Items {
			release(item.Drawable)
		}
	}()
	for i, shape := range s.Shapes {
		m, err := ShapeMesh(shape, s.Tolerance)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		f.Add(m, DefaultDrawParam())
	}
	return Render(h, f)
}
