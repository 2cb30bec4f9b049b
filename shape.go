package ggmesh

// Shape is a procedural shape descriptor: Rectangle or Circle.
// The set is closed; consumers dispatch with a type switch.
type Shape interface {
	isShape()
	ShapeColor() Color
}

// Rectangle is an axis-aligned filled rectangle.
// Negative or zero extents are valid and drawn as-is.
type Rectangle struct {
	Rect  Rect
	Color Color
}

// Circle is a filled circle. A zero radius is valid.
type Circle struct {
	Center Point
	Radius float64
	Color  Color
}

func (Rectangle) isShape() {}
func (Circle) isShape()    {}

// ShapeColor returns the rectangle's color.
func (r Rectangle) ShapeColor() Color { return r.Color }

// ShapeColor returns the circle's color.
func (c Circle) ShapeColor() Color { return c.Color }

// AppendShape adds the fill geometry of s to a builder.
func AppendShape(mb *MeshBuilder, s Shape, tolerance float64) error {
	switch v := s.(type) {
	case Rectangle:
		return mb.Rectangle(Fill(), v.Rect, v.Color)
	case Circle:
		return mb.Circle(Fill(), v.Center, v.Radius, tolerance, v.Color)
	default:
		return geometryErr("shape", ErrEmptyMesh)
	}
}

// ShapeMesh builds a standalone fill mesh for one shape.
func ShapeMesh(s Shape, tolerance float64) (*Mesh, error) {
	mb := NewMeshBuilder()
	if err := AppendShape(mb, s, tolerance); err != nil {
		return nil, err
	}
	return mb.Build()
}
