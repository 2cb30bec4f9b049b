package ggmesh

// DrawParam places a drawable in the frame.
//
// The zero value has a zero scale and draws nothing visible; start from
// DefaultDrawParam.
type DrawParam struct {
	Dest     Point
	Rotation float64 // radians
	Scale    Point
}

// DefaultDrawParam returns a param at the origin with no rotation and unit scale.
func DefaultDrawParam() DrawParam {
	return DrawParam{Scale: Point{X: 1, Y: 1}}
}

// WithDest returns a copy with the destination set.
func (p DrawParam) WithDest(dest Point) DrawParam {
	p.Dest = dest
	return p
}

// WithRotation returns a copy with the rotation set.
func (p DrawParam) WithRotation(radians float64) DrawParam {
	p.Rotation = radians
	return p
}

// WithScale returns a copy with the scale set.
func (p DrawParam) WithScale(x, y float64) DrawParam {
	p.Scale = Point{X: x, Y: y}
	return p
}

// Matrix returns the local-to-world transform:
// translate(Dest) · rotate(Rotation) · scale(Scale).
// Scale applies first, then rotation about the local origin, then translation.
func (p DrawParam) Matrix() Matrix {
	return Translate(p.Dest.X, p.Dest.Y).
		Multiply(Rotate(p.Rotation)).
		Multiply(Scale(p.Scale.X, p.Scale.Y))
}
