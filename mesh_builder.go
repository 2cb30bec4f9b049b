package ggmesh

// MeshBuilder accumulates primitives into a single vertex/index buffer.
//
// Every primitive either appends completely or not at all. The first error
// is remembered and also returned by Build, so a mesh is never built from a
// partially successful sequence of calls. Build hands the accumulated
// buffers to the new Mesh and leaves the builder empty.
//
// Example:
//
//	mb := ggmesh.NewMeshBuilder()
//	_ = mb.Line([]ggmesh.Point{{200, 200}, {400, 200}, {400, 400}}, 4, ggmesh.Red)
//	_ = mb.Circle(ggmesh.Fill(), ggmesh.Pt(600, 380), 40, 1, ggmesh.White)
//	mesh, err := mb.Build()
type MeshBuilder struct {
	vertices []Vertex
	indices  []uint32
	texture  *Image
	err      error
}

// NewMeshBuilder creates an empty builder.
func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{}
}

// Err returns the first error recorded by the builder.
func (b *MeshBuilder) Err() error { return b.err }

func (b *MeshBuilder) fail(op string, err error) error {
	gerr := geometryErr(op, err)
	if b.err == nil {
		b.err = gerr
	}
	return gerr
}

// appendPrimitive appends untextured geometry with a uniform color.
func (b *MeshBuilder) appendPrimitive(pts []Point, idx []uint32, c Color) {
	base := uint32(len(b.vertices))
	col := c.Array()
	for _, p := range pts {
		b.vertices = append(b.vertices, Vertex{
			Pos:   [2]float32{float32(p.X), float32(p.Y)},
			Color: col,
		})
	}
	for _, i := range idx {
		b.indices = append(b.indices, base+i)
	}
}

// Line appends a stroked polyline through points.
func (b *MeshBuilder) Line(points []Point, width float64, c Color) error {
	if !(width > 0) {
		return b.fail("line", ErrInvalidWidth)
	}
	pts := dedupePoints(points, false)
	if len(pts) < 2 {
		return b.fail("line", ErrTooFewPoints)
	}
	pts, idx := strokePolyline(pts, width, false)
	b.appendPrimitive(pts, idx, c)
	return nil
}

// Ellipse appends an axis-aligned ellipse. Tolerance is the largest
// allowed distance between the true curve and its polygon; smaller values
// produce more segments.
func (b *MeshBuilder) Ellipse(mode DrawMode, center Point, rx, ry, tolerance float64, c Color) error {
	if !(tolerance > 0) {
		return b.fail("ellipse", ErrInvalidTolerance)
	}
	if mode.stroke && !(mode.width > 0) {
		return b.fail("ellipse", ErrInvalidWidth)
	}
	pts, idx := tessellateEllipse(mode, center, rx, ry, tolerance)
	b.appendPrimitive(pts, idx, c)
	return nil
}

// Circle appends a circle. A zero radius is accepted and yields
// zero-area triangles.
func (b *MeshBuilder) Circle(mode DrawMode, center Point, radius, tolerance float64, c Color) error {
	if !(tolerance > 0) {
		return b.fail("circle", ErrInvalidTolerance)
	}
	if mode.stroke && !(mode.width > 0) {
		return b.fail("circle", ErrInvalidWidth)
	}
	pts, idx := tessellateEllipse(mode, center, radius, radius, tolerance)
	b.appendPrimitive(pts, idx, c)
	return nil
}

// Rectangle appends a rectangle. Negative or zero extents are accepted
// for fills; a stroked rectangle needs at least two distinct corners.
func (b *MeshBuilder) Rectangle(mode DrawMode, r Rect, c Color) error {
	corners := r.Corners()
	if !mode.stroke {
		b.appendPrimitive(corners[:], []uint32{0, 1, 2, 0, 2, 3}, c)
		return nil
	}
	return b.closedStroke("rectangle", corners[:], mode.width, c)
}

// Polygon appends a closed polygon. Fills are triangulated as a fan from
// the first point, which is exact for convex polygons.
func (b *MeshBuilder) Polygon(mode DrawMode, points []Point, c Color) error {
	if mode.stroke {
		return b.closedStroke("polygon", points, mode.width, c)
	}
	pts := dedupePoints(points, true)
	if len(pts) < 3 {
		return b.fail("polygon", ErrTooFewPoints)
	}
	idx := make([]uint32, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		idx = append(idx, 0, uint32(i), uint32(i+1))
	}
	b.appendPrimitive(pts, idx, c)
	return nil
}

func (b *MeshBuilder) closedStroke(op string, points []Point, width float64, c Color) error {
	if !(width > 0) {
		return b.fail(op, ErrInvalidWidth)
	}
	pts := dedupePoints(points, true)
	if len(pts) < 2 {
		return b.fail(op, ErrTooFewPoints)
	}
	pts, idx := strokePolyline(pts, width, true)
	b.appendPrimitive(pts, idx, c)
	return nil
}

// Raw appends vertices and indices verbatim. Indices are relative to the
// given vertex slice. A non-nil texture becomes the texture of the whole
// mesh; untextured primitives in the same mesh are tinted by it too.
func (b *MeshBuilder) Raw(vertices []Vertex, indices []uint32, texture *Image) error {
	if err := validateIndices(vertices, indices); err != nil {
		return b.fail("raw", err)
	}
	if texture != nil {
		if b.texture != nil && b.texture != texture {
			return b.fail("raw", ErrTextureConflict)
		}
		b.texture = texture
	}
	base := uint32(len(b.vertices))
	b.vertices = append(b.vertices, vertices...)
	for _, i := range indices {
		b.indices = append(b.indices, base+i)
	}
	return nil
}

// Build consumes the accumulated geometry and returns it as a Mesh.
// The builder is empty afterwards whether or not Build succeeds.
func (b *MeshBuilder) Build() (*Mesh, error) {
	defer b.reset()
	if b.err != nil {
		return nil, b.err
	}
	if len(b.indices) == 0 {
		return nil, geometryErr("build", ErrEmptyMesh)
	}
	Logger().Debug("ggmesh: mesh built",
		"vertices", len(b.vertices), "triangles", len(b.indices)/3, "textured", b.texture != nil)
	return &Mesh{vertices: b.vertices, indices: b.indices, texture: b.texture}, nil
}

func (b *MeshBuilder) reset() {
	*b = MeshBuilder{}
}
