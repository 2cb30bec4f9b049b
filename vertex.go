package ggmesh

import "github.com/gogpu/gputypes"

// VertexStride is the size in bytes of one Vertex in a GPU vertex buffer.
const VertexStride = 32

// Vertex is one corner of a mesh triangle.
// UV is normalized texture space, Color is straight-alpha RGBA.
type Vertex struct {
	Pos   [2]float32
	UV    [2]float32
	Color [4]float32
}

// NewVertex creates a vertex from a position, texture coordinate and color.
func NewVertex(pos, uv Point, c Color) Vertex {
	return Vertex{
		Pos:   [2]float32{float32(pos.X), float32(pos.Y)},
		UV:    [2]float32{float32(uv.X), float32(uv.Y)},
		Color: c.Array(),
	}
}

// Position returns the vertex position as a Point.
func (v Vertex) Position() Point {
	return Point{X: float64(v.Pos[0]), Y: float64(v.Pos[1])}
}

// VertexLayout describes the Vertex struct for a GPU pipeline:
// float32x2 position at location 0, float32x2 uv at 1, float32x4 color at 2.
// Meshes are always triangle lists (see Topology).
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
			},
		},
	}
}

// Topology is the primitive topology of every Mesh.
const Topology = gputypes.PrimitiveTopologyTriangleList
