package ggmesh

import (
	"math"
	"slices"
)

// Mesh is an immutable indexed triangle list, optionally textured.
//
// Every index is below the vertex count and the index count is a
// non-zero multiple of three. Meshes are created by MeshBuilder.Build
// or NewMesh and never change afterwards.
type Mesh struct {
	vertices []Vertex
	indices  []uint32
	texture  *Image
	released bool
}

// NewMesh validates and copies a vertex/index buffer into a Mesh.
func NewMesh(vertices []Vertex, indices []uint32, texture *Image) (*Mesh, error) {
	if len(indices) == 0 {
		return nil, geometryErr("new mesh", ErrEmptyMesh)
	}
	if err := validateIndices(vertices, indices); err != nil {
		return nil, geometryErr("new mesh", err)
	}
	return &Mesh{
		vertices: slices.Clone(vertices),
		indices:  slices.Clone(indices),
		texture:  texture,
	}, nil
}

func validateIndices(vertices []Vertex, indices []uint32) error {
	if len(indices)%3 != 0 {
		return ErrIndexCount
	}
	n := uint64(len(vertices))
	for _, idx := range indices {
		if uint64(idx) >= n {
			return ErrIndexOutOfRange
		}
	}
	return nil
}

func (*Mesh) isDrawable() {}

// Vertices returns a copy of the vertex buffer.
func (m *Mesh) Vertices() []Vertex { return slices.Clone(m.vertices) }

// Indices returns a copy of the index buffer.
func (m *Mesh) Indices() []uint32 { return slices.Clone(m.indices) }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int { return len(m.indices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Texture returns the bound texture, or nil for an untextured mesh.
func (m *Mesh) Texture() *Image { return m.texture }

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) [3]Vertex {
	j := i * 3
	return [3]Vertex{
		m.vertices[m.indices[j]],
		m.vertices[m.indices[j+1]],
		m.vertices[m.indices[j+2]],
	}
}

// Bounds returns the local-space bounding box of all vertices.
func (m *Mesh) Bounds() Rect {
	if len(m.vertices) == 0 {
		return Rect{}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range m.vertices {
		p := v.Position()
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Released reports whether Release has been called.
func (m *Mesh) Released() bool { return m.released }

// Release drops the vertex and index buffers. It does not release the
// texture, which belongs to whoever loaded it.
func (m *Mesh) Release() {
	m.released = true
	m.vertices = nil
	m.indices = nil
}
