// Package ggmesh renders 2D scenes made of raster images and triangle meshes.
//
// # Overview
//
// A scene is a set of drawables owned by a Store: decoded images and
// immutable meshes built with a MeshBuilder. Each frame, a Handler updates
// its state on a fixed timestep and submits a Frame of draw calls to a Host,
// which clears, draws in order and presents.
//
// # Quick Start
//
//	import "github.com/gogpu/ggmesh"
//
//	mb := ggmesh.NewMeshBuilder()
//	_ = mb.Circle(ggmesh.Fill(), ggmesh.Pt(100, 100), 40, 0.1, ggmesh.Red)
//	_ = mb.Line([]ggmesh.Point{{X: 10, Y: 10}, {X: 190, Y: 10}}, 4, ggmesh.White)
//	mesh, err := mb.Build()
//	if err != nil {
//		return err
//	}
//	defer mesh.Release()
//
//	host := ggmesh.NewSoftwareHost(200, 200)
//	var f ggmesh.Frame
//	f.Add(mesh, ggmesh.DefaultDrawParam())
//	err = ggmesh.Render(host, f)
//
// # Hosts
//
// Host abstracts the window, resource system and clock. SoftwareHost is a
// CPU implementation over an *image.RGBA, used by the tests and by
// cmd/ggmeshdemo. GPU hosts consume VertexLayout and Topology to upload
// mesh buffers.
//
// # Animation
//
// Animator advances state by whole ticks at DesiredRate. A tick always adds
// the same increment, so the result after a given number of seconds does
// not depend on the frame rate.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians; positive angles turn from +X toward +Y
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug and
// info records through log/slog.
package ggmesh
