package ggmesh

import "math"

// Tessellation limits for curved primitives.
const (
	minCurveSegments = 8
	maxCurveSegments = 1024
)

// DrawMode selects whether a closed primitive is filled or outlined.
type DrawMode struct {
	stroke bool
	width  float64
}

// Fill returns a DrawMode that fills the primitive.
func Fill() DrawMode { return DrawMode{} }

// Stroke returns a DrawMode that outlines the primitive with the given width.
func Stroke(width float64) DrawMode { return DrawMode{stroke: true, width: width} }

// IsStroke reports whether the mode outlines rather than fills.
func (m DrawMode) IsStroke() bool { return m.stroke }

// Width returns the stroke width. It is zero for Fill.
func (m DrawMode) Width() float64 { return m.width }

// curveSegments returns how many straight segments approximate a circle of
// the given radius so that no chord strays more than tolerance from the arc.
//
// A chord spanning angle θ deviates by r(1 - cos(θ/2)), so the largest
// admissible step is θ = 2·acos(1 - tol/r).
func curveSegments(radius, tolerance float64) int {
	r := math.Abs(radius)
	if r <= tolerance {
		return minCurveSegments
	}
	theta := 2 * math.Acos(1-tolerance/r)
	n := int(math.Ceil(2 * math.Pi / theta))
	return min(max(n, minCurveSegments), maxCurveSegments)
}

// ellipsePoints samples n points counter-clockwise on an axis-aligned ellipse.
func ellipsePoints(center Point, rx, ry float64, n int) []Point {
	pts := make([]Point, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = Point{X: center.X + rx*cos, Y: center.Y + ry*sin}
	}
	return pts
}

// fanFill triangulates a convex outline as a fan around center.
// The center becomes vertex 0.
func fanFill(center Point, outline []Point) ([]Point, []uint32) {
	n := len(outline)
	pts := make([]Point, 0, n+1)
	pts = append(pts, center)
	pts = append(pts, outline...)
	idx := make([]uint32, 0, n*3)
	for i := range n {
		idx = append(idx, 0, uint32(1+i), uint32(1+(i+1)%n))
	}
	return pts, idx
}

// ringStroke triangulates the band between two outlines with matching
// point counts, closing the band back to the first pair.
func ringStroke(outer, inner []Point) ([]Point, []uint32) {
	n := len(outer)
	pts := make([]Point, 0, 2*n)
	for i := range n {
		pts = append(pts, outer[i], inner[i])
	}
	idx := make([]uint32, 0, n*6)
	for i := range n {
		o0, i0 := uint32(2*i), uint32(2*i+1)
		j := (i + 1) % n
		o1, i1 := uint32(2*j), uint32(2*j+1)
		idx = append(idx, o0, i0, o1, i0, i1, o1)
	}
	return pts, idx
}

// tessellateEllipse produces the triangle set for an ellipse.
func tessellateEllipse(mode DrawMode, center Point, rx, ry, tolerance float64) ([]Point, []uint32) {
	r := math.Max(math.Abs(rx), math.Abs(ry))
	if !mode.stroke {
		return fanFill(center, ellipsePoints(center, rx, ry, curveSegments(r, tolerance)))
	}
	hw := mode.width / 2
	n := curveSegments(r+hw, tolerance)
	outer := ellipsePoints(center, rx+hw, ry+hw, n)
	inner := ellipsePoints(center, rx-hw, ry-hw, n)
	return ringStroke(outer, inner)
}
