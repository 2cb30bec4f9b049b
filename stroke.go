package ggmesh

import "math"

// miterLimit bounds the miter length at sharp joins, as a multiple of the
// half width. Longer miters are clamped instead of beveled.
const miterLimit = 4.0

// dedupePoints removes consecutive duplicates. For closed outlines the
// closing point is dropped when it repeats the first.
func dedupePoints(points []Point, closed bool) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

// strokePolyline expands a polyline into a triangle strip of the given width.
// Each input point yields a left and a right vertex offset along the miter.
func strokePolyline(points []Point, width float64, closed bool) ([]Point, []uint32) {
	n := len(points)
	segs := n - 1
	if closed {
		segs = n
	}
	normals := make([]Point, segs)
	for i := range segs {
		d := points[(i+1)%n].Sub(points[i]).Normalize()
		normals[i] = d.Perp()
	}

	hw := width / 2
	pts := make([]Point, 0, 2*n)
	for i, p := range points {
		var off Point
		switch {
		case !closed && i == 0:
			off = normals[0].Mul(hw)
		case !closed && i == n-1:
			off = normals[segs-1].Mul(hw)
		default:
			prev := normals[(i-1+segs)%segs]
			next := normals[i%segs]
			off = miterOffset(prev, next, hw)
		}
		pts = append(pts, p.Add(off), p.Sub(off))
	}

	idx := make([]uint32, 0, segs*6)
	for i := range segs {
		l0, r0 := uint32(2*i), uint32(2*i+1)
		j := (i + 1) % n
		l1, r1 := uint32(2*j), uint32(2*j+1)
		idx = append(idx, l0, r0, l1, r0, r1, l1)
	}
	return pts, idx
}

// miterOffset returns the offset from a join point to the outer edge,
// given the unit normals of the incoming and outgoing segments.
func miterOffset(prev, next Point, hw float64) Point {
	m := prev.Add(next).Normalize()
	if m == (Point{}) {
		// Full reversal: the segments overlap, fall back to the incoming normal.
		return prev.Mul(hw)
	}
	d := hw / m.Dot(next)
	limit := miterLimit * hw
	if math.Abs(d) > limit || math.IsInf(d, 0) {
		d = math.Copysign(limit, d)
	}
	return m.Mul(d)
}
