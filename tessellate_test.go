package ggmesh

import (
	"math"
	"testing"
)

func TestCurveSegments_ToleranceMonotonic(t *testing.T) {
	prev := 0
	for _, tol := range []float64{10, 1, 0.5, 0.1, 0.01} {
		n := curveSegments(100, tol)
		if n < prev {
			t.Errorf("curveSegments(100, %v) = %d, fewer than %d at a looser tolerance", tol, n, prev)
		}
		prev = n
	}
	if curveSegments(100, 0.01) <= curveSegments(100, 1) {
		t.Error("smaller tolerance should produce more segments")
	}
}

func TestCurveSegments_DeviationWithinTolerance(t *testing.T) {
	tests := []struct {
		radius, tol float64
	}{
		{40, 1},
		{120, 1},
		{300, 0.1},
		{10, 0.05},
	}
	for _, tt := range tests {
		n := curveSegments(tt.radius, tt.tol)
		if n == maxCurveSegments {
			continue
		}
		// Sagitta of one chord.
		dev := tt.radius * (1 - math.Cos(math.Pi/float64(n)))
		if dev > tt.tol+1e-12 {
			t.Errorf("r=%v tol=%v: %d segments deviate by %v", tt.radius, tt.tol, n, dev)
		}
	}
}

func TestCurveSegments_Limits(t *testing.T) {
	if got := curveSegments(0, 0.1); got != minCurveSegments {
		t.Errorf("curveSegments(0) = %d, want %d", got, minCurveSegments)
	}
	if got := curveSegments(1e9, 1e-6); got != maxCurveSegments {
		t.Errorf("curveSegments(huge) = %d, want %d", got, maxCurveSegments)
	}
}

func TestTessellateEllipse_FillIsFan(t *testing.T) {
	center := Pt(600, 200)
	pts, idx := tessellateEllipse(Fill(), center, 50, 120, 1)
	if pts[0] != center {
		t.Errorf("fan center = %v, want %v", pts[0], center)
	}
	n := len(pts) - 1
	if len(idx) != n*3 {
		t.Fatalf("len(idx) = %d, want %d", len(idx), n*3)
	}
	for i := 0; i < len(idx); i += 3 {
		if idx[i] != 0 {
			t.Fatalf("triangle %d does not start at the center", i/3)
		}
	}
	for _, p := range pts[1:] {
		d := p.Sub(center)
		// Every outline point lies on the ellipse.
		if v := (d.X*d.X)/(50*50) + (d.Y*d.Y)/(120*120); math.Abs(v-1) > 1e-9 {
			t.Errorf("outline point %v is off the ellipse (%v)", p, v)
		}
	}
}

func TestTessellateEllipse_StrokeRing(t *testing.T) {
	pts, idx := tessellateEllipse(Stroke(4), Pt(0, 0), 10, 10, 0.5)
	if len(pts)%2 != 0 {
		t.Fatalf("ring has odd vertex count %d", len(pts))
	}
	for i := 0; i < len(pts); i += 2 {
		if r := pts[i].Length(); math.Abs(r-12) > 1e-9 {
			t.Errorf("outer radius = %v, want 12", r)
		}
		if r := pts[i+1].Length(); math.Abs(r-8) > 1e-9 {
			t.Errorf("inner radius = %v, want 8", r)
		}
	}
	if len(idx) != len(pts)*3 {
		t.Errorf("len(idx) = %d, want %d", len(idx), len(pts)*3)
	}
}

func TestStrokePolyline_Width(t *testing.T) {
	pts, idx := strokePolyline([]Point{{0, 0}, {10, 0}}, 4, false)
	want := []Point{{0, 2}, {0, -2}, {10, 2}, {10, -2}}
	if len(pts) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(pts), len(want))
	}
	for i := range want {
		if !pointsClose(pts[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, pts[i], want[i])
		}
	}
	if len(idx) != 6 {
		t.Errorf("len(idx) = %d, want 6", len(idx))
	}
}

func TestStrokePolyline_MiterJoin(t *testing.T) {
	// Right angle at (10, 0): the outer miter corner sits at (8, 2)
	// for the left side and (12, -2) for the right.
	pts, _ := strokePolyline([]Point{{0, 0}, {10, 0}, {10, 10}}, 4, false)
	if !pointsClose(pts[2], Pt(8, 2)) {
		t.Errorf("left join = %v, want (8, 2)", pts[2])
	}
	if !pointsClose(pts[3], Pt(12, -2)) {
		t.Errorf("right join = %v, want (12, -2)", pts[3])
	}
}

func TestMiterOffset_Clamped(t *testing.T) {
	prev := Pt(0, 1)
	next := Pt(0.001, -1).Normalize()
	off := miterOffset(prev, next, 1)
	if off.Length() > miterLimit+1e-9 {
		t.Errorf("miter length %v exceeds limit %v", off.Length(), miterLimit)
	}
}

func TestDedupePoints(t *testing.T) {
	got := dedupePoints([]Point{{0, 0}, {0, 0}, {1, 0}, {1, 1}, {0, 0}}, true)
	if len(got) != 3 {
		t.Errorf("dedupePoints() = %v, want 3 points", got)
	}
	got = dedupePoints([]Point{{0, 0}, {1, 0}, {0, 0}}, false)
	if len(got) != 3 {
		t.Errorf("open dedupePoints() = %v, want 3 points", got)
	}
}
