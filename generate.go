package ggmesh

// Rand is the random source used by Generate.
// *rand.Rand from math/rand and golang.org/x/exp/rand both satisfy it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// Bounds are the exclusive upper limits for generated shape parameters.
// Every lower limit is zero.
type Bounds struct {
	X, Y          float64 // rectangle origin and circle center
	Width, Height float64 // rectangle extents
	Radius        float64
}

// ReferenceBounds are the limits of the reference generator for an
// 800x600 scene. Rectangle extents reuse the position ranges, so some
// rectangles run past the scene edge; that is intended output.
var ReferenceBounds = Bounds{X: 800, Y: 600, Width: 800, Height: 600, Radius: 300}

// Generate produces count random shapes.
//
// Each shape consumes the random source in a fixed order:
//
//	R, G, B, A          four Float64 calls
//	kind                Intn(2); 0 selects a Rectangle
//	Rectangle: x, y, w, h   four Float64 calls
//	Circle:    cx, cy, r    three Float64 calls
//
// so the same seeded source always yields the same scene.
func Generate(count int, rng Rand, b Bounds) []Shape {
	shapes := make([]Shape, 0, max(count, 0))
	for range count {
		shapes = append(shapes, generateShape(rng, b))
	}
	return shapes
}

func generateShape(rng Rand, b Bounds) Shape {
	c := Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: rng.Float64()}
	if rng.Intn(2)%2 == 0 {
		x := rng.Float64() * b.X
		y := rng.Float64() * b.Y
		w := rng.Float64() * b.Width
		h := rng.Float64() * b.Height
		return Rectangle{Rect: Rect{X: x, Y: y, W: w, H: h}, Color: c}
	}
	cx := rng.Float64() * b.X
	cy := rng.Float64() * b.Y
	r := rng.Float64() * b.Radius
	return Circle{Center: Point{X: cx, Y: cy}, Radius: r, Color: c}
}
