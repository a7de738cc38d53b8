package plot

import (
	"math"

	"github.com/zephyrtronium/formula"
)

// DefaultSamples is the number of curve intervals used without Samples.
const DefaultSamples = 1600

// Point is a sample of y = f(x). Valid is false where f(x) is NaN or infinite.
type Point struct {
	X, Y  float64
	Valid bool
}

// Curve evaluates n at evenly spaced x across xr, including both ends.
func Curve(n formula.Node, xr Range, opts ...Option) []Point {
	s := configure(settings{samples: DefaultSamples}, opts)
	pts := make([]Point, s.samples+1)
	dx := xr.Size() / float64(s.samples)
	rows(len(pts), s.workers, func(i int, vars formula.Vars) {
		x := xr.Min + float64(i)*dx
		vars["x"] = x
		y := formula.Eval(n, vars)
		pts[i] = Point{X: x, Y: y, Valid: finite(y)}
	})
	return pts
}

// Segments splits sampled points into polylines of consecutive valid points.
// A polyline also breaks where y jumps by more than maxJump between adjacent
// points, which usually marks a discontinuity like the poles of tan(x). If
// maxJump is not positive, only invalid points break polylines. Polylines of a
// single point are dropped.
func Segments(pts []Point, maxJump float64) [][]Point {
	var r [][]Point
	start := 0
	flush := func(end int) {
		if end-start >= 2 {
			r = append(r, pts[start:end:end])
		}
		start = end
	}
	for i, p := range pts {
		switch {
		case !p.Valid:
			flush(i)
			start = i + 1
		case i > start && maxJump > 0 && math.Abs(p.Y-pts[i-1].Y) > maxJump:
			flush(i)
		}
	}
	flush(len(pts))
	return r
}
