package plot

import (
	"math"

	"github.com/zephyrtronium/formula"
)

// Default contour resolution.
const (
	DefaultContourX = 180
	DefaultContourY = 140
)

// Segment is a line segment of a contour in world coordinates.
type Segment struct {
	A, B Vec
}

// Contour traces the zero set of F(x, y) over a region with marching squares.
// F is sampled at the corners of each cell, and each edge whose corner values
// differ in sign (or touch zero) contributes a crossing placed by linear
// interpolation. Cells with two crossings give one segment; saddle cells with
// four give two. Corners that are NaN or infinite contribute no crossings.
func Contour(n formula.Node, xr, yr Range, opts ...Option) []Segment {
	s := configure(settings{nx: DefaultContourX, ny: DefaultContourY}, opts)
	nx, ny := s.nx, s.ny
	w := nx + 1
	vals := make([]float64, w*(ny+1))
	dx := xr.Size() / float64(nx)
	dy := yr.Size() / float64(ny)
	rows(ny+1, s.workers, func(iy int, vars formula.Vars) {
		vars["y"] = yr.Min + float64(iy)*dy
		for ix := 0; ix <= nx; ix++ {
			vars["x"] = xr.Min + float64(ix)*dx
			vals[iy*w+ix] = formula.Eval(n, vars)
		}
	})

	var segs []Segment
	for iy := 0; iy < ny; iy++ {
		y0 := yr.Min + float64(iy)*dy
		y1 := y0 + dy
		for ix := 0; ix < nx; ix++ {
			x0 := xr.Min + float64(ix)*dx
			x1 := x0 + dx
			v0 := vals[iy*w+ix]
			v1 := vals[iy*w+ix+1]
			v2 := vals[(iy+1)*w+ix+1]
			v3 := vals[(iy+1)*w+ix]

			var pts [4]Vec
			k := 0
			if p, ok := crossing(Vec{x0, y0}, v0, Vec{x1, y0}, v1); ok {
				pts[k] = p
				k++
			}
			if p, ok := crossing(Vec{x1, y0}, v1, Vec{x1, y1}, v2); ok {
				pts[k] = p
				k++
			}
			if p, ok := crossing(Vec{x1, y1}, v2, Vec{x0, y1}, v3); ok {
				pts[k] = p
				k++
			}
			if p, ok := crossing(Vec{x0, y1}, v3, Vec{x0, y0}, v0); ok {
				pts[k] = p
				k++
			}
			switch k {
			case 2:
				segs = append(segs, Segment{pts[0], pts[1]})
			case 4:
				segs = append(segs, Segment{pts[0], pts[1]}, Segment{pts[2], pts[3]})
			}
		}
	}
	return segs
}

// crossing finds where F crosses zero along the edge from a to b.
func crossing(a Vec, va float64, b Vec, vb float64) (Vec, bool) {
	if !finite(va) || !finite(vb) {
		return Vec{}, false
	}
	if va > 0 && vb > 0 || va < 0 && vb < 0 {
		return Vec{}, false
	}
	t := 0.5
	if d := va - vb; math.Abs(d) > 1e-12 {
		t = clamp(va/d, 0, 1)
	}
	return Vec{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}, true
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
