package plot

import (
	"math"

	"github.com/zephyrtronium/formula"
)

// Default grid resolution.
const (
	DefaultGridX = 200
	DefaultGridY = 150
)

// Heatmap is a grid of samples of a function of x and y, taken at the center
// of each cell.
type Heatmap struct {
	// NX and NY are the number of cells along each axis.
	NX, NY int
	// X and Y are the region covered by the grid.
	X, Y Range
	// Values holds the samples in rows of increasing y, each of increasing x.
	Values []float64
	// Lo and Hi are the least and greatest finite samples. If there are no
	// distinct finite samples, they are -1 and 1.
	Lo, Hi float64
}

// At returns the sample in cell (ix, iy).
func (h *Heatmap) At(ix, iy int) float64 {
	return h.Values[iy*h.NX+ix]
}

// Cell returns the world rectangle of cell (ix, iy) as its low and high
// corners.
func (h *Heatmap) Cell(ix, iy int) (lo, hi Vec) {
	dx := h.X.Size() / float64(h.NX)
	dy := h.Y.Size() / float64(h.NY)
	lo = Vec{h.X.Min + float64(ix)*dx, h.Y.Min + float64(iy)*dy}
	hi = Vec{lo.X + dx, lo.Y + dy}
	return lo, hi
}

// Norm returns the sample in cell (ix, iy) scaled to [0, 1] between Lo and
// Hi. Samples that are not finite stay NaN.
func (h *Heatmap) Norm(ix, iy int) float64 {
	v := h.At(ix, iy)
	if !finite(v) {
		return math.NaN()
	}
	return clamp((v-h.Lo)/(h.Hi-h.Lo), 0, 1)
}

// Grid samples z = f(x, y) over a region.
func Grid(n formula.Node, xr, yr Range, opts ...Option) *Heatmap {
	return grid(n, xr, yr, nil, opts)
}

// Slice samples f(x, y, z) over a region of the plane at a fixed z.
func Slice(n formula.Node, xr, yr Range, z float64, opts ...Option) *Heatmap {
	return grid(n, xr, yr, &z, opts)
}

func grid(n formula.Node, xr, yr Range, z *float64, opts []Option) *Heatmap {
	s := configure(settings{nx: DefaultGridX, ny: DefaultGridY}, opts)
	h := Heatmap{
		NX:     s.nx,
		NY:     s.ny,
		X:      xr,
		Y:      yr,
		Values: make([]float64, s.nx*s.ny),
	}
	dx := xr.Size() / float64(s.nx)
	dy := yr.Size() / float64(s.ny)
	rows(s.ny, s.workers, func(iy int, vars formula.Vars) {
		if z != nil {
			vars["z"] = *z
		}
		vars["y"] = yr.Min + (float64(iy)+0.5)*dy
		row := h.Values[iy*s.nx : (iy+1)*s.nx]
		for ix := range row {
			vars["x"] = xr.Min + (float64(ix)+0.5)*dx
			row[ix] = formula.Eval(n, vars)
		}
	})
	h.Lo, h.Hi = math.Inf(1), math.Inf(-1)
	for _, v := range h.Values {
		if !finite(v) {
			continue
		}
		h.Lo = math.Min(h.Lo, v)
		h.Hi = math.Max(h.Hi, v)
	}
	if !(h.Lo < h.Hi) {
		h.Lo, h.Hi = -1, 1
	}
	return &h
}
