// Package plot samples formulas over regions of world space in the ways a
// plotter draws them: curves of x, grids of (x, y) values, and contour lines
// of implicit equations. It does no drawing itself.
//
// Samples are evaluated on several goroutines at once. Each goroutine uses its
// own variable bindings; the formula tree is shared.
package plot

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zephyrtronium/formula"
)

// Range is a closed interval of world coordinates.
type Range struct {
	Min, Max float64
}

// Size returns the length of the interval.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

// rows calls f(i, vars) for each i in [0, n), spread over up to workers
// goroutines. Each goroutine has its own vars map, which f may modify freely.
func rows(n, workers int, f func(i int, vars formula.Vars)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		vars := make(formula.Vars, 3)
		for i := 0; i < n; i++ {
			f(i, vars)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			vars := make(formula.Vars, 3)
			for i := w; i < n; i += workers {
				f(i, vars)
			}
		}(w)
	}
	wg.Wait()
}

// Result is the sampled form of an entry. Exactly one of Curve, Heatmap, and
// Contour is set, according to Shape.
type Result struct {
	Shape formula.Shape
	// Curve and Segments are set for ShapeCurve2D.
	Curve    []Point
	Segments [][]Point
	// Heatmap is set for ShapeSurface3D and for ShapeScalarField3D, where it
	// is the cross-section at the entry's ZSlice.
	Heatmap *Heatmap
	// Contour is set for ShapeImplicit2D.
	Contour []Segment
}

var (
	// ErrHidden is the error for sampling an entry that is not visible.
	ErrHidden = errors.New("plot: entry is hidden")
	// ErrInvalid is the error for sampling an invalid entry that has no error
	// of its own, e.g. one with empty text.
	ErrInvalid = errors.New("plot: entry has no formula")
)

// ForEntry samples an entry over the visible region of a view, choosing the
// sampler by the entry's shape. Curves default to two samples per pixel of
// width, and curve segments break where consecutive points are more than two
// view heights apart.
func ForEntry(e *formula.Entry, v *View, opts ...Option) (*Result, error) {
	if !e.Visible {
		return nil, ErrHidden
	}
	if !e.Valid() {
		if err := e.Err(); err != nil {
			return nil, fmt.Errorf("plot: %w", err)
		}
		return nil, ErrInvalid
	}
	xr, yr := v.XRange(), v.YRange()
	r := Result{Shape: e.Shape()}
	switch e.Shape() {
	case formula.ShapeCurve2D:
		n := int(v.Width * 2)
		if n < 1 {
			n = 1
		}
		opts = append([]Option{Samples(n)}, opts...)
		r.Curve = Curve(e.AST(), xr, opts...)
		r.Segments = Segments(r.Curve, 2*yr.Size())
	case formula.ShapeSurface3D:
		r.Heatmap = Grid(e.AST(), xr, yr, opts...)
	case formula.ShapeScalarField3D:
		r.Heatmap = Slice(e.AST(), xr, yr, e.ZSlice, opts...)
	case formula.ShapeImplicit2D:
		r.Contour = Contour(e.AST(), xr, yr, opts...)
	default:
		return nil, ErrInvalid
	}
	return &r, nil
}
