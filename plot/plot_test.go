package plot_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/plot"
)

func entry(t *testing.T, src string) *formula.Entry {
	t.Helper()
	e := formula.NewEntry()
	e.Reparse(src)
	return e
}

func TestForEntry(t *testing.T) {
	v := plot.NewView(200, 120)
	opts := []plot.Option{plot.Resolution(10, 6), plot.Workers(2)}

	r, err := plot.ForEntry(entry(t, "sin(x)"), v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if r.Shape != formula.ShapeCurve2D || len(r.Curve) != 401 || len(r.Segments) != 1 {
		t.Errorf("curve: shape %v, %d points, %d segments", r.Shape, len(r.Curve), len(r.Segments))
	}
	if r.Heatmap != nil || r.Contour != nil {
		t.Error("curve has other results")
	}
	if xr := v.XRange(); r.Curve[0].X != xr.Min {
		t.Errorf("curve starts at %v, view at %v", r.Curve[0].X, xr.Min)
	}

	r, err = plot.ForEntry(entry(t, "x"), v, plot.Samples(10))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Curve) != 11 {
		t.Errorf("explicit samples gave %d points", len(r.Curve))
	}

	r, err = plot.ForEntry(entry(t, "z = x*y"), v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if r.Shape != formula.ShapeSurface3D || r.Heatmap == nil || r.Heatmap.NX != 10 || r.Heatmap.NY != 6 {
		t.Errorf("surface: shape %v, heatmap %+v", r.Shape, r.Heatmap)
	}
	if r.Heatmap.X != v.XRange() || r.Heatmap.Y != v.YRange() {
		t.Errorf("surface covers %v, %v", r.Heatmap.X, r.Heatmap.Y)
	}

	e := entry(t, "x*0 + y*0 + z")
	e.ZSlice = 2
	r, err = plot.ForEntry(e, v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if r.Shape != formula.ShapeScalarField3D || r.Heatmap == nil {
		t.Fatalf("field: shape %v, heatmap %v", r.Shape, r.Heatmap)
	}
	for i, z := range r.Heatmap.Values {
		if z != 2 {
			t.Errorf("field value %d is %v", i, z)
		}
	}

	r, err = plot.ForEntry(entry(t, "x^2 + y^2 = 0.25"), v, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if r.Shape != formula.ShapeImplicit2D || len(r.Contour) == 0 {
		t.Errorf("implicit: shape %v, %d segments", r.Shape, len(r.Contour))
	}
}

func TestForEntryErrors(t *testing.T) {
	v := plot.NewView(200, 120)

	e := entry(t, "x")
	e.Visible = false
	if _, err := plot.ForEntry(e, v); err != plot.ErrHidden {
		t.Errorf("hidden entry gave %v", err)
	}

	_, err := plot.ForEntry(entry(t, "x +"), v)
	var terr *formula.TokenError
	if !errors.As(err, &terr) {
		t.Errorf("invalid entry gave %v", err)
	}

	_, err = plot.ForEntry(entry(t, "x = y = 1"), v)
	if !errors.Is(err, formula.ErrMultipleEquals) {
		t.Errorf("multiple equals gave %v", err)
	}

	if _, err := plot.ForEntry(entry(t, ""), v); err != plot.ErrInvalid {
		t.Errorf("empty entry gave %v", err)
	}
}

func TestOptionPanics(t *testing.T) {
	cases := []struct {
		name string
		f    func() plot.Option
	}{
		{"samples", func() plot.Option { return plot.Samples(0) }},
		{"resolution-x", func() plot.Option { return plot.Resolution(0, 1) }},
		{"resolution-y", func() plot.Option { return plot.Resolution(1, -1) }},
		{"workers", func() plot.Option { return plot.Workers(-2) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			c.f()
		})
	}
}
