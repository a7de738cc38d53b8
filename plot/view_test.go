package plot

import (
	"math"
	"testing"
)

func TestViewConvert(t *testing.T) {
	v := NewView(800, 600)
	cases := []struct {
		world, screen Vec
	}{
		{Vec{0, 0}, Vec{400, 300}},
		{Vec{1, 1}, Vec{460, 240}},
		{Vec{-2, 0.5}, Vec{280, 270}},
	}
	for _, c := range cases {
		s := v.WorldToScreen(c.world.X, c.world.Y)
		if s != c.screen {
			t.Errorf("%v to screen: want %v, got %v", c.world, c.screen, s)
		}
		w := v.ScreenToWorld(c.screen.X, c.screen.Y)
		if math.Abs(w.X-c.world.X) > 1e-12 || math.Abs(w.Y-c.world.Y) > 1e-12 {
			t.Errorf("%v to world: want %v, got %v", c.screen, c.world, w)
		}
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := &View{CenterX: 3, CenterY: -7, ScaleX: 13, ScaleY: 250, Width: 640, Height: 480, OriginX: 20, OriginY: 35}
	for _, p := range []Vec{{0, 0}, {3, -7}, {-100, 100}, {0.001, 1e4}} {
		s := v.WorldToScreen(p.X, p.Y)
		w := v.ScreenToWorld(s.X, s.Y)
		if math.Abs(w.X-p.X) > 1e-9*math.Max(1, math.Abs(p.X)) || math.Abs(w.Y-p.Y) > 1e-9*math.Max(1, math.Abs(p.Y)) {
			t.Errorf("%v went to %v and back to %v", p, s, w)
		}
	}
	mid := v.WorldToScreen(v.CenterX, v.CenterY)
	if mid != (Vec{20 + 320, 35 + 240}) {
		t.Errorf("center drawn at %v", mid)
	}
}

func TestViewRanges(t *testing.T) {
	v := NewView(600, 300)
	if r := v.XRange(); r != (Range{-5, 5}) {
		t.Errorf("x range %v", r)
	}
	if r := v.YRange(); r != (Range{-2.5, 2.5}) {
		t.Errorf("y range %v", r)
	}
	v.Pan(1, 2)
	if r := v.XRange(); r != (Range{-4, 6}) {
		t.Errorf("panned x range %v", r)
	}
	if r := v.YRange(); r != (Range{-0.5, 4.5}) {
		t.Errorf("panned y range %v", r)
	}
	v.Reset()
	if r := v.XRange(); r != (Range{-5, 5}) {
		t.Errorf("reset x range %v", r)
	}
}

func TestViewPanPixels(t *testing.T) {
	v := NewView(800, 600)
	before := v.ScreenToWorld(100, 100)
	v.PanPixels(60, -120)
	// The world point under the cursor moves with the drag.
	after := v.ScreenToWorld(160, -20)
	if math.Abs(after.X-before.X) > 1e-12 || math.Abs(after.Y-before.Y) > 1e-12 {
		t.Errorf("dragged point moved from %v to %v", before, after)
	}
	if v.CenterX != -1 || v.CenterY != -2 {
		t.Errorf("center is (%v, %v)", v.CenterX, v.CenterY)
	}
}

func TestViewZoom(t *testing.T) {
	v := NewView(800, 600)
	v.Zoom(2)
	if v.ScaleX != 2*DefaultScale || v.ScaleY != 2*DefaultScale {
		t.Errorf("zoomed scales %v, %v", v.ScaleX, v.ScaleY)
	}
	v.ZoomX(0.5)
	if v.ScaleX != DefaultScale || v.ScaleY != 2*DefaultScale {
		t.Errorf("zoomed x scales %v, %v", v.ScaleX, v.ScaleY)
	}
	v.Zoom(1e9)
	if v.ScaleX != MaxScale || v.ScaleY != MaxScale {
		t.Errorf("zoom in past max gave %v, %v", v.ScaleX, v.ScaleY)
	}
	v.ZoomY(1e-12)
	if v.ScaleX != MaxScale || v.ScaleY != MinScale {
		t.Errorf("zoom out past min gave %v, %v", v.ScaleX, v.ScaleY)
	}
	v.Reset()
	if v.ScaleX != DefaultScale || v.ScaleY != DefaultScale {
		t.Errorf("reset scales %v, %v", v.ScaleX, v.ScaleY)
	}
}

func TestGridSpacing(t *testing.T) {
	cases := []struct {
		scale, want float64
	}{
		{100, 1},
		{60, 2},
		{25, 5},
		{12, 10},
		{10, 10},
		{1000, 0.1},
		{MinScale, 1000},
	}
	for _, c := range cases {
		got := nicespacing(c.scale)
		if math.Abs(got-c.want) > 1e-12*c.want {
			t.Errorf("scale %v: want %v, got %v", c.scale, c.want, got)
		}
	}
	v := NewView(800, 600)
	v.ScaleY = 100
	if v.GridSpacingX() != 2 || v.GridSpacingY() != 1 {
		t.Errorf("spacings %v, %v", v.GridSpacingX(), v.GridSpacingY())
	}
}
