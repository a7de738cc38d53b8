package main

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/zephyrtronium/formula/plot"
)

func TestReadFlags(t *testing.T) {
	o, args, err := readFlags([]string{"formula", "-m", "eval", "-v", "a=2", "-v", "x=a^2", "-x", "-pi:pi", "-z", "a/4", "x + 1", "y"})
	if err != nil {
		t.Fatal(err)
	}
	if o.mode != "eval" {
		t.Errorf("mode %q", o.mode)
	}
	if o.vars["a"] != 2 || o.vars["x"] != 4 {
		t.Errorf("vars %v", o.vars)
	}
	if o.xr != (plot.Range{Min: -math.Pi, Max: math.Pi}) {
		t.Errorf("x range %v", o.xr)
	}
	if o.yr != (plot.Range{Min: -10, Max: 10}) {
		t.Errorf("y range %v", o.yr)
	}
	if o.z != 0.5 {
		t.Errorf("z %v", o.z)
	}
	if !reflect.DeepEqual(args, []string{"x + 1", "y"}) {
		t.Errorf("args %q", args)
	}
}

func TestReadFlagsErrors(t *testing.T) {
	cases := [][]string{
		{"formula", "-m", "bogus"},
		{"formula", "-x", "3:1"},
		{"formula", "-x", "3"},
		{"formula", "-y", "0:foo("},
		{"formula", "-v", "x"},
		{"formula", "-v", "x=1+"},
		{"formula", "-r", "3"},
		{"formula", "-r", "0,4"},
		{"formula", "-n", "many"},
		{"formula", "-j", "0"},
		{"formula", "-q"},
	}
	for _, argv := range cases {
		if _, _, err := readFlags(argv); err == nil {
			t.Errorf("%q gave no error", argv)
		}
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		argv []string
		src  string
		out  string
	}{
		{"classify", nil, "z = x^2 + y^2", "z = f(x,y)\tSurface3D\tx,y,z\n"},
		{"classify-implicit", nil, "x^2 + y^2 = 1", "F(x,y) = 0\tImplicit2D\tx,y\n"},
		{"eval", []string{"-m", "eval", "-v", "x=3"}, "x^2", "9\n"},
		{"eval-verb", []string{"-m", "eval", "-f", "%.3f"}, "pi", "3.142\n"},
		{"eval-nan", []string{"-m", "eval", "-v", "x=0"}, "1/x", "NaN\n"},
		{"echo", []string{"-e", "-m", "eval"}, "1+2", "([1] + [2]) : 3\n"},
		{"curve", []string{"-m", "curve", "-n", "2", "-x", "0:2"}, "x", "0 0\n1 1\n2 2\n"},
		{"curve-split", []string{"-m", "curve", "-n", "4", "-x", "-2:2"}, "1/x", "-2 -0.5\n-1 -1\n\n1 1\n2 0.5\n"},
		{"grid", []string{"-m", "grid", "-r", "2,1", "-x", "0:2", "-y", "0:2"}, "z = x + y", "0.5 1 1.5\n1.5 1 2.5\n"},
		{"slice", []string{"-m", "grid", "-r", "1,1", "-x", "0:2", "-y", "0:2", "-z", "3"}, "x + y + z", "1 1 5\n"},
		{"contour", []string{"-m", "contour", "-r", "1,1", "-x", "-1:1", "-y", "-1:1"}, "y = x + 0.5", "0.5 1\n-1 -0.5\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			o, _, err := readFlags(append([]string{"formula"}, c.argv...))
			if err != nil {
				t.Fatal(err)
			}
			var b strings.Builder
			if err := run(&b, c.src, &o); err != nil {
				t.Fatalf("%q: %v", c.src, err)
			}
			if b.String() != c.out {
				t.Errorf("%q: want\n%q\ngot\n%q", c.src, c.out, b.String())
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	o, _, err := readFlags([]string{"formula"})
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{"x +", "a = x", "x = y = 1", "  "} {
		var b strings.Builder
		if err := run(&b, src, &o); err == nil {
			t.Errorf("%q gave no error; output %q", src, b.String())
		}
	}
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("x^2\n\n  y = x  \n\t\nsin(x)"))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"x^2", "y = x", "sin(x)"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("want %q, got %q", want, lines)
	}
}
