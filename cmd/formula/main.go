package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/zephyrtronium/formula"
	"github.com/zephyrtronium/formula/plot"
)

const usage = `usage: formula [-e] [-m mode] [-v name=value]... [-x min:max] [-y min:max]
               [-z slice] [-n samples] [-r nx,ny] [-j workers] [-f verb] [formula...]

Formulas are read from the arguments, or one per line from stdin if there are
none. Modes:
  classify  print each formula's shape and variables (default)
  eval      evaluate each formula with the -v bindings
  curve     sample y = f(x) across -x; blank lines separate pieces
  grid      sample z = f(x,y), or f(x,y,z) at -z, at cell centers
  contour   trace F(x,y) = 0; blank lines separate segments
`

type options struct {
	mode    string
	vars    formula.Vars
	xr, yr  plot.Range
	z       float64
	verb    string
	echo    bool
	samples []plot.Option
}

func main() {
	log.SetFlags(0)
	opts, args, err := readFlags(os.Args)
	if err != nil {
		log.Print(err)
		log.Fatal(usage)
	}
	var srcs []string
	if len(args) > 0 {
		srcs = args
	} else {
		srcs, err = readLines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
	}

	red := color.New(color.FgRed)
	failed := false
	for _, src := range srcs {
		if err := run(os.Stdout, src, &opts); err != nil {
			red.Fprintf(os.Stderr, "%s: %v\n", src, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func readFlags(argv []string) (options, []string, error) {
	o := options{
		mode: "classify",
		vars: formula.Vars{},
		xr:   plot.Range{Min: -10, Max: 10},
		yr:   plot.Range{Min: -10, Max: 10},
		verb: "%g",
	}
	got, optind, err := getopt.Getopts(argv, "ef:j:m:n:r:v:x:y:z:")
	if err != nil {
		return o, nil, err
	}
	for _, opt := range got {
		switch opt.Option {
		case 'e':
			o.echo = true
		case 'f':
			o.verb = opt.Value
		case 'j':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				return o, nil, fmt.Errorf("invalid -j %q", opt.Value)
			}
			o.samples = append(o.samples, plot.Workers(n))
		case 'm':
			switch opt.Value {
			case "classify", "eval", "curve", "grid", "contour":
				o.mode = opt.Value
			default:
				return o, nil, fmt.Errorf("unknown mode %q", opt.Value)
			}
		case 'n':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				return o, nil, fmt.Errorf("invalid -n %q", opt.Value)
			}
			o.samples = append(o.samples, plot.Samples(n))
		case 'r':
			sx, sy, ok := strings.Cut(opt.Value, ",")
			nx, errx := strconv.Atoi(strings.TrimSpace(sx))
			ny, erry := strconv.Atoi(strings.TrimSpace(sy))
			if !ok || errx != nil || erry != nil || nx <= 0 || ny <= 0 {
				return o, nil, fmt.Errorf(`resolution must be "nx,ny", not %q`, opt.Value)
			}
			o.samples = append(o.samples, plot.Resolution(nx, ny))
		case 'v':
			name, val, ok := strings.Cut(opt.Value, "=")
			if !ok {
				return o, nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, opt.Value)
			}
			name = strings.TrimSpace(name)
			r, err := formula.EvalString(strings.TrimSpace(val), o.vars)
			if err != nil {
				return o, nil, fmt.Errorf("setting %s: %w", name, err)
			}
			o.vars[name] = r
		case 'x', 'y':
			r, err := readRange(opt.Value, o.vars)
			if err != nil {
				return o, nil, fmt.Errorf("-%c: %w", opt.Option, err)
			}
			if opt.Option == 'x' {
				o.xr = r
			} else {
				o.yr = r
			}
		case 'z':
			z, err := formula.EvalString(opt.Value, o.vars)
			if err != nil {
				return o, nil, fmt.Errorf("-z: %w", err)
			}
			o.z = z
		}
	}
	return o, argv[optind:], nil
}

// readRange parses "min:max", where each end may be any constant formula.
func readRange(s string, vars formula.Vars) (plot.Range, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return plot.Range{}, fmt.Errorf(`range must be "min:max", not %q`, s)
	}
	a, err := formula.EvalString(strings.TrimSpace(lo), vars)
	if err != nil {
		return plot.Range{}, err
	}
	b, err := formula.EvalString(strings.TrimSpace(hi), vars)
	if err != nil {
		return plot.Range{}, err
	}
	if !(a < b) {
		return plot.Range{}, fmt.Errorf("empty range %g:%g", a, b)
	}
	return plot.Range{Min: a, Max: b}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func run(w io.Writer, src string, o *options) error {
	e := formula.NewEntry()
	e.ZSlice = o.z
	e.Reparse(src)
	if !e.Valid() {
		if err := e.Err(); err != nil {
			return err
		}
		return fmt.Errorf("no formula")
	}
	if o.echo {
		fmt.Fprintf(w, "%v : ", e.AST())
	}
	verb := o.verb + "\n"
	switch o.mode {
	case "classify":
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.TypeLabel(), e.Shape(), strings.Join(e.Vars(), ","))
	case "eval":
		fmt.Fprintf(w, verb, e.Eval(o.vars))
	case "curve":
		pts := plot.Curve(e.AST(), o.xr, o.samples...)
		for i, seg := range plot.Segments(pts, 2*o.yr.Size()) {
			if i > 0 {
				fmt.Fprintln(w)
			}
			for _, p := range seg {
				fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
			}
		}
	case "grid":
		var h *plot.Heatmap
		if e.Shape() == formula.ShapeScalarField3D {
			h = plot.Slice(e.AST(), o.xr, o.yr, e.ZSlice, o.samples...)
		} else {
			h = plot.Grid(e.AST(), o.xr, o.yr, o.samples...)
		}
		for iy := 0; iy < h.NY; iy++ {
			for ix := 0; ix < h.NX; ix++ {
				lo, hi := h.Cell(ix, iy)
				fmt.Fprintf(w, "%g %g %g\n", (lo.X+hi.X)/2, (lo.Y+hi.Y)/2, h.At(ix, iy))
			}
		}
	case "contour":
		for i, s := range plot.Contour(e.AST(), o.xr, o.yr, o.samples...) {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%g %g\n%g %g\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
		}
	}
	return nil
}
