package plot

import (
	"runtime"
	"strconv"
)

// Option is an option for sampling.
type Option interface {
	option(settings) settings
}

type (
	samplesopt int
	resopt     struct{ nx, ny int }
	workersopt int
)

// settings holds the sampling configuration built from options.
type settings struct {
	// samples is the number of intervals for curves.
	samples int
	// nx and ny are the number of grid cells in each direction.
	nx, ny int
	// workers bounds the number of goroutines evaluating samples.
	workers int
}

// Samples sets the number of intervals a curve is divided into. The curve is
// evaluated at n+1 points. Panics if n is not positive.
func Samples(n int) Option {
	if n <= 0 {
		panic("plot: invalid sample count " + strconv.Itoa(n))
	}
	return samplesopt(n)
}

func (o samplesopt) option(s settings) settings {
	s.samples = int(o)
	return s
}

// Resolution sets the number of cells along x and y for grids and contours.
// Panics if either is not positive.
func Resolution(nx, ny int) Option {
	if nx <= 0 || ny <= 0 {
		panic("plot: invalid resolution " + strconv.Itoa(nx) + "x" + strconv.Itoa(ny))
	}
	return resopt{nx, ny}
}

func (o resopt) option(s settings) settings {
	s.nx, s.ny = o.nx, o.ny
	return s
}

// Workers sets the maximum number of goroutines used to evaluate samples. The
// default is GOMAXPROCS. One worker evaluates everything on the calling
// goroutine. Panics if n is not positive.
func Workers(n int) Option {
	if n <= 0 {
		panic("plot: invalid worker count " + strconv.Itoa(n))
	}
	return workersopt(n)
}

func (o workersopt) option(s settings) settings {
	s.workers = int(o)
	return s
}

// configure applies options in order over defaults.
func configure(def settings, opts []Option) settings {
	s := def
	if s.workers == 0 {
		s.workers = runtime.GOMAXPROCS(0)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		s = opt.option(s)
	}
	return s
}
