// Package formula implements a double-precision calculator language for
// plotting.
//
// A formula is a single expression like "sin(x^2+y^2)" or an equation like
// "x^2+y^2=1". Parse turns an expression into a tree once, and Eval samples it
// as many times as needed with different values for its variables. Evaluation
// never fails: anything undefined, like "1/0" or "sqrt(-1)" or a variable with
// no value, is NaN, so that a plotter can simply skip those samples.
//
// The usual operators + - * / ^ and parentheses are available, with ^ binding
// tightest and grouping to the right, so "2^3^2" is "2^(3^2)". A leading sign
// applies only to the operand right after it, so "-x^2" is "(-x)^2". The
// constants pi, e, and tau and a fixed set of functions (see Funcs) are built
// in. A function called with more arguments than it takes uses the first one:
// "sin(x, y)" is "sin(x)".
//
// Entry classifies formula text into the Shape that a plotter should draw,
// allowing only the variables x, y, and z.
package formula
