package formula

import (
	"errors"
	"strings"
)

// Entry is one user-entered formula. It holds the formula's text along with
// the result of parsing and classifying it. The zero value is an empty, hidden
// entry; NewEntry creates a visible one.
//
// An Entry is not safe for concurrent use, but the tree returned by AST may be
// evaluated concurrently.
type Entry struct {
	// Visible is whether the formula should be drawn.
	Visible bool
	// ZSlice is the value of z at which to draw a cross-section of a
	// ShapeScalarField3D formula.
	ZSlice float64

	text   string
	parsed bool

	ast         Node
	left, right Node
	eq          bool
	err         error
	names       []string
	shape       Shape
}

// NewEntry creates a visible entry with no formula.
func NewEntry() *Entry {
	return &Entry{Visible: true}
}

// Reparse parses and classifies new formula text. If text is the same as in
// the previous call, whether or not that parse succeeded, Reparse does nothing
// and the results, including the identity of the tree returned by AST, are
// unchanged.
//
// An empty or all-whitespace formula is ShapeInvalid with no error.
func (e *Entry) Reparse(text string) {
	if e.parsed && text == e.text {
		return
	}
	e.parsed = true
	e.text = text
	e.ast, e.left, e.right = nil, nil, nil
	e.eq = false
	e.err = nil
	e.names = nil
	e.shape = ShapeInvalid
	if err := e.classify(strings.TrimSpace(text)); err != nil {
		e.err = err
		e.ast, e.left, e.right = nil, nil, nil
		e.shape = ShapeInvalid
	}
}

func (e *Entry) classify(text string) error {
	if text == "" {
		return nil
	}
	switch strings.Count(text, "=") {
	case 0:
		return e.expression(text)
	case 1:
		e.eq = true
		return e.equation(text)
	default:
		e.eq = true
		return ErrMultipleEquals
	}
}

// expression classifies a formula with no equals sign by the highest
// dimension variable it uses.
func (e *Entry) expression(text string) error {
	a, err := Parse(text)
	if err != nil {
		return err
	}
	e.names = a.names
	if err := checknames(e.names); err != nil {
		return err
	}
	e.ast = a.root
	switch {
	case a.HasVar("z"):
		e.shape = ShapeScalarField3D
	case a.HasVar("y"):
		e.shape = ShapeSurface3D
	default:
		e.shape = ShapeCurve2D
	}
	return nil
}

// equation classifies a formula with exactly one equals sign. The evaluable
// tree is left - right, except that an equation solved for z evaluates as the
// other side alone.
func (e *Entry) equation(text string) error {
	k := strings.IndexByte(text, '=')
	ls := strings.TrimSpace(text[:k])
	rs := strings.TrimSpace(text[k+1:])
	if ls == "" || rs == "" {
		return ErrMissingSide
	}
	l, err := Parse(ls)
	if err != nil {
		return &SideError{Side: "Left", Err: err}
	}
	r, err := Parse(rs)
	if err != nil {
		return &SideError{Side: "Right", Err: err}
	}
	e.names = unionnames(l.names, r.names)
	if err := checknames(e.names); err != nil {
		return err
	}
	e.left, e.right = l.root, r.root
	x, y, z := hasname(e.names, "x"), hasname(e.names, "y"), hasname(e.names, "z")
	switch {
	case IsVariable(l.root, "z") && !r.HasVar("z"):
		e.ast = copytree(r.root)
		e.shape = ShapeSurface3D
	case IsVariable(r.root, "z") && !l.HasVar("z"):
		e.ast = copytree(l.root)
		e.shape = ShapeSurface3D
	case x && y && !z:
		e.ast = &Binary{Op: OpSubtract, Left: copytree(l.root), Right: copytree(r.root)}
		e.shape = ShapeImplicit2D
	case x && y && z:
		e.ast = &Binary{Op: OpSubtract, Left: copytree(l.root), Right: copytree(r.root)}
		e.shape = ShapeScalarField3D
	default:
		return ErrEquationVars
	}
	return nil
}

// checknames rejects variables other than x, y, and z.
func checknames(names []string) error {
	var bad []string
	for _, v := range names {
		switch v {
		case "x", "y", "z":
		default:
			bad = append(bad, v)
		}
	}
	if bad != nil {
		return &VariableError{Names: bad}
	}
	return nil
}

// unionnames merges two sorted name lists.
func unionnames(a, b []string) []string {
	r := make([]string, 0, len(a)+len(b))
	r = append(r, a...)
	for _, v := range b {
		if !hasname(a, v) {
			r = append(r, v)
		}
	}
	sortstrs(r)
	return r
}

// Text returns the text most recently passed to Reparse.
func (e *Entry) Text() string {
	return e.text
}

// AST returns the tree to evaluate to draw the formula, or nil if the formula
// is invalid.
func (e *Entry) AST() Node {
	return e.ast
}

// Left and Right return the trees of the two sides of a valid equation. They
// are nil if the formula is not an equation or is invalid.
func (e *Entry) Left() Node {
	return e.left
}

func (e *Entry) Right() Node {
	return e.right
}

// IsEquation returns whether the formula contains an equals sign.
func (e *Entry) IsEquation() bool {
	return e.eq
}

// Err returns the reason the formula is invalid, if any.
func (e *Entry) Err() error {
	return e.err
}

// Message returns the text of Err, or the empty string if there is no error.
func (e *Entry) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Vars returns the sorted names of the variables the formula uses.
func (e *Entry) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Shape returns the classification of the formula.
func (e *Entry) Shape() Shape {
	return e.shape
}

// Valid returns whether the formula parsed and classified successfully.
func (e *Entry) Valid() bool {
	return e.ast != nil && e.err == nil
}

// VariableCount returns the number of variables sampled to draw the formula.
func (e *Entry) VariableCount() int {
	return e.shape.Dims()
}

// Uses3DSurface returns whether the formula is drawn in the 3D view.
func (e *Entry) Uses3DSurface() bool {
	return e.shape == ShapeSurface3D || e.shape == ShapeScalarField3D
}

// Eval evaluates the formula's tree.
func (e *Entry) Eval(vars Vars) float64 {
	return Eval(e.ast, vars)
}

// TypeLabel returns a short description of the shape for display.
func (e *Entry) TypeLabel() string {
	switch e.shape {
	case ShapeCurve2D:
		return "y = f(x)"
	case ShapeSurface3D:
		return "z = f(x,y)"
	case ShapeImplicit2D:
		return "F(x,y) = 0"
	case ShapeScalarField3D:
		if e.eq {
			return "F(x,y,z) = 0"
		}
		return "f(x,y,z)"
	default:
		return "invalid"
	}
}

var (
	// ErrMultipleEquals is the error for a formula with more than one equals
	// sign.
	ErrMultipleEquals = errors.New("Only one '=' is supported in an equation.")
	// ErrMissingSide is the error for an equation with nothing on one side.
	ErrMissingSide = errors.New("Both sides of an equation are required.")
	// ErrEquationVars is the error for an equation whose variables do not
	// describe a drawable shape.
	ErrEquationVars = errors.New("Equations must use x and y, optionally with z, or be solved for z, as in z = f(x,y).")
)

// SideError is an error parsing one side of an equation.
type SideError struct {
	// Side is "Left" or "Right".
	Side string
	// Err is the parse error. Its position is relative to the trimmed side.
	Err error
}

func (err *SideError) Error() string {
	return err.Side + " side: " + err.Err.Error()
}

func (err *SideError) Unwrap() error {
	return err.Err
}

// VariableError is the error for a formula using variables other than x, y,
// and z.
type VariableError struct {
	// Names are the unsupported variable names, sorted.
	Names []string
}

func (err *VariableError) Error() string {
	return "Unsupported variable(s): " + strings.Join(err.Names, ", ") + ". Use x, y, and z only."
}
