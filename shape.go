package formula

import "strconv"

// Shape is the way a formula is drawn, decided by the variables it uses and
// whether it is an equation.
type Shape int8

const (
	// ShapeInvalid is a formula that cannot be drawn.
	ShapeInvalid Shape = iota
	// ShapeCurve2D is y = f(x), including constant expressions.
	ShapeCurve2D
	// ShapeSurface3D is z = f(x,y).
	ShapeSurface3D
	// ShapeImplicit2D is the zero set of F(x,y).
	ShapeImplicit2D
	// ShapeScalarField3D is f(x,y,z), or the zero set of F(x,y,z) when it
	// comes from an equation.
	ShapeScalarField3D
)

func (s Shape) String() string {
	switch s {
	case ShapeInvalid:
		return "Invalid"
	case ShapeCurve2D:
		return "Curve2D"
	case ShapeSurface3D:
		return "Surface3D"
	case ShapeImplicit2D:
		return "Implicit2D"
	case ShapeScalarField3D:
		return "ScalarField3D"
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Dims returns the number of input variables sampled to draw the shape, or 0
// for ShapeInvalid.
func (s Shape) Dims() int {
	switch s {
	case ShapeCurve2D:
		return 1
	case ShapeSurface3D, ShapeImplicit2D:
		return 2
	case ShapeScalarField3D:
		return 3
	default:
		return 0
	}
}
