package plot

import "math"

// Pixels per world unit.
const (
	DefaultScale = 60.0
	MinScale     = 0.1
	MaxScale     = 100000.0
)

// Vec is a point in world or screen coordinates.
type Vec struct {
	X, Y float64
}

// View maps between world coordinates and screen pixels. The world point at
// (CenterX, CenterY) is drawn at the middle of the plot area, and screen y
// grows downward.
type View struct {
	// CenterX and CenterY are the world coordinates of the middle of the view.
	CenterX, CenterY float64
	// ScaleX and ScaleY are pixels per world unit.
	ScaleX, ScaleY float64
	// Width and Height are the size of the plot area in pixels.
	Width, Height float64
	// OriginX and OriginY are the screen position of the plot area's top left
	// corner.
	OriginX, OriginY float64
}

// NewView creates a view of the given pixel size centered on the origin at
// the default scale.
func NewView(width, height float64) *View {
	return &View{
		ScaleX: DefaultScale,
		ScaleY: DefaultScale,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *View) WorldToScreen(wx, wy float64) Vec {
	return Vec{
		X: v.OriginX + v.Width*0.5 + (wx-v.CenterX)*v.ScaleX,
		Y: v.OriginY + v.Height*0.5 - (wy-v.CenterY)*v.ScaleY,
	}
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *View) ScreenToWorld(sx, sy float64) Vec {
	return Vec{
		X: (sx-v.OriginX-v.Width*0.5)/v.ScaleX + v.CenterX,
		Y: -(sy-v.OriginY-v.Height*0.5)/v.ScaleY + v.CenterY,
	}
}

// Zoom multiplies both scales by factor, within [MinScale, MaxScale].
func (v *View) Zoom(factor float64) {
	v.ZoomX(factor)
	v.ZoomY(factor)
}

func (v *View) ZoomX(factor float64) {
	v.ScaleX = clamp(v.ScaleX*factor, MinScale, MaxScale)
}

func (v *View) ZoomY(factor float64) {
	v.ScaleY = clamp(v.ScaleY*factor, MinScale, MaxScale)
}

// Pan moves the view by world units.
func (v *View) Pan(dx, dy float64) {
	v.CenterX += dx
	v.CenterY += dy
}

// PanPixels moves the view as if the plot were dragged by screen pixels.
func (v *View) PanPixels(dx, dy float64) {
	v.CenterX -= dx / v.ScaleX
	v.CenterY += dy / v.ScaleY
}

// Reset centers the view on the origin at the default scale.
func (v *View) Reset() {
	v.CenterX, v.CenterY = 0, 0
	v.ScaleX, v.ScaleY = DefaultScale, DefaultScale
}

// XRange and YRange return the visible world interval along each axis.
func (v *View) XRange() Range {
	h := v.Width * 0.5 / v.ScaleX
	return Range{v.CenterX - h, v.CenterX + h}
}

func (v *View) YRange() Range {
	h := v.Height * 0.5 / v.ScaleY
	return Range{v.CenterY - h, v.CenterY + h}
}

// GridSpacingX and GridSpacingY choose a round grid line spacing in world
// units, one of 1, 2, or 5 times a power of ten, so that lines fall roughly
// 100 pixels apart.
func (v *View) GridSpacingX() float64 {
	return nicespacing(v.ScaleX)
}

func (v *View) GridSpacingY() float64 {
	return nicespacing(v.ScaleY)
}

func nicespacing(pixelsPerUnit float64) float64 {
	target := 100 / pixelsPerUnit
	mag := math.Pow(10, math.Floor(math.Log10(target)))
	norm := target / mag
	switch {
	case norm < 1.5:
		return mag
	case norm < 3.5:
		return 2 * mag
	case norm < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}
