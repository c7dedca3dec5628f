package focus

// Rect is an element's on-screen box. The unit is whatever the Geometry
// provider uses: terminal cells in the ui package, pixels in most tests.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Point is a position in the same unit as Rect.
type Point struct {
	X float64
	Y float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Right returns the exclusive right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Empty reports whether the rectangle has no area. Empty boxes belong to
// elements that are collapsed or hidden and are never navigation targets.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Geometry resolves the current box of an element. ok is false when the
// element is not mounted or not visible.
type Geometry interface {
	Bounds(el Element) (Rect, bool)
}

// GeometryFunc adapts a plain function to the Geometry interface.
type GeometryFunc func(Element) (Rect, bool)

// Bounds implements Geometry.
func (f GeometryFunc) Bounds(el Element) (Rect, bool) {
	if f == nil {
		return Rect{}, false
	}
	return f(el)
}

// StaticGeometry maps element ids to fixed boxes.
type StaticGeometry map[string]Rect

// Bounds implements Geometry.
func (g StaticGeometry) Bounds(el Element) (Rect, bool) {
	r, ok := g[el.ID]
	return r, ok
}

// GridGeometry derives boxes from the Row/Col hints of each element, for
// screens that declare a uniform grid instead of measuring it.
type GridGeometry struct {
	CellWidth  float64
	CellHeight float64
}

// Bounds implements Geometry.
func (g GridGeometry) Bounds(el Element) (Rect, bool) {
	if el.Row < 0 || el.Col < 0 {
		return Rect{}, false
	}
	return Rect{
		Left:   float64(el.Col) * g.CellWidth,
		Top:    float64(el.Row) * g.CellHeight,
		Width:  g.CellWidth,
		Height: g.CellHeight,
	}, true
}
