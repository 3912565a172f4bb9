package holga

import (
	"fmt"
	"math"
)

// Point is a 2D position or size. Value type: every operation returns a new
// Point and leaves the receiver untouched.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Translate returns p offset by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Add returns p offset componentwise by q.
func (p Point) Add(q Point) Point {
	return p.Translate(q.X, q.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Floor rounds both components down.
func (p Point) Floor() Point {
	return Point{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle described by two corners rather than a
// corner and a size. (X1, Y1) is the first (top-left) corner, (X2, Y2) the
// second. A Rect is expected to satisfy X2 >= X1 and Y2 >= Y1; see Valid.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// R is shorthand for Rect{x1, y1, x2, y2}.
func R(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns X2 - X1.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Area returns Width * Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Size returns the dimensions as a Point.
func (r Rect) Size() Point { return Point{X: r.Width(), Y: r.Height()} }

// Min returns the first corner.
func (r Rect) Min() Point { return Point{X: r.X1, Y: r.Y1} }

// Max returns the second corner.
func (r Rect) Max() Point { return Point{X: r.X2, Y: r.Y2} }

// Valid reports whether the second corner is not above or left of the first.
func (r Rect) Valid() bool {
	return r.X2 >= r.X1 && r.Y2 >= r.Y1
}

// Translate shifts both corners by (dx, dy). Width and height are preserved.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// TranslateBy shifts both corners by p.
func (r Rect) TranslateBy(p Point) Rect {
	return r.Translate(p.X, p.Y)
}

// Scale multiplies only the second corner by s; the first corner stays put.
// The camera derives zoomed viewport footprints from the max viewport with
// this exact asymmetry, so it must not become a centred scale.
func (r Rect) Scale(s float64) Rect {
	return Rect{X1: r.X1, Y1: r.Y1, X2: r.X2 * s, Y2: r.Y2 * s}
}

// Constrict insets the rect by (dx, dy) on every side. Negative values grow it.
func (r Rect) Constrict(dx, dy float64) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 - dx, Y2: r.Y2 - dy}
}

// Snap aligns r to whole cells: the first corner is floored and the size is
// rounded up, so an integer-sized rect keeps its exact dimensions.
func (r Rect) Snap() Rect {
	x1 := math.Floor(r.X1)
	y1 := math.Floor(r.Y1)
	return Rect{
		X1: x1,
		Y1: y1,
		X2: x1 + math.Ceil(r.Width()),
		Y2: y1 + math.Ceil(r.Height()),
	}
}

// Contains reports whether p lies in [X1, X2) x [Y1, Y2).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.Y >= r.Y1 && p.X < r.X2 && p.Y < r.Y2
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", r.X1, r.Y1, r.X2, r.Y2)
}
