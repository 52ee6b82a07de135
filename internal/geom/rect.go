// Package geom holds the integer pixel geometry shared by the world, the camera
// and collision resolution.
package geom

import "fmt"

// Point is a position in pixels.
type Point struct {
	X, Y int
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned bounding box. X and Y are the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle and panics on a non-positive size.
func NewRect(x, y, w, h int) Rect {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("geom: degenerate rect %dx%d", w, h))
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Center returns the centre point, rounding toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Bottom() > o.Top() &&
		r.Top() < o.Bottom() &&
		r.Right() > o.Left() &&
		r.Left() < o.Right()
}

// ContainsInclusive reports whether p lies in [X, X+W] x [Y, Y+H], edges included.
func (r Rect) ContainsInclusive(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Contains reports whether p lies in the half-open rectangle [X, X+W) x [Y, Y+H).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Within reports whether r lies entirely inside bounds.
func (r Rect) Within(bounds Rect) bool {
	return r.X >= bounds.X && r.Y >= bounds.Y &&
		r.Right() <= bounds.Right() && r.Bottom() <= bounds.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("{x:%d y:%d w:%d h:%d}", r.X, r.Y, r.W, r.H)
}
