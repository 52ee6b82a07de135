// Package camera tracks the visible viewport in world space.
package camera

import "chosenoffset.com/civ/internal/geom"

// Camera is the world-space rectangle currently on screen. W and H equal the
// viewport size.
type Camera struct {
	geom.Rect
}

// New creates a camera with the given viewport size at the world origin.
func New(viewport geom.Size) *Camera {
	return &Camera{Rect: geom.NewRect(0, 0, viewport.W, viewport.H)}
}

// Follow centres the viewport on center and clamps each axis to the world.
func (c *Camera) Follow(center geom.Point, world geom.Size) geom.Rect {
	c.X = clampAxis(center.X-c.W/2, c.W, world.W)
	c.Y = clampAxis(center.Y-c.H/2, c.H, world.H)
	return c.Rect
}

// clampAxis keeps [origin, origin+view] inside [0, world]. When the viewport is
// larger than the world the world is centred inside it instead, which yields a
// non-positive origin.
func clampAxis(origin, view, world int) int {
	if view > world {
		return (world - view) / 2
	}
	if origin < 0 {
		origin = 0
	}
	if origin > world-view {
		origin = world - view
	}
	return origin
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p geom.Point) geom.Point {
	return p.Sub(c.Min())
}

// ScreenToWorld converts a screen position to world coordinates.
func (c *Camera) ScreenToWorld(p geom.Point) geom.Point {
	return geom.Point{X: p.X + c.X, Y: p.Y + c.Y}
}

// Visible reports whether r intersects the viewport.
func (c *Camera) Visible(r geom.Rect) bool {
	return c.Overlaps(r)
}

// Resize changes the viewport size, keeping the origin.
func (c *Camera) Resize(viewport geom.Size) {
	c.W, c.H = viewport.W, viewport.H
}
