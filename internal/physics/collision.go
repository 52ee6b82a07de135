// Package physics resolves actor movement against the wall tiles of a grid.
package physics

import "chosenoffset.com/civ/internal/geom"

// Grid is the view of a tile map that collision needs.
type Grid interface {
	Len() int
	IsWall(i int) bool
	BoundingBox(i int) geom.Rect
}

// TouchesWall reports whether box overlaps any wall tile. The scan is linear in
// the number of tiles and stops at the first hit.
func TouchesWall(box geom.Rect, g Grid) bool {
	for i := 0; i < g.Len(); i++ {
		if g.IsWall(i) && box.Overlaps(g.BoundingBox(i)) {
			return true
		}
	}
	return false
}

// Result reports which axes were rejected during Resolve.
type Result struct {
	BlockedX bool
	BlockedY bool
}

// Resolve moves box by (vx, vy) one axis at a time. A step that leaves
// [0, level] or overlaps a wall is undone; the other axis is unaffected.
func Resolve(box geom.Rect, vx, vy int, level geom.Size, g Grid) (geom.Rect, Result) {
	var res Result

	box.X += vx
	if box.X < 0 || box.Right() > level.W || TouchesWall(box, g) {
		box.X -= vx
		res.BlockedX = vx != 0
	}

	box.Y += vy
	if box.Y < 0 || box.Bottom() > level.H || TouchesWall(box, g) {
		box.Y -= vy
		res.BlockedY = vy != 0
	}

	return box, res
}
