// Package actor implements the player-controlled dot.
package actor

import (
	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/physics"
	"chosenoffset.com/civ/internal/render"
)

const (
	// DefaultSize is the side length of the dot in pixels.
	DefaultSize = 20
	// DefaultStep is the velocity added per held direction key.
	DefaultStep = 10
)

// Actor is a box moved by direction keys and stopped by walls.
type Actor struct {
	Box  geom.Rect
	VelX int
	VelY int
	Step int

	// Last resolution result, for HUD feedback.
	Blocked physics.Result
}

// New creates an actor of the given size at (x, y).
func New(x, y, size, step int) *Actor {
	return &Actor{
		Box:  geom.NewRect(x, y, size, size),
		Step: step,
	}
}

// HandleKey applies a key transition to the velocity. A press adds the step
// in the key's direction and the matching release subtracts it again, so
// holding opposite keys nets to zero. Repeats are ignored.
func (a *Actor) HandleKey(ev render.KeyEvent) bool {
	if ev.Repeat {
		return false
	}

	step := a.Step
	if !ev.Down {
		step = -step
	}

	switch ev.Key {
	case render.KeyUp:
		a.VelY -= step
	case render.KeyDown:
		a.VelY += step
	case render.KeyLeft:
		a.VelX -= step
	case render.KeyRight:
		a.VelX += step
	default:
		return false
	}
	return true
}

// Move resolves one frame of velocity against the grid.
func (a *Actor) Move(g physics.Grid, level geom.Size) physics.Result {
	a.Box, a.Blocked = physics.Resolve(a.Box, a.VelX, a.VelY, level, g)
	return a.Blocked
}

// Center returns the centre of the actor's box.
func (a *Actor) Center() geom.Point {
	return a.Box.Center()
}

// Stop zeroes the velocity, for when key state is lost such as on focus change.
func (a *Actor) Stop() {
	a.VelX, a.VelY = 0, 0
}

// PlaceAt moves the box so its top-left corner is at p without collision checks.
func (a *Actor) PlaceAt(p geom.Point) {
	a.Box.X, a.Box.Y = p.X, p.Y
}
