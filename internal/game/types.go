package game

import (
	"context"
	"math/rand"

	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/timer"
	"chosenoffset.com/civ/internal/world/atlas"
)

// Options are the collaborators a Game is built from.
type Options struct {
	Config   *config.Config
	Renderer render.Renderer
	InputMgr render.InputManager

	// Engine is used for the fullscreen toggle; it may be nil.
	Engine render.Engine

	// Atlases holds the terrain and icon sheets. Missing sprites are drawn
	// as placeholder rectangles.
	Atlases *atlas.Manager

	// Rand drives map generation.
	Rand *rand.Rand

	// Timer backs the FPS counter; a wall clock timer is used when nil.
	Timer *timer.Timer
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// ctxOrBackground returns ctx, or a background context when ctx is nil.
func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
