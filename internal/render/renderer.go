package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTermination is returned from Game.Update to end the loop cleanly.
var ErrTermination = errors.New("render: game terminated")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// game logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Vector operations (for placeholder shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	Translate(tx, ty float64)
	Scale(sx, sy float64)
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Key represents a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF // Fullscreen toggle
	KeyR // Regenerate
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyEvent is a single key transition.
type KeyEvent struct {
	Key    Key
	Down   bool
	Repeat bool
}

// MouseEvent is a single button transition at a cursor position.
type MouseEvent struct {
	Button MouseButton
	Down   bool
	X, Y   int
}

// InputManager delivers the input queued since the previous frame.
type InputManager interface {
	// AppendKeyEvents appends every key transition queued this frame.
	AppendKeyEvents(events []KeyEvent) []KeyEvent
	// AppendMouseEvents appends every mouse button transition queued this frame.
	AppendMouseEvents(events []MouseEvent) []MouseEvent
	GetCursorPosition() (x, y int)
	// PointerScale is the factor from cursor coordinates to screen pixels.
	PointerScale() float64
	// Focused reports whether the window has keyboard focus.
	Focused() bool
}

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTPS caps the number of Update calls per second.
	SetTPS(tps int)

	IsFullscreen() bool
	SetFullscreen(fullscreen bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
