package ebiten

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"chosenoffset.com/civ/internal/render"
)

// baseFontSize is the text size at scale 1.0.
const baseFontSize = 20

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct {
	fontSource *text.GoTextFaceSource
}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based renderer with the embedded Go Regular font.
func NewRenderer() (render.Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &EbitenRenderer{fontSource: src}, nil
}

// NewImage creates a new image with the given dimensions.
func (r *EbitenRenderer) NewImage(width, height int) render.Image {
	return &EbitenImage{img: ebiten.NewImage(width, height)}
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(dst.(*EbitenImage).img, x, y, width, height, clr, false)
}

// StrokeRect draws a rectangle outline on the destination image.
func (r *EbitenRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(dst.(*EbitenImage).img, x, y, width, height, strokeWidth, clr, false)
}

func (r *EbitenRenderer) face(scale float64) *text.GoTextFace {
	return &text.GoTextFace{Source: r.fontSource, Size: baseFontSize * scale}
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst.(*EbitenImage).img, str, r.face(scale), op)
}

// MeasureText measures the width and height of text with the given scale.
func (r *EbitenRenderer) MeasureText(str string, scale float64) (width, height int) {
	w, h := text.Measure(str, r.face(scale), 0)
	return int(w), int(h)
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// SubImage returns a sub-image of the image.
func (i *EbitenImage) SubImage(r image.Rectangle) render.Image {
	return &EbitenImage{img: i.img.SubImage(r).(*ebiten.Image)}
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Clear clears the image to transparent.
func (i *EbitenImage) Clear() {
	i.img.Clear()
}

// Dispose releases the image resources.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Dispose()
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.GeoM != nil {
		ebitenOpts.GeoM = opts.GeoM.(*EbitenGeoM).geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// WrapEbitenImage wraps an existing ebiten.Image as a render.Image.
func WrapEbitenImage(img *ebiten.Image) render.Image {
	return &EbitenImage{img: img}
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	keys []ebiten.Key
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// AppendKeyEvents appends the keys pressed and released since the last tick.
// Ebiten reports edge transitions only, so every event is a non-repeat.
func (m *EbitenInputManager) AppendKeyEvents(events []render.KeyEvent) []render.KeyEvent {
	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := ebitenKeyToKey(k); key != render.KeyUnknown {
			events = append(events, render.KeyEvent{Key: key, Down: true})
		}
	}

	m.keys = inpututil.AppendJustReleasedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := ebitenKeyToKey(k); key != render.KeyUnknown {
			events = append(events, render.KeyEvent{Key: key, Down: false})
		}
	}
	return events
}

// AppendMouseEvents appends the mouse button transitions of this tick.
func (m *EbitenInputManager) AppendMouseEvents(events []render.MouseEvent) []render.MouseEvent {
	x, y := ebiten.CursorPosition()
	for _, b := range []render.MouseButton{render.MouseButtonLeft, render.MouseButtonRight, render.MouseButtonMiddle} {
		eb := mouseButtonToEbiten(b)
		if inpututil.IsMouseButtonJustPressed(eb) {
			events = append(events, render.MouseEvent{Button: b, Down: true, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			events = append(events, render.MouseEvent{Button: b, Down: false, X: x, Y: y})
		}
	}
	return events
}

// GetCursorPosition returns the current cursor position.
func (m *EbitenInputManager) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

// PointerScale is 1 because Ebiten already reports the cursor in the logical
// screen space returned by Layout.
func (m *EbitenInputManager) PointerScale() float64 {
	return 1
}

// Focused reports whether the window has keyboard focus.
func (m *EbitenInputManager) Focused() bool {
	return ebiten.IsFocused()
}

// ebitenKeyToKey converts an ebiten.Key to a render.Key.
func ebitenKeyToKey(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyArrowUp:
		return render.KeyUp
	case ebiten.KeyArrowDown:
		return render.KeyDown
	case ebiten.KeyArrowLeft:
		return render.KeyLeft
	case ebiten.KeyArrowRight:
		return render.KeyRight
	case ebiten.KeyF:
		return render.KeyF
	case ebiten.KeyR:
		return render.KeyR
	case ebiten.KeySpace:
		return render.KeySpace
	case ebiten.KeyEscape:
		return render.KeyEscape
	default:
		return render.KeyUnknown
	}
}

// mouseButtonToEbiten converts a render.MouseButton to an ebiten.MouseButton.
func mouseButtonToEbiten(button render.MouseButton) ebiten.MouseButton {
	switch button {
	case render.MouseButtonLeft:
		return ebiten.MouseButtonLeft
	case render.MouseButtonRight:
		return ebiten.MouseButtonRight
	case render.MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}

// EbitenResourceLoader implements the ResourceLoader interface using Ebiten.
type EbitenResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &EbitenResourceLoader{}
}

// LoadImage loads an image from the specified file path.
func (l *EbitenResourceLoader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &EbitenImage{img: img}, nil
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTPS caps the tick rate.
func (e *EbitenEngine) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

// IsFullscreen reports whether the window is fullscreen.
func (e *EbitenEngine) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

// SetFullscreen switches fullscreen mode.
func (e *EbitenEngine) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	err := ebiten.RunGame(&gameAdapter{game: game})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, render.ErrTermination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
