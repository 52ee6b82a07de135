// Package rendertest provides in-memory implementations of the render
// interfaces that record what was drawn.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/civ/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM { return NewGeoM() }
}

// Draw is one DrawImage call.
type Draw struct {
	Src  *Image
	X, Y float64
}

// Image records the draws made onto it.
type Image struct {
	Rect   image.Rectangle
	Parent *Image
	Draws  []Draw
	Filled color.Color
}

// NewImage creates a w x h image at the origin.
func NewImage(w, h int) *Image {
	return &Image{Rect: image.Rect(0, 0, w, h)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (int, int) { return i.Rect.Dx(), i.Rect.Dy() }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect), Parent: i}
}

func (i *Image) Fill(clr color.Color) { i.Filled = clr }

func (i *Image) Clear() {
	i.Draws = nil
	i.Filled = nil
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	d := Draw{Src: src.(*Image)}
	if opts != nil && opts.GeoM != nil {
		g := opts.GeoM.(*GeoM)
		d.X, d.Y = g.TX, g.TY
	}
	i.Draws = append(i.Draws, d)
}

func (i *Image) Dispose() {}

// GeoM keeps a scale and a translation, applied scale first.
type GeoM struct {
	SX, SY float64
	TX, TY float64
}

// NewGeoM returns the identity transform.
func NewGeoM() *GeoM { return &GeoM{SX: 1, SY: 1} }

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() { *g = GeoM{SX: 1, SY: 1} }

// Rect is one FillRect or StrokeRect call.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
	Stroke     bool
}

// Text is one DrawText call.
type Text struct {
	Str   string
	X, Y  int
	Color color.Color
}

// Renderer records primitive draws.
type Renderer struct {
	Rects []Rect
	Texts []Text
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, w, h, _ float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr, Stroke: true})
}

func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, _ float64) {
	r.Texts = append(r.Texts, Text{Str: str, X: x, Y: y, Color: clr})
}

// MeasureText assumes 8x16 pixel glyphs at scale 1.
func (r *Renderer) MeasureText(str string, scale float64) (int, int) {
	return int(float64(len(str)*8) * scale), int(16 * scale)
}

// Reset forgets every recorded call.
func (r *Renderer) Reset() {
	r.Rects = nil
	r.Texts = nil
}

// Input replays queued events once.
type Input struct {
	Keys   []render.KeyEvent
	Mouse  []render.MouseEvent
	Cursor image.Point
	Scale  float64

	// Unfocused simulates the window losing focus.
	Unfocused bool
}

func (in *Input) AppendKeyEvents(events []render.KeyEvent) []render.KeyEvent {
	events = append(events, in.Keys...)
	in.Keys = nil
	return events
}

func (in *Input) AppendMouseEvents(events []render.MouseEvent) []render.MouseEvent {
	events = append(events, in.Mouse...)
	in.Mouse = nil
	return events
}

func (in *Input) GetCursorPosition() (int, int) { return in.Cursor.X, in.Cursor.Y }

func (in *Input) PointerScale() float64 {
	if in.Scale == 0 {
		return 1
	}
	return in.Scale
}

func (in *Input) Focused() bool { return !in.Unfocused }

// Press queues a key-down event.
func (in *Input) Press(k render.Key) { in.Keys = append(in.Keys, render.KeyEvent{Key: k, Down: true}) }

// Release queues a key-up event.
func (in *Input) Release(k render.Key) { in.Keys = append(in.Keys, render.KeyEvent{Key: k}) }

// Click queues a left button press at (x, y).
func (in *Input) Click(x, y int) {
	in.Mouse = append(in.Mouse, render.MouseEvent{Button: render.MouseButtonLeft, Down: true, X: x, Y: y})
}

// Loader serves images from a map keyed by path.
type Loader struct {
	Images map[string]*Image
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: file does not exist", path)
	}
	return img, nil
}

// Engine records window state.
type Engine struct {
	Width, Height int
	Title         string
	Resizable     bool
	TPS           int
	Fullscreen    bool
	Ran           render.Game
}

func (e *Engine) SetWindowSize(w, h int)            { e.Width, e.Height = w, h }
func (e *Engine) SetWindowTitle(title string)       { e.Title = title }
func (e *Engine) SetWindowResizable(resizable bool) { e.Resizable = resizable }
func (e *Engine) SetTPS(tps int)                    { e.TPS = tps }
func (e *Engine) IsFullscreen() bool                { return e.Fullscreen }
func (e *Engine) SetFullscreen(on bool)             { e.Fullscreen = on }

func (e *Engine) RunGame(g render.Game) error {
	e.Ran = g
	return nil
}
