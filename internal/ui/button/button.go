// Package button implements the clickable regenerate button.
package button

import (
	"image/color"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/render"
)

var (
	fillColor   = color.RGBA{R: 40, G: 40, B: 60, A: 220}
	borderColor = color.RGBA{R: 200, G: 200, B: 220, A: 255}
	textColor   = color.White
)

// Button is a labelled screen rectangle.
type Button struct {
	Rect  geom.Rect
	Label string
}

// New creates a button covering r.
func New(r geom.Rect, label string) *Button {
	return &Button{Rect: r, Label: label}
}

// HitTest reports whether the pointer at (px, py), multiplied by scale to get
// screen pixels, lies on the button. Edges count as inside.
func (b *Button) HitTest(px, py int, scale float64) bool {
	p := geom.Point{X: int(float64(px) * scale), Y: int(float64(py) * scale)}
	return b.Rect.ContainsInclusive(p)
}

// Pressed reports whether ev is a left button press on the button.
func (b *Button) Pressed(ev render.MouseEvent, scale float64) bool {
	return ev.Down && ev.Button == render.MouseButtonLeft && b.HitTest(ev.X, ev.Y, scale)
}

// Draw draws the button in screen space.
func (b *Button) Draw(screen render.Image, r render.Renderer) {
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.W), float32(b.Rect.H)
	r.FillRect(screen, x, y, w, h, fillColor)
	r.StrokeRect(screen, x, y, w, h, 2, borderColor)

	if b.Label == "" {
		return
	}
	tw, th := r.MeasureText(b.Label, 1)
	r.DrawText(screen, b.Label, b.Rect.X+(b.Rect.W-tw)/2, b.Rect.Y+(b.Rect.H-th)/2, textColor, 1)
}
