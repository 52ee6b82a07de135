package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/placeholders"
	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/world/atlas"
	"chosenoffset.com/civ/internal/world/layer"
)

var (
	backgroundColor = color.White
	actorColor      = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	textColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawTerrain(screen)
	g.drawLayers(screen)
	g.drawActor(screen)

	g.Button.Draw(screen, g.Renderer)
	g.drawHUD(screen)
	g.drawUI(screen)

	g.FPS.Frame()
}

// spriteBox returns the world rectangle a terrain sprite covers. Sprites are
// taller than the tile pitch and are anchored to the tile's bottom edge.
func (g *Game) spriteBox(tile geom.Rect) geom.Rect {
	h := tile.H
	if a := g.cfg.Assets; a.SpriteWidth > 0 && a.SpriteHeight > 0 {
		h = a.SpriteHeight * tile.W / a.SpriteWidth
	}
	return geom.Rect{X: tile.X, Y: tile.Bottom() - h, W: tile.W, H: h}
}

// drawTerrain draws tiles in row-major order so lower rows overlap the ones
// above them.
func (g *Game) drawTerrain(screen render.Image) {
	for i := 0; i < g.World.Len(); i++ {
		tile := g.World.BoundingBox(i)
		box := g.spriteBox(tile)
		if !g.Camera.Visible(box) {
			continue
		}
		kind := g.World.Kind(i)
		if sprite, ok := g.Atlases.Sprite(atlas.LayerTerrain, kind.String()); ok {
			g.drawSprite(screen, sprite, box)
			continue
		}
		p := g.Camera.WorldToScreen(tile.Min())
		g.Renderer.FillRect(screen, float32(p.X), float32(p.Y), float32(tile.W), float32(tile.H), placeholders.KindColor(kind))
	}
}

// drawLayers draws every tile's overlays in ascending z order.
func (g *Game) drawLayers(screen render.Image) {
	a := g.cfg.Assets
	for i := 0; i < g.World.Len(); i++ {
		tile := g.World.BoundingBox(i)
		if !g.Camera.Visible(tile) {
			continue
		}
		for _, l := range g.World.Tile(i).Layers.DrawOrder() {
			if l.Sprite == "" {
				continue
			}
			box := geom.Rect{X: tile.X + l.Offset.X, Y: tile.Y + l.Offset.Y, W: a.IconWidth, H: a.IconHeight}
			if sprite, ok := g.Atlases.Sprite(atlas.LayerIcons, l.Sprite); ok {
				g.drawSprite(screen, sprite, box)
				continue
			}
			p := g.Camera.WorldToScreen(box.Min())
			g.Renderer.FillRect(screen, float32(p.X), float32(p.Y), float32(box.W), float32(box.H), iconColor(l.Sprite))
		}
	}
}

func iconColor(name string) color.RGBA {
	for _, r := range layer.Resources {
		if r.String() == name {
			return placeholders.ResourceColors[r]
		}
	}
	return color.RGBA{A: 255}
}

// drawSprite draws sprite scaled to cover the world rectangle box.
func (g *Game) drawSprite(screen, sprite render.Image, box geom.Rect) {
	sw, sh := sprite.Size()
	p := g.Camera.WorldToScreen(box.Min())

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	if sw != box.W || sh != box.H {
		opts.GeoM.Scale(float64(box.W)/float64(sw), float64(box.H)/float64(sh))
	}
	opts.GeoM.Translate(float64(p.X), float64(p.Y))
	screen.DrawImage(sprite, opts)
}

func (g *Game) drawActor(screen render.Image) {
	box := g.Actor.Box
	p := g.Camera.WorldToScreen(box.Min())
	g.Renderer.FillRect(screen, float32(p.X), float32(p.Y), float32(box.W), float32(box.H), actorColor)
}

// drawHUD shows the frame rate and the tile under the actor.
func (g *Game) drawHUD(screen render.Image) {
	if g.cfg.Window.ShowFPS {
		line := fmt.Sprintf("Average Frames Per Second (With Cap) %.1f", g.FPS.Average())
		tw, th := g.Renderer.MeasureText(line, 1)
		g.Renderer.DrawText(screen, line, (g.ScreenWidth-tw)/2, (g.ScreenHeight-th)/2, textColor, 1)
	}

	i, ok := g.TileUnderActor()
	if !ok {
		return
	}
	row, col := g.World.RowCol(i)
	t := g.World.Tile(i).Layers.Totals()
	line := fmt.Sprintf("%s (%d, %d)  food %.0f  production %.0f  gold %.0f  science %.0f",
		g.World.Kind(i), row, col, t.Food, t.Production, t.Gold, t.Science)
	_, th := g.Renderer.MeasureText(line, 1)
	g.Renderer.DrawText(screen, line, 16, g.ScreenHeight-th-16, textColor, 1)
}

// drawUI draws on-screen messages below the button.
func (g *Game) drawUI(screen render.Image) {
	y := g.Button.Rect.Bottom() + 12
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, y, color.NRGBA{R: 20, G: 20, B: 20, A: alpha}, 1.0)
		y += 20
	}
}
