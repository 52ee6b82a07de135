// Package placeholders draws stand-in terrain and icon sheets so the game
// can run without painted art.
package placeholders

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"chosenoffset.com/civ/internal/world/layer"
	"chosenoffset.com/civ/internal/world/tilemap"
)

// FamilyColors is the base color of each terrain family.
var FamilyColors = map[tilemap.Family]color.RGBA{
	tilemap.FamilyGrass:    {110, 170, 70, 255},
	tilemap.FamilyWater:    {50, 110, 190, 255},
	tilemap.FamilyMountain: {130, 125, 120, 255},
	tilemap.FamilyDesert:   {220, 195, 120, 255},
	tilemap.FamilyForest:   {40, 110, 50, 255},
	tilemap.FamilyMarsh:    {90, 120, 90, 255},
	tilemap.FamilyDirt:     {140, 100, 60, 255},
	tilemap.FamilyHills:    {150, 150, 80, 255},
}

// ResourceColors is the icon color of each resource.
var ResourceColors = map[layer.Resource]color.RGBA{
	layer.Food:       {240, 200, 40, 255},
	layer.Production: {200, 90, 40, 255},
	layer.Gold:       {255, 215, 0, 255},
	layer.Science:    {70, 160, 230, 255},
}

// KindColor returns the fill color of a kind. Later variants are darker.
func KindColor(k tilemap.Kind) color.RGBA {
	return Darken(FamilyColors[k.Family()], 1-0.08*float64(k.Variant()-1))
}

// CreateSolidTile creates a simple solid-colored w x h tile
func CreateSolidTile(col color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// drawBorder outlines r inside img.
func drawBorder(img *image.RGBA, r image.Rectangle, col color.RGBA, width int) {
	for i := 0; i < width; i++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, r.Min.Y+i, col)
			img.Set(x, r.Max.Y-1-i, col)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.Set(r.Min.X+i, y, col)
			img.Set(r.Max.X-1-i, y, col)
		}
	}
}

// drawPeak fills a triangle with its base on baseY spanning [x0, x1].
func drawPeak(img *image.RGBA, x0, x1, baseY, height int, col color.RGBA) {
	mid := (x0 + x1) / 2
	half := (x1 - x0) / 2
	for dy := 0; dy < height; dy++ {
		span := half * (height - dy) / height
		for x := mid - span; x <= mid+span; x++ {
			img.Set(x, baseY-dy, col)
		}
	}
}

// CreateTerrainSprite draws a sprite for k. The ground fills the bottom
// w x w square; mountains, hills and forests rise into the transparent space
// above it the way painted sprites do.
func CreateTerrainSprite(k tilemap.Kind, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ground := image.Rect(0, h-w, w, h)
	if ground.Min.Y < 0 {
		ground.Min.Y = 0
	}

	base := KindColor(k)
	draw.Draw(img, ground, &image.Uniform{base}, image.Point{}, draw.Src)
	drawBorder(img, ground, Darken(base, 0.6), 2)

	rise := ground.Min.Y + w/2
	switch k.Family() {
	case tilemap.FamilyMountain:
		drawPeak(img, w/8, w*7/8, rise, w*3/4, Lighten(base, 0.2))
	case tilemap.FamilyHills:
		drawPeak(img, 0, w/2, rise, w/4, Lighten(base, 0.15))
		drawPeak(img, w/2, w, rise, w/3, Lighten(base, 0.15))
	case tilemap.FamilyForest:
		for i := 0; i < 3; i++ {
			x0 := i * w / 3
			drawPeak(img, x0+w/24, x0+w/3-w/24, rise, w/2, Darken(base, 0.8))
		}
	case tilemap.FamilyWater, tilemap.FamilyMarsh:
		// Ripples
		for y := ground.Min.Y + w/6; y < ground.Max.Y; y += w / 6 {
			for x := w / 8; x < w*7/8; x++ {
				img.Set(x, y, Lighten(base, 0.3))
			}
		}
	}
	return img
}

// CreateCircle creates a circular w x h icon
func CreateCircle(fillColor, outlineColor color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	cx, cy := w/2, h/2
	radius := min(w, h)/2 - 1

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// CreateSheet copies cells into a sheet at the given cell positions.
func CreateSheet(cells map[image.Point]*image.RGBA, columns, rows, cellW, cellH int) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, columns*cellW, rows*cellH))
	for pos, cell := range cells {
		if cell == nil {
			continue
		}
		x := pos.X * cellW
		y := pos.Y * cellH
		draw.Draw(sheet, image.Rect(x, y, x+cellW, y+cellH), cell, image.Point{}, draw.Src)
	}
	return sheet
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// SaveJSON writes v as indented JSON.
func SaveJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
