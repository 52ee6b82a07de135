package placeholders

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"

	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/logger"
	"chosenoffset.com/civ/internal/world/atlas"
	"chosenoffset.com/civ/internal/world/layer"
	"chosenoffset.com/civ/internal/world/maploader"
	"chosenoffset.com/civ/internal/world/tilemap"
)

// terrainRows is the number of cell rows on the stock terrain sheet.
const terrainRows = 5

// GenerateTerrainSheet draws every kind at its stock sheet cell.
func GenerateTerrainSheet(cellW, cellH int) *image.RGBA {
	cells := make(map[image.Point]*image.RGBA, tilemap.KindCount)
	for k := tilemap.Kind(0); int(k) < tilemap.KindCount; k++ {
		cells[atlas.TerrainCell(k)] = CreateTerrainSprite(k, cellW, cellH)
	}
	return CreateSheet(cells, atlas.SheetColumns, terrainRows, cellW, cellH)
}

// GenerateIconSheet draws the resource icons in a single strip laid out as
// DefaultIconConfig describes.
func GenerateIconSheet(cellW, cellH int) *image.RGBA {
	cfg := atlas.DefaultIconConfig("", cellW, cellH)
	cells := make(map[image.Point]*image.RGBA, len(cfg.Tiles))
	columns := 0
	for _, t := range cfg.Tiles {
		r := resourceByName(t.Name)
		c := ResourceColors[r]
		cells[image.Point{X: t.AtlasX, Y: t.AtlasY}] = CreateCircle(c, Darken(c, 0.5), cellW, cellH)
		columns = max(columns, t.AtlasX+1)
	}
	return CreateSheet(cells, columns, 1, cellW, cellH)
}

func resourceByName(name string) layer.Resource {
	for _, r := range layer.Resources {
		if r.String() == name {
			return r
		}
	}
	return layer.Food
}

// GenerateAndSave writes the terrain and icon sheets, their atlas files and a
// sample map into the data directory named by cfg.
func GenerateAndSave(cfg *config.Config, seed int64) error {
	log := logger.Get()
	a := cfg.Assets

	if err := os.MkdirAll(filepath.Join(a.DataDir, "maps"), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	terrainPath := a.Path(a.TerrainSheet)
	if err := SavePNG(GenerateTerrainSheet(a.SpriteWidth, a.SpriteHeight), terrainPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", terrainPath, err)
	}
	log.Infof("Generated %s (%dx%d cells @ %dx%d)", terrainPath, atlas.SheetColumns, terrainRows, a.SpriteWidth, a.SpriteHeight)

	iconPath := a.Path(a.IconSheet)
	if err := SavePNG(GenerateIconSheet(a.IconWidth, a.IconHeight), iconPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", iconPath, err)
	}
	log.Infof("Generated %s", iconPath)

	if a.TerrainAtlas != "" {
		path := a.Path(a.TerrainAtlas)
		if err := SaveJSON(atlas.DefaultTerrainConfig(terrainPath, a.SpriteWidth, a.SpriteHeight), path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		log.Infof("Generated %s", path)
	}
	if a.IconAtlas != "" {
		path := a.Path(a.IconAtlas)
		if err := SaveJSON(atlas.DefaultIconConfig(iconPath, a.IconWidth, a.IconHeight), path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		log.Infof("Generated %s", path)
	}

	m, err := tilemap.New(cfg.Map)
	if err != nil {
		return err
	}
	m.Regenerate(rand.New(rand.NewSource(seed)), nil)

	mapPath := filepath.Join(a.DataDir, "maps", "sample.map")
	f, err := os.Create(mapPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", mapPath, err)
	}
	defer f.Close()
	if err := maploader.Encode(f, m); err != nil {
		return fmt.Errorf("failed to write %s: %w", mapPath, err)
	}
	log.Infof("Generated %s (%dx%d, seed %d)", mapPath, m.Rows(), m.Cols(), seed)

	return nil
}
