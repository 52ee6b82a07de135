// Package atlas maps sprite names to cells of a sprite sheet.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/world/layer"
	"chosenoffset.com/civ/internal/world/tilemap"
)

// Layer names used by the game.
const (
	LayerTerrain = "terrain"
	LayerIcons   = "icons"
)

// TileDefinition defines a single sprite within an atlas
type TileDefinition struct {
	Name   string `json:"name"`    // Sprite name (e.g., "forest3", "food")
	AtlasX int    `json:"atlas_x"` // X position in atlas (in cells)
	AtlasY int    `json:"atlas_y"` // Y position in atlas (in cells)
}

// AtlasConfig defines the JSON configuration for a sprite atlas
type AtlasConfig struct {
	Name       string           `json:"name"`        // Atlas name
	Layer      string           `json:"layer"`       // Layer this atlas belongs to ("terrain", "icons")
	ImagePath  string           `json:"image_path"`  // Path to the atlas image file
	TileWidth  int              `json:"tile_width"`  // Width of each cell in pixels
	TileHeight int              `json:"tile_height"` // Height of each cell in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of sprite definitions
}

// Validate checks the cell size and the sprite names.
func (c *AtlasConfig) Validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile dimensions: %dx%d", c.TileWidth, c.TileHeight)
	}
	seen := make(map[string]bool, len(c.Tiles))
	for i, t := range c.Tiles {
		if t.Name == "" {
			return fmt.Errorf("tile %d has no name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("duplicate tile name: %s", t.Name)
		}
		if t.AtlasX < 0 || t.AtlasY < 0 {
			return fmt.Errorf("tile %s has negative position (%d, %d)", t.Name, t.AtlasX, t.AtlasY)
		}
		seen[t.Name] = true
	}
	return nil
}

// ParseConfig decodes and validates an atlas config.
func ParseConfig(data []byte) (*AtlasConfig, error) {
	var config AtlasConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfig reads an atlas config from a JSON file.
func LoadConfig(configPath string) (*AtlasConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", configPath, err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", configPath, err)
	}
	return config, nil
}

// SheetColumns is the number of terrain cells per sheet row.
const SheetColumns = 8

// terrainOrigin is the first cell of each family on the terrain sheet.
var terrainOrigin = map[tilemap.Family]image.Point{
	tilemap.FamilyGrass:    {X: 0, Y: 0},
	tilemap.FamilyWater:    {X: 4, Y: 0},
	tilemap.FamilyMountain: {X: 0, Y: 1},
	tilemap.FamilyDesert:   {X: 4, Y: 1},
	tilemap.FamilyForest:   {X: 0, Y: 2},
	tilemap.FamilyMarsh:    {X: 4, Y: 2},
	tilemap.FamilyDirt:     {X: 0, Y: 3},
	tilemap.FamilyHills:    {X: 0, Y: 4},
}

// TerrainCell returns the sheet cell of a terrain kind.
func TerrainCell(k tilemap.Kind) image.Point {
	o := terrainOrigin[k.Family()]
	return image.Point{X: o.X + k.Variant() - 1, Y: o.Y}
}

// DefaultTerrainConfig describes the stock terrain sheet with cells of the
// given size.
func DefaultTerrainConfig(imagePath string, cellW, cellH int) *AtlasConfig {
	config := &AtlasConfig{
		Name:       "painted_terrain",
		Layer:      LayerTerrain,
		ImagePath:  imagePath,
		TileWidth:  cellW,
		TileHeight: cellH,
	}
	for k := tilemap.Kind(0); int(k) < tilemap.KindCount; k++ {
		cell := TerrainCell(k)
		config.Tiles = append(config.Tiles, TileDefinition{Name: k.String(), AtlasX: cell.X, AtlasY: cell.Y})
	}
	return config
}

// iconColumn is the cell of each resource icon in the icon strip.
var iconColumn = map[layer.Resource]int{
	layer.Food:       0,
	layer.Gold:       1,
	layer.Science:    2,
	layer.Production: 3,
}

// DefaultIconConfig describes the stock icon strip.
func DefaultIconConfig(imagePath string, cellW, cellH int) *AtlasConfig {
	config := &AtlasConfig{
		Name:       "resource_icons",
		Layer:      LayerIcons,
		ImagePath:  imagePath,
		TileWidth:  cellW,
		TileHeight: cellH,
	}
	for _, r := range layer.Resources {
		config.Tiles = append(config.Tiles, TileDefinition{Name: r.String(), AtlasX: iconColumn[r]})
	}
	return config
}

// Atlas represents a loaded sprite atlas
type Atlas struct {
	Config      *AtlasConfig
	Image       render.Image
	TilesByName map[string]*TileDefinition // Quick lookup by name

	sprites map[string]render.Image
}

// New builds an atlas over an already loaded sheet.
func New(config *AtlasConfig, img render.Image) *Atlas {
	tilesByName := make(map[string]*TileDefinition, len(config.Tiles))
	for i := range config.Tiles {
		tile := &config.Tiles[i]
		tilesByName[tile.Name] = tile
	}
	return &Atlas{
		Config:      config,
		Image:       img,
		TilesByName: tilesByName,
		sprites:     make(map[string]render.Image),
	}
}

// Load loads the sheet named by config through loader.
func Load(config *AtlasConfig, loader render.ResourceLoader) (*Atlas, error) {
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in atlas config %s", config.Name)
	}
	img, err := loader.LoadImage(config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas image %s: %w", config.ImagePath, err)
	}
	return New(config, img), nil
}

// GetTile returns a tile definition by name
func (a *Atlas) GetTile(name string) (*TileDefinition, bool) {
	tile, ok := a.TilesByName[name]
	return tile, ok
}

// Clip returns the source rectangle of a tile on the sheet.
func (a *Atlas) Clip(tile *TileDefinition) image.Rectangle {
	x := tile.AtlasX * a.Config.TileWidth
	y := tile.AtlasY * a.Config.TileHeight
	return image.Rect(x, y, x+a.Config.TileWidth, y+a.Config.TileHeight)
}

// Sprite returns the sub-image of the named tile. Sub-images are cached.
func (a *Atlas) Sprite(name string) (render.Image, bool) {
	if img, ok := a.sprites[name]; ok {
		return img, true
	}
	tile, ok := a.GetTile(name)
	if !ok {
		return nil, false
	}
	clip := a.Clip(tile)
	if !clip.In(a.Image.Bounds()) {
		return nil, false
	}
	img := a.Image.SubImage(clip)
	a.sprites[name] = img
	return img, true
}

// DrawTile draws the named tile with its top-left corner at (x, y).
func (a *Atlas) DrawTile(dst render.Image, name string, x, y float64) error {
	img, ok := a.Sprite(name)
	if !ok {
		return fmt.Errorf("tile not found: %s", name)
	}
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
	return nil
}
