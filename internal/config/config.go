// Package config provides the tunable settings for the world, the window and
// the assets. Settings are loaded from a JSON file over built-in defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/world/layer"
	"chosenoffset.com/civ/internal/world/tilemap"
)

// Config holds every setting of a session.
type Config struct {
	// Window
	Window WindowConfig `json:"window"`

	// Grid shape and wall classification
	Map tilemap.Config `json:"map"`

	// Sprite sheets and the atlas describing them
	Assets AssetConfig `json:"assets"`

	// The controlled dot
	Actor ActorConfig `json:"actor"`

	// The regenerate button, in screen pixels
	Button ButtonConfig `json:"button"`

	// Base yield per terrain family, keyed by family name
	Yields map[string]layer.Yield `json:"yields"`

	// Seed for the first generated map; 0 picks one from the clock
	Seed int64 `json:"seed"`
}

// WindowConfig defines the screen and frame loop.
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"`
	Fullscreen bool   `json:"fullscreen"`
	Resizable  bool   `json:"resizable"`
	ShowFPS    bool   `json:"show_fps"`
}

// AssetConfig locates the sprite sheets and their atlases relative to DataDir.
type AssetConfig struct {
	DataDir      string `json:"data_dir"`
	TerrainSheet string `json:"terrain_sheet"`
	IconSheet    string `json:"icon_sheet"`

	// Optional atlas descriptions; the stock layout is used when absent.
	TerrainAtlas string `json:"terrain_atlas"`
	IconAtlas    string `json:"icon_atlas"`

	// Terrain sprites are taller than the grid pitch and drawn bottom-aligned.
	SpriteWidth  int `json:"sprite_width"`
	SpriteHeight int `json:"sprite_height"`

	IconWidth  int `json:"icon_width"`
	IconHeight int `json:"icon_height"`
}

// ActorConfig defines the dot.
type ActorConfig struct {
	Size   int `json:"size"`
	Step   int `json:"step"`
	StartX int `json:"start_x"`
	StartY int `json:"start_y"`
}

// ButtonConfig places the regenerate button.
type ButtonConfig struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// Rect returns the button's screen rectangle.
func (b ButtonConfig) Rect() geom.Rect {
	return geom.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Default returns the settings of the stock 9x16 world.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Civ",
			Width:     1536,
			Height:    968,
			FPS:       60,
			Resizable: true,
			ShowFPS:   true,
		},
		Map: tilemap.DefaultConfig(),
		Assets: AssetConfig{
			DataDir:      "data",
			TerrainSheet: "terrain.png",
			IconSheet:    "icons.png",
			TerrainAtlas: "terrain_atlas.json",
			IconAtlas:    "icons_atlas.json",
			SpriteWidth:  256,
			SpriteHeight: 384,
			IconWidth:    21,
			IconHeight:   22,
		},
		Actor: ActorConfig{
			Size: 20,
			Step: 10,
		},
		Button: ButtonConfig{
			X:      16,
			Y:      16,
			Width:  160,
			Height: 48,
			Label:  "Regenerate",
		},
		Yields: DefaultYields(),
	}
}

// DefaultYields returns the base yield of each terrain family.
func DefaultYields() map[string]layer.Yield {
	return map[string]layer.Yield{
		"grass":    {Food: 2},
		"water":    {Food: 1, Gold: 1},
		"mountain": {Production: 1},
		"desert":   {Gold: 1},
		"forest":   {Food: 1, Production: 1},
		"marsh":    {Food: 1, Science: 1},
		"dirt":     {Food: 1},
		"hills":    {Production: 2},
	}
}

// Load reads a JSON config from path and overlays it on the defaults. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", c.Window.FPS)
	}
	if err := c.Map.Validate(); err != nil {
		return err
	}
	if c.Assets.SpriteWidth <= 0 || c.Assets.SpriteHeight <= 0 {
		return fmt.Errorf("invalid sprite size: %dx%d", c.Assets.SpriteWidth, c.Assets.SpriteHeight)
	}
	if c.Actor.Size <= 0 || c.Actor.Size > c.Map.TileWidth || c.Actor.Size > c.Map.TileHeight {
		return fmt.Errorf("invalid actor size: %d", c.Actor.Size)
	}
	if c.Actor.Step <= 0 {
		return fmt.Errorf("invalid actor step: %d", c.Actor.Step)
	}
	if c.Button.Width <= 0 || c.Button.Height <= 0 {
		return fmt.Errorf("invalid button size: %dx%d", c.Button.Width, c.Button.Height)
	}
	for name := range c.Yields {
		if _, ok := tilemap.FamilyByName(name); !ok {
			return fmt.Errorf("unknown terrain family in yields: %q", name)
		}
	}
	return nil
}

// Path joins name onto the data directory.
func (a AssetConfig) Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.DataDir, name)
}

// FamilyYield returns the configured base yield of a family.
func (c *Config) FamilyYield(f tilemap.Family) layer.Yield {
	return c.Yields[f.String()]
}
