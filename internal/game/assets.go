package game

import (
	"errors"
	"os"

	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/logger"
	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/world/atlas"
)

// LoadAtlases loads the terrain and icon sheets named in cfg. An atlas
// description file is used when present, otherwise the stock layout. A sheet
// that fails to load is skipped with a warning and drawn as placeholders.
func LoadAtlases(cfg *config.Config, loader render.ResourceLoader) *atlas.Manager {
	a := cfg.Assets
	m := atlas.NewManager()

	sheets := []struct {
		atlasFile string
		fallback  func() *atlas.AtlasConfig
	}{
		{a.TerrainAtlas, func() *atlas.AtlasConfig {
			return atlas.DefaultTerrainConfig(a.Path(a.TerrainSheet), a.SpriteWidth, a.SpriteHeight)
		}},
		{a.IconAtlas, func() *atlas.AtlasConfig {
			return atlas.DefaultIconConfig(a.Path(a.IconSheet), a.IconWidth, a.IconHeight)
		}},
	}

	for _, s := range sheets {
		ac, err := atlasConfig(a.Path(s.atlasFile), s.fallback)
		if err != nil {
			logger.Get().WithError(err).Warn("Ignoring atlas description")
			ac = s.fallback()
		}
		if err := m.Load(ac, loader); err != nil {
			logger.Get().WithError(err).Warnf("Atlas %s unavailable, using placeholders", ac.Name)
			continue
		}
		logger.Get().WithField("atlas", ac.Name).Info("Loaded atlas")
	}
	return m
}

func atlasConfig(path string, fallback func() *atlas.AtlasConfig) (*atlas.AtlasConfig, error) {
	if path == "" {
		return fallback(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fallback(), nil
	}
	return atlas.LoadConfig(path)
}
