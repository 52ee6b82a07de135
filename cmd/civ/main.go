// Package main is the entry point for the civ map viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/game"
	"chosenoffset.com/civ/internal/logger"
	ebitenrender "chosenoffset.com/civ/internal/render/ebiten"
	"chosenoffset.com/civ/internal/telemetry"
	"chosenoffset.com/civ/internal/world/mapscanner"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before the process
// exits.
func realMain() int {
	// Not fatal: the environment may already be set.
	envErr := godotenv.Load()

	logger.Init()
	log := logger.Log
	if envErr != nil {
		log.Debugf(".env file not loaded: %v", envErr)
	}

	var (
		configPath string
		mapName    string
		dataDir    string
		seed       int64
		listMaps   bool
	)
	flag.StringVar(&configPath, "config", envOr("CIV_CONFIG", "civ.json"), "Path to the JSON config")
	flag.StringVar(&mapName, "map", os.Getenv("CIV_MAP"), "Map file or map name to load instead of generating")
	flag.StringVar(&dataDir, "data", "", "Data directory (overrides the config)")
	flag.Int64Var(&seed, "seed", envInt64("CIV_SEED"), "World seed (0 for random)")
	flag.BoolVar(&listMaps, "list", false, "List the maps in the data directory and exit")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		return 1
	}
	if dataDir != "" {
		cfg.Assets.DataDir = dataDir
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if listMaps {
		maps, err := mapscanner.Scan(cfg.Assets.DataDir)
		if err != nil {
			log.Errorf("Failed to scan data directory: %v", err)
			return 1
		}
		for _, m := range maps {
			log.WithField("format", m.Format).Infof("%s\t%s", m.Name, m.Path)
		}
		return 0
	}

	warn := func(err error) {
		log.Warnf("Telemetry setup failed, running without tracing: %v", err)
	}
	err = telemetry.Run(context.Background(), warn, func(ctx context.Context) error {
		return run(ctx, cfg, mapName)
	})
	if err != nil {
		log.Errorf("Game error: %v", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, mapName string) error {
	log := logger.Log

	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.WithField("seed", s).Info("Starting")

	g, err := game.New(ctx, game.Options{
		Config:   cfg,
		Renderer: renderer,
		InputMgr: inputMgr,
		Engine:   engine,
		Atlases:  game.LoadAtlases(cfg, loader),
		Rand:     rand.New(rand.NewSource(s)),
	})
	if err != nil {
		return err
	}

	if mapName != "" {
		path, err := resolveMap(cfg.Assets.DataDir, mapName)
		if err != nil {
			return err
		}
		if err := g.LoadMap(ctx, path); err != nil {
			return err
		}
	} else {
		g.Generate(ctx)
	}
	g.UpdateCamera()

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Window.FPS)
	engine.SetFullscreen(cfg.Window.Fullscreen)

	return engine.RunGame(g)
}

// resolveMap returns name itself when it is an existing file, otherwise the
// path of the scanned map with that name.
func resolveMap(dataDir, name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}
	maps, err := mapscanner.Scan(dataDir)
	if err != nil {
		return "", err
	}
	for _, m := range maps {
		if m.Name == name {
			return m.Path, nil
		}
	}
	return "", fmt.Errorf("map %q not found in %s", name, dataDir)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string) int64 {
	n, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
