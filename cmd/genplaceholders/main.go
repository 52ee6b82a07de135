package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/logger"
	"chosenoffset.com/civ/internal/placeholders"
)

func main() {
	configPath := flag.String("config", "civ.json", "Path to the JSON config")
	dataDir := flag.String("data", "", "Output directory (overrides the config)")
	seed := flag.Int64("seed", 1, "Seed for the sample map")
	flag.Parse()

	logger.Init()

	fmt.Println("Civ Placeholder Graphics Generator")
	fmt.Println("==================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Assets.DataDir = *dataDir
	}

	if err := placeholders.GenerateAndSave(cfg, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
	fmt.Println("Run the game to see your placeholders in action!")
}
