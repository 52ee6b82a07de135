// Package mapscanner discovers map descriptions in the data directory.
package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Format is the encoding of a map description.
type Format string

const (
	FormatTokens Format = "tokens"
	FormatJSON   Format = "json"
)

// MapEntry represents a discoverable map in the data directory
type MapEntry struct {
	Name   string // Display name (file name without extension)
	Path   string // Path including the data directory
	Format Format
}

// Scan lists the map descriptions in dataPath and in its immediate
// subdirectories, sorted by path. Atlas and hidden files are skipped.
func Scan(dataPath string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if !entry.IsDir() {
			if e, ok := classify(dataPath, name); ok {
				maps = append(maps, e)
			}
			continue
		}

		if name == "atlases" {
			continue
		}

		// Subdirectories that can't be read are skipped
		sub, err := scanDir(filepath.Join(dataPath, name))
		if err != nil {
			continue
		}
		maps = append(maps, sub...)
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Path < maps[j].Path })
	return maps, nil
}

func scanDir(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if e, ok := classify(dir, entry.Name()); ok {
			maps = append(maps, e)
		}
	}
	return maps, nil
}

// classify decides whether a file is a map description by its name.
func classify(dir, name string) (MapEntry, bool) {
	lower := strings.ToLower(name)
	ext := filepath.Ext(lower)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	switch ext {
	case ".map":
		return MapEntry{Name: base, Path: filepath.Join(dir, name), Format: FormatTokens}, true
	case ".json":
		// Atlas and settings files share the extension
		if strings.Contains(lower, "atlas") || lower == "civ.json" || lower == "config.json" {
			return MapEntry{}, false
		}
		return MapEntry{Name: base, Path: filepath.Join(dir, name), Format: FormatJSON}, true
	}
	return MapEntry{}, false
}
