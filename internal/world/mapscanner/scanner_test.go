package mapscanner

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestScanFindsMaps(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "valley.map"))
	touch(t, filepath.Join(dir, "atlas.json"))
	touch(t, filepath.Join(dir, "icons_atlas.json"))
	touch(t, filepath.Join(dir, "civ.json"))
	touch(t, filepath.Join(dir, "terrain.png"))
	touch(t, filepath.Join(dir, ".hidden.map"))
	touch(t, filepath.Join(dir, "maps", "coast.json"))
	touch(t, filepath.Join(dir, "maps", "islands.MAP"))
	touch(t, filepath.Join(dir, "atlases", "skipped.map"))

	maps, err := Scan(dir)
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}

	want := []MapEntry{
		{Name: "coast", Path: filepath.Join(dir, "maps", "coast.json"), Format: FormatJSON},
		{Name: "islands", Path: filepath.Join(dir, "maps", "islands.MAP"), Format: FormatTokens},
		{Name: "valley", Path: filepath.Join(dir, "valley.map"), Format: FormatTokens},
	}
	if len(maps) != len(want) {
		t.Fatalf("Expected %d maps, got %d: %+v", len(want), len(maps), maps)
	}
	for i := range want {
		if maps[i] != want[i] {
			t.Errorf("Entry %d: expected %+v, got %+v", i, want[i], maps[i])
		}
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	maps, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to scan: %v", err)
	}
	if len(maps) != 0 {
		t.Errorf("Expected no maps, got %d", len(maps))
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing directory")
	}
}
