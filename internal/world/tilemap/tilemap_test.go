package tilemap

import (
	"errors"
	"math/rand"
	"testing"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/world/layer"
)

func newTestMap(t *testing.T, cfg Config) *TileMap {
	t.Helper()
	m, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}
	return m
}

func TestClassifyPartitionsKindSpace(t *testing.T) {
	cfg := DefaultConfig()

	walls, open := 0, 0
	for k := Kind(0); int(k) < cfg.KindCount; k++ {
		inRange := k >= cfg.FirstWallKind && k <= cfg.LastWallKind
		switch cfg.Classify(k) {
		case Wall:
			walls++
			if !inRange {
				t.Errorf("Expected kind %v outside the wall range to be open", k)
			}
		case Open:
			open++
			if inRange {
				t.Errorf("Expected kind %v inside the wall range to be a wall", k)
			}
		default:
			t.Errorf("Unexpected class for kind %v", k)
		}
	}

	if walls+open != cfg.KindCount {
		t.Errorf("Expected %d classified kinds, got %d", cfg.KindCount, walls+open)
	}
	wantWalls := int(cfg.LastWallKind-cfg.FirstWallKind) + 1
	if walls != wantWalls {
		t.Errorf("Expected %d wall kinds, got %d", wantWalls, walls)
	}
}

func TestDefaultWallsAreWaterAndMountains(t *testing.T) {
	cfg := DefaultConfig()
	for k := Kind(0); int(k) < cfg.KindCount; k++ {
		f := k.Family()
		wantWall := f == FamilyWater || f == FamilyMountain
		if got := cfg.Classify(k) == Wall; got != wantWall {
			t.Errorf("Expected %v wall=%v, got %v", k, wantWall, got)
		}
	}
}

func TestBoundingBoxMatchesRowAndColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = 256, 384
	m := newTestMap(t, cfg)

	for i := 0; i < m.Len(); i++ {
		box := m.BoundingBox(i)
		row, col := i/cfg.Cols, i%cfg.Cols

		if box.W != cfg.TileWidth || box.H != cfg.TileHeight {
			t.Fatalf("Expected tile %d size %dx%d, got %dx%d", i, cfg.TileWidth, cfg.TileHeight, box.W, box.H)
		}
		if box.X != col*cfg.TileWidth || box.Y != row*cfg.TileHeight {
			t.Errorf("Expected tile %d at (%d, %d), got (%d, %d)", i, col*cfg.TileWidth, row*cfg.TileHeight, box.X, box.Y)
		}
		if m.Index(row, col) != i {
			t.Errorf("Expected Index(%d, %d) = %d", row, col, i)
		}
	}
}

func TestIndexAt(t *testing.T) {
	m := newTestMap(t, DefaultConfig())

	i, ok := m.IndexAt(geom.Point{X: 300, Y: 10})
	if !ok || i != 1 {
		t.Errorf("Expected index 1, got %d (ok=%v)", i, ok)
	}

	size := m.LevelSize()
	if _, ok := m.IndexAt(geom.Point{X: size.W, Y: 0}); ok {
		t.Error("Expected point on the far edge to be outside the map")
	}
	if _, ok := m.IndexAt(geom.Point{X: -1, Y: 0}); ok {
		t.Error("Expected negative point to be outside the map")
	}
}

func TestOutOfRangeIndexPanics(t *testing.T) {
	m := newTestMap(t, DefaultConfig())

	for _, i := range []int{-1, m.Len()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for index %d", i)
				}
			}()
			m.BoundingBox(i)
		}()
	}
}

func TestSetValidatesKindRange(t *testing.T) {
	m := newTestMap(t, DefaultConfig())

	if err := m.Set(0, Forest2); err != nil {
		t.Fatalf("Expected valid kind to be accepted: %v", err)
	}
	if m.Kind(0) != Forest2 {
		t.Errorf("Expected kind %v, got %v", Forest2, m.Kind(0))
	}

	for _, k := range []Kind{-1, Kind(KindCount)} {
		err := m.Set(1, k)
		if !errors.Is(err, ErrKindOutOfRange) {
			t.Errorf("Expected ErrKindOutOfRange for %d, got %v", k, err)
		}
	}
}

func TestRegenerateIsDeterministicForSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileWidth, cfg.TileHeight = 256, 384

	m1 := newTestMap(t, cfg)
	m2 := newTestMap(t, cfg)

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for round := 0; round < 3; round++ {
		m1.Regenerate(rng1, nil)
		m2.Regenerate(rng2, nil)

		k1, k2 := m1.Kinds(), m2.Kinds()
		if len(k1) != 9*16 {
			t.Fatalf("Expected 144 tiles, got %d", len(k1))
		}
		for i := range k1 {
			if k1[i] != k2[i] {
				t.Fatalf("round %d: kind mismatch at %d: %v != %v", round, i, k1[i], k2[i])
			}
			if !cfg.ValidKind(k1[i]) {
				t.Fatalf("round %d: kind %d out of range", round, k1[i])
			}
		}
	}
}

func TestRegenerateDifferentSeedsDiffer(t *testing.T) {
	m1 := newTestMap(t, DefaultConfig())
	m2 := newTestMap(t, DefaultConfig())

	m1.Regenerate(rand.New(rand.NewSource(1)), nil)
	m2.Regenerate(rand.New(rand.NewSource(2)), nil)

	k1, k2 := m1.Kinds(), m2.Kinds()
	for i := range k1 {
		if k1[i] != k2[i] {
			return
		}
	}
	t.Error("Maps with different seeds should not be identical")
}

func TestRegenerateReplacesLayers(t *testing.T) {
	m := newTestMap(t, DefaultConfig())
	old := m.AddLayer(0, layer.New(0, layer.Yield{Food: 3}))
	before := m.Generation()

	m.Regenerate(rand.New(rand.NewSource(9)), func(i int, k Kind, box geom.Rect) []layer.Layer {
		return []layer.Layer{layer.New(0, layer.Yield{Gold: float64(i)})}
	})

	if m.Generation() == before {
		t.Error("Expected generation id to change after regeneration")
	}
	if got := m.Tile(0).Layers.Aggregate(layer.Food); got != 0 {
		t.Errorf("Expected old layers to be dropped, got food %v", got)
	}
	if got := m.Tile(5).Layers.Aggregate(layer.Gold); got != 5 {
		t.Errorf("Expected decorator layer on tile 5, got gold %v", got)
	}

	old.SetGold(99)
	if got := m.Tile(0).Layers.Aggregate(layer.Gold); got != 0 {
		t.Errorf("Expected stale handle to be detached, got gold %v", got)
	}
}

func TestDecorateKeepsKinds(t *testing.T) {
	m := newTestMap(t, DefaultConfig())
	m.Regenerate(rand.New(rand.NewSource(3)), nil)
	kinds := m.Kinds()

	m.Decorate(func(i int, k Kind, box geom.Rect) []layer.Layer {
		return []layer.Layer{layer.New(0, layer.Yield{Science: 1})}
	})

	for i, k := range m.Kinds() {
		if k != kinds[i] {
			t.Fatalf("Expected kind %v at %d, got %v", kinds[i], i, k)
		}
		if m.Tile(i).Layers.Len() != 1 {
			t.Fatalf("Expected one layer on tile %d", i)
		}
	}
}

func TestResetReleasesEveryTile(t *testing.T) {
	m := newTestMap(t, DefaultConfig())
	for i := 0; i < m.Len(); i++ {
		m.AddLayer(i, layer.New(0, layer.Yield{Food: 1}))
	}

	m.Reset()

	for i := 0; i < m.Len(); i++ {
		if m.Tile(i).Layers.Len() != 0 {
			t.Fatalf("Expected tile %d to have no layers after Reset", i)
		}
	}
}

func TestWallCount(t *testing.T) {
	m := newTestMap(t, DefaultConfig())
	_ = m.Set(0, Water1)
	_ = m.Set(1, Mountain4)
	_ = m.Set(2, Grass4)

	if got := m.WallCount(); got != 2 {
		t.Errorf("Expected 2 walls, got %d", got)
	}
	if !m.IsWall(0) || m.IsWall(2) {
		t.Error("Unexpected wall classification for tiles 0 and 2")
	}
}

func TestConfigValidate(t *testing.T) {
	bad := []Config{
		{Rows: 0, Cols: 1, TileWidth: 1, TileHeight: 1, KindCount: 1},
		{Rows: 1, Cols: 1, TileWidth: 0, TileHeight: 1, KindCount: 1},
		{Rows: 1, Cols: 1, TileWidth: 1, TileHeight: 1, KindCount: 0},
		{Rows: 1, Cols: 1, TileWidth: 1, TileHeight: 1, KindCount: 4, FirstWallKind: 3, LastWallKind: 2},
		{Rows: 1, Cols: 1, TileWidth: 1, TileHeight: 1, KindCount: 4, FirstWallKind: 1, LastWallKind: 4},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Expected config %d to be rejected", i)
		}
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to be valid: %v", err)
	}
}

func TestKindNames(t *testing.T) {
	if Forest3.String() != "forest3" {
		t.Errorf("Expected 'forest3', got '%s'", Forest3.String())
	}
	for k := Kind(0); int(k) < KindCount; k++ {
		got, ok := KindByName(k.String())
		if !ok || got != k {
			t.Errorf("Expected KindByName(%s) = %d, got %d (ok=%v)", k, k, got, ok)
		}
	}
	if _, ok := KindByName("lava1"); ok {
		t.Error("Expected unknown name to fail")
	}
}
