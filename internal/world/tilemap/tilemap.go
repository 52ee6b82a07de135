// Package tilemap owns the fixed-size grid of terrain tiles, their wall
// classification and the layers attached to them.
package tilemap

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/world/layer"
)

// ErrKindOutOfRange is returned when a kind outside [0, KindCount) is stored.
var ErrKindOutOfRange = errors.New("tile kind out of range")

// Class is the movement classification of a kind.
type Class int

const (
	Open Class = iota
	Wall
)

func (c Class) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}

// Config describes the grid shape and the kind space.
type Config struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	TileWidth  int `json:"tile_width"`
	TileHeight int `json:"tile_height"`
	KindCount  int `json:"kind_count"`

	// Kinds in [FirstWallKind, LastWallKind] block movement.
	FirstWallKind Kind `json:"first_wall_kind"`
	LastWallKind  Kind `json:"last_wall_kind"`
}

// DefaultConfig returns the 9x16 grid of 256px cells with 32 kinds.
func DefaultConfig() Config {
	return Config{
		Rows:          9,
		Cols:          16,
		TileWidth:     256,
		TileHeight:    256,
		KindCount:     KindCount,
		FirstWallKind: Water1,
		LastWallKind:  Mountain4,
	}
}

// Validate checks the config for values that cannot describe a grid.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%d", c.Rows, c.Cols)
	}
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile size: %dx%d", c.TileWidth, c.TileHeight)
	}
	if c.KindCount <= 0 {
		return fmt.Errorf("invalid kind count: %d", c.KindCount)
	}
	if c.FirstWallKind < 0 || c.FirstWallKind > c.LastWallKind || int(c.LastWallKind) >= c.KindCount {
		return fmt.Errorf("invalid wall range [%d, %d] for %d kinds", c.FirstWallKind, c.LastWallKind, c.KindCount)
	}
	return nil
}

// Classify reports whether k is a wall or open terrain.
func (c Config) Classify(k Kind) Class {
	if k >= c.FirstWallKind && k <= c.LastWallKind {
		return Wall
	}
	return Open
}

// ValidKind reports whether k lies in [0, KindCount).
func (c Config) ValidKind(k Kind) bool {
	return k >= 0 && int(k) < c.KindCount
}

// Tile is one grid cell.
type Tile struct {
	Kind   Kind
	Layers layer.Stack
}

// Decorator returns the layers to attach to a freshly created tile.
type Decorator func(index int, kind Kind, box geom.Rect) []layer.Layer

// TileMap is the grid. Tiles are stored by value in row-major order.
type TileMap struct {
	cfg        Config
	tiles      []Tile
	generation string
}

// New creates a map with every tile set to kind 0.
func New(cfg Config) (*TileMap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TileMap{
		cfg:        cfg,
		tiles:      make([]Tile, cfg.Rows*cfg.Cols),
		generation: uuid.NewString(),
	}, nil
}

// Config returns the grid configuration.
func (m *TileMap) Config() Config { return m.cfg }

// Len returns the number of tiles.
func (m *TileMap) Len() int { return len(m.tiles) }

// Rows returns the number of rows.
func (m *TileMap) Rows() int { return m.cfg.Rows }

// Cols returns the number of columns.
func (m *TileMap) Cols() int { return m.cfg.Cols }

// Generation identifies the current set of tiles; it changes on every
// regeneration or load.
func (m *TileMap) Generation() string { return m.generation }

// LevelSize returns the world size in pixels.
func (m *TileMap) LevelSize() geom.Size {
	return geom.Size{W: m.cfg.Cols * m.cfg.TileWidth, H: m.cfg.Rows * m.cfg.TileHeight}
}

// Bounds returns the world rectangle anchored at the origin.
func (m *TileMap) Bounds() geom.Rect {
	s := m.LevelSize()
	return geom.Rect{W: s.W, H: s.H}
}

// Classify reports the class of k under this map's wall range.
func (m *TileMap) Classify(k Kind) Class {
	return m.cfg.Classify(k)
}

func (m *TileMap) check(i int) {
	if i < 0 || i >= len(m.tiles) {
		panic(fmt.Sprintf("tilemap: index %d out of range [0, %d)", i, len(m.tiles)))
	}
}

// Index converts a row/column pair to a linear index.
func (m *TileMap) Index(row, col int) int {
	if row < 0 || row >= m.cfg.Rows || col < 0 || col >= m.cfg.Cols {
		panic(fmt.Sprintf("tilemap: cell (%d, %d) out of range %dx%d", row, col, m.cfg.Rows, m.cfg.Cols))
	}
	return row*m.cfg.Cols + col
}

// RowCol converts a linear index to its row and column.
func (m *TileMap) RowCol(i int) (row, col int) {
	m.check(i)
	return i / m.cfg.Cols, i % m.cfg.Cols
}

// BoundingBox returns the world-space box of tile i.
func (m *TileMap) BoundingBox(i int) geom.Rect {
	row, col := m.RowCol(i)
	return geom.Rect{
		X: col * m.cfg.TileWidth,
		Y: row * m.cfg.TileHeight,
		W: m.cfg.TileWidth,
		H: m.cfg.TileHeight,
	}
}

// IndexAt returns the tile containing the world point p.
func (m *TileMap) IndexAt(p geom.Point) (int, bool) {
	if !m.Bounds().Contains(p) {
		return 0, false
	}
	return m.Index(p.Y/m.cfg.TileHeight, p.X/m.cfg.TileWidth), true
}

// Tile returns the tile at index i. The pointer is invalidated by Regenerate.
func (m *TileMap) Tile(i int) *Tile {
	m.check(i)
	return &m.tiles[i]
}

// Kind returns the kind of tile i.
func (m *TileMap) Kind(i int) Kind {
	m.check(i)
	return m.tiles[i].Kind
}

// IsWall reports whether tile i blocks movement.
func (m *TileMap) IsWall(i int) bool {
	return m.Classify(m.Kind(i)) == Wall
}

// WallCount returns the number of wall tiles.
func (m *TileMap) WallCount() int {
	n := 0
	for i := range m.tiles {
		if m.cfg.Classify(m.tiles[i].Kind) == Wall {
			n++
		}
	}
	return n
}

// Set stores kind k at index i, discarding any layers on that tile.
func (m *TileMap) Set(i int, k Kind) error {
	m.check(i)
	if !m.cfg.ValidKind(k) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrKindOutOfRange, k, m.cfg.KindCount)
	}
	m.tiles[i] = Tile{Kind: k}
	return nil
}

// AddLayer appends l to tile i and returns its handle.
func (m *TileMap) AddLayer(i int, l layer.Layer) *layer.Layer {
	return m.Tile(i).Layers.Add(l)
}

// Regenerate replaces every tile with a new one whose kind is drawn uniformly
// from the kind range using rng. Layers from decorate, if non-nil, are attached
// before the new tiles become visible; all previous layers are dropped.
func (m *TileMap) Regenerate(rng *rand.Rand, decorate Decorator) {
	fresh := make([]Tile, len(m.tiles))
	for i := range fresh {
		fresh[i].Kind = Kind(rng.Intn(m.cfg.KindCount))
	}
	m.install(fresh, decorate)
}

// Decorate replaces the layers of every tile with the output of decorate.
func (m *TileMap) Decorate(decorate Decorator) {
	fresh := make([]Tile, len(m.tiles))
	for i := range fresh {
		fresh[i].Kind = m.tiles[i].Kind
	}
	m.install(fresh, decorate)
}

func (m *TileMap) install(fresh []Tile, decorate Decorator) {
	if decorate != nil {
		for i := range fresh {
			ls := decorate(i, fresh[i].Kind, m.BoundingBox(i))
			if len(ls) > 0 {
				fresh[i].Layers.Replace(ls)
			}
		}
	}
	m.Reset()
	m.tiles = fresh
	m.generation = uuid.NewString()
}

// Kinds returns a copy of every tile kind in row-major order.
func (m *TileMap) Kinds() []Kind {
	out := make([]Kind, len(m.tiles))
	for i := range m.tiles {
		out[i] = m.tiles[i].Kind
	}
	return out
}

// Reset releases every tile's layers and resets kinds to zero.
func (m *TileMap) Reset() {
	for i := range m.tiles {
		m.tiles[i].Layers.Clear()
		m.tiles[i].Kind = 0
	}
}
