// Package maploader fills a TileMap from a map description. Two formats are
// understood: a whitespace separated list of integer kinds in row-major order
// (".map") and a JSON document naming the kind of every cell (".json").
package maploader

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"chosenoffset.com/civ/internal/logger"
	"chosenoffset.com/civ/internal/telemetry"
	"chosenoffset.com/civ/internal/world/tilemap"
)

var (
	// ErrShortRead is returned when the description ends before every tile
	// has a kind.
	ErrShortRead = errors.New("map description ended early")
	// ErrBadToken is returned for a token that does not name a kind.
	ErrBadToken = errors.New("bad tile token")
	// ErrTrailingTokens is returned when the description holds more tiles
	// than the world.
	ErrTrailingTokens = errors.New("map description has extra tiles")
)

// SpawnPoint defines the actor's starting position in world pixels
type SpawnPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapData represents a JSON map description
type MapData struct {
	Name        string      `json:"name"`
	Rows        int         `json:"rows"`
	Cols        int         `json:"cols"`
	PlayerSpawn *SpawnPoint `json:"player_spawn,omitempty"`
	Tiles       [][]string  `json:"tiles"` // Kind names or numbers, [row][col]
}

// Decode reads one integer kind per tile from r in row-major order. Input left
// over after the last tile is an error. On error the tiles read so far keep
// their new kinds.
func Decode(r io.Reader, m *tilemap.TileMap) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for i := 0; i < m.Len(); i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("failed to read tile %d: %w", i, err)
			}
			return fmt.Errorf("tile %d of %d: %w", i, m.Len(), ErrShortRead)
		}
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			return fmt.Errorf("tile %d: %q: %w", i, sc.Text(), ErrBadToken)
		}
		if err := m.Set(i, tilemap.Kind(n)); err != nil {
			return fmt.Errorf("tile %d: %w", i, err)
		}
	}
	if sc.Scan() {
		return fmt.Errorf("%q after tile %d: %w", sc.Text(), m.Len()-1, ErrTrailingTokens)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read past tile %d: %w", m.Len()-1, err)
	}
	return nil
}

// Encode writes the kinds of m in the format Decode reads, one grid row per
// line.
func Encode(w io.Writer, m *tilemap.TileMap) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			if col > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(m.Kind(m.Index(row, col)))))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// parseKind accepts either a kind name such as "marsh2" or its number.
func parseKind(tok string) (tilemap.Kind, error) {
	if k, ok := tilemap.KindByName(strings.ToLower(tok)); ok {
		return k, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, ErrBadToken)
	}
	return tilemap.Kind(n), nil
}

// Apply copies the JSON description into m. The description must have the
// same shape as m; a short row is reported as ErrShortRead and a long one, or
// an extra row, as ErrTrailingTokens.
func (d *MapData) Apply(m *tilemap.TileMap) error {
	if d.Rows != m.Rows() || d.Cols != m.Cols() {
		return fmt.Errorf("map is %dx%d, world is %dx%d", d.Rows, d.Cols, m.Rows(), m.Cols())
	}
	for row := 0; row < d.Rows; row++ {
		if row >= len(d.Tiles) {
			return fmt.Errorf("row %d missing: %w", row, ErrShortRead)
		}
		for col := 0; col < d.Cols; col++ {
			if col >= len(d.Tiles[row]) {
				return fmt.Errorf("row %d has %d of %d tiles: %w", row, len(d.Tiles[row]), d.Cols, ErrShortRead)
			}
			if len(d.Tiles[row]) > d.Cols {
				return fmt.Errorf("row %d has %d tiles, want %d: %w", row, len(d.Tiles[row]), d.Cols, ErrTrailingTokens)
			}
			k, err := parseKind(d.Tiles[row][col])
			if err != nil {
				return fmt.Errorf("tile (%d, %d): %w", row, col, err)
			}
			if err := m.Set(m.Index(row, col), k); err != nil {
				return fmt.Errorf("tile (%d, %d): %w", row, col, err)
			}
		}
	}
	if len(d.Tiles) > d.Rows {
		return fmt.Errorf("%d rows, want %d: %w", len(d.Tiles), d.Rows, ErrTrailingTokens)
	}
	return nil
}

// LoadMap reads the map description at path into m, picking the format by
// extension. A ".json" description may carry a spawn point and a name; for
// the token format the name is the file name.
func LoadMap(ctx context.Context, path string, m *tilemap.TileMap) (*MapData, error) {
	_, span := telemetry.Tracer("maploader").Start(ctx, "maploader.load")
	defer span.End()
	span.SetAttributes(attribute.String("map.path", path))

	data, err := load(path, m)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("map.name", data.Name),
		attribute.Int("map.tiles", m.Len()),
		attribute.Int("map.walls", m.WallCount()),
	)
	logger.Get().WithFields(logrus.Fields{
		"path":  path,
		"name":  data.Name,
		"tiles": m.Len(),
		"walls": m.WallCount(),
	}).Info("Loaded map")
	return data, nil
}

func load(path string, m *tilemap.TileMap) (*MapData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var data MapData
		if err := json.NewDecoder(f).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to parse map file %s: %w", path, err)
		}
		if err := data.Apply(m); err != nil {
			return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
		}
		if data.Name == "" {
			data.Name = baseName(path)
		}
		return &data, nil
	}

	if err := Decode(f, m); err != nil {
		return nil, fmt.Errorf("invalid map data in %s: %w", path, err)
	}
	return &MapData{Name: baseName(path), Rows: m.Rows(), Cols: m.Cols()}, nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
