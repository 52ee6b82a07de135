package atlas

import (
	"errors"
	"fmt"
	"sort"

	"chosenoffset.com/civ/internal/render"
)

// ErrLayerTaken is returned when a second atlas is registered for a layer.
var ErrLayerTaken = errors.New("layer already has an atlas")

// Manager holds at most one atlas per draw layer.
type Manager struct {
	layers map[string]*Atlas
}

func NewManager() *Manager {
	return &Manager{layers: make(map[string]*Atlas)}
}

// Load loads the sheet described by config and registers it.
func (m *Manager) Load(config *AtlasConfig, loader render.ResourceLoader) error {
	a, err := Load(config, loader)
	if err != nil {
		return err
	}
	return m.Register(a)
}

// Register adds a to the layer named in its config.
func (m *Manager) Register(a *Atlas) error {
	switch {
	case a.Config.Layer == "":
		return fmt.Errorf("atlas %q has no layer", a.Config.Name)
	case a.Config.Name == "":
		return fmt.Errorf("atlas for layer %s has no name", a.Config.Layer)
	}
	if prev, ok := m.layers[a.Config.Layer]; ok {
		return fmt.Errorf("%s (%s): %w", a.Config.Layer, prev.Config.Name, ErrLayerTaken)
	}
	m.layers[a.Config.Layer] = a
	return nil
}

// ByLayer returns the atlas drawn on layer.
func (m *Manager) ByLayer(layer string) (*Atlas, bool) {
	a, ok := m.layers[layer]
	return a, ok
}

// Sprite looks up name in the atlas of layer. A nil manager, a missing layer
// and a missing sprite all report false.
func (m *Manager) Sprite(layer, name string) (render.Image, bool) {
	if m == nil {
		return nil, false
	}
	a, ok := m.layers[layer]
	if !ok {
		return nil, false
	}
	return a.Sprite(name)
}

// Layers returns the registered layer names in sorted order.
func (m *Manager) Layers() []string {
	names := make([]string, 0, len(m.layers))
	for name := range m.layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
