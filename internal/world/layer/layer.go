// Package layer implements the per-tile stack of resource contributions.
package layer

import (
	"fmt"
	"sort"

	"chosenoffset.com/civ/internal/geom"
)

// Resource names one of the numeric yields a layer carries.
type Resource int

const (
	Food Resource = iota
	Production
	Gold
	Science
)

// Resources lists every resource in display order.
var Resources = []Resource{Food, Production, Gold, Science}

func (r Resource) String() string {
	switch r {
	case Food:
		return "food"
	case Production:
		return "production"
	case Gold:
		return "gold"
	case Science:
		return "science"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// Yield is a bundle of the four resources.
type Yield struct {
	Food       float64 `json:"food"`
	Production float64 `json:"production"`
	Gold       float64 `json:"gold"`
	Science    float64 `json:"science"`
}

// Get returns the value for one resource.
func (y Yield) Get(r Resource) float64 {
	switch r {
	case Food:
		return y.Food
	case Production:
		return y.Production
	case Gold:
		return y.Gold
	case Science:
		return y.Science
	default:
		return 0
	}
}

// Add returns the element-wise sum of y and o.
func (y Yield) Add(o Yield) Yield {
	return Yield{
		Food:       y.Food + o.Food,
		Production: y.Production + o.Production,
		Gold:       y.Gold + o.Gold,
		Science:    y.Science + o.Science,
	}
}

// Layer is one contribution attached to a tile, optionally drawn as an overlay
// sprite at Offset from the tile's top-left corner.
type Layer struct {
	yield  Yield
	zIndex int

	// Sprite is the atlas name of the overlay, empty for value-only layers.
	Sprite string
	Offset geom.Point
}

// New creates a layer with the given z-index and yield.
func New(zIndex int, y Yield) Layer {
	return Layer{yield: y, zIndex: zIndex}
}

// NewIcon creates an overlay layer drawn with the named sprite.
func NewIcon(zIndex int, y Yield, sprite string, offset geom.Point) Layer {
	return Layer{yield: y, zIndex: zIndex, Sprite: sprite, Offset: offset}
}

func (l *Layer) Food() float64       { return l.yield.Food }
func (l *Layer) Production() float64 { return l.yield.Production }
func (l *Layer) Gold() float64       { return l.yield.Gold }
func (l *Layer) Science() float64    { return l.yield.Science }
func (l *Layer) ZIndex() int         { return l.zIndex }
func (l *Layer) Yield() Yield        { return l.yield }

func (l *Layer) SetFood(v float64)       { l.yield.Food = v }
func (l *Layer) SetProduction(v float64) { l.yield.Production = v }
func (l *Layer) SetGold(v float64)       { l.yield.Gold = v }
func (l *Layer) SetScience(v float64)    { l.yield.Science = v }
func (l *Layer) SetZIndex(z int)         { l.zIndex = z }

// Value returns the layer's contribution for one resource.
func (l *Layer) Value(r Resource) float64 {
	return l.yield.Get(r)
}

// Stack is the ordered, append-only collection of layers owned by one tile.
// Layers are stored by pointer so handles returned from Add stay valid as the
// stack grows.
type Stack struct {
	layers []*Layer
}

// Add appends a copy of l and returns a handle for in-place updates.
func (s *Stack) Add(l Layer) *Layer {
	p := &l
	s.layers = append(s.layers, p)
	return p
}

// Len returns the number of attached layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// At returns the i-th layer in insertion order.
func (s *Stack) At(i int) *Layer {
	return s.layers[i]
}

// Aggregate sums one resource over every layer.
func (s *Stack) Aggregate(r Resource) float64 {
	var total float64
	for _, l := range s.layers {
		total += l.Value(r)
	}
	return total
}

// Totals sums all four resources.
func (s *Stack) Totals() Yield {
	var total Yield
	for _, l := range s.layers {
		total = total.Add(l.yield)
	}
	return total
}

// DrawOrder returns the layers sorted by ascending z-index. Equal z-indices keep
// insertion order.
func (s *Stack) DrawOrder() []*Layer {
	ordered := make([]*Layer, len(s.layers))
	copy(ordered, s.layers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].zIndex < ordered[j].zIndex
	})
	return ordered
}

// Replace discards every attached layer and installs ls in one step.
func (s *Stack) Replace(ls []Layer) {
	fresh := make([]*Layer, len(ls))
	for i := range ls {
		l := ls[i]
		fresh[i] = &l
	}
	s.layers = fresh
}

// Clear removes every layer.
func (s *Stack) Clear() {
	s.layers = nil
}
