package camera

import (
	"math/rand"
	"testing"

	"chosenoffset.com/civ/internal/geom"
)

func TestFollowCentresOnTarget(t *testing.T) {
	c := New(geom.Size{W: 640, H: 480})
	r := c.Follow(geom.Point{X: 1000, Y: 800}, geom.Size{W: 4096, H: 2304})

	if r.X != 680 || r.Y != 560 {
		t.Errorf("Expected origin (680, 560), got (%d, %d)", r.X, r.Y)
	}
	if r.W != 640 || r.H != 480 {
		t.Errorf("Expected size to stay 640x480, got %dx%d", r.W, r.H)
	}
}

func TestFollowClampsEachAxisIndependently(t *testing.T) {
	world := geom.Size{W: 4096, H: 2304}
	c := New(geom.Size{W: 1536, H: 968})

	tests := []struct {
		name   string
		center geom.Point
		want   geom.Point
	}{
		{"top-left corner", geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 0}},
		{"bottom-right corner", geom.Point{X: 4096, Y: 2304}, geom.Point{X: 4096 - 1536, Y: 2304 - 968}},
		{"left edge only", geom.Point{X: 10, Y: 1200}, geom.Point{X: 0, Y: 1200 - 484}},
		{"bottom edge only", geom.Point{X: 2000, Y: 2300}, geom.Point{X: 2000 - 768, Y: 2304 - 968}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.Follow(tt.center, world)
			if r.X != tt.want.X || r.Y != tt.want.Y {
				t.Errorf("Expected origin %v, got (%d, %d)", tt.want, r.X, r.Y)
			}
		})
	}
}

func TestFollowStaysInBoundsForRandomCentres(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 1000; trial++ {
		view := geom.Size{W: 1 + rng.Intn(500), H: 1 + rng.Intn(500)}
		world := geom.Size{W: view.W + rng.Intn(2000), H: view.H + rng.Intn(2000)}
		center := geom.Point{X: rng.Intn(world.W*2) - world.W/2, Y: rng.Intn(world.H*2) - world.H/2}

		c := New(view)
		r := c.Follow(center, world)

		if r.X < 0 || r.X > world.W-view.W {
			t.Fatalf("trial %d: x=%d outside [0, %d]", trial, r.X, world.W-view.W)
		}
		if r.Y < 0 || r.Y > world.H-view.H {
			t.Fatalf("trial %d: y=%d outside [0, %d]", trial, r.Y, world.H-view.H)
		}
	}
}

func TestFollowCentresWorldSmallerThanViewport(t *testing.T) {
	c := New(geom.Size{W: 800, H: 600})
	r := c.Follow(geom.Point{X: 50, Y: 50}, geom.Size{W: 400, H: 1000})

	if r.X != -200 {
		t.Errorf("Expected narrow world to be centred with x=-200, got %d", r.X)
	}
	if r.Y != 0 {
		t.Errorf("Expected y clamped to 0 on the normal axis, got %d", r.Y)
	}
}

func TestWorldToScreen(t *testing.T) {
	c := New(geom.Size{W: 100, H: 100})
	c.X, c.Y = 30, 40

	got := c.WorldToScreen(geom.Point{X: 50, Y: 45})
	if got != (geom.Point{X: 20, Y: 5}) {
		t.Errorf("Expected (20, 5), got %v", got)
	}
	if back := c.ScreenToWorld(got); back != (geom.Point{X: 50, Y: 45}) {
		t.Errorf("Expected round trip to (50, 45), got %v", back)
	}
}

func TestVisibleUsesExclusiveEdges(t *testing.T) {
	c := New(geom.Size{W: 100, H: 100})

	if !c.Visible(geom.Rect{X: 99, Y: 0, W: 10, H: 10}) {
		t.Error("Expected tile overlapping the right edge to be visible")
	}
	if c.Visible(geom.Rect{X: 100, Y: 0, W: 10, H: 10}) {
		t.Error("Expected tile touching the right edge to be culled")
	}
	if c.Visible(geom.Rect{X: -10, Y: 0, W: 10, H: 10}) {
		t.Error("Expected tile touching the left edge to be culled")
	}
}

func TestResizeKeepsOrigin(t *testing.T) {
	c := New(geom.Size{W: 100, H: 100})
	c.X, c.Y = 30, 40

	c.Resize(geom.Size{W: 200, H: 50})

	if c.X != 30 || c.Y != 40 || c.W != 200 || c.H != 50 {
		t.Errorf("Expected {30 40 200 50}, got %v", c.Rect)
	}
}
