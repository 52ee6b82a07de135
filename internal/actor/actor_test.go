package actor

import (
	"testing"

	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/world/tilemap"
)

func press(k render.Key) render.KeyEvent   { return render.KeyEvent{Key: k, Down: true} }
func release(k render.Key) render.KeyEvent { return render.KeyEvent{Key: k, Down: false} }

func TestHandleKeyPressAndRelease(t *testing.T) {
	a := New(0, 0, DefaultSize, DefaultStep)

	a.HandleKey(press(render.KeyRight))
	if a.VelX != 10 {
		t.Errorf("Expected VelX 10 after pressing right, got %d", a.VelX)
	}
	a.HandleKey(release(render.KeyRight))
	if a.VelX != 0 {
		t.Errorf("Expected VelX 0 after release, got %d", a.VelX)
	}

	a.HandleKey(press(render.KeyUp))
	if a.VelY != -10 {
		t.Errorf("Expected VelY -10 after pressing up, got %d", a.VelY)
	}
	a.HandleKey(release(render.KeyUp))
	if a.VelY != 0 {
		t.Errorf("Expected VelY 0 after release, got %d", a.VelY)
	}
}

func TestHandleKeyOppositeKeysCancel(t *testing.T) {
	a := New(0, 0, DefaultSize, DefaultStep)

	a.HandleKey(press(render.KeyLeft))
	a.HandleKey(press(render.KeyRight))
	if a.VelX != 0 {
		t.Errorf("Expected opposite keys to net to 0, got %d", a.VelX)
	}

	a.HandleKey(release(render.KeyLeft))
	if a.VelX != 10 {
		t.Errorf("Expected VelX 10 once left is released, got %d", a.VelX)
	}
	a.HandleKey(release(render.KeyRight))
	if a.VelX != 0 {
		t.Errorf("Expected VelX 0 once both are released, got %d", a.VelX)
	}
}

func TestHandleKeyIgnoresRepeats(t *testing.T) {
	a := New(0, 0, DefaultSize, DefaultStep)

	a.HandleKey(press(render.KeyDown))
	for i := 0; i < 5; i++ {
		if a.HandleKey(render.KeyEvent{Key: render.KeyDown, Down: true, Repeat: true}) {
			t.Error("Expected repeat to be ignored")
		}
	}
	if a.VelY != 10 {
		t.Errorf("Expected VelY 10 after repeats, got %d", a.VelY)
	}
}

func TestHandleKeyIgnoresOtherKeys(t *testing.T) {
	a := New(0, 0, DefaultSize, DefaultStep)
	if a.HandleKey(press(render.KeyF)) {
		t.Error("Expected F not to be handled as movement")
	}
	if a.VelX != 0 || a.VelY != 0 {
		t.Errorf("Expected zero velocity, got (%d, %d)", a.VelX, a.VelY)
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	cfg := tilemap.DefaultConfig()
	cfg.Rows, cfg.Cols = 2, 2
	cfg.TileWidth, cfg.TileHeight = 100, 100
	m, err := tilemap.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create map: %v", err)
	}
	if err := m.Set(m.Index(0, 1), tilemap.Water1); err != nil {
		t.Fatalf("Failed to set wall: %v", err)
	}

	a := New(60, 10, DefaultSize, DefaultStep)
	a.HandleKey(press(render.KeyRight))

	a.Move(m, m.LevelSize())
	if a.Box.X != 70 {
		t.Errorf("Expected x 70, got %d", a.Box.X)
	}
	a.Move(m, m.LevelSize())
	a.Move(m, m.LevelSize())
	if a.Box.X != 80 {
		t.Errorf("Expected x to stop flush at 80, got %d", a.Box.X)
	}
	if !a.Blocked.BlockedX {
		t.Error("Expected horizontal block to be recorded")
	}
}

func TestCenter(t *testing.T) {
	a := New(100, 200, 20, DefaultStep)
	if got := a.Center(); got != (geom.Point{X: 110, Y: 210}) {
		t.Errorf("Expected (110, 210), got %v", got)
	}
}

func TestStopClearsVelocity(t *testing.T) {
	a := New(0, 0, DefaultSize, DefaultStep)
	a.HandleKey(render.KeyEvent{Key: render.KeyRight, Down: true})
	a.HandleKey(render.KeyEvent{Key: render.KeyUp, Down: true})

	a.Stop()

	if a.VelX != 0 || a.VelY != 0 {
		t.Errorf("Expected zero velocity, got (%d, %d)", a.VelX, a.VelY)
	}
}
