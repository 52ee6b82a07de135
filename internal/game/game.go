// Package game ties the world, the actor and the camera into the frame loop.
package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"chosenoffset.com/civ/internal/actor"
	"chosenoffset.com/civ/internal/config"
	"chosenoffset.com/civ/internal/geom"
	"chosenoffset.com/civ/internal/logger"
	"chosenoffset.com/civ/internal/physics"
	"chosenoffset.com/civ/internal/render"
	"chosenoffset.com/civ/internal/telemetry"
	"chosenoffset.com/civ/internal/timer"
	"chosenoffset.com/civ/internal/ui/button"
	"chosenoffset.com/civ/internal/world/atlas"
	"chosenoffset.com/civ/internal/world/camera"
	"chosenoffset.com/civ/internal/world/layer"
	"chosenoffset.com/civ/internal/world/maploader"
	"chosenoffset.com/civ/internal/world/tilemap"
)

// Game holds all game state and logic.
type Game struct {
	ctx context.Context
	cfg *config.Config

	ScreenWidth  int
	ScreenHeight int

	World  *tilemap.TileMap
	Actor  *actor.Actor
	Camera *camera.Camera
	Button *button.Button

	Renderer render.Renderer
	InputMgr render.InputManager
	Engine   render.Engine
	Atlases  *atlas.Manager

	rng *rand.Rand
	FPS *timer.FPSCounter

	// UI state
	Messages []Message

	keyEvents   []render.KeyEvent
	mouseEvents []render.MouseEvent
}

// New creates a game over an empty world. Call Generate or LoadMap before
// running it.
func New(ctx context.Context, opts Options) (*Game, error) {
	ctx = ctxOrBackground(ctx)
	_, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if opts.Renderer == nil || opts.InputMgr == nil {
		return nil, errors.New("game: renderer and input manager are required")
	}

	world, err := tilemap.New(cfg.Map)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	t := opts.Timer
	if t == nil {
		t = timer.New()
	}

	g := &Game{
		ctx:          ctx,
		cfg:          cfg,
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		World:        world,
		Actor:        actor.New(cfg.Actor.StartX, cfg.Actor.StartY, cfg.Actor.Size, cfg.Actor.Step),
		Camera:       camera.New(geom.Size{W: cfg.Window.Width, H: cfg.Window.Height}),
		Button:       button.New(cfg.Button.Rect(), cfg.Button.Label),
		Renderer:     opts.Renderer,
		InputMgr:     opts.InputMgr,
		Engine:       opts.Engine,
		Atlases:      opts.Atlases,
		rng:          rng,
		FPS:          timer.NewFPSCounter(t),
	}

	span.SetAttributes(
		attribute.Int("world.rows", cfg.Map.Rows),
		attribute.Int("world.cols", cfg.Map.Cols),
		attribute.Int("screen.width", cfg.Window.Width),
		attribute.Int("screen.height", cfg.Window.Height),
	)
	return g, nil
}

// Config returns the settings the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Generate replaces every tile with a random kind and decorates the new tiles
// with their yields.
func (g *Game) Generate(ctx context.Context) {
	_, span := telemetry.Tracer("world").Start(ctxOrBackground(ctx), "world.regenerate")
	defer span.End()

	start := time.Now()
	g.World.Regenerate(g.rng, g.Decorator())
	g.settleActor()

	span.SetAttributes(
		attribute.String("world.generation", g.World.Generation()),
		attribute.Int("world.tiles", g.World.Len()),
		attribute.Int("world.walls", g.World.WallCount()),
		attribute.Int64("world.generation_ms", time.Since(start).Milliseconds()),
	)
	logger.Get().WithFields(logrus.Fields{
		"generation": g.World.Generation(),
		"walls":      g.World.WallCount(),
	}).Debug("Regenerated world")
}

// LoadMap fills the world from a map description and decorates it. On error
// the world keeps whatever the description set before the failure.
func (g *Game) LoadMap(ctx context.Context, path string) error {
	data, err := maploader.LoadMap(ctxOrBackground(ctx), path, g.World)
	if err != nil {
		return err
	}
	g.World.Decorate(g.Decorator())

	if data.PlayerSpawn != nil {
		g.Actor.PlaceAt(geom.Point{X: data.PlayerSpawn.X, Y: data.PlayerSpawn.Y})
	}
	g.settleActor()
	g.ShowMessage("Loaded " + data.Name)
	return nil
}

// Regenerate is Generate driven by the player.
func (g *Game) Regenerate() {
	g.Generate(g.ctx)
	g.ShowMessage("New world generated")
}

// Update handles one tick: input, regeneration, movement, then the camera.
func (g *Game) Update() error {
	dt := 1.0 / float64(g.cfg.Window.FPS)

	regenerate := false

	g.keyEvents = g.InputMgr.AppendKeyEvents(g.keyEvents[:0])
	for _, ev := range g.keyEvents {
		if ev.Repeat {
			continue
		}
		switch {
		case ev.Key == render.KeyEscape && ev.Down:
			return render.ErrTermination
		case ev.Key == render.KeyF && ev.Down:
			g.toggleFullscreen()
		case ev.Key == render.KeyR && ev.Down:
			regenerate = true
		default:
			g.Actor.HandleKey(ev)
		}
	}

	scale := g.InputMgr.PointerScale()
	g.mouseEvents = g.InputMgr.AppendMouseEvents(g.mouseEvents[:0])
	for _, ev := range g.mouseEvents {
		if g.Button.Pressed(ev, scale) {
			regenerate = true
		}
	}

	if regenerate {
		g.Regenerate()
	}

	// Key releases are lost while the window is unfocused.
	if !g.InputMgr.Focused() {
		g.Actor.Stop()
	}

	g.Actor.Move(g.World, g.World.LevelSize())
	g.UpdateCamera()
	g.updateMessages(dt)

	return nil
}

// UpdateCamera centres the camera on the actor, clamped to the world.
func (g *Game) UpdateCamera() {
	g.Camera.Follow(g.Actor.Center(), g.World.LevelSize())
}

// Layout returns the game's logical screen size. A resizable window takes the
// outside size and the camera viewport follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.cfg.Window.Resizable || outsideWidth <= 0 || outsideHeight <= 0 {
		return g.ScreenWidth, g.ScreenHeight
	}
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth, g.ScreenHeight = outsideWidth, outsideHeight
		g.Camera.Resize(geom.Size{W: outsideWidth, H: outsideHeight})
		g.UpdateCamera()
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) toggleFullscreen() {
	if g.Engine == nil {
		return
	}
	g.Engine.SetFullscreen(!g.Engine.IsFullscreen())
}

// Decorator returns the layers attached to each tile: a base layer with the
// family's yield, and one icon per non-zero food or production yield.
func (g *Game) Decorator() tilemap.Decorator {
	a := g.cfg.Assets
	pad := 8
	return func(index int, kind tilemap.Kind, box geom.Rect) []layer.Layer {
		y := g.cfg.FamilyYield(kind.Family())
		layers := []layer.Layer{layer.New(0, y)}

		slot := 0
		for _, r := range []layer.Resource{layer.Food, layer.Production} {
			if y.Get(r) == 0 {
				continue
			}
			offset := geom.Point{
				X: pad + slot*(a.IconWidth+pad/2),
				Y: box.H - a.IconHeight - pad,
			}
			layers = append(layers, layer.NewIcon(1, layer.Yield{}, r.String(), offset))
			slot++
		}
		return layers
	}
}

// settleActor moves the actor to the first open tile when the map put a wall
// under it, and clamps it into the world.
func (g *Game) settleActor() {
	level := g.World.LevelSize()
	box := g.Actor.Box
	box.X = max(0, min(box.X, level.W-box.W))
	box.Y = max(0, min(box.Y, level.H-box.H))
	g.Actor.Box = box

	if !physics.TouchesWall(box, g.World) {
		return
	}
	for i := 0; i < g.World.Len(); i++ {
		if g.World.IsWall(i) {
			continue
		}
		c := g.World.BoundingBox(i).Center()
		candidate := geom.Rect{X: c.X - box.W/2, Y: c.Y - box.H/2, W: box.W, H: box.H}
		if candidate.Within(g.World.Bounds()) && !physics.TouchesWall(candidate, g.World) {
			g.Actor.Box = candidate
			return
		}
	}
	logger.Get().Warn("No open tile for the actor")
}

// TileUnderActor returns the index of the tile under the actor's centre.
func (g *Game) TileUnderActor() (int, bool) {
	return g.World.IndexAt(g.Actor.Center())
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})

	logger.Get().WithField("message", text).Info("Message")
}
