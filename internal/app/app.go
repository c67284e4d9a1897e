//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"lifegrid/internal/render"
	"lifegrid/internal/ui"
	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an engine to the ebiten.Game interface, drawing the sparse
// alive-coordinate list it returns every generation.
type Game struct {
	engine  core.Engine
	painter *render.PointPainter
	hud     *ui.HUD

	onColor  color.Color
	offColor color.Color

	w, h       int
	paused     bool
	tickOnce   bool
	showHUD    bool
	seed       int64
	generation int
	points     core.Points
}

// New constructs a Game for the provided engine.
func New(engine core.Engine, cellSize float64, seed int64) *Game {
	size := engine.Size()
	w := int(math.Ceil(float64(size.W) * cellSize))
	h := int(math.Ceil(float64(size.H) * cellSize))
	return &Game{
		engine:   engine,
		painter:  render.NewPointPainter(w, h, cellSize),
		hud:      ui.NewHUD(0),
		onColor:  color.White,
		offColor: color.Black,
		w:        w,
		h:        h,
		showHUD:  true,
		seed:     seed,
	}
}

// Reset reseeds the engine and restarts the generation counter.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	g.generation = 0
	g.points = core.Points{}
	return g.engine.Reset(seed)
}

// Update handles per-frame logic and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if !g.paused || g.tickOnce {
		pts, err := g.engine.Advance()
		if err != nil {
			return fmt.Errorf("generation %d: %w", g.generation+1, err)
		}
		g.points = pts
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current alive points.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.points.Pairs(), g.onColor, g.offColor)
	if !g.showHUD {
		return
	}
	size := g.engine.Size()
	g.hud.Draw(screen, ui.Status{
		Engine:     g.engine.Name(),
		Cols:       size.W,
		Rows:       size.H,
		Generation: g.generation,
		Population: g.points.Count,
		Paused:     g.paused,
		TPS:        ebiten.ActualTPS(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}

// Size returns the canvas size in pixels.
func (g *Game) Size() (int, int) { return g.w, g.h }
