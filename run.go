package oven

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// ErrQuit can be returned from RunConfig.OnUpdate to end Run cleanly.
var ErrQuit = errors.New("oven: quit")

// RunConfig configures the window and loop started by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool

	// CaptureCursor hides and locks the cursor, as first-person controls
	// expect.
	CaptureCursor bool
	// QuitOnEscape ends the loop when Escape is pressed.
	QuitOnEscape bool

	// Input overrides the ebiten keyboard and cursor sampling.
	Input InputSource
	// OnUpdate runs after the world update each tick.
	OnUpdate func(w *World, in FrameInput) error
	// OnDraw runs after the world hands its matrices to the renderer.
	OnDraw func(w *World, screen *ebiten.Image)
}

// game adapts a World to ebiten.Game.
type game struct {
	world *World
	cfg   RunConfig
	input InputSource
	ctx   context.Context
}

// Run opens a window and steps world once per tick with dt = 1/TPS until
// the window closes or a hook returns an error. ErrQuit is not reported.
func Run(world *World, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	g := &game{world: world, cfg: cfg, input: cfg.Input, ctx: context.Background()}
	if g.input == nil {
		g.input = &EbitenInput{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	Logger().Info("run",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	err := ebiten.RunGame(g)
	if errors.Is(err, ErrQuit) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func (g *game) Update() error {
	in := g.input.Sample()
	if g.cfg.QuitOnEscape && in.Pressed(KeyEscape) {
		return ErrQuit
	}
	dt := 1.0 / float64(ebiten.TPS())
	if err := g.world.Update(g.ctx, dt, in); err != nil {
		return err
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate(g.world, in)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.world.Draw()
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(g.world, screen)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f  TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
