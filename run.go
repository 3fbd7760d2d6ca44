package aureole

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NewApp builds the ring scene described by cfg. Assets (the normal map and
// the test script) are read from fsys. A missing or undecodable normal map
// is logged and the scene is built without normal mapping; a bad script is
// an error.
func NewApp(cfg RunConfig, fsys fs.FS) (*App, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	opts := cfg.buildOptions()

	if cfg.NormalMap != "" && fsys != nil {
		nm, err := LoadNormalMap(fsys, cfg.NormalMap)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[aureole] %v; continuing without normal mapping\n", err)
		} else {
			opts.NormalMap = nm
		}
	}

	a := BuildScene(opts)
	a.ScreenshotDir = cfg.ScreenshotDir
	a.Renderer.Debug = cfg.Debug

	if cfg.Script != "" {
		if fsys == nil {
			return nil, fmt.Errorf("aureole: script %s: no asset filesystem", cfg.Script)
		}
		data, err := fs.ReadFile(fsys, cfg.Script)
		if err != nil {
			return nil, fmt.Errorf("aureole: read script: %w", err)
		}
		runner, err := LoadTestScript(data)
		if err != nil {
			return nil, fmt.Errorf("aureole: %w", err)
		}
		a.SetTestRunner(runner)
	}
	return a, nil
}

// game adapts an App and its Loop to ebiten.Game.
type game struct {
	app  *App
	loop *Loop
	cfg  RunConfig

	outsideW, outsideH float64
	last               time.Time
}

// Update polls input, advances the panel and runs one frame tick.
func (g *game) Update() error {
	if g.loop.Stopped() {
		return ebiten.Termination
	}

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	a := g.app
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.Panel.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.Controls.Reset()
	}
	a.processInput(func() pointerFrame {
		return pollPointer(a.Renderer.PixelRatio())
	})
	a.Panel.Update(float32(dt))

	if !g.loop.Tick() {
		return ebiten.Termination
	}

	if g.cfg.ExitAfterScript && a.runner != nil && a.runner.Done() {
		g.loop.Stop()
	}
	return nil
}

// Draw renders the app; in debug mode the render stats are overlaid.
func (g *game) Draw(screen *ebiten.Image) {
	g.app.Draw(screen)
	if g.cfg.Debug {
		s := g.app.Renderer.Stats()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tris: %d  culled: %d  batches: %d",
			s.Triangles, s.Culled, s.Batches), 4, 4)
	}
}

// LayoutF resizes the app when the window size changes and returns the
// drawing buffer size at the renderer's pixel ratio.
func (g *game) LayoutF(outsideW, outsideH float64) (float64, float64) {
	if outsideW != g.outsideW || outsideH != g.outsideH {
		g.outsideW, g.outsideH = outsideW, outsideH
		g.app.Resize(int(outsideW), int(outsideH))
	}
	bw, bh := g.app.Renderer.BufferSize()
	return float64(bw), float64(bh)
}

// Layout is required by ebiten.Game; LayoutF takes precedence.
func (g *game) Layout(outsideW, outsideH int) (int, int) {
	w, h := g.LayoutF(float64(outsideW), float64(outsideH))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// Run opens a window and drives app once per display refresh until the
// window closes, ctx is cancelled or, with ExitAfterScript, the attached
// script finishes.
func Run(ctx context.Context, app *App, cfg RunConfig) error {
	if app.DeviceScale == nil {
		app.DeviceScale = func() float64 {
			return ebiten.Monitor().DeviceScaleFactor()
		}
	}

	loop := NewLoop(app)
	loop.Bind(ctx)
	defer loop.Stop()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	g := &game{app: app, loop: loop, cfg: cfg}
	if err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: cfg.Transparent,
	}); err != nil {
		return fmt.Errorf("aureole: run: %w", err)
	}
	return nil
}
