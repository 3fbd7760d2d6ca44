package aureole

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// App is the whole application state: the scene graph, the handles the
// frame loop animates, camera, renderer, debug panel and input. It is passed
// explicitly to UpdateFrame each tick.
type App struct {
	Scene    *Scene
	Camera   *PerspectiveCamera
	Controls *OrbitControls
	Renderer *Renderer
	Panel    *Panel
	Input    *InputState
	Clock    Clock

	Rings       [3]*Mesh
	Icosahedron *Mesh
	Floor       *Mesh
	Lights      [3]*PointLight

	// Frame holds the values computed by the last UpdateFrame.
	Frame FrameState

	// DeviceScale reports the display's device scale factor. Nil means 1.
	DeviceScale func() float64

	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	width, height int
	redraw        bool

	router          pointerRouter
	injectQueue     []pointerFrame
	screenshotQueue []string
	runner          *TestRunner
}

// Size returns the logical viewport size set by the last Resize.
func (a *App) Size() (w, h int) {
	return a.width, a.height
}

// Resize matches the camera and renderer to a new viewport size. Sizes with
// a zero or negative dimension are ignored.
func (a *App) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	a.width, a.height = w, h

	a.Camera.Aspect = float64(w) / float64(h)
	a.Camera.UpdateProjectionMatrix()

	a.Renderer.SetSize(w, h)
	a.Renderer.SetPixelRatio(min(a.deviceScale(), maxPixelRatio))

	if a.Panel != nil {
		a.Panel.SetViewport(float64(w))
	}
}

// maxPixelRatio caps the drawing buffer density.
const maxPixelRatio = 2

func (a *App) deviceScale() float64 {
	if a.DeviceScale == nil {
		return 1
	}
	if s := a.DeviceScale(); s > 0 {
		return s
	}
	return 1
}

// RedrawRequested reports whether a tick ran since the last Draw. It is a
// report only: Ebitengine draws every frame regardless, and with
// SyncWithFPS every Draw follows an Update.
func (a *App) RedrawRequested() bool {
	return a.redraw
}

// processInput runs the attached script, then applies one injected pointer
// frame if any is queued, otherwise the one returned by poll. poll may be
// nil when there is no real input device.
func (a *App) processInput(poll func() pointerFrame) {
	if a.runner != nil {
		a.runner.step(a)
	}
	if f, ok := a.popInjected(); ok {
		a.router.route(a, f)
		return
	}
	if poll != nil {
		a.router.route(a, poll())
	}
}

// Draw renders the scene and the panel onto screen, then writes any queued
// screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	a.Renderer.Render(screen, a.Scene, a.Camera)
	if a.Panel != nil {
		a.Panel.Draw(screen, a.Renderer.PixelRatio())
	}
	a.redraw = false
	a.flushScreenshots(screen)
}
