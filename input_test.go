package aureole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInputStateCenter(t *testing.T) {
	s := NewInputState(1024, 768)
	assert.Equal(t, 512.0, s.CenterX)
	assert.Equal(t, 384.0, s.CenterY)
	assert.Equal(t, float64(defaultWheelStep), s.WheelStep)
	assert.False(t, s.Scrolled)
}

func TestMovePointerOffsetsFromCenter(t *testing.T) {
	s := NewInputState(800, 600)
	s.MovePointer(400, 300)
	assert.Zero(t, s.PointerX)
	assert.Zero(t, s.PointerY)
	s.MovePointer(0, 600)
	assert.Equal(t, -400.0, s.PointerX)
	assert.Equal(t, 300.0, s.PointerY)
}

func TestCenterFixedAfterResize(t *testing.T) {
	a, _ := newTestApp(t)
	a.Resize(2000, 100)
	assert.Equal(t, 400.0, a.Input.CenterX)
	assert.Equal(t, 300.0, a.Input.CenterY)
}

func TestSetScrollClamps(t *testing.T) {
	s := NewInputState(800, 600)
	s.SetScroll(-50)
	assert.Zero(t, s.ScrollY)
	assert.True(t, s.Scrolled)

	s.MaxScroll = 1000
	s.SetScroll(5000)
	assert.Equal(t, 1000.0, s.ScrollY)
}

func TestScrollWheel(t *testing.T) {
	s := NewInputState(800, 600)
	s.ScrollWheel(0)
	assert.False(t, s.Scrolled, "zero wheel is not a scroll event")
	s.ScrollWheel(-1.5)
	assert.Equal(t, 150.0, s.ScrollY)
	s.ScrollWheel(1)
	assert.Equal(t, 50.0, s.ScrollY)
	s.ScrollWheel(10)
	assert.Zero(t, s.ScrollY)
}

func TestRouterRightDragPans(t *testing.T) {
	a, _ := newTestApp(t)
	r := &a.router
	r.route(a, pointerFrame{x: 100, y: 100, right: true})
	assert.Equal(t, dragPan, r.mode)
	r.route(a, pointerFrame{x: 150, y: 100, right: true})
	assert.True(t, a.Controls.Pending())
	r.route(a, pointerFrame{x: 150, y: 100})
	assert.Equal(t, dragNone, r.mode)
}

func TestRouterPanelDragReachesSlider(t *testing.T) {
	a, _ := newTestApp(t)
	a.Panel.Folder("Light 1").Open = true
	x0 := float64(800 - panelWidth - panelMarginRight)
	row := Rect{X: x0, Y: 4 * panelRowHeight, Width: panelWidth, Height: panelRowHeight}
	track := a.Panel.Slider("Light 1", "intensity").track(row)
	y := row.Y + row.Height/2

	r := &a.router
	r.route(a, pointerFrame{x: track.X, y: y, left: true})
	assert.Equal(t, dragPanel, r.mode)
	assert.Zero(t, a.Lights[0].Intensity)
	r.route(a, pointerFrame{x: track.X + track.Width, y: y, left: true})
	assert.Equal(t, 10.0, a.Lights[0].Intensity)
	r.route(a, pointerFrame{x: track.X + track.Width, y: y})
	assert.Equal(t, dragNone, r.mode)
	assert.False(t, a.Controls.Pending())
}

func TestRouterFirstPolledFrameIsBaseline(t *testing.T) {
	a, _ := newTestApp(t)
	r := &a.router

	// Cursor not yet in the window: ebiten reports the origin.
	r.route(a, pointerFrame{})
	r.route(a, pointerFrame{})
	assert.Zero(t, a.Input.PointerX)
	assert.Zero(t, a.Input.PointerY)

	UpdateFrame(a)
	assert.Equal(t, 50.0, a.Icosahedron.Rotation.Y, "no pointer nudge before the first move")

	r.route(a, pointerFrame{x: 10, y: 20})
	assert.Equal(t, -390.0, a.Input.PointerX)
	assert.Equal(t, -280.0, a.Input.PointerY)
}

func TestRouterFirstPolledFrameInsideWindow(t *testing.T) {
	a, _ := newTestApp(t)
	a.router.route(a, pointerFrame{x: 600, y: 100})
	assert.Zero(t, a.Input.PointerX, "a resting cursor is not a move")
	a.router.route(a, pointerFrame{x: 601, y: 100})
	assert.Equal(t, 201.0, a.Input.PointerX)
}
