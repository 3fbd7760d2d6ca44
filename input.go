package aureole

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// defaultWheelStep is the scroll distance in pixels for one wheel notch,
// roughly what browsers scroll a page per notch.
const defaultWheelStep = 100

// InputState is the latest pointer and scroll input. Events overwrite it;
// only the most recent values matter to the frame loop.
type InputState struct {
	// CenterX and CenterY are the window center captured when the scene was
	// built. They are not updated on resize.
	CenterX, CenterY float64

	// PointerX and PointerY are the pointer offset from the center.
	PointerX, PointerY float64

	// ScrollY is the emulated vertical page scroll offset, never negative.
	ScrollY float64
	// Scrolled is set by the first scroll event.
	Scrolled bool

	// MaxScroll clamps ScrollY when positive.
	MaxScroll float64
	// WheelStep converts wheel notches to scroll pixels.
	WheelStep float64
}

// NewInputState creates input state centered on a w x h window.
func NewInputState(w, h int) *InputState {
	return &InputState{
		CenterX:   float64(w) / 2,
		CenterY:   float64(h) / 2,
		WheelStep: defaultWheelStep,
	}
}

// MovePointer records a pointer position in window coordinates.
func (s *InputState) MovePointer(clientX, clientY float64) {
	s.PointerX = clientX - s.CenterX
	s.PointerY = clientY - s.CenterY
}

// SetScroll records an absolute scroll offset.
func (s *InputState) SetScroll(y float64) {
	if y < 0 {
		y = 0
	}
	if s.MaxScroll > 0 && y > s.MaxScroll {
		y = s.MaxScroll
	}
	s.ScrollY = y
	s.Scrolled = true
}

// ScrollWheel applies a wheel movement. Positive wheelY scrolls up, as
// ebiten.Wheel reports it.
func (s *InputState) ScrollWheel(wheelY float64) {
	if wheelY == 0 {
		return
	}
	s.SetScroll(s.ScrollY - wheelY*s.WheelStep)
}

// pointerFrame is one frame's raw pointer snapshot.
type pointerFrame struct {
	x, y        float64
	left, right bool
	wheelY      float64
	ctrl        bool

	// cursor marks a frame whose position is an explicit pointer event
	// rather than a polled sample.
	cursor bool
}

// pollPointer reads the real mouse state from ebiten. The cursor position
// comes in drawing-buffer pixels and is divided by ratio to get logical
// window coordinates.
func pollPointer(ratio float64) pointerFrame {
	if ratio <= 0 {
		ratio = 1
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return pointerFrame{
		x:      float64(mx) / ratio,
		y:      float64(my) / ratio,
		left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		wheelY: wy,
		ctrl: ebiten.IsKeyPressed(ebiten.KeyControl) ||
			ebiten.IsKeyPressed(ebiten.KeyMeta),
	}
}

// dragMode says what a held pointer button is driving.
type dragMode uint8

const (
	dragNone dragMode = iota
	dragPanel
	dragRotate
	dragPan
)

// pointerRouter turns raw pointer frames into input-state updates, panel
// interaction and orbit gestures.
type pointerRouter struct {
	prev    pointerFrame
	hasPrev bool
	mode    dragMode
}

// route applies one pointer frame to the app.
func (pr *pointerRouter) route(a *App, f pointerFrame) {
	// The first polled sample is only a baseline: ebiten reports (0, 0)
	// until the cursor enters the window, and the pointer offset must stay
	// zero until it actually moves.
	differs := !pr.hasPrev || f.x != pr.prev.x || f.y != pr.prev.y
	if differs && (pr.hasPrev || f.cursor) {
		a.Input.MovePointer(f.x, f.y)
	}

	dx, dy := 0.0, 0.0
	if pr.hasPrev {
		dx, dy = f.x-pr.prev.x, f.y-pr.prev.y
	}
	pressedLeft := f.left && (!pr.hasPrev || !pr.prev.left)
	pressedRight := f.right && (!pr.hasPrev || !pr.prev.right)

	switch {
	case pr.mode == dragNone && (pressedLeft || pressedRight):
		if a.Panel != nil && a.Panel.Press(f.x, f.y) {
			pr.mode = dragPanel
		} else if pressedLeft {
			pr.mode = dragRotate
		} else {
			pr.mode = dragPan
		}
	case pr.mode == dragPanel:
		if f.left || f.right {
			a.Panel.Drag(f.x, f.y)
		} else {
			a.Panel.Release()
			pr.mode = dragNone
		}
	case pr.mode == dragRotate:
		if f.left {
			a.Controls.Rotate(dx, dy, float64(a.height))
		} else {
			pr.mode = dragNone
		}
	case pr.mode == dragPan:
		if f.right {
			a.Controls.Pan(dx, dy, float64(a.height))
		} else {
			pr.mode = dragNone
		}
	}

	if f.wheelY != 0 {
		if f.ctrl {
			a.Controls.Dolly(f.wheelY)
		} else {
			a.Input.ScrollWheel(f.wheelY)
		}
	}

	pr.prev = f
	pr.hasPrev = true
}
