package aureole

// Injected pointer frames replace real input for the frame that consumes
// them, one per Update. Coordinates are logical window pixels.

// InjectMove queues a pointer move with no button held.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, pointerFrame{x: x, y: y, cursor: true})
}

// InjectPress queues a left-button press at (x, y).
func (a *App) InjectPress(x, y float64) {
	a.injectQueue = append(a.injectQueue, pointerFrame{x: x, y: y, left: true, cursor: true})
}

// InjectRelease queues a left-button release at (x, y).
func (a *App) InjectRelease(x, y float64) {
	a.injectQueue = append(a.injectQueue, pointerFrame{x: x, y: y, cursor: true})
}

// InjectClick queues a press and a release at the same point. It consumes
// two frames.
func (a *App) InjectClick(x, y float64) {
	a.InjectPress(x, y)
	a.InjectRelease(x, y)
}

// InjectDrag queues a left-button drag from (fromX, fromY) to (toX, toY)
// spread over frames frames, press and release included. frames is at
// least 2.
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		a.injectQueue = append(a.injectQueue, pointerFrame{
			x:      fromX + (toX-fromX)*t,
			y:      fromY + (toY-fromY)*t,
			left:   true,
			cursor: true,
		})
	}
	a.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel movement at the last known pointer position.
// It does not move the pointer. With ctrl set it dollies the camera instead
// of scrolling.
func (a *App) InjectWheel(wheelY float64, ctrl bool) {
	x, y := a.router.prev.x, a.router.prev.y
	if n := len(a.injectQueue); n > 0 {
		x, y = a.injectQueue[n-1].x, a.injectQueue[n-1].y
	}
	a.injectQueue = append(a.injectQueue, pointerFrame{x: x, y: y, wheelY: wheelY, ctrl: ctrl})
}

// popInjected removes and returns the oldest injected frame.
func (a *App) popInjected() (pointerFrame, bool) {
	if len(a.injectQueue) == 0 {
		return pointerFrame{}, false
	}
	f := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
	return f, true
}
