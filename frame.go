package aureole

// Frame updater coefficients.
const (
	pointerFactor = 0.001
	scrollFactor  = 0.001
	spinRate      = 0.5
)

// FrameState holds the values derived during the last UpdateFrame.
type FrameState struct {
	TargetX, TargetY float64
	Elapsed          float64
	Ticks            uint64
}

// UpdateFrame advances the scene by one tick: it reads the clock and input,
// writes ring and icosahedron transforms, advances the orbit controls and
// requests a redraw. Lights are never touched here.
func UpdateFrame(a *App) {
	f := &a.Frame
	f.TargetX = a.Input.PointerX * pointerFactor
	f.TargetY = a.Input.PointerY * pointerFactor
	t := a.Clock.Elapsed()
	f.Elapsed = t

	r1, r3 := a.Rings[0], a.Rings[2]
	r1.Rotation.Y = spinRate * t
	r1.Rotation.X = spinRate * t

	// Ring 2 keeps its initial orientation.

	r3.Rotation.Y = -(spinRate * t) * 2
	r3.Rotation.X = spinRate * t

	ico := a.Icosahedron
	ico.Rotation.Y = -(spinRate*t - 10*5)
	ico.Rotation.X = spinRate * t
	ico.Rotation.Y += 0.5 * (f.TargetX - r1.Rotation.Y)

	if a.Input.Scrolled {
		ico.Position.Y = a.Input.ScrollY * scrollFactor
	}

	a.Controls.Update()

	a.redraw = true
	f.Ticks++
}
