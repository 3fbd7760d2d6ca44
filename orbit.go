package aureole

import "math"

// orbitEPS keeps the polar angle away from the poles.
const orbitEPS = 0.000001

// OrbitControls rotates, dollies and pans a PerspectiveCamera around a
// target point. With damping enabled, user input accumulates into pending
// deltas that are applied a fraction per Update, giving inertial motion.
type OrbitControls struct {
	camera *PerspectiveCamera

	// Target is the focal point the camera orbits.
	Target Vec3

	EnableDamping bool
	DampingFactor float64

	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	MinDistance float64
	MaxDistance float64

	// pending input
	deltaTheta float64
	deltaPhi   float64
	scale      float64
	panOffset  Vec3

	home       Vec3
	homeTarget Vec3
}

// NewOrbitControls attaches orbit controls to cam, targeting the origin and
// recording the camera's current position as the reset state.
func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	oc := &OrbitControls{
		camera:        cam,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
	oc.SaveState()
	oc.Update()
	return oc
}

// Camera returns the controlled camera.
func (oc *OrbitControls) Camera() *PerspectiveCamera {
	return oc.camera
}

// SaveState records the current camera position and target for Reset.
func (oc *OrbitControls) SaveState() {
	oc.home = oc.camera.Position
	oc.homeTarget = oc.Target
}

// Reset restores the saved state and drops pending motion.
func (oc *OrbitControls) Reset() {
	oc.camera.Position = oc.home
	oc.Target = oc.homeTarget
	oc.deltaTheta, oc.deltaPhi = 0, 0
	oc.scale = 1
	oc.panOffset = Vec3{}
	oc.Update()
}

// Rotate queues a drag of (dx, dy) pixels on a viewport of the given height.
// A full-height drag turns the camera one full revolution.
func (oc *OrbitControls) Rotate(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	oc.deltaTheta -= 2 * math.Pi * dx / viewportHeight * oc.RotateSpeed
	oc.deltaPhi -= 2 * math.Pi * dy / viewportHeight * oc.RotateSpeed
}

// Dolly queues a zoom step. Positive steps move the camera toward the target.
func (oc *OrbitControls) Dolly(steps float64) {
	s := math.Pow(0.95, oc.ZoomSpeed*math.Abs(steps))
	if steps > 0 {
		oc.scale *= s
	} else if steps < 0 {
		oc.scale /= s
	}
}

// Pan queues a screen-space pan of (dx, dy) pixels on a viewport of the given
// height. The target moves with the camera.
func (oc *OrbitControls) Pan(dx, dy, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	offset := oc.camera.Position.Sub(oc.Target)
	dist := offset.Len() * math.Tan(oc.camera.FOV/2*math.Pi/180)
	right, up, _ := oc.camera.Basis()

	left := right.Scale(-2 * dx * dist / viewportHeight * oc.PanSpeed)
	upward := up.Scale(2 * dy * dist / viewportHeight * oc.PanSpeed)
	oc.panOffset = oc.panOffset.Add(left).Add(upward)
}

// Pending reports whether queued motion is still being applied.
func (oc *OrbitControls) Pending() bool {
	const eps = 1e-6
	return math.Abs(oc.deltaTheta) > eps || math.Abs(oc.deltaPhi) > eps ||
		math.Abs(oc.scale-1) > eps || oc.panOffset.Len() > eps
}

// Update applies pending motion to the camera and makes it look at Target.
// Returns true if the camera moved.
func (oc *OrbitControls) Update() bool {
	cam := oc.camera
	prev := cam.Position

	offset := cam.Position.Sub(oc.Target)
	radius := offset.Len()
	theta := math.Atan2(offset.X, offset.Z)
	phi := 0.0
	if radius > 0 {
		phi = math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))
	}

	f := 1.0
	if oc.EnableDamping {
		f = oc.DampingFactor
	}
	theta += oc.deltaTheta * f
	phi += oc.deltaPhi * f
	phi = math.Max(orbitEPS, math.Min(math.Pi-orbitEPS, phi))

	radius *= oc.scale
	radius = math.Max(oc.MinDistance, math.Min(oc.MaxDistance, radius))

	oc.Target = oc.Target.Add(oc.panOffset.Scale(f))

	sinPhi := math.Sin(phi)
	offset = Vec3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	}
	cam.Position = oc.Target.Add(offset)
	cam.LookAt(oc.Target)

	if oc.EnableDamping {
		oc.deltaTheta *= 1 - oc.DampingFactor
		oc.deltaPhi *= 1 - oc.DampingFactor
		oc.panOffset = oc.panOffset.Scale(1 - oc.DampingFactor)
	} else {
		oc.deltaTheta, oc.deltaPhi = 0, 0
		oc.panOffset = Vec3{}
	}
	oc.scale = 1

	return cam.Position.Sub(prev).Len() > 1e-9
}
