package aureole

// PerspectiveCamera projects the scene with a vertical field of view. The
// camera always looks at Target with +Y up; OrbitControls moves Position
// around Target.
type PerspectiveCamera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is viewport width / height.
	Aspect float64
	Near   float64
	Far    float64

	Position Vec3
	Target   Vec3
	Up       Vec3

	projection Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z.
func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: Vec3{0, 0, -1},
		Up:     Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect, Near
// or Far change.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = perspectiveMatrix(c.FOV, c.Aspect, c.Near, c.Far)
}

// ProjectionMatrix returns the cached projection matrix.
func (c *PerspectiveCamera) ProjectionMatrix() Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() Mat4 {
	return viewMatrix(c.Position, c.Target, c.Up)
}

// LookAt points the camera at target.
func (c *PerspectiveCamera) LookAt(target Vec3) {
	c.Target = target
}

// Basis returns the camera's right, up and backward axes in world space.
func (c *PerspectiveCamera) Basis() (right, up, back Vec3) {
	return lookAtBasis(c.Position, c.Target, c.Up)
}
