package aureole

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestOrbit() (*PerspectiveCamera, *OrbitControls) {
	cam := NewPerspectiveCamera(75, 1, 0.1, 100)
	cam.Position = Vec3{0, 0, 5}
	return cam, NewOrbitControls(cam)
}

func TestOrbitControlsInitialState(t *testing.T) {
	cam, oc := newTestOrbit()
	assert.Equal(t, 0.05, oc.DampingFactor)
	assert.False(t, oc.EnableDamping)
	assert.Equal(t, Vec3{}, oc.Target)
	assertVec(t, Vec3{0, 0, 5}, cam.Position)
	assert.Equal(t, Vec3{}, cam.Target)
	assert.False(t, oc.Pending())
}

func TestOrbitControlsRotateWithoutDamping(t *testing.T) {
	cam, oc := newTestOrbit()
	// A quarter of the viewport height turns a quarter revolution.
	oc.Rotate(-100, 0, 400)
	assert.True(t, oc.Update())
	assert.InDelta(t, 5, cam.Position.Len(), 1e-9)
	assertVec(t, Vec3{5, 0, 0}, cam.Position)
	assert.False(t, oc.Pending())
}

func TestOrbitControlsDampingConverges(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.EnableDamping = true
	oc.Rotate(-100, 0, 400)

	want := math.Pi / 2
	prev := 0.0
	for i := 0; i < 400; i++ {
		oc.Update()
		theta := math.Atan2(cam.Position.X, cam.Position.Z)
		assert.GreaterOrEqual(t, theta, prev-1e-12, "tick %d moves monotonically", i)
		assert.LessOrEqual(t, theta, want+1e-9, "tick %d never overshoots", i)
		prev = theta
	}
	assert.InDelta(t, want, prev, 1e-6)
	assert.False(t, oc.Pending())
}

func TestOrbitControlsFirstDampedStep(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.EnableDamping = true
	oc.Rotate(-100, 0, 400)
	oc.Update()
	theta := math.Atan2(cam.Position.X, cam.Position.Z)
	assert.InDelta(t, math.Pi/2*0.05, theta, 1e-9)
	assert.True(t, oc.Pending())
}

func TestOrbitControlsPolarClamp(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.Rotate(0, 10000, 400)
	oc.Update()
	assert.Greater(t, cam.Position.Y, 4.99)
	assert.Greater(t, math.Hypot(cam.Position.X, cam.Position.Z), 0.0)
}

func TestOrbitControlsDolly(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.Dolly(1)
	oc.Update()
	assert.InDelta(t, 5*0.95, cam.Position.Len(), 1e-9)
	oc.Dolly(-1)
	oc.Update()
	assert.InDelta(t, 5, cam.Position.Len(), 1e-9)
}

func TestOrbitControlsDistanceLimits(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.MinDistance = 4
	oc.MaxDistance = 6
	oc.Dolly(20)
	oc.Update()
	assert.InDelta(t, 4, cam.Position.Len(), 1e-9)
	oc.Dolly(-40)
	oc.Update()
	assert.InDelta(t, 6, cam.Position.Len(), 1e-9)
}

func TestOrbitControlsPanMovesTarget(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.Pan(-50, 0, 400)
	oc.Update()
	assert.Greater(t, oc.Target.X, 0.0)
	assert.InDelta(t, oc.Target.X, cam.Position.X, 1e-9)
	assert.Equal(t, oc.Target, cam.Target)
}

func TestOrbitControlsReset(t *testing.T) {
	cam, oc := newTestOrbit()
	oc.EnableDamping = true
	oc.Rotate(80, 40, 400)
	oc.Pan(10, 10, 400)
	for i := 0; i < 10; i++ {
		oc.Update()
	}
	oc.Reset()
	assertVec(t, Vec3{0, 0, 5}, cam.Position)
	assert.Equal(t, Vec3{}, oc.Target)
	assert.False(t, oc.Pending())
}

func TestOrbitControlsIgnoresEmptyViewport(t *testing.T) {
	_, oc := newTestOrbit()
	oc.Rotate(10, 10, 0)
	oc.Pan(10, 10, 0)
	assert.False(t, oc.Pending())
}
