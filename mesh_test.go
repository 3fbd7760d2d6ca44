package aureole

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeshDefaults(t *testing.T) {
	g := NewIcosahedronGeometry(1)
	mat := NewStandardMaterial("m")
	m := NewMesh("ico", g, mat)
	assert.True(t, m.Visible)
	assert.False(t, m.CastShadow)
	assert.Same(t, g, m.Geometry())
	assert.Same(t, mat, m.Material())
	assert.NotZero(t, m.ID)

	other := NewMesh("other", g, mat)
	assert.NotEqual(t, m.ID, other.ID)
}

func TestNewMeshPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewMesh("x", nil, NewStandardMaterial("m")) })
	assert.Panics(t, func() { NewMesh("x", NewIcosahedronGeometry(1), nil) })
}

func TestMeshWorldMatrix(t *testing.T) {
	m := NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	m.SetPosition(0, 0.6, 0)
	m.Rotation = Euler{Y: math.Pi}
	w := m.WorldMatrix()
	p, _ := transformPoint(&w, Vec3{1, 0, 0})
	assertVec(t, Vec3{-1, 0.6, 0}, p)

	c, r := m.worldBoundingSphere(&w)
	assertVec(t, Vec3{0, 0.6, 0}, c)
	assert.InDelta(t, 1, r, 1e-9)
}

func TestNewStandardMaterialDefaults(t *testing.T) {
	m := NewStandardMaterial("m")
	assert.Equal(t, ColorWhite, m.Color)
	assert.Equal(t, 1.0, m.Roughness)
	assert.Zero(t, m.Metalness)
	assert.Equal(t, 1.0, m.Opacity)
	assert.False(t, m.Transparent)
	assert.Nil(t, m.NormalMap)
}

func TestPointLight(t *testing.T) {
	l := NewPointLight("l", 0xdf00ff, 1.11)
	assert.True(t, l.Enabled)
	assert.Equal(t, 1.11, l.Intensity)
	l.SetHex(0x00ff00)
	assert.Equal(t, Color{0, 1, 0, 1}, l.Color)
}
