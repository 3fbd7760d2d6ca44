package aureole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	assert.Empty(t, s.Meshes())
	assert.Empty(t, s.Lights())
	assert.Equal(t, Color{0, 0, 0, 1}, s.Background)
}

func TestSceneAddKeepsOrder(t *testing.T) {
	s := NewScene()
	a := NewMesh("a", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	b := NewMesh("b", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	s.Add(a, b)
	assert.Equal(t, []*Mesh{a, b}, s.Meshes())
	assert.Same(t, b, s.MeshByName("b"))
	assert.Nil(t, s.MeshByName("c"))
}

func TestSceneAddPanics(t *testing.T) {
	s := NewScene()
	m := NewMesh("a", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	s.Add(m)
	assert.Panics(t, func() { s.Add(m) })
	assert.Panics(t, func() { s.Add(nil) })
	assert.Panics(t, func() { s.AddLight(nil) })
}
