package aureole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(w, h int) *Renderer {
	r := NewRenderer(RendererOptions{Alpha: true, Shadows: true})
	r.SetSize(w, h)
	return r
}

func newTestCamera(aspect float64) *PerspectiveCamera {
	cam := NewPerspectiveCamera(75, aspect, 0.1, 100)
	cam.Position = Vec3{0, 0, 5}
	cam.LookAt(Vec3{})
	return cam
}

func TestRendererDefaults(t *testing.T) {
	r := NewRenderer(RendererOptions{Alpha: true, Shadows: true})
	assert.True(t, r.Alpha)
	assert.True(t, r.ShadowsEnabled)
	assert.Equal(t, 1.0, r.PixelRatio())
	w, h := r.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRendererPixelRatio(t *testing.T) {
	r := newTestRenderer(101, 50)
	r.SetPixelRatio(1.5)
	bw, bh := r.BufferSize()
	assert.Equal(t, 152, bw)
	assert.Equal(t, 75, bh)
	r.SetPixelRatio(-1)
	assert.Equal(t, 1.0, r.PixelRatio())
}

func TestPrepareCullsBackFaces(t *testing.T) {
	scene := NewScene()
	scene.Add(NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m")))
	r := newTestRenderer(400, 400)
	r.prepare(scene, newTestCamera(1))

	s := r.Stats()
	assert.Equal(t, 1, s.Meshes)
	assert.Equal(t, 20, s.Triangles+s.Culled)
	assert.Positive(t, s.Culled)
	assert.Positive(t, s.Triangles)
	assert.Zero(t, s.Clipped)
	assert.Len(t, r.tris, s.Triangles)
}

func TestPrepareSortsFarToNear(t *testing.T) {
	scene := NewScene()
	near := NewMesh("near", NewIcosahedronGeometry(0.5), NewStandardMaterial("m"))
	near.SetPosition(0, 0, 2)
	far := NewMesh("far", NewIcosahedronGeometry(0.5), NewStandardMaterial("m"))
	far.SetPosition(0, 0, -3)
	scene.Add(near, far)

	r := newTestRenderer(400, 400)
	r.prepare(scene, newTestCamera(1))
	require.NotEmpty(t, r.tris)
	for i := 1; i < len(r.tris); i++ {
		assert.GreaterOrEqual(t, r.tris[i-1].depth, r.tris[i].depth)
	}
	assert.Greater(t, r.tris[0].depth, 7.0, "far mesh drawn first")
}

func TestPrepareRejectsBehindNearPlane(t *testing.T) {
	scene := NewScene()
	m := NewMesh("behind", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	m.SetPosition(0, 0, 8)
	scene.Add(m)
	r := newTestRenderer(400, 400)
	r.prepare(scene, newTestCamera(1))
	assert.Zero(t, r.Stats().Triangles)
	assert.Equal(t, 20, r.Stats().Clipped)
}

func TestPrepareSkipsInvisible(t *testing.T) {
	scene := NewScene()
	m := NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m"))
	m.Visible = false
	scene.Add(m)
	r := newTestRenderer(400, 400)
	r.prepare(scene, newTestCamera(1))
	assert.Zero(t, r.Stats().Meshes)
	assert.Empty(t, r.tris)
}

func TestPrepareEmptyBuffer(t *testing.T) {
	scene := NewScene()
	scene.Add(NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m")))
	r := NewRenderer(RendererOptions{})
	r.prepare(scene, newTestCamera(1))
	assert.Empty(t, r.tris)
}

func TestPrepareMapsToBuffer(t *testing.T) {
	scene := NewScene()
	scene.Add(NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m")))
	r := newTestRenderer(200, 100)
	r.SetPixelRatio(2)
	r.prepare(scene, newTestCamera(2))
	for _, tri := range r.tris {
		for _, v := range tri.verts {
			assert.InDelta(t, 200, v.DstX, 100, "centered in a 400 wide buffer")
			assert.InDelta(t, 100, v.DstY, 100)
			assert.Equal(t, float32(0.5), v.SrcX)
		}
	}
}

func TestPrepareDisabledLightsDoNotShade(t *testing.T) {
	scene := NewScene()
	scene.Add(NewMesh("ico", NewIcosahedronGeometry(1), NewStandardMaterial("m")))
	l := NewPointLight("l", 0xffffff, 1)
	l.Position = Vec3{0, 0, 10}
	l.Enabled = false
	scene.AddLight(l)

	r := newTestRenderer(400, 400)
	r.prepare(scene, newTestCamera(1))
	for _, tri := range r.tris {
		for _, v := range tri.verts {
			assert.Zero(t, v.ColorR)
		}
	}

	l.Enabled = true
	r.prepare(scene, newTestCamera(1))
	lit := false
	for _, tri := range r.tris {
		lit = lit || tri.verts[0].ColorR > 0
	}
	assert.True(t, lit)
}

func TestFillBatchIndices(t *testing.T) {
	r := newTestRenderer(10, 10)
	tris := make([]rasterTriangle, 3)
	r.fillBatch(tris)
	assert.Len(t, r.verts, 9)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8}, r.inds)
}

func TestMaxBatchFitsUint16(t *testing.T) {
	assert.LessOrEqual(t, maxBatchTriangles*3, 65535)
}

func TestBuiltSceneTriangleBudget(t *testing.T) {
	a := BuildScene(BuildOptions{Width: 800, Height: 600, Clock: &ManualClock{}})
	a.Renderer.prepare(a.Scene, a.Camera)
	s := a.Renderer.Stats()
	assert.Equal(t, 5, s.Meshes)
	total := 0
	for _, m := range a.Scene.Meshes() {
		total += m.Geometry().NumTriangles()
	}
	assert.Equal(t, total, s.Triangles+s.Culled+s.Clipped)
}
