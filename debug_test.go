package aureole

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderStatsZeroTimingsWithoutDebug(t *testing.T) {
	a, _ := newTestApp(t)
	a.Renderer.prepare(a.Scene, a.Camera)
	s := a.Renderer.Stats()
	assert.Zero(t, s.PrepareTime)
	assert.Zero(t, s.SubmitTime)
	assert.Positive(t, s.Triangles)
}

func TestDebugLogDisabled(t *testing.T) {
	r := NewRenderer(RendererOptions{})
	assert.NotPanics(t, r.debugLog)
}
