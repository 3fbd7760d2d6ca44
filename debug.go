package aureole

import (
	"fmt"
	"os"
	"time"
)

// RenderStats holds per-frame counters. Timings are only populated when
// Renderer.Debug is true.
type RenderStats struct {
	Meshes    int
	Triangles int // submitted after culling
	Culled    int // back faces
	Clipped   int // triangles crossing the near plane
	Batches   int

	PrepareTime time.Duration
	SubmitTime  time.Duration
}

// debugLog prints timing and triangle stats to stderr.
func (r *Renderer) debugLog() {
	if !r.Debug {
		return
	}
	s := r.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[aureole] prepare: %v | submit: %v | total: %v\n",
		s.PrepareTime, s.SubmitTime, s.PrepareTime+s.SubmitTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[aureole] meshes: %d | triangles: %d | culled: %d | clipped: %d | batches: %d\n",
		s.Meshes, s.Triangles, s.Culled, s.Clipped, s.Batches)
}
