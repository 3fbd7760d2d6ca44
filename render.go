package aureole

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchTriangles bounds a single DrawTriangles call so vertex indices fit
// in uint16.
const maxBatchTriangles = 16384

// RendererOptions configures a Renderer.
type RendererOptions struct {
	// Alpha clears to transparent instead of the scene background.
	Alpha bool
	// Shadows enables occlusion of shadow-casting lights.
	Shadows bool
}

// Renderer projects a Scene through a PerspectiveCamera and draws the lit
// triangles onto an ebiten.Image.
type Renderer struct {
	Alpha          bool
	ShadowsEnabled bool

	// Debug logs per-frame timing and triangle counts to stderr.
	Debug bool

	width, height int
	pixelRatio    float64

	tris        []rasterTriangle
	scratch     meshScratch
	lightBuf    []shadeLight
	occluderBuf []occluder
	verts       []ebiten.Vertex
	inds        []uint16
	drawOp      ebiten.DrawTrianglesOptions

	stats RenderStats
}

// NewRenderer creates a renderer with a zero size and a pixel ratio of 1.
func NewRenderer(opts RendererOptions) *Renderer {
	r := &Renderer{
		Alpha:          opts.Alpha,
		ShadowsEnabled: opts.Shadows,
		pixelRatio:     1,
	}
	r.drawOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	return r
}

// SetSize sets the logical drawing size in device-independent pixels.
func (r *Renderer) SetSize(w, h int) {
	r.width = max(w, 0)
	r.height = max(h, 0)
}

// Size returns the logical drawing size.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// SetPixelRatio sets the device pixel ratio. Values <= 0 are treated as 1.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	r.pixelRatio = ratio
}

// PixelRatio returns the device pixel ratio.
func (r *Renderer) PixelRatio() float64 {
	return r.pixelRatio
}

// BufferSize returns the drawing buffer size in physical pixels.
func (r *Renderer) BufferSize() (w, h int) {
	return int(math.Ceil(float64(r.width) * r.pixelRatio)),
		int(math.Ceil(float64(r.height) * r.pixelRatio))
}

// Stats returns the counters from the last Render.
func (r *Renderer) Stats() RenderStats {
	return r.stats
}

// Render clears dst and draws the scene from cam.
func (r *Renderer) Render(dst *ebiten.Image, scene *Scene, cam *PerspectiveCamera) {
	var t0 time.Time
	if r.Debug {
		t0 = time.Now()
	}

	r.prepare(scene, cam)

	if r.Debug {
		r.stats.PrepareTime = time.Since(t0)
		t0 = time.Now()
	}

	if r.Alpha {
		dst.Clear()
	} else {
		dst.Fill(scene.Background.toRGBA())
	}
	r.submit(dst)

	if r.Debug {
		r.stats.SubmitTime = time.Since(t0)
		r.debugLog()
	}
}

// submit draws r.tris in order, splitting into uint16-indexable batches.
func (r *Renderer) submit(dst *ebiten.Image) {
	r.stats.Batches = 0
	for start := 0; start < len(r.tris); start += maxBatchTriangles {
		end := min(start+maxBatchTriangles, len(r.tris))
		r.fillBatch(r.tris[start:end])
		dst.DrawTriangles(r.verts, r.inds, WhitePixel, &r.drawOp)
		r.stats.Batches++
	}
}

// fillBatch flattens triangles into the reusable vertex and index buffers.
func (r *Renderer) fillBatch(tris []rasterTriangle) {
	n := len(tris) * 3
	if cap(r.verts) < n {
		r.verts = make([]ebiten.Vertex, n)
		r.inds = make([]uint16, n)
	}
	r.verts = r.verts[:n]
	r.inds = r.inds[:n]
	for i := range tris {
		copy(r.verts[i*3:i*3+3], tris[i].verts[:])
		r.inds[i*3] = uint16(i * 3)
		r.inds[i*3+1] = uint16(i*3 + 1)
		r.inds[i*3+2] = uint16(i*3 + 2)
	}
}
