package aureole

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// rasterTriangle is a projected, lit triangle ready for submission.
type rasterTriangle struct {
	verts [3]ebiten.Vertex
	depth float64 // mean clip-space w; larger is farther
}

// meshScratch holds per-vertex results for the mesh being projected.
// Buffers grow to a high-water mark and are never shrunk.
type meshScratch struct {
	clip   []Vec3 // NDC x, y, z after the perspective divide
	w      []float64
	colors [][4]float32
}

func (s *meshScratch) reset(n int) {
	if cap(s.clip) < n {
		s.clip = make([]Vec3, n)
		s.w = make([]float64, n)
		s.colors = make([][4]float32, n)
	}
	s.clip = s.clip[:n]
	s.w = s.w[:n]
	s.colors = s.colors[:n]
}

// prepare projects and lights every visible mesh, appending the surviving
// triangles to r.tris sorted far to near.
func (r *Renderer) prepare(scene *Scene, cam *PerspectiveCamera) {
	r.tris = r.tris[:0]
	r.stats.Meshes = 0
	r.stats.Triangles = 0
	r.stats.Culled = 0
	r.stats.Clipped = 0

	bw, bh := r.BufferSize()
	if bw <= 0 || bh <= 0 {
		return
	}

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()
	viewProj := multiplyMat4(proj, view)

	lights := r.lightBuf[:0]
	for _, l := range scene.Lights() {
		if !l.Enabled || l.Intensity <= 0 {
			continue
		}
		lights = append(lights, shadeLight{
			pos:        l.Position,
			r:          float32(l.Color.R * l.Intensity),
			g:          float32(l.Color.G * l.Intensity),
			b:          float32(l.Color.B * l.Intensity),
			castShadow: l.CastShadow && r.ShadowsEnabled,
		})
	}
	r.lightBuf = lights

	occluders := r.occluderBuf[:0]
	if r.ShadowsEnabled {
		occluders = appendOccluders(occluders, scene)
	}
	r.occluderBuf = occluders

	for _, m := range scene.Meshes() {
		if !m.Visible {
			continue
		}
		r.stats.Meshes++
		r.projectMesh(m, &viewProj, cam.Position, cam.Near, float64(bw), float64(bh), lights, occluders)
	}

	slices.SortStableFunc(r.tris, func(a, b rasterTriangle) int {
		return cmp.Compare(b.depth, a.depth)
	})
	r.stats.Triangles = len(r.tris)
}

func (r *Renderer) projectMesh(m *Mesh, viewProj *Mat4, eye Vec3, near, bw, bh float64, lights []shadeLight, occluders []occluder) {
	g := m.Geometry()
	mat := m.Material()
	world := m.WorldMatrix()
	mvp := multiplyMat4(*viewProj, world)
	surf := newSurface(mat)
	receive := m.ReceiveShadow && r.ShadowsEnabled

	sc := &r.scratch
	sc.reset(len(g.Positions))

	for i, p := range g.Positions {
		c, w := transformPoint(&mvp, p)
		sc.w[i] = w
		if w > 0 {
			sc.clip[i] = c.Scale(1 / w)
		}

		n := g.Normals[i]
		if mat.NormalMap != nil {
			uv := g.UVs[i]
			n = perturbNormal(n, mat.NormalMap.Sample(uv.U, uv.V))
		}
		wp, _ := transformPoint(&world, p)
		wn := transformDirection(&world, n).Normalize()
		cr, cg, cb, ca := shadeVertex(&surf, wp, wn, eye, lights, occluders, m, receive)
		sc.colors[i] = [4]float32{cr, cg, cb, ca}
	}

	idx := g.Indices
	for t := 0; t+2 < len(idx); t += 3 {
		i0, i1, i2 := idx[t], idx[t+1], idx[t+2]
		if sc.w[i0] < near || sc.w[i1] < near || sc.w[i2] < near {
			r.stats.Clipped++
			continue
		}
		a, b, c := sc.clip[i0], sc.clip[i1], sc.clip[i2]
		// Counter-clockwise in NDC (y up) is the front side.
		area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
		if area <= 0 {
			r.stats.Culled++
			continue
		}
		var tri rasterTriangle
		for k, vi := range [3]uint16{i0, i1, i2} {
			ndc := sc.clip[vi]
			col := sc.colors[vi]
			tri.verts[k] = ebiten.Vertex{
				DstX:   float32((ndc.X + 1) / 2 * bw),
				DstY:   float32((1 - ndc.Y) / 2 * bh),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: col[0],
				ColorG: col[1],
				ColorB: col[2],
				ColorA: col[3],
			}
		}
		tri.depth = (sc.w[i0] + sc.w[i1] + sc.w[i2]) / 3
		r.tris = append(r.tris, tri)
	}
}
