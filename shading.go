package aureole

import (
	"math"

	"github.com/chewxy/math32"
)

// Shininess bounds for the Blinn-Phong approximation. Per-vertex shading
// cannot resolve the tiny highlights very smooth surfaces would produce.
const (
	minShininess = 1
	maxShininess = 256
)

// shadeLight is a light prepared for one frame.
type shadeLight struct {
	pos        Vec3
	r, g, b    float32 // color * intensity
	castShadow bool
}

// occluder is a shadow-casting mesh approximated by its bounding sphere.
type occluder struct {
	mesh   *Mesh
	center Vec3
	radius float64
}

// surface holds the material terms derived once per mesh per frame.
type surface struct {
	diffR, diffG, diffB float32
	specR, specG, specB float32
	shininess           float32
	specNorm            float32
	alpha               float32
}

func newSurface(m *StandardMaterial) surface {
	metal := float32(m.Metalness)
	ar, ag, ab := float32(m.Color.R), float32(m.Color.G), float32(m.Color.B)

	rough := math32.Max(float32(m.Roughness), 0.01)
	a := rough * rough
	shin := 2/(a*a) - 2
	shin = math32.Min(math32.Max(shin, minShininess), maxShininess)

	return surface{
		diffR:     ar * (1 - metal),
		diffG:     ag * (1 - metal),
		diffB:     ab * (1 - metal),
		specR:     mix32(0.04, ar, metal),
		specG:     mix32(0.04, ag, metal),
		specB:     mix32(0.04, ab, metal),
		shininess: shin,
		specNorm:  (shin + 2) / 8,
		alpha:     float32(m.alpha()),
	}
}

func mix32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// shadeVertex returns the premultiplied RGBA color of a vertex at world
// position pos with unit world normal n, seen from eye.
func shadeVertex(s *surface, pos, n, eye Vec3, lights []shadeLight, occluders []occluder, self *Mesh, receive bool) (r, g, b, a float32) {
	v := eye.Sub(pos).Normalize()

	for i := range lights {
		l := &lights[i]
		if receive && l.castShadow && shadowed(pos, l.pos, occluders, self) {
			continue
		}
		ld := l.pos.Sub(pos).Normalize()
		ndotl := float32(n.Dot(ld))
		if ndotl <= 0 {
			continue
		}
		h := ld.Add(v).Normalize()
		ndoth := math32.Max(float32(n.Dot(h)), 0)
		spec := s.specNorm * math32.Pow(ndoth, s.shininess)

		r += (s.diffR + s.specR*spec) * ndotl * l.r
		g += (s.diffG + s.specG*spec) * ndotl * l.g
		b += (s.diffB + s.specB*spec) * ndotl * l.b
	}

	a = s.alpha
	r = math32.Min(r, 1) * a
	g = math32.Min(g, 1) * a
	b = math32.Min(b, 1) * a
	return r, g, b, a
}

// appendOccluders appends the world bounding sphere of every visible
// shadow-casting mesh in scene.
func appendOccluders(dst []occluder, scene *Scene) []occluder {
	for _, m := range scene.Meshes() {
		if !m.Visible || !m.CastShadow {
			continue
		}
		world := m.WorldMatrix()
		c, rad := m.worldBoundingSphere(&world)
		dst = append(dst, occluder{mesh: m, center: c, radius: rad})
	}
	return dst
}

// shadowed reports whether the segment from p to the light crosses the
// bounding sphere of any occluder other than self. Spheres that already
// contain p are skipped: the scene's rings and icosahedron are concentric,
// so their spheres nest.
func shadowed(p, light Vec3, occluders []occluder, self *Mesh) bool {
	d := light.Sub(p)
	dd := d.Dot(d)
	if dd == 0 {
		return false
	}
	for i := range occluders {
		o := &occluders[i]
		if o.mesh == self {
			continue
		}
		if p.Sub(o.center).Len() < o.radius {
			continue
		}
		t := o.center.Sub(p).Dot(d) / dd
		t = math.Max(0, math.Min(1, t))
		closest := p.Add(d.Scale(t))
		if closest.Sub(o.center).Len() < o.radius {
			return true
		}
	}
	return false
}

// perturbNormal bends the local-space normal n by a tangent-space sample.
// The tangent frame is derived from n alone, which is enough for the
// per-vertex detail a normal map can add here.
func perturbNormal(n, sample Vec3) Vec3 {
	ref := Vec3{0, 1, 0}
	if math.Abs(n.Y) > 0.99 {
		ref = Vec3{1, 0, 0}
	}
	t := ref.Cross(n).Normalize()
	b := n.Cross(t)
	return t.Scale(sample.X).Add(b.Scale(sample.Y)).Add(n.Scale(sample.Z)).Normalize()
}
