package aureole

import (
	"fmt"
	"math"
)

// Shape identifies the generator that produced a Geometry.
type Shape uint8

const (
	ShapeTorus       Shape = iota // ring swept around the Z axis
	ShapeIcosahedron              // regular 20-face solid, flat shaded
	ShapeCylinder                 // truncated cone with caps, Y up
)

func (s Shape) String() string {
	switch s {
	case ShapeTorus:
		return "torus"
	case ShapeIcosahedron:
		return "icosahedron"
	case ShapeCylinder:
		return "cylinder"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// GeometryParams describes the shape parameters a Geometry was built from.
// Only the fields relevant to the shape are set.
type GeometryParams struct {
	Radius          float64 // torus ring radius, icosahedron radius
	Tube            float64 // torus tube radius
	RadialSegments  int     // torus tube segments, cylinder sides
	TubularSegments int     // torus segments along the ring
	RadiusTop       float64 // cylinder
	RadiusBottom    float64 // cylinder
	Height          float64 // cylinder
	Detail          int     // icosahedron subdivision (only 0 is generated)
}

// UV is a texture coordinate.
type UV struct {
	U, V float64
}

// Geometry is an indexed triangle list in local space. Triangles wind
// counter-clockwise when seen from their front side.
type Geometry struct {
	Shape  Shape
	Params GeometryParams

	Positions []Vec3
	Normals   []Vec3
	UVs       []UV
	Indices   []uint16

	boundCenter Vec3
	boundRadius float64
}

// String summarizes the descriptor for logs.
func (g *Geometry) String() string {
	p := g.Params
	switch g.Shape {
	case ShapeTorus:
		return fmt.Sprintf("torus(r=%g tube=%g %dx%d)", p.Radius, p.Tube, p.RadialSegments, p.TubularSegments)
	case ShapeIcosahedron:
		return fmt.Sprintf("icosahedron(r=%g detail=%d)", p.Radius, p.Detail)
	case ShapeCylinder:
		return fmt.Sprintf("cylinder(top=%g bottom=%g h=%g seg=%d)", p.RadiusTop, p.RadiusBottom, p.Height, p.RadialSegments)
	}
	return g.Shape.String()
}

// NumTriangles returns len(Indices)/3.
func (g *Geometry) NumTriangles() int {
	return len(g.Indices) / 3
}

// BoundingSphere returns the local-space center and radius enclosing every
// vertex.
func (g *Geometry) BoundingSphere() (Vec3, float64) {
	return g.boundCenter, g.boundRadius
}

func (g *Geometry) computeBounds() {
	if len(g.Positions) == 0 {
		return
	}
	lo, hi := g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		lo = Vec3{math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z)}
		hi = Vec3{math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z)}
	}
	center := lo.Add(hi).Scale(0.5)
	var r float64
	for _, p := range g.Positions {
		r = math.Max(r, p.Sub(center).Len())
	}
	g.boundCenter = center
	g.boundRadius = r
}

// NewTorusGeometry generates a full torus lying in the XY plane.
// Panics if either segment count is below 1.
func NewTorusGeometry(radius, tube float64, radialSegments, tubularSegments int) *Geometry {
	if radialSegments < 1 || tubularSegments < 1 {
		panic("aureole: torus needs at least one segment in each direction")
	}
	g := &Geometry{
		Shape: ShapeTorus,
		Params: GeometryParams{
			Radius:          radius,
			Tube:            tube,
			RadialSegments:  radialSegments,
			TubularSegments: tubularSegments,
		},
	}
	n := (radialSegments + 1) * (tubularSegments + 1)
	g.Positions = make([]Vec3, 0, n)
	g.Normals = make([]Vec3, 0, n)
	g.UVs = make([]UV, 0, n)

	for j := 0; j <= radialSegments; j++ {
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			v := float64(j) / float64(radialSegments) * 2 * math.Pi

			p := Vec3{
				X: (radius + tube*math.Cos(v)) * math.Cos(u),
				Y: (radius + tube*math.Cos(v)) * math.Sin(u),
				Z: tube * math.Sin(v),
			}
			center := Vec3{radius * math.Cos(u), radius * math.Sin(u), 0}

			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, p.Sub(center).Normalize())
			g.UVs = append(g.UVs, UV{float64(i) / float64(tubularSegments), float64(j) / float64(radialSegments)})
		}
	}

	g.Indices = make([]uint16, 0, radialSegments*tubularSegments*6)
	row := tubularSegments + 1
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			a := uint16(row*j + i - 1)
			b := uint16(row*(j-1) + i - 1)
			c := uint16(row*(j-1) + i)
			d := uint16(row*j + i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	g.computeBounds()
	return g
}

// icosahedron base vertices and faces.
var (
	icoT     = (1 + math.Sqrt(5)) / 2
	icoVerts = [12]Vec3{
		{-1, icoT, 0}, {1, icoT, 0}, {-1, -icoT, 0}, {1, -icoT, 0},
		{0, -1, icoT}, {0, 1, icoT}, {0, -1, -icoT}, {0, 1, -icoT},
		{icoT, 0, -1}, {icoT, 0, 1}, {-icoT, 0, -1}, {-icoT, 0, 1},
	}
	icoFaces = [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// NewIcosahedronGeometry generates a flat-shaded icosahedron of the given
// circumradius. Each face owns its three vertices so normals stay per face.
func NewIcosahedronGeometry(radius float64) *Geometry {
	g := &Geometry{
		Shape:  ShapeIcosahedron,
		Params: GeometryParams{Radius: radius},
	}
	g.Positions = make([]Vec3, 0, len(icoFaces)*3)
	g.Normals = make([]Vec3, 0, len(icoFaces)*3)
	g.UVs = make([]UV, 0, len(icoFaces)*3)
	g.Indices = make([]uint16, 0, len(icoFaces)*3)

	for _, f := range icoFaces {
		var tri [3]Vec3
		var uvs [3]UV
		for k, vi := range f {
			p := icoVerts[vi].Normalize().Scale(radius)
			tri[k] = p
			uvs[k] = sphericalUV(p)
		}
		correctSeam(&uvs)

		// Flat normal: (c - b) × (a - b).
		n := tri[2].Sub(tri[1]).Cross(tri[0].Sub(tri[1])).Normalize()
		for k := range tri {
			g.Indices = append(g.Indices, uint16(len(g.Positions)))
			g.Positions = append(g.Positions, tri[k])
			g.Normals = append(g.Normals, n)
			g.UVs = append(g.UVs, uvs[k])
		}
	}
	g.computeBounds()
	return g
}

// sphericalUV maps a point on a sphere to equirectangular coordinates.
func sphericalUV(p Vec3) UV {
	azimuth := math.Atan2(p.Z, -p.X)
	inclination := math.Atan2(-p.Y, math.Sqrt(p.X*p.X+p.Z*p.Z))
	return UV{azimuth/2/math.Pi + 0.5, inclination/math.Pi + 0.5}
}

// correctSeam shifts U for faces straddling the texture seam so they do not
// stretch across the whole map.
func correctSeam(uvs *[3]UV) {
	maxU := math.Max(uvs[0].U, math.Max(uvs[1].U, uvs[2].U))
	minU := math.Min(uvs[0].U, math.Min(uvs[1].U, uvs[2].U))
	if maxU > 0.9 && minU < 0.1 {
		for k := range uvs {
			if uvs[k].U < 0.2 {
				uvs[k].U++
			}
		}
	}
}

// NewCylinderGeometry generates a capped cylinder (or truncated cone) with one
// height segment, centered on the origin along Y.
// Panics if radialSegments is below 3.
func NewCylinderGeometry(radiusTop, radiusBottom, height float64, radialSegments int) *Geometry {
	if radialSegments < 3 {
		panic("aureole: cylinder needs at least three radial segments")
	}
	g := &Geometry{
		Shape: ShapeCylinder,
		Params: GeometryParams{
			RadiusTop:      radiusTop,
			RadiusBottom:   radiusBottom,
			Height:         height,
			RadialSegments: radialSegments,
		},
	}
	const heightSegments = 1
	half := height / 2
	slope := (radiusBottom - radiusTop) / height

	// Torso.
	var grid [heightSegments + 1][]uint16
	for y := 0; y <= heightSegments; y++ {
		v := float64(y) / heightSegments
		r := v*(radiusBottom-radiusTop) + radiusTop
		for x := 0; x <= radialSegments; x++ {
			u := float64(x) / float64(radialSegments)
			sin, cos := math.Sincos(u * 2 * math.Pi)
			grid[y] = append(grid[y], uint16(len(g.Positions)))
			g.Positions = append(g.Positions, Vec3{r * sin, -v*height + half, r * cos})
			g.Normals = append(g.Normals, Vec3{sin, slope, cos}.Normalize())
			g.UVs = append(g.UVs, UV{u, 1 - v})
		}
	}
	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			c := grid[y+1][x+1]
			d := grid[y][x+1]
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	if radiusTop > 0 {
		g.addCap(true, radiusTop, half, radialSegments)
	}
	if radiusBottom > 0 {
		g.addCap(false, radiusBottom, half, radialSegments)
	}
	g.computeBounds()
	return g
}

func (g *Geometry) addCap(top bool, radius, half float64, radialSegments int) {
	sign := -1.0
	if top {
		sign = 1
	}
	normal := Vec3{0, sign, 0}

	centerStart := len(g.Positions)
	for x := 1; x <= radialSegments; x++ {
		g.Positions = append(g.Positions, Vec3{0, half * sign, 0})
		g.Normals = append(g.Normals, normal)
		g.UVs = append(g.UVs, UV{0.5, 0.5})
	}
	centerEnd := len(g.Positions)

	for x := 0; x <= radialSegments; x++ {
		u := float64(x) / float64(radialSegments)
		sin, cos := math.Sincos(u * 2 * math.Pi)
		g.Positions = append(g.Positions, Vec3{radius * sin, half * sign, radius * cos})
		g.Normals = append(g.Normals, normal)
		g.UVs = append(g.UVs, UV{cos*0.5 + 0.5, sin*0.5*sign + 0.5})
	}

	for x := 0; x < radialSegments; x++ {
		c := uint16(centerStart + x)
		i := uint16(centerEnd + x)
		if top {
			g.Indices = append(g.Indices, i, i+1, c)
		} else {
			g.Indices = append(g.Indices, i+1, i, c)
		}
	}
}
