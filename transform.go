package aureole

import "math"

// Vec3 is a 3D vector used for positions, normals and directions.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit-length copy of v, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Euler is a rotation in radians with intrinsic XYZ order.
type Euler struct {
	X, Y, Z float64
}

// Mat4 is a column-major 4x4 matrix: element (row r, column c) is at [c*4+r].
type Mat4 [16]float64

// identityMat4 is the identity matrix.
var identityMat4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// composeMatrix builds Translate(pos) * Rotate(euler XYZ). Scale is always 1
// for scene meshes.
func composeMatrix(pos Vec3, rot Euler) Mat4 {
	a, b := math.Cos(rot.X), math.Sin(rot.X)
	c, d := math.Cos(rot.Y), math.Sin(rot.Y)
	e, f := math.Cos(rot.Z), math.Sin(rot.Z)

	ae, af, be, bf := a*e, a*f, b*e, b*f

	var m Mat4
	m[0] = c * e
	m[4] = -c * f
	m[8] = d

	m[1] = af + be*d
	m[5] = ae - bf*d
	m[9] = -b * c

	m[2] = bf - ae*d
	m[6] = be + af*d
	m[10] = a * c

	m[12], m[13], m[14] = pos.X, pos.Y, pos.Z
	m[15] = 1
	return m
}

// multiplyMat4 returns p * q.
func multiplyMat4(p, q Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += p[k*4+row] * q[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// transformPoint applies m to (p, 1) and returns xyz without the perspective
// divide, plus w.
func transformPoint(m *Mat4, p Vec3) (Vec3, float64) {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return Vec3{x, y, z}, w
}

// transformDirection applies the upper 3x3 of m to d. Valid for normals as
// long as m carries no non-uniform scale.
func transformDirection(m *Mat4, d Vec3) Vec3 {
	return Vec3{
		m[0]*d.X + m[4]*d.Y + m[8]*d.Z,
		m[1]*d.X + m[5]*d.Y + m[9]*d.Z,
		m[2]*d.X + m[6]*d.Y + m[10]*d.Z,
	}
}

// perspectiveMatrix builds a GL-style symmetric frustum projection mapping
// depth to [-1, 1].
func perspectiveMatrix(fovDeg, aspect, near, far float64) Mat4 {
	top := near * math.Tan(fovDeg*math.Pi/180*0.5)
	height := 2 * top
	width := aspect * height
	left := -0.5 * width
	right := left + width
	bottom := top - height

	var m Mat4
	m[0] = 2 * near / (right - left)
	m[5] = 2 * near / (top - bottom)
	m[8] = (right + left) / (right - left)
	m[9] = (top + bottom) / (top - bottom)
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -2 * far * near / (far - near)
	return m
}

// lookAtBasis returns the camera's right, up and backward axes for an eye
// looking at target. Falls back to a nudged up vector when looking straight
// along it.
func lookAtBasis(eye, target, up Vec3) (x, y, z Vec3) {
	z = eye.Sub(target)
	if z.Len() == 0 {
		z = Vec3{0, 0, 1}
	}
	z = z.Normalize()
	x = up.Cross(z)
	if x.Len() == 0 {
		if math.Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y = z.Cross(x)
	return x, y, z
}

// viewMatrix is the inverse of the camera world matrix built by lookAtBasis.
func viewMatrix(eye, target, up Vec3) Mat4 {
	x, y, z := lookAtBasis(eye, target, up)
	return Mat4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
