package aureole

// meshIDCounter is not atomic; scenes are built on one goroutine.
var meshIDCounter uint32

func nextMeshID() uint32 {
	meshIDCounter++
	return meshIDCounter
}

// Mesh is a renderable object: a geometry and material pair placed in the
// scene with a position and rotation. Geometry and material are fixed at
// construction; Position and Rotation are the only fields the frame loop
// mutates.
type Mesh struct {
	ID   uint32
	Name string

	Position Vec3
	Rotation Euler

	CastShadow    bool
	ReceiveShadow bool
	Visible       bool

	geometry *Geometry
	material *StandardMaterial
}

// NewMesh creates a visible mesh at the origin.
// Panics if geometry or material is nil.
func NewMesh(name string, geometry *Geometry, material *StandardMaterial) *Mesh {
	if geometry == nil {
		panic("aureole: mesh geometry must not be nil")
	}
	if material == nil {
		panic("aureole: mesh material must not be nil")
	}
	return &Mesh{
		ID:       nextMeshID(),
		Name:     name,
		Visible:  true,
		geometry: geometry,
		material: material,
	}
}

// Geometry returns the mesh geometry.
func (m *Mesh) Geometry() *Geometry {
	return m.geometry
}

// Material returns the mesh material. The material's fields may be tweaked,
// but the mesh always references the same material.
func (m *Mesh) Material() *StandardMaterial {
	return m.material
}

// SetPosition sets the mesh position.
func (m *Mesh) SetPosition(x, y, z float64) {
	m.Position = Vec3{x, y, z}
}

// WorldMatrix returns Translate(Position) * Rotate(Rotation).
func (m *Mesh) WorldMatrix() Mat4 {
	return composeMatrix(m.Position, m.Rotation)
}

// worldBoundingSphere returns the bounding sphere in world space.
func (m *Mesh) worldBoundingSphere(world *Mat4) (Vec3, float64) {
	c, r := m.geometry.BoundingSphere()
	wc, _ := transformPoint(world, c)
	return wc, r
}
