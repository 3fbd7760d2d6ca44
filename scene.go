package aureole

// Scene is the container holding every mesh and light. Objects are never
// removed; the scene lives as long as the program.
type Scene struct {
	meshes []*Mesh
	lights []*PointLight

	// Background is used to clear the frame when the renderer is not in alpha
	// mode.
	Background Color
}

// NewScene creates an empty scene with a black background.
func NewScene() *Scene {
	return &Scene{Background: Color{0, 0, 0, 1}}
}

// Add appends meshes to the scene in draw-submission order.
// Panics if a mesh is nil or already present.
func (s *Scene) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m == nil {
			panic("aureole: cannot add nil mesh")
		}
		for _, existing := range s.meshes {
			if existing == m {
				panic("aureole: mesh " + m.Name + " already in scene")
			}
		}
		s.meshes = append(s.meshes, m)
	}
}

// AddLight appends a light to the scene.
// Panics if l is nil.
func (s *Scene) AddLight(l *PointLight) {
	if l == nil {
		panic("aureole: cannot add nil light")
	}
	s.lights = append(s.lights, l)
}

// Meshes returns the mesh list. The returned slice MUST NOT be mutated.
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Lights returns the light list. The returned slice MUST NOT be mutated.
func (s *Scene) Lights() []*PointLight {
	return s.lights
}

// MeshByName returns the first mesh with the given name, or nil.
func (s *Scene) MeshByName(name string) *Mesh {
	for _, m := range s.meshes {
		if m.Name == name {
			return m
		}
	}
	return nil
}
