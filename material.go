package aureole

// StandardMaterial is a metalness/roughness surface description. It is an
// approximation of a PBR standard material evaluated per vertex.
type StandardMaterial struct {
	Name      string
	Color     Color
	Metalness float64
	Roughness float64

	// NormalMap, if non-nil, perturbs vertex normals in tangent space.
	NormalMap *NormalMap

	// Opacity only takes effect when Transparent is set.
	Opacity     float64
	Transparent bool
}

// NewStandardMaterial returns a white, fully rough, non-metallic material,
// the usual standard-material defaults.
func NewStandardMaterial(name string) *StandardMaterial {
	return &StandardMaterial{
		Name:      name,
		Color:     ColorWhite,
		Metalness: 0,
		Roughness: 1,
		Opacity:   1,
	}
}

// alpha returns the output alpha for fragments of this material.
func (m *StandardMaterial) alpha() float64 {
	if !m.Transparent {
		return 1
	}
	return m.Opacity
}
