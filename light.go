package aureole

// PointLight is an omnidirectional light. Intensity scales Color with no
// distance falloff.
type PointLight struct {
	Name string
	// Position is the light position in world space.
	Position Vec3
	// Color is the light color at full intensity.
	Color Color
	// Intensity multiplies Color. The debug panel allows [0, 10].
	Intensity float64
	// CastShadow makes shadow-casting meshes occlude this light for
	// shadow-receiving meshes.
	CastShadow bool
	// Enabled determines whether this light contributes during rendering.
	Enabled bool
}

// NewPointLight creates an enabled light with the given 0xRRGGBB color and
// intensity at the origin.
func NewPointLight(name string, hex uint32, intensity float64) *PointLight {
	return &PointLight{
		Name:      name,
		Color:     ColorFromHex(hex),
		Intensity: intensity,
		Enabled:   true,
	}
}

// SetHex sets the light color from a 0xRRGGBB value.
func (l *PointLight) SetHex(hex uint32) {
	l.Color = ColorFromHex(hex)
}
