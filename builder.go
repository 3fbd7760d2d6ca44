package aureole

// Scene parameters.
const (
	ringTube              = 0.05
	ringRadialSegments    = 16
	ringTubularSegments   = 100
	objectY               = 0.6
	floorY                = -5.5
	floorRadialSegments   = 8
	cameraFOV             = 75
	cameraNear            = 0.1
	cameraFar             = 100
	cameraZ               = 5
	lightIntensityMax     = 10
	lightStep             = 0.01
	cameraDistanceMin     = 2
	cameraDistanceMax     = 10
	cameraDistanceStep    = 0.5
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

var ringRadii = [3]float64{1.8, 1.9, 1.7}

// lightSpec describes one light and the ranges of its panel sliders.
type lightSpec struct {
	name       string
	hex        uint32
	intensity  float64
	pos        Vec3
	castShadow bool
	colorCtrl  bool
	yMin, yMax float64
	xMin, xMax float64
	zMin, zMax float64
}

var lightSpecs = [3]lightSpec{
	{name: "Light 1", hex: 0xffffff, intensity: 0.5, pos: Vec3{0, 10, 0}, castShadow: true,
		yMin: -3, yMax: 10, xMin: -6, xMax: 6, zMin: -3, zMax: 4},
	{name: "Light 2", hex: 0xdf00ff, intensity: 1.11, pos: Vec3{-4.93, -2.47, -0.61}, colorCtrl: true,
		yMin: -3, yMax: 3, xMin: -6, xMax: 6, zMin: -3, zMax: 3},
	{name: "Light 3", hex: 0xffffff, intensity: 0.8, pos: Vec3{6, 0.76, 3}, castShadow: true, colorCtrl: true,
		yMin: -3, yMax: 3, xMin: -6, xMax: 6, zMin: -3, zMax: 3},
}

// BuildOptions configures BuildScene. Zero values select the defaults.
type BuildOptions struct {
	// Width and Height are the initial logical viewport size.
	Width, Height int
	// NormalMap perturbs the icosahedron's normals. Nil disables it.
	NormalMap *NormalMap
	// Clock drives the frame updater. Nil uses a RealClock.
	Clock Clock
	// DeviceScale reports the display scale factor. Nil means 1.
	DeviceScale func() float64

	// Opaque clears to the scene background instead of transparent.
	Opaque bool
	// NoShadows disables shadow tests.
	NoShadows bool
	// HidePanel starts with the debug panel hidden.
	HidePanel bool
	// ShowFPS adds the FPS footer to the panel.
	ShowFPS bool
	// MaxScroll clamps the emulated page scroll when positive.
	MaxScroll float64
	// WheelStep is the scroll distance per wheel notch. Zero uses the default.
	WheelStep float64
}

// BuildScene constructs the ring scene: three gold rings, a normal-mapped
// icosahedron, a floor, three point lights, the camera with damped orbit
// controls, the renderer and a debug panel bound to the lights and camera.
func BuildScene(opts BuildOptions) *App {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultViewportWidth
	}
	if h <= 0 {
		h = defaultViewportHeight
	}

	a := &App{
		Scene:       NewScene(),
		Clock:       opts.Clock,
		DeviceScale: opts.DeviceScale,
	}
	if a.Clock == nil {
		a.Clock = NewRealClock()
	}

	dark := NewStandardMaterial("dark")
	dark.Color = ColorFromHex(0x181818)
	dark.Metalness = 0.7
	dark.Roughness = 0.2
	dark.NormalMap = opts.NormalMap

	gold := NewStandardMaterial("gold")
	gold.Color = ColorFromHex(0xffd700)
	gold.Metalness = 0.8
	gold.Roughness = 0.2

	floorMat := NewStandardMaterial("floor")
	floorMat.Opacity = 0.7

	for i, r := range ringRadii {
		ring := NewMesh(ringName(i), NewTorusGeometry(r, ringTube, ringRadialSegments, ringTubularSegments), gold)
		ring.SetPosition(0, objectY, 0)
		ring.CastShadow = true
		ring.ReceiveShadow = true
		a.Rings[i] = ring
	}

	a.Icosahedron = NewMesh("icosahedron", NewIcosahedronGeometry(1), dark)
	a.Icosahedron.SetPosition(0, objectY, 0)
	a.Icosahedron.CastShadow = true
	a.Icosahedron.ReceiveShadow = true

	a.Floor = NewMesh("floor", NewCylinderGeometry(2.1, 4.8, 8, floorRadialSegments), floorMat)
	a.Floor.SetPosition(0, floorY, 0)
	a.Floor.ReceiveShadow = true

	a.Scene.Add(a.Rings[0], a.Rings[1], a.Rings[2], a.Icosahedron, a.Floor)

	for i, ls := range lightSpecs {
		l := NewPointLight(ls.name, ls.hex, ls.intensity)
		l.Position = ls.pos
		l.CastShadow = ls.castShadow
		a.Lights[i] = l
		a.Scene.AddLight(l)
	}

	a.Camera = NewPerspectiveCamera(cameraFOV, float64(w)/float64(h), cameraNear, cameraFar)
	a.Camera.Position = Vec3{0, 0, cameraZ}
	a.Controls = NewOrbitControls(a.Camera)
	a.Controls.EnableDamping = true

	a.Renderer = NewRenderer(RendererOptions{Alpha: !opts.Opaque, Shadows: !opts.NoShadows})

	a.Panel = buildPanel(a)
	a.Panel.ShowFPS = opts.ShowFPS
	if opts.HidePanel {
		a.Panel.hidden = true
		a.Panel.offsetX = panelWidth + panelMarginRight
	}

	a.Input = NewInputState(w, h)
	a.Input.MaxScroll = opts.MaxScroll
	if opts.WheelStep > 0 {
		a.Input.WheelStep = opts.WheelStep
	}

	a.Resize(w, h)
	return a
}

func ringName(i int) string {
	return [...]string{"ring1", "ring2", "ring3"}[i]
}

// buildPanel binds one folder per light and one for the camera distance.
func buildPanel(a *App) *Panel {
	p := NewPanel()
	for i, ls := range lightSpecs {
		l := a.Lights[i]
		f := p.AddFolder(ls.name)
		f.AddSlider("y", ls.yMin, ls.yMax, lightStep,
			func() float64 { return l.Position.Y },
			func(v float64) { l.Position.Y = v })
		f.AddSlider("x", ls.xMin, ls.xMax, lightStep,
			func() float64 { return l.Position.X },
			func(v float64) { l.Position.X = v })
		f.AddSlider("z", ls.zMin, ls.zMax, lightStep,
			func() float64 { return l.Position.Z },
			func(v float64) { l.Position.Z = v })
		f.AddSlider("intensity", 0, lightIntensityMax, lightStep,
			func() float64 { return l.Intensity },
			func(v float64) { l.Intensity = v })
		if ls.colorCtrl {
			// The control keeps its own value; the light follows through
			// the change callback.
			picked := l.Color
			f.AddColor("color",
				func() Color { return picked },
				func(c Color) { picked = c }).
				OnChange(func(c Color) { l.SetHex(c.Hex()) })
		}
	}

	cam := a.Camera
	f := p.AddFolder("Camera 1")
	f.AddSlider("z", cameraDistanceMin, cameraDistanceMax, cameraDistanceStep,
		func() float64 { return cam.Position.Z },
		func(v float64) { cam.Position.Z = v })
	return p
}
