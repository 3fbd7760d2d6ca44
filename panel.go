package aureole

import (
	"fmt"
	"math"
)

// Panel layout metrics in logical pixels.
const (
	panelWidth       = 245
	panelMarginRight = 15
	panelRowHeight   = 22
	panelLabelWidth  = 70
	panelValueWidth  = 48
	panelPad         = 4
	pickerSVHeight   = 100
	pickerHueHeight  = 12
)

// control is a single bound row inside a Folder.
type control interface {
	Label() string
	height() float64
	press(x, y float64, r Rect) bool
	drag(x, y float64, r Rect)
}

// Panel is a debug control surface: named folders of sliders and color
// pickers bound to typed getters and setters. It lays itself out along the
// right edge of the viewport.
type Panel struct {
	folders []*Folder

	// Closed collapses the panel to its toggle row.
	Closed bool
	// ShowFPS appends an FPS/TPS footer.
	ShowFPS bool

	hidden    bool
	viewportW float64
	offsetX   float64 // slide offset; 0 when fully shown
	slide     *slideAnim

	active     control
	activeRect Rect
	fps        fpsCounter
}

// NewPanel creates an empty, visible panel.
func NewPanel() *Panel {
	return &Panel{}
}

// AddFolder appends a closed folder.
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name}
	p.folders = append(p.folders, f)
	return f
}

// Folders returns the folder list. The returned slice MUST NOT be mutated.
func (p *Panel) Folders() []*Folder {
	return p.folders
}

// Folder returns the folder with the given name, or nil.
func (p *Panel) Folder(name string) *Folder {
	for _, f := range p.folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Slider returns the slider labeled label in folder, or nil.
func (p *Panel) Slider(folder, label string) *Slider {
	f := p.Folder(folder)
	if f == nil {
		return nil
	}
	s, _ := f.control(label).(*Slider)
	return s
}

// Color returns the color control labeled label in folder, or nil.
func (p *Panel) Color(folder, label string) *ColorControl {
	f := p.Folder(folder)
	if f == nil {
		return nil
	}
	c, _ := f.control(label).(*ColorControl)
	return c
}

// SetViewport tells the panel the viewport width it anchors to.
func (p *Panel) SetViewport(w float64) {
	p.viewportW = w
}

// Hidden reports whether the panel is hidden or sliding out.
func (p *Panel) Hidden() bool {
	return p.hidden
}

// Toggle hides or shows the panel with a slide animation.
func (p *Panel) Toggle() {
	p.hidden = !p.hidden
	p.active = nil
	to := 0.0
	if p.hidden {
		to = panelWidth + panelMarginRight
	}
	p.slide = newSlideAnim(p.offsetX, to, panelSlideDuration)
}

// Update advances the slide animation and the FPS footer by dt seconds.
func (p *Panel) Update(dt float32) {
	if p.slide != nil {
		v, done := p.slide.update(dt)
		p.offsetX = v
		if done {
			p.slide = nil
		}
	}
	if p.ShowFPS {
		p.fps.update(float64(dt))
	}
}

// origin returns the top-left corner of the panel.
func (p *Panel) origin() (float64, float64) {
	return p.viewportW - panelWidth - panelMarginRight + p.offsetX, 0
}

// panelRow is one laid-out row.
type panelRow struct {
	rect    Rect
	folder  *Folder // set for title rows
	control control // set for control rows
	toggle  bool    // the open/close row
	footer  bool
}

// layout returns the rows in draw order in screen coordinates.
func (p *Panel) layout() []panelRow {
	ox, oy := p.origin()
	y := oy
	var rows []panelRow
	add := func(h float64, row panelRow) {
		row.rect = Rect{X: ox, Y: y, Width: panelWidth, Height: h}
		rows = append(rows, row)
		y += h
	}
	if !p.Closed {
		for _, f := range p.folders {
			add(panelRowHeight, panelRow{folder: f})
			if !f.Open {
				continue
			}
			for _, c := range f.controls {
				add(c.height(), panelRow{control: c})
			}
		}
	}
	add(panelRowHeight, panelRow{toggle: true})
	if p.ShowFPS {
		add(panelRowHeight*1.5, panelRow{footer: true})
	}
	return rows
}

// Bounds returns the panel's screen rectangle.
func (p *Panel) Bounds() Rect {
	rows := p.layout()
	first, last := rows[0].rect, rows[len(rows)-1].rect
	return Rect{X: first.X, Y: first.Y, Width: panelWidth, Height: last.Y + last.Height - first.Y}
}

// Contains reports whether (x, y) is over the visible panel.
func (p *Panel) Contains(x, y float64) bool {
	if p.hidden && p.slide == nil {
		return false
	}
	return p.Bounds().Contains(x, y)
}

// Press handles a pointer press at (x, y). Returns true if the panel
// captured the press; subsequent Drag calls go to the pressed control until
// Release.
func (p *Panel) Press(x, y float64) bool {
	if !p.Contains(x, y) {
		return false
	}
	for _, row := range p.layout() {
		if !row.rect.Contains(x, y) {
			continue
		}
		switch {
		case row.toggle:
			p.Closed = !p.Closed
		case row.folder != nil:
			row.folder.Open = !row.folder.Open
		case row.control != nil:
			if row.control.press(x, y, row.rect) {
				p.active = row.control
				p.activeRect = row.rect
			}
		}
		break
	}
	return true
}

// Drag forwards a pointer move to the control captured by Press.
func (p *Panel) Drag(x, y float64) {
	if p.active != nil {
		p.active.drag(x, y, p.activeRect)
	}
}

// Release ends a drag.
func (p *Panel) Release() {
	p.active = nil
}

// Folder groups controls under a collapsible title.
type Folder struct {
	Name string
	Open bool

	controls []control
}

// Labels returns the control labels in order.
func (f *Folder) Labels() []string {
	out := make([]string, len(f.controls))
	for i, c := range f.controls {
		out[i] = c.Label()
	}
	return out
}

func (f *Folder) control(label string) control {
	for _, c := range f.controls {
		if c.Label() == label {
			return c
		}
	}
	return nil
}

// AddSlider binds a numeric slider in [min, max] snapped to step.
// Panics if get or set is nil or max < min.
func (f *Folder) AddSlider(label string, min, max, step float64, get func() float64, set func(float64)) *Slider {
	if get == nil || set == nil {
		panic("aureole: slider " + label + " needs a getter and a setter")
	}
	if max < min {
		panic("aureole: slider " + label + " has max < min")
	}
	s := &Slider{label: label, Min: min, Max: max, Step: step, get: get, set: set}
	f.controls = append(f.controls, s)
	return s
}

// AddColor binds a color control.
// Panics if get or set is nil.
func (f *Folder) AddColor(label string, get func() Color, set func(Color)) *ColorControl {
	if get == nil || set == nil {
		panic("aureole: color " + label + " needs a getter and a setter")
	}
	c := &ColorControl{label: label, get: get, set: set}
	c.hue, _, _ = colorToHSV(get())
	f.controls = append(f.controls, c)
	return c
}

// Slider edits a float64 through a getter/setter pair.
type Slider struct {
	label          string
	Min, Max, Step float64

	get      func() float64
	set      func(float64)
	onChange []func(float64)
}

// Label returns the slider label.
func (s *Slider) Label() string { return s.label }

// Value returns the bound value.
func (s *Slider) Value() float64 { return s.get() }

// OnChange registers fn to run after every value change.
func (s *Slider) OnChange(fn func(float64)) *Slider {
	s.onChange = append(s.onChange, fn)
	return s
}

// SetValue clamps v to [Min, Max], snaps it to Step and writes it through
// the setter.
func (s *Slider) SetValue(v float64) {
	if s.Step > 0 {
		v = math.Round(v/s.Step) * s.Step
		// Trim float noise from the division so 0.1*3 reads back as 0.3.
		v = roundTo(v, stepDecimals(s.Step))
	}
	v = math.Max(s.Min, math.Min(s.Max, v))
	s.set(v)
	for _, fn := range s.onChange {
		fn(v)
	}
}

// Fraction returns the value position within [Min, Max] as 0..1.
func (s *Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (s.get()-s.Min)/(s.Max-s.Min)))
}

func (s *Slider) height() float64 { return panelRowHeight }

func (s *Slider) track(r Rect) Rect {
	return Rect{
		X:      r.X + panelLabelWidth,
		Y:      r.Y + panelPad,
		Width:  r.Width - panelLabelWidth - panelValueWidth - panelPad,
		Height: r.Height - 2*panelPad,
	}
}

func (s *Slider) press(x, y float64, r Rect) bool {
	t := s.track(r)
	if !t.Contains(x, y) {
		return false
	}
	s.drag(x, y, r)
	return true
}

func (s *Slider) drag(x, _ float64, r Rect) {
	t := s.track(r)
	if t.Width <= 0 {
		return
	}
	frac := math.Max(0, math.Min(1, (x-t.X)/t.Width))
	s.SetValue(s.Min + frac*(s.Max-s.Min))
}

func (s *Slider) valueText() string {
	return fmt.Sprintf("%.*f", stepDecimals(s.Step), s.get())
}

// stepDecimals returns how many decimals a step needs to be displayed.
func stepDecimals(step float64) int {
	d := 0
	for step > 0 && step != math.Trunc(step) && d < 6 {
		step *= 10
		step = roundTo(step, 6)
		d++
	}
	return d
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// ColorControl edits a Color through a getter/setter pair, with an optional
// change callback.
type ColorControl struct {
	label string

	get      func() Color
	set      func(Color)
	onChange []func(Color)

	open bool
	hue  float64 // kept separately so grays remember their hue
	area uint8   // 1 = SV square, 2 = hue strip while dragging
}

// Label returns the control label.
func (c *ColorControl) Label() string { return c.label }

// Value returns the bound color.
func (c *ColorControl) Value() Color { return c.get() }

// Open reports whether the picker is expanded.
func (c *ColorControl) Open() bool { return c.open }

// OnChange registers fn to run after every color change.
func (c *ColorControl) OnChange(fn func(Color)) *ColorControl {
	c.onChange = append(c.onChange, fn)
	return c
}

// SetColor writes col through the setter and fires change callbacks.
func (c *ColorControl) SetColor(col Color) {
	col.A = 1
	c.set(col)
	if h, s, _ := colorToHSV(col); s > 0 {
		c.hue = h
	}
	for _, fn := range c.onChange {
		fn(col)
	}
}

// SetHex is SetColor for a 0xRRGGBB value.
func (c *ColorControl) SetHex(hex uint32) {
	c.SetColor(ColorFromHex(hex))
}

func (c *ColorControl) height() float64 {
	if c.open {
		return panelRowHeight + pickerSVHeight + pickerHueHeight + 3*panelPad
	}
	return panelRowHeight
}

func (c *ColorControl) swatch(r Rect) Rect {
	return Rect{
		X:      r.X + panelLabelWidth,
		Y:      r.Y + panelPad,
		Width:  r.Width - panelLabelWidth - panelPad,
		Height: panelRowHeight - 2*panelPad,
	}
}

func (c *ColorControl) svRect(r Rect) Rect {
	return Rect{
		X:      r.X + panelLabelWidth,
		Y:      r.Y + panelRowHeight + panelPad,
		Width:  r.Width - panelLabelWidth - panelPad,
		Height: pickerSVHeight,
	}
}

func (c *ColorControl) hueRect(r Rect) Rect {
	sv := c.svRect(r)
	return Rect{X: sv.X, Y: sv.Y + sv.Height + panelPad, Width: sv.Width, Height: pickerHueHeight}
}

func (c *ColorControl) press(x, y float64, r Rect) bool {
	if c.swatch(r).Contains(x, y) {
		c.open = !c.open
		return false
	}
	if !c.open {
		return false
	}
	switch {
	case c.svRect(r).Contains(x, y):
		c.area = 1
	case c.hueRect(r).Contains(x, y):
		c.area = 2
	default:
		return false
	}
	c.drag(x, y, r)
	return true
}

func (c *ColorControl) drag(x, y float64, r Rect) {
	_, s, v := colorToHSV(c.get())
	switch c.area {
	case 1:
		sv := c.svRect(r)
		s = math.Max(0, math.Min(1, (x-sv.X)/sv.Width))
		v = 1 - math.Max(0, math.Min(1, (y-sv.Y)/sv.Height))
	case 2:
		hr := c.hueRect(r)
		c.hue = math.Max(0, math.Min(1, (x-hr.X)/hr.Width)) * 360
		if c.hue >= 360 {
			c.hue = 0
		}
	default:
		return
	}
	col := hsvToColor(c.hue, s, v)
	c.set(col)
	for _, fn := range c.onChange {
		fn(col)
	}
}

// colorToHSV converts to hue in degrees [0, 360) and saturation/value in
// [0, 1].
func colorToHSV(c Color) (h, s, v float64) {
	mx := math.Max(c.R, math.Max(c.G, c.B))
	mn := math.Min(c.R, math.Min(c.G, c.B))
	v = mx
	d := mx - mn
	if mx > 0 {
		s = d / mx
	}
	if d == 0 {
		return 0, s, v
	}
	switch mx {
	case c.R:
		h = math.Mod((c.G-c.B)/d, 6)
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// hsvToColor is the inverse of colorToHSV.
func hsvToColor(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1}
}
