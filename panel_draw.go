package aureole

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Panel colors.
var (
	panelBG        = Color{0.10, 0.10, 0.10, 0.92}
	panelTitleBG   = Color{0, 0, 0, 0.92}
	panelTrackBG   = Color{0.19, 0.19, 0.19, 1}
	panelTrackFill = Color{0.18, 0.63, 0.84, 1}
	panelText      = Color{0.93, 0.93, 0.93, 1}
	panelDivider   = Color{0.17, 0.17, 0.17, 1}
)

// pickerCells is the resolution of the drawn SV square and hue strip.
const (
	pickerCellsX = 24
	pickerCellsY = 10
	pickerHueN   = 48
)

var panelFace = text.NewGoXFace(basicfont.Face7x13)

// painter draws panel primitives in logical pixels onto a buffer that may be
// denser by scale.
type painter struct {
	dst   *ebiten.Image
	scale float64
}

// Draw renders the panel onto dst, whose pixels are scale times denser than
// the panel's logical coordinates. Nothing is drawn once fully hidden.
func (p *Panel) Draw(dst *ebiten.Image, scale float64) {
	if p.hidden && p.slide == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	pt := painter{dst: dst, scale: scale}
	for _, row := range p.layout() {
		r := row.rect
		switch {
		case row.folder != nil:
			pt.fill(r, panelTitleBG)
			marker := "+ "
			if row.folder.Open {
				marker = "- "
			}
			pt.label(marker+row.folder.Name, r.X+panelPad, r.Y)
		case row.toggle:
			pt.fill(r, panelTitleBG)
			label := "Close Controls"
			if p.Closed {
				label = "Open Controls"
			}
			pt.label(label, r.X+r.Width/2-float64(len(label))*7/2, r.Y)
		case row.footer:
			pt.fill(r, panelBG)
			pt.label(p.fps.text, r.X+panelPad, r.Y)
		case row.control != nil:
			pt.fill(r, panelBG)
			pt.control(row.control, r)
		}
		pt.fill(Rect{X: r.X, Y: r.Y + r.Height - 1, Width: r.Width, Height: 1}, panelDivider)
	}
}

func (pt painter) control(c control, r Rect) {
	pt.label(c.Label(), r.X+panelPad*2, r.Y)
	switch c := c.(type) {
	case *Slider:
		t := c.track(r)
		pt.fill(t, panelTrackBG)
		fill := t
		fill.Width = t.Width * c.Fraction()
		pt.fill(fill, panelTrackFill)
		pt.label(c.valueText(), t.X+t.Width+panelPad, r.Y)
	case *ColorControl:
		col := c.get()
		sw := c.swatch(r)
		pt.fill(sw, col)
		textCol := panelText
		if _, _, v := colorToHSV(col); v > 0.6 {
			textCol = Color{0, 0, 0, 1}
		}
		pt.labelColor(col.String(), sw.X+panelPad, r.Y, textCol)
		if c.open {
			pt.picker(c, r)
		}
	}
}

func (pt painter) picker(c *ColorControl, r Rect) {
	sv := c.svRect(r)
	cw, ch := sv.Width/pickerCellsX, sv.Height/pickerCellsY
	for j := 0; j < pickerCellsY; j++ {
		for i := 0; i < pickerCellsX; i++ {
			s := (float64(i) + 0.5) / pickerCellsX
			v := 1 - (float64(j)+0.5)/pickerCellsY
			cell := Rect{X: sv.X + float64(i)*cw, Y: sv.Y + float64(j)*ch, Width: cw + 1, Height: ch + 1}
			pt.fill(cell, hsvToColor(c.hue, s, v))
		}
	}
	hr := c.hueRect(r)
	hw := hr.Width / pickerHueN
	for i := 0; i < pickerHueN; i++ {
		h := (float64(i) + 0.5) / pickerHueN * 360
		pt.fill(Rect{X: hr.X + float64(i)*hw, Y: hr.Y, Width: hw + 1, Height: hr.Height}, hsvToColor(h, 1, 1))
	}
}

// fill draws a solid rectangle by scaling the white pixel.
func (pt painter) fill(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width*pt.scale, r.Height*pt.scale)
	op.GeoM.Translate(r.X*pt.scale, r.Y*pt.scale)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	pt.dst.DrawImage(WhitePixel, &op)
}

func (pt painter) label(s string, x, y float64) {
	pt.labelColor(s, x, y, panelText)
}

func (pt painter) labelColor(s string, x, y float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y+(panelRowHeight-13)/2)
	op.GeoM.Scale(pt.scale, pt.scale)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = 14
	text.Draw(pt.dst, s, panelFace, op)
}
