package aureole

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
)

// NormalMap holds a decoded tangent-space normal map on the CPU. Values are
// unit vectors decoded from RGB as 2*c-1.
type NormalMap struct {
	width, height int
	normals       []Vec3
}

// LoadNormalMap decodes the image at name from fsys.
func LoadNormalMap(fsys fs.FS, name string) (*NormalMap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("aureole: open normal map: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("aureole: decode normal map %s: %w", name, err)
	}
	return NewNormalMap(img), nil
}

// NewNormalMap converts an image into a NormalMap.
func NewNormalMap(img image.Image) *NormalMap {
	b := img.Bounds()
	nm := &NormalMap{
		width:   b.Dx(),
		height:  b.Dy(),
		normals: make([]Vec3, b.Dx()*b.Dy()),
	}
	for y := 0; y < nm.height; y++ {
		for x := 0; x < nm.width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			n := Vec3{
				X: float64(r)/0xffff*2 - 1,
				Y: float64(g)/0xffff*2 - 1,
				Z: float64(bl)/0xffff*2 - 1,
			}.Normalize()
			if n == (Vec3{}) {
				n = Vec3{0, 0, 1}
			}
			nm.normals[y*nm.width+x] = n
		}
	}
	return nm
}

// Size returns the map dimensions in texels.
func (nm *NormalMap) Size() (w, h int) {
	return nm.width, nm.height
}

// Sample returns the tangent-space normal nearest to (u, v). V runs bottom to
// top as in GL texture space; coordinates are clamped to the edge.
func (nm *NormalMap) Sample(u, v float64) Vec3 {
	if nm == nil || len(nm.normals) == 0 {
		return Vec3{0, 0, 1}
	}
	x := clampInt(int(u*float64(nm.width)), 0, nm.width-1)
	y := clampInt(int((1-v)*float64(nm.height)), 0, nm.height-1)
	return nm.normals[y*nm.width+x]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
