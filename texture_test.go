package aureole

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatNormalImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 128, G: 128, B: 255, A: 255})
		}
	}
	return img
}

func TestNewNormalMapDecodesFlat(t *testing.T) {
	nm := NewNormalMap(flatNormalImage(4, 2))
	w, h := nm.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	n := nm.Sample(0.5, 0.5)
	assert.InDelta(t, 0, n.X, 0.01)
	assert.InDelta(t, 0, n.Y, 0.01)
	assert.InDelta(t, 1, n.Z, 0.01)
}

func TestNormalMapSampleFlipsV(t *testing.T) {
	img := flatNormalImage(1, 2)
	img.Set(0, 0, color.NRGBA{R: 255, G: 128, B: 128, A: 255}) // top row tilts +X
	nm := NewNormalMap(img)
	assert.Greater(t, nm.Sample(0, 0.9).X, 0.5, "v near 1 reads the top row")
	assert.InDelta(t, 0, nm.Sample(0, 0.1).X, 0.01)
}

func TestNormalMapSampleClamps(t *testing.T) {
	nm := NewNormalMap(flatNormalImage(2, 2))
	assert.NotPanics(t, func() {
		nm.Sample(-1, -1)
		nm.Sample(2, 2)
		nm.Sample(1, 1)
	})
}

func TestNilNormalMapSample(t *testing.T) {
	var nm *NormalMap
	assert.Equal(t, Vec3{0, 0, 1}, nm.Sample(0.5, 0.5))
}

func TestLoadNormalMap(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, flatNormalImage(8, 8)))
	fsys := fstest.MapFS{"textures/NormalMap.png": {Data: buf.Bytes()}}

	nm, err := LoadNormalMap(fsys, "textures/NormalMap.png")
	require.NoError(t, err)
	w, h := nm.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestLoadNormalMapErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("not a png")}}
	_, err := LoadNormalMap(fsys, "missing.png")
	assert.Error(t, err)
	_, err = LoadNormalMap(fsys, "bad.png")
	assert.ErrorContains(t, err, "decode normal map")
}
