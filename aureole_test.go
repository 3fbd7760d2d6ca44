package aureole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0xdf00ff)
	assert.InDelta(t, 223.0/255, c.R, 1e-12)
	assert.Equal(t, 0.0, c.G)
	assert.Equal(t, 1.0, c.B)
	assert.Equal(t, 1.0, c.A)
}

func TestColorHexRoundTrip(t *testing.T) {
	for _, hex := range []uint32{0x000000, 0xffffff, 0xffd700, 0x181818, 0xdf00ff} {
		assert.Equal(t, hex, ColorFromHex(hex).Hex(), "%06x", hex)
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#ffd700", ColorFromHex(0xffd700).String())
	assert.Equal(t, "#000000", Color{}.String())
}

func TestParseHexColor(t *testing.T) {
	for _, in := range []string{"#00ff88", "00ff88", "0x00ff88", " #00FF88 "} {
		c, err := ParseHexColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, uint32(0x00ff88), c.Hex(), in)
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(64), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(128), c.A)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(110, 70))
	assert.True(t, r.Contains(50, 40))
	assert.False(t, r.Contains(9, 40))
	assert.False(t, r.Contains(50, 71))
}
