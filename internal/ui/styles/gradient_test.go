package styles

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlend_Endpoints(t *testing.T) {
	colors := Blend(5, "#2C3E50", "#4CA1AF")
	require.Len(t, colors, 5)

	assert.Equal(t, "#2c3e50", colorToHex(colors[0]))
	assert.Equal(t, "#4ca1af", colorToHex(colors[4]))
}

func TestBlend_SingleAndInvalid(t *testing.T) {
	colors := Blend(1, "#0F0C29", "#8E44AD")
	require.Len(t, colors, 1)
	assert.Equal(t, "#0f0c29", colorToHex(colors[0]))

	colors = Blend(2, "not-a-color", "#ffffff")
	assert.Equal(t, fallbackGray.Hex(), colorToHex(colors[0]))
}

func TestGradient(t *testing.T) {
	assert.Empty(t, Gradient("", "#000000", "#ffffff"))

	out := Gradient("Rainfall", "#2C3E50", "#4CA1AF")
	assert.Contains(t, stripANSI(out), "Rainfall")
}

func TestColorToHex(t *testing.T) {
	assert.Equal(t, "#123456", colorToHex(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}))

	c, _ := colorful.Hex("#abcdef")
	assert.Equal(t, "#abcdef", colorToHex(c))
}

func TestTheme_StylesCached(t *testing.T) {
	th := T()
	assert.Same(t, th.S(), th.S())
}

func stripANSI(s string) string {
	var out []rune
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && r == 'm':
			inEsc = false
		case !inEsc:
			out = append(out, r)
		}
	}
	return string(out)
}
