package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not #rrggbb.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders bold text blended from one hex color to another across
// its grapheme clusters.
func Gradient(text, from, to string) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	colors := Blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorToHex(colors[i])))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend returns size colors from one hex color to another, blended in HCL
// space.
func Blend(size int, from, to string) []color.Color {
	c1 := parseHex(from)
	if size < 2 {
		return []color.Color{c1}
	}
	c2 := parseHex(to)

	colors := make([]color.Color, size)
	colors[0], colors[size-1] = c1, c2
	for i := 1; i < size-1; i++ {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

func parseHex(hex string) colorful.Color {
	if c, err := colorful.Hex(hex); err == nil {
		return c
	}
	return fallbackGray
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
