// Package styles holds the color palette and gradient helpers.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette and its pre-built styles.
type Theme struct {
	Accent  lipgloss.Color // active track, active scene
	Warm    lipgloss.Color // notices
	FgBase  lipgloss.Color
	FgMuted lipgloss.Color
	FgDim   lipgloss.Color
	BgTab   lipgloss.Color
	Error   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Dim       lipgloss.Style
	Title     lipgloss.Style
	Playing   lipgloss.Style
	Button    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	BarFilled lipgloss.Style
	BarEmpty  lipgloss.Style
	Notice    lipgloss.Style
	Error     lipgloss.Style
}

var defaultTheme = Theme{
	Accent:  lipgloss.Color("#e8a87c"),
	Warm:    lipgloss.Color("#f6d186"),
	FgBase:  lipgloss.Color("#d8cfc4"),
	FgMuted: lipgloss.Color("#8a817c"),
	FgDim:   lipgloss.Color("#4a4541"),
	BgTab:   lipgloss.Color("#3b2f2a"),
	Error:   lipgloss.Color("#e06c75"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Dim:       lipgloss.NewStyle().Foreground(t.FgDim),
		Title:     base.Bold(true),
		Playing:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Button:    base.Bold(true),
		Tab:       lipgloss.NewStyle().Foreground(t.FgMuted),
		ActiveTab: lipgloss.NewStyle().Foreground(t.Accent).Background(t.BgTab).Bold(true),
		BarFilled: lipgloss.NewStyle().Foreground(t.Accent),
		BarEmpty:  lipgloss.NewStyle().Foreground(t.FgDim),
		Notice:    lipgloss.NewStyle().Foreground(t.Warm),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
	}
}
