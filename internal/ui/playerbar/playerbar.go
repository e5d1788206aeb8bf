// Package playerbar renders the now-playing panel: track info, the seek bar,
// transport buttons and the volume bar.
package playerbar

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/styles"
)

// Click zone ids.
const (
	ZonePrev     = "prev"
	ZoneToggle   = "toggle"
	ZoneNext     = "next"
	ZoneProgress = "progress"
	ZoneVolume   = "volume"
)

const (
	volumeBarWidth = 10
	minBarWidth    = 3
)

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Artist   string
	Playing  bool
	Progress playback.Progress
	Volume   float64
	Tier     playback.VolumeTier
}

// NewState reads the render state from the controller.
func NewState(c *playback.Controller) State {
	t := c.CurrentTrack()
	return State{
		Title:    t.Title,
		Artist:   t.Artist,
		Playing:  c.IsPlaying(),
		Progress: c.Progress(),
		Volume:   c.Volume(),
		Tier:     c.VolumeTier(),
	}
}

// Render lays out the player bar at width columns.
func Render(s State, width int) render.Block {
	st := styles.T().S()

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	progress, progressZones := renderProgress(s.Progress, width)
	controls, controlZones := renderControls(s, width)

	var zones render.Zones
	zones = append(zones, progressZones.Offset(3)...)
	zones = append(zones, controlZones.Offset(4)...)

	return render.Block{
		Lines: []string{
			st.Title.Render(render.Truncate(icons.FormatTrack(title), width)),
			st.Muted.Render(render.Truncate(s.Artist, width)),
			"",
			progress,
			controls,
		},
		Zones: zones,
	}
}

// renderProgress renders "1:05 ▓▓▓░░░ 3:45". The bar zone maps clicks to a
// seek fraction.
func renderProgress(p playback.Progress, width int) (string, render.Zones) {
	st := styles.T().S()
	elapsed, total := p.Elapsed, p.Total

	barWidth := width - lipgloss.Width(elapsed) - lipgloss.Width(total) - 2
	if barWidth < minBarWidth {
		return st.Muted.Render(elapsed + " / " + total), nil
	}

	var b render.Builder
	b.Add(st.Muted.Render(elapsed), lipgloss.Width(elapsed))
	b.Space(1)
	bar := b.Add(render.Bar(p.Percent/100, barWidth, st.BarFilled, st.BarEmpty), barWidth)
	b.Space(1)
	b.Add(st.Muted.Render(total), lipgloss.Width(total))

	return b.String(), render.Zones{{ID: ZoneProgress, Span: bar}}
}

// renderControls renders the transport buttons on the left and the volume
// bar on the right.
func renderControls(s State, width int) (string, render.Zones) {
	st := styles.T().S()
	ic := icons.Current()

	var b render.Builder
	var zones render.Zones
	button := func(id, glyph string) {
		label := " " + glyph + " "
		span := b.Add(st.Button.Render(label), lipgloss.Width(label))
		zones = append(zones, render.Zone{ID: id, Span: span})
		b.Space(1)
	}
	button(ZonePrev, ic.Prev)
	button(ZoneToggle, icons.PlayPause(s.Playing))
	button(ZoneNext, ic.Next)

	volIcon := icons.Volume(int(s.Tier))
	pct := fmt.Sprintf("%3d%%", int(math.Round(s.Volume*100)))
	volWidth := lipgloss.Width(volIcon) + 1 + volumeBarWidth + 1 + lipgloss.Width(pct)

	gap := width - b.Width() - volWidth
	if gap < 2 {
		return b.String(), zones
	}

	b.Space(gap)
	b.Add(volIcon, lipgloss.Width(volIcon))
	b.Space(1)
	vol := b.Add(render.Bar(s.Volume, volumeBarWidth, st.BarFilled, st.BarEmpty), volumeBarWidth)
	b.Space(1)
	b.Add(st.Muted.Render(pct), lipgloss.Width(pct))

	zones = append(zones, render.Zone{ID: ZoneVolume, Span: vol})
	return b.String(), zones
}
