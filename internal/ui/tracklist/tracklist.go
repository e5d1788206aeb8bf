// Package tracklist renders the playlist with the current track marked.
package tracklist

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/styles"
)

// ZoneTrack is the click zone id of a track row; the zone index is the
// track index.
const ZoneTrack = "track"

// Render lists tracks one per row. Every row is a click zone spanning the
// full width.
func Render(tracks []playlist.Track, current int, width int) render.Block {
	st := styles.T().S()
	marker := icons.Current().Playing
	markerWidth := lipgloss.Width(marker)

	var b render.Block
	for i, t := range tracks {
		active := i == current

		prefix := fmt.Sprintf("%2d. ", i+1)
		lead := render.Pad("", markerWidth)
		if active {
			lead = marker
		}
		right := t.Duration

		label := t.Title
		if t.Artist != "" {
			label += " · " + t.Artist
		}
		labelWidth := max(width-markerWidth-1-len(prefix)-lipgloss.Width(right)-1, 0)
		row := render.Row(lead+" "+prefix+render.TruncateAndPad(label, labelWidth), right, width)

		style := st.Base
		if active {
			style = st.Playing
		}
		b.Lines = append(b.Lines, style.Render(row))
		b.Zones = append(b.Zones, render.Zone{
			ID:    ZoneTrack,
			Index: i,
			Row:   i,
			Span:  render.Span{Start: 0, End: width},
		})
	}
	return b
}
