package playerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
)

func testState() State {
	return State{
		Title:    "Midnight Coffee",
		Artist:   "Chill Beats Collective",
		Playing:  true,
		Progress: playback.Progress{Elapsed: "1:05", Total: "3:45", Percent: 28.9, Known: true},
		Volume:   0.7,
		Tier:     playback.VolumeHigh,
	}
}

func zoneByID(t *testing.T, zones render.Zones, id string) render.Zone {
	t.Helper()
	for _, z := range zones {
		if z.ID == id {
			return z
		}
	}
	require.Failf(t, "zone not found", "id %q", id)
	return render.Zone{}
}

func TestRender_Layout(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	b := Render(testState(), 60)

	require.Equal(t, 5, b.Height())
	assert.Contains(t, b.Lines[0], "Midnight Coffee")
	assert.Contains(t, b.Lines[1], "Chill Beats Collective")
	assert.Contains(t, b.Lines[3], "1:05")
	assert.Contains(t, b.Lines[3], "3:45")
	assert.Contains(t, b.Lines[4], "[||]", "pause glyph while playing")
	assert.Contains(t, b.Lines[4], " 70%")
}

func TestRender_Zones(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	b := Render(testState(), 60)

	progress := zoneByID(t, b.Zones, ZoneProgress)
	assert.Equal(t, 3, progress.Row)
	assert.Equal(t, render.Span{Start: 5, End: 55}, progress.Span)

	prev := zoneByID(t, b.Zones, ZonePrev)
	toggle := zoneByID(t, b.Zones, ZoneToggle)
	next := zoneByID(t, b.Zones, ZoneNext)
	assert.Equal(t, 4, prev.Row)
	assert.Equal(t, render.Span{Start: 0, End: 6}, prev.Span)
	assert.Equal(t, render.Span{Start: 7, End: 13}, toggle.Span)
	assert.Equal(t, render.Span{Start: 14, End: 20}, next.Span)

	vol := zoneByID(t, b.Zones, ZoneVolume)
	assert.Equal(t, 4, vol.Row)
	assert.Equal(t, volumeBarWidth, vol.Span.Width())
	assert.Equal(t, 60-5, vol.Span.End, "bar sits before the percentage")
}

func TestRender_Narrow(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	b := Render(testState(), 12)

	assert.Contains(t, b.Lines[3], "1:05 / 3:45")
	for _, z := range b.Zones {
		assert.NotEqual(t, ZoneProgress, z.ID)
		assert.NotEqual(t, ZoneVolume, z.ID)
	}
}

func TestRender_UnknownTitle(t *testing.T) {
	s := testState()
	s.Title = ""
	b := Render(s, 40)
	assert.True(t, strings.Contains(b.Lines[0], "Unknown Track"))
}
