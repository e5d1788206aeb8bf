package noticebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodBoiDoom/gestures/internal/notify"
)

func TestRender(t *testing.T) {
	b := Render([]notify.Notice{
		{ID: "a", Text: "Playback failed. Click to try again."},
		{ID: "b", Text: "💧 Nature sounds flowing"},
	}, 40)

	require.Equal(t, 2, b.Height())
	assert.Contains(t, b.Lines[0], "Playback failed")
	assert.Contains(t, b.Lines[1], "Nature sounds flowing")
	require.Len(t, b.Zones, 2)
	assert.Equal(t, 1, b.Zones[1].Index)
	assert.Equal(t, 1, b.Zones[1].Row)
}

func TestRender_Empty(t *testing.T) {
	assert.Zero(t, Render(nil, 40).Height())
}
