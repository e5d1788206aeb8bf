package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Direction
	}{
		{"right swipe", 12, 1, Right},
		{"left swipe", -12, -2, Left},
		{"at threshold is not a swipe", 5, 0, None},
		{"just past threshold", 6, 0, Right},
		{"mostly vertical", 10, 11, None},
		{"diagonal tie", 10, -10, None},
		{"no movement", 0, 0, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dx, tt.dy, 5))
		})
	}
}

func TestDirection_Action(t *testing.T) {
	assert.Equal(t, keymap.ActionNextTrack, Right.Action())
	assert.Equal(t, keymap.ActionPrevTrack, Left.Action())
	assert.Equal(t, keymap.Action(""), None.Action())
	assert.Equal(t, "right", Right.String())
}

func TestTracker(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultSwipeThreshold, tr.Threshold)

	assert.Equal(t, None, tr.End(40, 3), "release without press")

	tr.Start(30, 10)
	assert.True(t, tr.Active())
	x, y := tr.Origin()
	assert.Equal(t, 30, x)
	assert.Equal(t, 10, y)
	assert.Equal(t, Left, tr.End(10, 12))
	assert.False(t, tr.Active())

	tr.Start(10, 10)
	tr.Cancel()
	assert.Equal(t, None, tr.End(40, 10))
}
