package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{`{"gesture": "FIST"}`, "FIST", true},
		{`{"gesture":"palm"}` + "\r", "PALM", true},
		{"SWIPE_LEFT", "SWIPE_LEFT", true},
		{"  point_up \n", "POINT_UP", true},
		{`{"gesture": ""}`, "", false},
		{`{"gesture": `, "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapping_Lookup(t *testing.T) {
	m := DefaultMapping()

	tests := []struct {
		line   string
		want   keymap.Action
		wantOK bool
	}{
		{`{"gesture": "FIST"}`, keymap.ActionPause, true},
		{`{"gesture": "PALM"}`, keymap.ActionPlay, true},
		{`{"gesture": "2_FINGERS"}`, keymap.ActionNextTrack, true},
		{"SWIPE_RIGHT", keymap.ActionNextTrack, true},
		{"Received: POINT_DOWN", keymap.ActionVolumeDown, true},
		{`{"gesture": "5_FINGERS"}`, "", false},
		{"UNKNOWN", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := m.Lookup(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMapping(t *testing.T) {
	m, invalid := ParseMapping(map[string]string{
		"fist":      "play_pause",
		"thumbs_up": "VOLUME_UP",
		"wave":      "self_destruct",
	})

	assert.Equal(t, Mapping{
		"FIST":      keymap.ActionPlayPause,
		"THUMBS_UP": keymap.ActionVolumeUp,
	}, m)
	assert.Equal(t, []string{"wave"}, invalid)
}
