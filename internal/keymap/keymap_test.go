package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		context string
		want    int
	}{
		{"playback", 5},
		{"scenes", 3},
		{"global", 2},
		{"unknown", 0},
	}
	for _, tt := range tests {
		t.Run(tt.context, func(t *testing.T) {
			result := ByContext(tt.context)
			assert.Len(t, result, tt.want)
			for _, b := range result {
				assert.Equal(t, tt.context, b.Context)
			}
		})
	}
}

func TestAll_EveryBindingIsKnownAndDescribed(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		assert.True(t, Known(b.Action), "unknown action %q", b.Action)
		assert.NotEmpty(t, b.Description, "action %q", b.Action)
		require.NotEmpty(t, b.Keys, "action %q", b.Action)
		for _, k := range b.Keys {
			prev, dup := seen[k]
			assert.False(t, dup, "key %q bound to both %q and %q", k, prev, b.Action)
			seen[k] = b.Action
		}
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(ActionSeekTo))
	assert.True(t, Known(ActionSceneSpace))
	assert.False(t, Known("rewind"))
	assert.False(t, Known(""))
}

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "space", DisplayKey(" "))
	assert.Equal(t, "←", DisplayKey("left"))
	assert.Equal(t, "ctrl+c", DisplayKey("ctrl+c"))
}

func TestHelpMap(t *testing.T) {
	m := NewHelpMap(All, NewResolver(All))

	full := m.FullHelp()
	require.Len(t, full, len(Contexts))
	assert.Len(t, full[0], 5)

	short := m.ShortHelp()
	require.Len(t, short, 5)
	assert.Equal(t, "space", short[0].Help().Key)
	assert.Equal(t, "play/pause", short[0].Help().Desc)
	assert.Equal(t, "q/ctrl+c", short[len(short)-1].Help().Key)
}

func TestHelpMap_ShowsEffectiveKeys(t *testing.T) {
	bindings, invalid := Extend(All, map[string][]string{
		"play_pause": {"p"},
		"help":       {"q"},
	})
	require.Empty(t, invalid)
	m := NewHelpMap(bindings, NewResolver(bindings))

	short := m.ShortHelp()
	require.Len(t, short, 5)
	assert.Equal(t, "space/p", short[0].Help().Key)
	assert.Equal(t, "?/q", short[3].Help().Key)
	assert.Equal(t, "ctrl+c", short[4].Help().Key, "q moved to help")

	full := m.FullHelp()
	require.Len(t, full, len(Contexts))
	assert.Len(t, full[0], 5, "each action listed once")
}
