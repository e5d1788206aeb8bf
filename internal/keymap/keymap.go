package keymap

// Binding ties keys to an action.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "playback", "scenes", "global"
}

// All contains every key binding.
var All = []Binding{
	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionPrevTrack, []string{"left"}, "Previous track", "playback"},
	{ActionNextTrack, []string{"right"}, "Next track", "playback"},
	{ActionVolumeUp, []string{"up"}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"down"}, "Volume down", "playback"},

	// Scenes
	{ActionSceneRainfall, []string{"1"}, "Rainfall scene", "scenes"},
	{ActionSceneSpace, []string{"2"}, "Space scene", "scenes"},
	{ActionSceneWaterfall, []string{"3"}, "Waterfall scene", "scenes"},

	// Global
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
}

// Contexts lists binding contexts in display order.
var Contexts = []string{"playback", "scenes", "global"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey renders a key for help text.
func DisplayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}
