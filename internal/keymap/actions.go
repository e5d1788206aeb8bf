// Package keymap maps input to player actions. Keys, mouse regions, gestures
// and the MPRIS remote all resolve to the same Action set.
package keymap

// Action is a user-triggerable command.
type Action string

const (
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback
	ActionPlayPause  Action = "play_pause"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Scenes
	ActionSceneRainfall  Action = "scene_rainfall"
	ActionSceneSpace     Action = "scene_space"
	ActionSceneWaterfall Action = "scene_waterfall"

	// Value-carrying actions, raised by the mouse and the MPRIS remote
	ActionPlay        Action = "play"
	ActionPause       Action = "pause"
	ActionSeekTo      Action = "seek_to"      // value: fraction of duration
	ActionSetVolume   Action = "set_volume"   // value: level 0-1
	ActionSelectTrack Action = "select_track" // value: track index
	ActionSelectScene Action = "select_scene" // value: scene index
	ActionDismiss     Action = "dismiss"      // value: notice index
)

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.1

// Known reports whether a is a defined action.
func Known(a Action) bool {
	switch a {
	case ActionQuit, ActionHelp,
		ActionPlayPause, ActionNextTrack, ActionPrevTrack, ActionVolumeUp, ActionVolumeDown,
		ActionSceneRainfall, ActionSceneSpace, ActionSceneWaterfall,
		ActionPlay, ActionPause, ActionSeekTo, ActionSetVolume, ActionSelectTrack,
		ActionSelectScene, ActionDismiss:
		return true
	}
	return false
}
