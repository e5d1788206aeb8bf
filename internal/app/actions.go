package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/scene"
	"github.com/GoodBoiDoom/gestures/internal/ui/noticebar"
	"github.com/GoodBoiDoom/gestures/internal/ui/playerbar"
	"github.com/GoodBoiDoom/gestures/internal/ui/scenebar"
	"github.com/GoodBoiDoom/gestures/internal/ui/tracklist"
)

// actionHandler performs an action. value carries the fraction, level or
// index of value-carrying actions and is ignored by the rest.
type actionHandler func(m *Model, value float64) tea.Cmd

// actionHandlers is the input-to-command table shared by every input
// surface.
var actionHandlers = map[keymap.Action]actionHandler{
	keymap.ActionPlayPause: func(m *Model, _ float64) tea.Cmd {
		return awaitPlay(m.ctrl.TogglePlayPause())
	},
	keymap.ActionPlay: func(m *Model, _ float64) tea.Cmd {
		if m.ctrl.IsPlaying() {
			return nil
		}
		return awaitPlay(m.ctrl.TogglePlayPause())
	},
	keymap.ActionPause: func(m *Model, _ float64) tea.Cmd {
		if m.ctrl.IsPlaying() {
			m.ctrl.TogglePlayPause()
		}
		return nil
	},
	keymap.ActionNextTrack: func(m *Model, _ float64) tea.Cmd {
		return awaitPlay(m.ctrl.NextTrack())
	},
	keymap.ActionPrevTrack: func(m *Model, _ float64) tea.Cmd {
		return awaitPlay(m.ctrl.PreviousTrack())
	},
	keymap.ActionVolumeUp: func(m *Model, _ float64) tea.Cmd {
		m.ctrl.StepVolume(keymap.VolumeStep)
		return nil
	},
	keymap.ActionVolumeDown: func(m *Model, _ float64) tea.Cmd {
		m.ctrl.StepVolume(-keymap.VolumeStep)
		return nil
	},
	keymap.ActionSetVolume: func(m *Model, v float64) tea.Cmd {
		m.ctrl.SetVolume(v)
		return nil
	},
	keymap.ActionSeekTo: func(m *Model, v float64) tea.Cmd {
		m.ctrl.SeekTo(v)
		return nil
	},
	keymap.ActionSelectTrack: func(m *Model, v float64) tea.Cmd {
		attempt, err := m.ctrl.SelectTrack(int(v))
		if err != nil {
			m.logger.Warn("select track", "err", err)
			return nil
		}
		return awaitPlay(attempt)
	},
	keymap.ActionSceneRainfall:  switchScene(scene.Rainfall),
	keymap.ActionSceneSpace:     switchScene(scene.Space),
	keymap.ActionSceneWaterfall: switchScene(scene.Waterfall),
	keymap.ActionSelectScene: func(m *Model, v float64) tea.Cmd {
		scenes := m.scenes.Scenes()
		if i := int(v); i >= 0 && i < len(scenes) {
			m.scenes.Switch(scenes[i].ID)
		}
		return nil
	},
	keymap.ActionDismiss: func(m *Model, v float64) tea.Cmd {
		active := m.notices.Active()
		i := int(v)
		if i < 0 || i >= len(active) {
			return nil
		}
		m.notices.Dismiss(active[i].ID)
		if active[i].Text == playback.NoticePlaybackFailed && !m.ctrl.IsPlaying() {
			return awaitPlay(m.ctrl.TogglePlayPause())
		}
		return nil
	},
	keymap.ActionHelp: func(m *Model, _ float64) tea.Cmd {
		m.showHelp = !m.showHelp
		return nil
	},
	keymap.ActionQuit: func(m *Model, _ float64) tea.Cmd {
		m.quitting = true
		return tea.Quit
	},
}

func switchScene(id scene.ID) actionHandler {
	return func(m *Model, _ float64) tea.Cmd {
		if !m.scenes.Switch(id) {
			m.logger.Warn("scene shortcut has no configured scene", "scene", id)
		}
		return nil
	}
}

// zoneActions maps click zones to actions. Zones listed in positional take
// the click position across the zone as their value; indexed zones take
// the item index.
var zoneActions = map[string]keymap.Action{
	playerbar.ZonePrev:     keymap.ActionPrevTrack,
	playerbar.ZoneToggle:   keymap.ActionPlayPause,
	playerbar.ZoneNext:     keymap.ActionNextTrack,
	playerbar.ZoneProgress: keymap.ActionSeekTo,
	playerbar.ZoneVolume:   keymap.ActionSetVolume,
	tracklist.ZoneTrack:    keymap.ActionSelectTrack,
	scenebar.ZoneScene:     keymap.ActionSelectScene,
	noticebar.ZoneNotice:   keymap.ActionDismiss,
}

var positional = map[string]bool{
	playerbar.ZoneProgress: true,
	playerbar.ZoneVolume:   true,
}
