// Package app is the terminal host: a bubbletea model that routes keys,
// mouse, gestures and remote commands to the player controller and renders
// its state.
package app

import (
	"time"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/player"
)

// ActionMsg asks the model to perform an action. Inputs outside the event
// loop (gesture feed, MPRIS) deliver their commands as ActionMsg through
// tea.Program.Send.
type ActionMsg struct {
	Action keymap.Action
	Value  float64 // fraction, level or index for value-carrying actions
}

// MediaEventMsg carries one event from the media handle. Closed is set once
// the event channel has closed.
type MediaEventMsg struct {
	Event  player.Event
	Closed bool
}

// PlayResolvedMsg reports the outcome of a play attempt.
type PlayResolvedMsg struct {
	Attempt *playback.PlayAttempt
	Err     error
}

// NoticeExpiredMsg is sent when a notice's lifetime ends. At is the tick
// time; every notice due by then is swept along with ID.
type NoticeExpiredMsg struct {
	ID string
	At time.Time
}
