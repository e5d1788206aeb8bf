package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/player"
)

// playTimeout bounds how long a play attempt may stay pending before it is
// reported as failed.
const playTimeout = 5 * time.Second

// waitForChannel creates a command that waits for a value from a channel and
// converts it to a message. ok is false once the channel is closed.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// waitForMediaEvent waits for the next media handle event.
func waitForMediaEvent(events <-chan player.Event) tea.Cmd {
	return waitForChannel(events, func(e player.Event, ok bool) tea.Msg {
		return MediaEventMsg{Event: e, Closed: !ok}
	})
}

// awaitPlay waits off the event loop for a play attempt to resolve.
func awaitPlay(a *playback.PlayAttempt) tea.Cmd {
	if a == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), playTimeout)
		defer cancel()
		return PlayResolvedMsg{Attempt: a, Err: a.Await(ctx)}
	}
}

// expireNotice fires when n's lifetime ends.
func expireNotice(n notify.Notice, now time.Time) tea.Cmd {
	return tea.Tick(max(n.Expires.Sub(now), 0), func(at time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: n.ID, At: at}
	})
}
