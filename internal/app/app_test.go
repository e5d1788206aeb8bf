package app

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoodBoiDoom/gestures/internal/icons"
	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/player"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
	"github.com/GoodBoiDoom/gestures/internal/scene"
	"github.com/GoodBoiDoom/gestures/internal/ui/noticebar"
	"github.com/GoodBoiDoom/gestures/internal/ui/playerbar"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/testutil"
	"github.com/GoodBoiDoom/gestures/internal/ui/tracklist"
)

type harness struct {
	t     *testing.T
	model Model
	media *player.Mock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	icons.Init("none")
	t.Cleanup(func() { icons.Init("unicode") })

	tracks, err := playlist.New(
		playlist.Track{Title: "Midnight Coffee", Artist: "Chill Beats Collective", Duration: "3:45", Src: "midnight-coffee.mp3"},
		playlist.Track{Title: "Rainy Window", Artist: "Lofi Dreams", Duration: "4:12", Src: "rainy-window.mp3"},
		playlist.Track{Title: "Cosmic Drift", Artist: "Space Vibes", Duration: "5:23", Src: "cosmic-drift.mp3"},
		playlist.Track{Title: "Forest Stream", Artist: "Nature Sounds Co.", Duration: "4:56", Src: "forest-stream.mp3"},
	)
	require.NoError(t, err)

	media := player.NewMock()
	notices := notify.NewCenter(time.Hour, nil, nil)
	ctrl := playback.New(tracks, media, notices, nil, playback.DefaultOptions())
	scenes, err := scene.NewSelector(scene.Defaults(), scene.Cafe, notices)
	require.NoError(t, err)

	h := &harness{
		t:     t,
		media: media,
		model: New(Options{
			Controller: ctrl,
			Scenes:     scenes,
			Notices:    notices,
			Media:      media,
		}),
	}
	h.send(tea.WindowSizeMsg{Width: 60, Height: 40})
	return h
}

// send feeds msg to the model and returns the resulting command.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

// run executes cmd and feeds every message it produces back into the model.
// Commands that block (such as waiting on the media event stream) are left
// pending.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	for _, msg := range collect(cmd) {
		h.run(h.send(msg))
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(200 * time.Millisecond):
		return nil
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func (h *harness) key(k tea.KeyMsg) { h.run(h.send(k)) }

func (h *harness) click(x, y int) {
	h.run(h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
}

func (h *harness) zone(id string, index int) render.Zone {
	h.t.Helper()
	for _, z := range h.model.layout().Zones {
		if z.ID == id && z.Index == index {
			return z
		}
	}
	require.Failf(h.t, "zone not found", "%s[%d]", id, index)
	return render.Zone{}
}

func (h *harness) view() string { return testutil.Plain(h.model.View()) }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestKeys_PlayPause(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, h.model.ctrl.IsPlaying())
	assert.True(t, h.media.Playing())

	h.key(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, h.model.ctrl.IsPlaying())
	assert.Equal(t, 1, h.media.PauseCalls())
}

func TestKeys_TrackNavigation(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 3, h.model.ctrl.CurrentIndex())

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	h.key(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, h.model.ctrl.CurrentIndex())
	assert.Equal(t, "rainy-window.mp3", h.media.Src())
}

func TestKeys_Volume(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyUp})
	assert.InDelta(t, 0.8, h.model.ctrl.Volume(), 1e-12)
	h.key(tea.KeyMsg{Type: tea.KeyDown})
	h.key(tea.KeyMsg{Type: tea.KeyDown})
	assert.InDelta(t, 0.6, h.model.ctrl.Volume(), 1e-12)
}

func TestKeys_ScenesRaiseNotices(t *testing.T) {
	h := newHarness(t)

	h.key(runes("2"))
	assert.Equal(t, scene.Space, h.model.scenes.ActiveID())
	assert.Contains(t, h.view(), "Cosmic journey initiated")

	h.key(runes("1"))
	h.key(runes("3"))
	assert.Equal(t, scene.Waterfall, h.model.scenes.ActiveID())
	assert.Len(t, h.model.notices.Active(), 3)
}

func TestKeys_UnboundIgnored(t *testing.T) {
	h := newHarness(t)
	cmd := h.send(runes("z"))
	assert.Nil(t, cmd)
}

func TestKeys_Quit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(runes("q"))
	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))
	assert.True(t, h.model.Quitting())
	assert.Empty(t, h.view())
}

func TestKeys_HelpToggle(t *testing.T) {
	h := newHarness(t)
	short := h.view()

	h.key(runes("?"))
	full := h.view()

	assert.NotContains(t, short, "rainfall scene")
	assert.Contains(t, full, "rainfall scene")
}

func TestMouse_TransportButtons(t *testing.T) {
	h := newHarness(t)

	next := h.zone(playerbar.ZoneNext, 0)
	h.click(next.Span.Start, next.Row)
	assert.Equal(t, 1, h.model.ctrl.CurrentIndex())

	prev := h.zone(playerbar.ZonePrev, 0)
	h.click(prev.Span.Start, prev.Row)
	h.click(prev.Span.Start, prev.Row)
	assert.Equal(t, 3, h.model.ctrl.CurrentIndex())

	toggle := h.zone(playerbar.ZoneToggle, 0)
	h.click(toggle.Span.Start, toggle.Row)
	assert.True(t, h.model.ctrl.IsPlaying())
}

func TestMouse_ProgressBarSeeks(t *testing.T) {
	h := newHarness(t)
	h.media.SetDuration(200 * time.Second)

	bar := h.zone(playerbar.ZoneProgress, 0)
	h.click(bar.Span.Start, bar.Row)
	h.click(bar.Span.End-1, bar.Row)

	assert.Equal(t, []time.Duration{0, 200 * time.Second}, h.media.SeekCalls())
}

func TestMouse_ProgressBarBeforeMetadataIsNoop(t *testing.T) {
	h := newHarness(t)

	bar := h.zone(playerbar.ZoneProgress, 0)
	h.click(bar.Span.Start+3, bar.Row)
	assert.Empty(t, h.media.SeekCalls())
}

func TestMouse_VolumeBar(t *testing.T) {
	h := newHarness(t)

	bar := h.zone(playerbar.ZoneVolume, 0)
	h.click(bar.Span.Start, bar.Row)
	assert.InDelta(t, 0.0, h.model.ctrl.Volume(), 1e-12)
	assert.Equal(t, playback.VolumeMuted, h.model.ctrl.VolumeTier())

	h.click(bar.Span.End-1, bar.Row)
	assert.InDelta(t, 1.0, h.model.ctrl.Volume(), 1e-12)
}

func TestMouse_WheelChangesVolume(t *testing.T) {
	h := newHarness(t)

	h.run(h.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}))
	assert.InDelta(t, 0.8, h.model.ctrl.Volume(), 1e-12)
	h.run(h.send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}))
	assert.InDelta(t, 0.7, h.model.ctrl.Volume(), 1e-12)
}

func TestMouse_TrackRowSelects(t *testing.T) {
	h := newHarness(t)

	row := h.zone(tracklist.ZoneTrack, 2)
	h.click(5, row.Row)

	assert.Equal(t, 2, h.model.ctrl.CurrentIndex())
	assert.Equal(t, "cosmic-drift.mp3", h.media.Src())
}

func TestMouse_SceneTab(t *testing.T) {
	h := newHarness(t)

	tab := h.zone("scene", 1)
	h.click(tab.Span.Start+1, tab.Row)

	assert.Equal(t, scene.Rainfall, h.model.scenes.ActiveID())
	assert.Contains(t, h.view(), "Rainfall vibes activated")
}

func TestMouse_Swipe(t *testing.T) {
	h := newHarness(t)

	h.run(h.send(tea.MouseMsg{X: 10, Y: 11, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	assert.Equal(t, 1, h.model.ctrl.CurrentIndex(), "right swipe goes forward")

	h.run(h.send(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	assert.Equal(t, 3, h.model.ctrl.CurrentIndex(), "left swipes go back and wrap")
}

func TestMouse_ShortVerticalDragIsNotASwipe(t *testing.T) {
	h := newHarness(t)

	h.run(h.send(tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	h.run(h.send(tea.MouseMsg{X: 16, Y: 20, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
	assert.Equal(t, 0, h.model.ctrl.CurrentIndex())
}

func TestPlayFailure_NoticeClickRetries(t *testing.T) {
	h := newHarness(t)
	h.media.SetPlayError(errors.New("device busy"))

	h.key(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, h.model.ctrl.IsPlaying())
	require.Len(t, h.model.notices.Active(), 1)
	assert.Contains(t, h.view(), playback.NoticePlaybackFailed)

	h.media.SetPlayError(nil)
	notice := h.zone(noticebar.ZoneNotice, 0)
	h.click(0, notice.Row)

	assert.True(t, h.model.ctrl.IsPlaying())
	assert.Empty(t, h.model.notices.Active())
}

func TestMediaEvents_EndedOnLastTrackWraps(t *testing.T) {
	h := newHarness(t)
	h.key(tea.KeyMsg{Type: tea.KeyLeft})
	h.key(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, h.model.ctrl.IsPlaying())

	h.run(h.send(MediaEventMsg{Event: player.Event{Kind: player.Ended, Src: "forest-stream.mp3"}}))

	assert.Equal(t, 0, h.model.ctrl.CurrentIndex())
	assert.True(t, h.model.ctrl.IsPlaying())
	calls := h.media.PlayCalls()
	assert.Equal(t, "midnight-coffee.mp3", calls[len(calls)-1])
}

func TestMediaEvents_LoadErrorRaisesNotice(t *testing.T) {
	h := newHarness(t)

	h.run(h.send(MediaEventMsg{Event: player.Event{Kind: player.LoadError, Src: "midnight-coffee.mp3", Err: errors.New("missing")}}))
	assert.Contains(t, h.view(), playback.NoticeLoadFailed)
}

func TestMediaEvents_Closed(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.send(MediaEventMsg{Closed: true}))
}

func TestMediaEvents_PositionUpdatesView(t *testing.T) {
	h := newHarness(t)
	h.media.SetDuration(225 * time.Second)
	h.media.SetPosition(65 * time.Second)

	h.run(h.send(MediaEventMsg{Event: player.Event{Kind: player.PositionChanged, Src: "midnight-coffee.mp3"}}))

	view := h.view()
	assert.Contains(t, view, "1:05")
	assert.Contains(t, view, "3:45")
}

func TestActionMsg_RemotePlayPause(t *testing.T) {
	h := newHarness(t)

	h.run(h.send(ActionMsg{Action: keymap.ActionPause}))
	assert.False(t, h.model.ctrl.IsPlaying())
	assert.Zero(t, h.media.PauseCalls(), "pause while paused is a no-op")

	h.run(h.send(ActionMsg{Action: keymap.ActionPlay}))
	h.run(h.send(ActionMsg{Action: keymap.ActionPlay}))
	assert.True(t, h.model.ctrl.IsPlaying())
	assert.Len(t, h.media.PlayCalls(), 1)

	h.run(h.send(ActionMsg{Action: keymap.ActionSetVolume, Value: 0.25}))
	assert.InDelta(t, 0.25, h.model.ctrl.Volume(), 1e-12)

	h.run(h.send(ActionMsg{Action: keymap.ActionSelectTrack, Value: 9}))
	assert.Equal(t, 0, h.model.ctrl.CurrentIndex(), "invalid index is ignored")
}

func TestActionMsg_Unknown(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.send(ActionMsg{Action: "rewind"}))
}

func TestNoticeExpiry(t *testing.T) {
	h := newHarness(t)
	h.key(runes("2"))
	active := h.model.notices.Active()
	require.Len(t, active, 1)

	h.send(NoticeExpiredMsg{ID: active[0].ID})
	assert.Empty(t, h.model.notices.Active())
	assert.NotContains(t, h.view(), "Cosmic journey")
}

func TestNoticeExpiry_SweepsOverdueNotices(t *testing.T) {
	h := newHarness(t)
	h.key(runes("2"))
	h.key(runes("3"))
	active := h.model.notices.Active()
	require.Len(t, active, 2)

	// One late tick clears everything already past its lifetime.
	h.send(NoticeExpiredMsg{ID: active[0].ID, At: active[1].Expires})
	assert.Empty(t, h.model.notices.Active())
}

func TestKeys_ConfiguredBindings(t *testing.T) {
	h := newHarness(t)
	bindings, invalid := keymap.Extend(keymap.All, map[string][]string{"next_track": {"l"}, "quit": {"?"}})
	require.Empty(t, invalid)
	h.model = New(Options{
		Controller: h.model.ctrl,
		Scenes:     h.model.scenes,
		Notices:    h.model.notices,
		Media:      h.media,
		Bindings:   bindings,
	})
	h.send(tea.WindowSizeMsg{Width: 60, Height: 40})

	h.key(runes("l"))
	assert.Equal(t, 1, h.model.ctrl.CurrentIndex())
	assert.NotContains(t, h.view(), "? toggle help", "help lists only effective keys")

	cmd := h.send(runes("?"))
	assert.True(t, h.model.Quitting())
	assert.Contains(t, collect(cmd), tea.Msg(tea.QuitMsg{}))
}

func TestKeys_SceneShortcutWithoutSceneLogs(t *testing.T) {
	h := newHarness(t)
	var buf bytes.Buffer
	h.model.logger = log.New(&buf)
	scenes, err := scene.NewSelector([]scene.Scene{
		{ID: scene.Cafe, Name: "Cafe"},
		{ID: scene.Space, Name: "Space"},
	}, scene.Cafe, h.model.notices)
	require.NoError(t, err)
	h.model.scenes = scenes

	h.key(runes("1"))
	assert.Equal(t, scene.Cafe, h.model.scenes.ActiveID())
	assert.Empty(t, h.model.notices.Active())
	assert.Contains(t, buf.String(), "scene shortcut has no configured scene")
	assert.Contains(t, buf.String(), "rainfall")
}

func TestMouse_MotionWithoutButtonCancelsDrag(t *testing.T) {
	h := newHarness(t)
	next := h.zone(playerbar.ZoneNext, 0)

	h.send(tea.MouseMsg{X: next.Span.Start, Y: next.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.False(t, h.model.swipe.Active())

	h.run(h.send(tea.MouseMsg{X: next.Span.Start, Y: next.Row, Action: tea.MouseActionRelease}))
	assert.Equal(t, 0, h.model.ctrl.CurrentIndex(), "stray release is not a click")
}

func TestMouse_ResizeCancelsDrag(t *testing.T) {
	h := newHarness(t)
	next := h.zone(playerbar.ZoneNext, 0)

	h.send(tea.MouseMsg{X: next.Span.Start, Y: next.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.send(tea.WindowSizeMsg{Width: 70, Height: 40})
	h.run(h.send(tea.MouseMsg{X: next.Span.Start, Y: next.Row, Action: tea.MouseActionRelease}))
	assert.Equal(t, 0, h.model.ctrl.CurrentIndex())
}

func TestView_ShortTerminalKeepsZonesOnScreen(t *testing.T) {
	h := newHarness(t)
	h.key(runes("?"))
	tall := len(testutil.Lines(h.view()))

	h.send(tea.WindowSizeMsg{Width: 60, Height: 12})
	require.Less(t, 12, tall)
	assert.Len(t, h.model.layout().Lines, 12)
	assert.NotContains(t, h.view(), "rainfall scene", "help gives way first")

	lines := testutil.Lines(h.view())
	for _, z := range h.model.layout().Zones {
		require.GreaterOrEqual(t, z.Row, 0)
		require.Less(t, z.Row, 12)
	}

	row := h.zone(tracklist.ZoneTrack, 3)
	assert.Contains(t, lines[row.Row], "Forest Stream")
	h.click(row.Span.Start, row.Row)
	assert.Equal(t, 3, h.model.ctrl.CurrentIndex())
}

func TestView_Layout(t *testing.T) {
	h := newHarness(t)
	lines := testutil.Lines(h.view())

	assert.Contains(t, lines[1], "Cafe")
	assert.Contains(t, lines[3], "Midnight Coffee")
	assert.Contains(t, lines[4], "Chill Beats Collective")
	assert.Contains(t, lines[6], "0:00")
	row := h.zone(tracklist.ZoneTrack, 3)
	assert.Contains(t, lines[row.Row], "Forest Stream")
}

func TestEveryBindingHasHandler(t *testing.T) {
	for _, b := range keymap.All {
		_, ok := actionHandlers[b.Action]
		assert.True(t, ok, "action %q", b.Action)
	}
	for id, a := range zoneActions {
		_, ok := actionHandlers[a]
		assert.True(t, ok, "zone %q action %q", id, a)
	}
}
