package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

// Identity is the player name shown by MPRIS clients.
const Identity = "Lofi"

// Dispatcher forwards a remote command to the UI loop.
type Dispatcher func(action keymap.Action, value float64)

// Clock reports playback position and duration. It must be safe for
// concurrent use.
type Clock interface {
	Position() time.Duration
	Duration() (time.Duration, bool)
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	quit func()
}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error {
	if r.quit != nil {
		r.quit()
	}
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error)      { return r.quit != nil, nil }
func (r *rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (r *rootAdapter) Identity() (string, error)   { return Identity, nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter. Reads come
// from the mirrored status; writes become dispatched actions.
type playerAdapter struct {
	status   *status
	clock    Clock
	dispatch Dispatcher
}

func (p *playerAdapter) Next() error      { return p.send(keymap.ActionNextTrack, 0) }
func (p *playerAdapter) Previous() error  { return p.send(keymap.ActionPrevTrack, 0) }
func (p *playerAdapter) Pause() error     { return p.send(keymap.ActionPause, 0) }
func (p *playerAdapter) PlayPause() error { return p.send(keymap.ActionPlayPause, 0) }
func (p *playerAdapter) Play() error      { return p.send(keymap.ActionPlay, 0) }

// Stop pauses; the player has no stopped state.
func (p *playerAdapter) Stop() error { return p.send(keymap.ActionPause, 0) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	pos := p.clock.Position() + time.Duration(offset)*time.Microsecond
	return p.seekTo(pos)
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.seekTo(time.Duration(position) * time.Microsecond)
}

func (p *playerAdapter) seekTo(pos time.Duration) error {
	dur, ok := p.clock.Duration()
	if !ok || dur <= 0 {
		return nil
	}
	return p.send(keymap.ActionSeekTo, float64(pos)/float64(dur))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.status.snapshot().Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error)  { return 1.0, nil }
func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.status.snapshot()
	if st.Track.Src == "" {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(st.Track.Src)),
		Title:       st.Track.Title,
		Artist:      []string{st.Track.Artist},
		TrackNumber: st.Index + 1,
		ArtUrl:      ArtURL(st.Track.Src),
	}
	if dur, ok := p.clock.Duration(); ok {
		meta.Length = types.Microseconds(dur.Microseconds())
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.status.snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.send(keymap.ActionSetVolume, v)
}

func (p *playerAdapter) Position() (int64, error) {
	return p.clock.Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// The playlist wraps in both directions.
func (p *playerAdapter) CanGoNext() (bool, error)     { return true, nil }
func (p *playerAdapter) CanGoPrevious() (bool, error) { return true, nil }

func (p *playerAdapter) CanPlay() (bool, error)    { return true, nil }
func (p *playerAdapter) CanPause() (bool, error)   { return true, nil }
func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) {
	_, ok := p.clock.Duration()
	return ok, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return types.LoopStatusPlaylist, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The loop mode is fixed.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error { return nil }

func (p *playerAdapter) send(action keymap.Action, value float64) error {
	if p.dispatch != nil {
		p.dispatch(action, value)
	}
	return nil
}

func formatTrackID(src string) string {
	h := fnv.New64a()
	h.Write([]byte(src))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
