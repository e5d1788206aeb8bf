// Package playback implements the player controller: playlist position,
// play/pause status, volume and seek, synchronized with one media handle.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GoodBoiDoom/gestures/internal/player"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
)

// DefaultVolume is the startup volume.
const DefaultVolume = 0.7

// ErrInvalidIndex is returned by SelectTrack for an index outside the playlist.
var ErrInvalidIndex = errors.New("invalid track index")

// User-facing notices raised by the controller.
const (
	NoticePlaybackFailed = "Playback failed. Click to try again."
	NoticeLoadFailed     = "Unable to load audio track"
)

// Notifier receives transient user notices.
type Notifier interface {
	Notify(text string)
}

// Options tune behaviors the controller leaves open.
type Options struct {
	// Volume is the initial volume, clamped to [0,1].
	Volume float64
	// OptimisticPlay sets isPlaying when a play command is issued rather
	// than when it is confirmed.
	OptimisticPlay bool
	// StopOnError clears isPlaying when the media fails to load.
	StopOnError bool
}

// DefaultOptions returns the stock behavior: optimistic play, errors leave
// the play state alone.
func DefaultOptions() Options {
	return Options{
		Volume:         DefaultVolume,
		OptimisticPlay: true,
	}
}

// Origin tells ResolvePlay how to report a failed attempt.
type Origin int

const (
	// OriginUser is an explicit play request; failures raise a notice.
	OriginUser Origin = iota
	// OriginAuto is a resume after a track change; failures are logged.
	OriginAuto
)

// PlayAttempt is an issued play command whose outcome is not yet known.
// The host waits on Result off the event loop and hands the outcome back
// through Controller.ResolvePlay.
type PlayAttempt struct {
	Result <-chan error
	Src    string
	Origin Origin
	seq    uint64
}

// Await blocks until the attempt resolves or ctx is done.
func (a *PlayAttempt) Await(ctx context.Context) error {
	select {
	case err := <-a.Result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State is a snapshot of the player state.
type State struct {
	Index   int
	Track   playlist.Track
	Playing bool
	Volume  float64
}

// Controller owns the player state and is the only writer to the media
// handle. It is not safe for concurrent use; every call must come from the
// host's single event loop.
type Controller struct {
	tracks  *playlist.Playlist
	media   player.Interface
	notices Notifier
	logger  *log.Logger
	opts    Options

	index    int
	playing  bool
	volume   float64
	progress Progress
	seq      uint64 // bumped by every command that supersedes a pending play

	subs []*Subscription
}

// New creates a controller positioned on the first track, paused, and loads
// that track into the media handle.
func New(tracks *playlist.Playlist, media player.Interface, notices Notifier, logger *log.Logger, opts Options) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{
		tracks:   tracks,
		media:    media,
		notices:  notices,
		logger:   logger,
		opts:     opts,
		volume:   clampVolume(opts.Volume, DefaultVolume),
		progress: unknownProgress(),
	}
	c.media.SetVolume(c.volume)
	c.media.Load(c.currentTrack().Src)
	return c
}

// TogglePlayPause pauses when playing and issues a play command otherwise.
// It returns the pending attempt, or nil when nothing was started.
func (c *Controller) TogglePlayPause() *PlayAttempt {
	if c.playing {
		c.seq++
		c.media.Pause()
		c.setPlaying(false)
		return nil
	}

	attempt := c.play(OriginUser)
	if c.opts.OptimisticPlay {
		c.setPlaying(true)
	}
	return attempt
}

// NextTrack advances to the following track, wrapping to the first.
func (c *Controller) NextTrack() *PlayAttempt {
	return c.moveTo(c.tracks.Wrap(c.index + 1))
}

// PreviousTrack steps back to the preceding track, wrapping to the last.
func (c *Controller) PreviousTrack() *PlayAttempt {
	return c.moveTo(c.tracks.Wrap(c.index - 1))
}

// SelectTrack jumps to the given index.
func (c *Controller) SelectTrack(index int) (*PlayAttempt, error) {
	if !c.tracks.Valid(index) {
		return nil, fmt.Errorf("%w: %d (playlist has %d tracks)", ErrInvalidIndex, index, c.tracks.Len())
	}
	return c.moveTo(index), nil
}

// SetVolume stores v clamped to [0,1] and applies it immediately.
// NaN leaves the volume unchanged.
func (c *Controller) SetVolume(v float64) {
	v = clampVolume(v, c.volume)
	if v == c.volume {
		c.media.SetVolume(v)
		return
	}
	c.volume = v
	c.media.SetVolume(v)
	for _, sub := range c.subs {
		sub.sendVolume(v)
	}
}

// StepVolume changes the volume by delta, rounded to whole percents.
func (c *Controller) StepVolume(delta float64) {
	c.SetVolume(math.Round((c.volume+delta)*100) / 100)
}

// SeekTo moves playback to a fraction of the track's duration.
// It is a no-op until the duration is known.
func (c *Controller) SeekTo(fraction float64) {
	dur, ok := c.media.Duration()
	if !ok || math.IsNaN(fraction) {
		return
	}
	fraction = max(0, min(1, fraction))
	pos := time.Duration(fraction * float64(dur))

	c.media.SeekTo(pos)
	c.refreshProgress()
	for _, sub := range c.subs {
		sub.sendPosition(pos)
	}
}

// OnMediaEnded advances to the next track; playback continues if it was on.
func (c *Controller) OnMediaEnded() *PlayAttempt {
	return c.NextTrack()
}

// OnMediaError reports a load failure to the user.
func (c *Controller) OnMediaError(err error) {
	c.logger.Error("audio error", "src", c.currentTrack().Src, "err", err)
	if c.opts.StopOnError && c.playing {
		c.seq++
		c.setPlaying(false)
	}
	c.notify(NoticeLoadFailed)
}

// OnMetadataLoaded recomputes the display values once the duration is known.
func (c *Controller) OnMetadataLoaded() {
	c.refreshProgress()
}

// OnPositionChanged recomputes the display values for the new position.
func (c *Controller) OnPositionChanged() {
	c.refreshProgress()
}

// HandleMediaEvent routes a media notification to the matching handler.
// Events for a source other than the current track are dropped.
func (c *Controller) HandleMediaEvent(e player.Event) *PlayAttempt {
	if e.Src != c.currentTrack().Src {
		c.logger.Debug("dropping stale media event", "kind", e.Kind, "src", e.Src)
		return nil
	}
	switch e.Kind {
	case player.MetadataLoaded:
		c.OnMetadataLoaded()
	case player.PositionChanged:
		c.OnPositionChanged()
	case player.Ended:
		return c.OnMediaEnded()
	case player.LoadError:
		c.OnMediaError(e.Err)
	}
	return nil
}

// ResolvePlay applies the outcome of a play attempt. Outcomes of attempts
// superseded by a later command are logged and otherwise ignored.
func (c *Controller) ResolvePlay(a *PlayAttempt, err error) {
	if a == nil {
		return
	}
	stale := a.seq != c.seq

	if err == nil {
		if !stale && !c.playing {
			c.setPlaying(true)
		}
		return
	}

	if stale || errors.Is(err, player.ErrSuperseded) {
		c.logger.Debug("play attempt superseded", "src", a.Src, "err", err)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		// The media may still start later. Pausing bumps its generation so
		// the pending start is discarded, and the attempt itself goes stale.
		c.seq++
		c.media.Pause()
		if a.Origin == OriginAuto {
			c.logger.Warn("auto-play timed out", "src", a.Src)
			c.setPlaying(false)
			return
		}
	}

	switch a.Origin {
	case OriginUser:
		c.logger.Warn("playback failed", "src", a.Src, "err", err)
		c.setPlaying(false)
		c.notify(NoticePlaybackFailed)
	case OriginAuto:
		c.logger.Warn("auto-play failed", "src", a.Src, "err", err)
	}
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close ends all subscriptions. The media handle is owned by the caller.
func (c *Controller) Close() {
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

// State returns a snapshot of the player state.
func (c *Controller) State() State {
	return State{
		Index:   c.index,
		Track:   c.currentTrack(),
		Playing: c.playing,
		Volume:  c.volume,
	}
}

func (c *Controller) CurrentIndex() int { return c.index }

func (c *Controller) CurrentTrack() playlist.Track { return c.currentTrack() }

func (c *Controller) Tracks() []playlist.Track { return c.tracks.Tracks() }

func (c *Controller) IsPlaying() bool { return c.playing }

func (c *Controller) Volume() float64 { return c.volume }

func (c *Controller) VolumeTier() VolumeTier { return Tier(c.volume) }

func (c *Controller) Progress() Progress { return c.progress }

// Position returns the media position.
func (c *Controller) Position() time.Duration { return c.media.Position() }

// Duration returns the media duration, false until metadata has loaded.
func (c *Controller) Duration() (time.Duration, bool) { return c.media.Duration() }

func (c *Controller) currentTrack() playlist.Track {
	t, _ := c.tracks.Track(c.index)
	return t
}

// moveTo switches the current track and reloads the media handle,
// resuming playback if it was on.
func (c *Controller) moveTo(index int) *PlayAttempt {
	prev := c.index
	c.index = index
	c.seq++

	track := c.currentTrack()
	c.media.Load(track.Src)
	c.progress = unknownProgress()

	for _, sub := range c.subs {
		sub.sendTrack(TrackChange{PreviousIndex: prev, Index: index, Track: track})
	}

	if c.playing {
		return c.play(OriginAuto)
	}
	return nil
}

func (c *Controller) play(origin Origin) *PlayAttempt {
	c.seq++
	return &PlayAttempt{
		Result: c.media.Play(),
		Src:    c.currentTrack().Src,
		Origin: origin,
		seq:    c.seq,
	}
}

func (c *Controller) setPlaying(playing bool) {
	if c.playing == playing {
		return
	}
	c.playing = playing
	for _, sub := range c.subs {
		sub.sendState(StateChange{Playing: playing})
	}
}

func (c *Controller) refreshProgress() {
	dur, known := c.media.Duration()
	c.progress = computeProgress(c.media.Position(), dur, known)
}

func (c *Controller) notify(text string) {
	if c.notices != nil {
		c.notices.Notify(text)
	}
}

// clampVolume bounds v to [0,1]; NaN yields fallback.
func clampVolume(v, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return max(0, min(1, v))
}
