// Package player provides the media handle: a single playable audio stream.
package player

import (
	"errors"
	"time"
)

var (
	// ErrNoSource is returned by Play when no source has been loaded
	// successfully.
	ErrNoSource = errors.New("no playable source loaded")

	// ErrSuperseded is returned by Play when a later Pause or Load
	// overtook the play request before it started.
	ErrSuperseded = errors.New("play request superseded")

	// ErrOutputUnavailable is returned by Play when the audio output
	// device cannot be opened.
	ErrOutputUnavailable = errors.New("audio output unavailable")
)

// Interface is the media handle contract. Commands never block on audio
// I/O: Play resolves later through the returned channel, and load failures
// arrive as LoadError events.
type Interface interface {
	// Load replaces the current source. Playback is paused until Play.
	Load(src string)
	// Play begins playback. The channel receives exactly one value.
	Play() <-chan error
	Pause()
	SeekTo(pos time.Duration)
	SetVolume(level float64)

	Position() time.Duration
	// Duration reports false until the source's metadata has loaded.
	Duration() (time.Duration, bool)

	Events() <-chan Event
	Close() error
}

// Verify implementations at compile time.
var (
	_ Interface = (*Player)(nil)
	_ Interface = (*Mock)(nil)
)
