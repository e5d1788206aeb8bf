package playback

import (
	"time"

	"github.com/GoodBoiDoom/gestures/internal/playlist"
)

// StateChange is emitted when isPlaying flips.
type StateChange struct {
	Playing bool
}

// TrackChange is emitted when the current track index changes.
//
// Emitted by NextTrack, PreviousTrack, SelectTrack and OnMediaEnded. The
// new source is already loaded when the event is published.
type TrackChange struct {
	PreviousIndex int
	Index         int
	Track         playlist.Track
}

// VolumeChange is emitted when the stored volume changes.
type VolumeChange struct {
	Volume float64
}

// PositionChange is emitted when a seek occurs.
type PositionChange struct {
	Position time.Duration
}
