package playback

import "time"

const eventBufferSize = 16

// Subscription delivers controller changes to one consumer. Sends never
// block the controller: when a buffer is full the event is dropped, and
// consumers that need the full picture read State instead.
type Subscription struct {
	StateChanged    <-chan StateChange
	TrackChanged    <-chan TrackChange
	VolumeChanged   <-chan VolumeChange
	PositionChanged <-chan PositionChange
	Done            <-chan struct{}

	stateCh    chan StateChange
	trackCh    chan TrackChange
	volumeCh   chan VolumeChange
	positionCh chan PositionChange
	doneCh     chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh:    make(chan StateChange, eventBufferSize),
		trackCh:    make(chan TrackChange, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		positionCh: make(chan PositionChange, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.VolumeChanged = s.volumeCh
	s.PositionChanged = s.positionCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() { close(s.doneCh) }

func (s *Subscription) sendState(e StateChange) { offer(s.stateCh, e) }
func (s *Subscription) sendTrack(e TrackChange) { offer(s.trackCh, e) }
func (s *Subscription) sendVolume(v float64)    { offer(s.volumeCh, VolumeChange{Volume: v}) }
func (s *Subscription) sendPosition(pos time.Duration) {
	offer(s.positionCh, PositionChange{Position: pos})
}

// offer sends v unless ch is full.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}
