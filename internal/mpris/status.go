package mpris

import (
	"sync"

	"github.com/GoodBoiDoom/gestures/internal/playback"
)

// change identifies which exported property group moved.
type change int

const (
	changePlayback change = iota
	changeTrack
	changeVolume
	changePosition
)

// status mirrors the controller state for D-Bus callers. The controller
// itself is owned by the UI loop, so the bus only ever sees this copy.
type status struct {
	mu    sync.RWMutex
	state playback.State
}

func newStatus(initial playback.State) *status {
	return &status{state: initial}
}

func (s *status) snapshot() playback.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *status) update(fn func(*playback.State)) {
	s.mu.Lock()
	fn(&s.state)
	s.mu.Unlock()
}

// follow applies subscription events to st until done or the subscription
// closes, calling notify after each applied change.
func follow(sub *playback.Subscription, st *status, done <-chan struct{}, notify func(change)) {
	for {
		select {
		case <-done:
			return
		case <-sub.Done:
			return
		case e := <-sub.StateChanged:
			st.update(func(s *playback.State) { s.Playing = e.Playing })
			notify(changePlayback)
		case e := <-sub.TrackChanged:
			st.update(func(s *playback.State) {
				s.Index = e.Index
				s.Track = e.Track
			})
			notify(changeTrack)
		case e := <-sub.VolumeChanged:
			st.update(func(s *playback.State) { s.Volume = e.Volume })
			notify(changeVolume)
		case <-sub.PositionChanged:
			notify(changePosition)
		}
	}
}
