package player

import "time"

// Mock is a test double for Player.
// Play resolves immediately with the configured error.
type Mock struct {
	src           string
	playing       bool
	position      time.Duration
	duration      time.Duration
	durationKnown bool
	volume        float64
	playErr       error
	loadCalls     []string
	playCalls     []string
	pauseCalls    int
	seekCalls     []time.Duration
	events        *eventQueue
	closed        bool
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		volume: 1,
		events: newEventQueue(),
	}
}

func (m *Mock) Load(src string) {
	m.src = src
	m.playing = false
	m.position = 0
	m.durationKnown = false
	m.loadCalls = append(m.loadCalls, src)
}

func (m *Mock) Play() <-chan error {
	m.playCalls = append(m.playCalls, m.src)
	result := make(chan error, 1)
	if m.playErr == nil {
		m.playing = true
	}
	result <- m.playErr
	return result
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) SeekTo(pos time.Duration) {
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) SetVolume(level float64) { m.volume = clampLevel(level) }

func (m *Mock) Position() time.Duration { return m.position }

func (m *Mock) Duration() (time.Duration, bool) { return m.duration, m.durationKnown }

func (m *Mock) Events() <-chan Event { return m.events.events() }

func (m *Mock) Close() error {
	m.closed = true
	m.events.close()
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) SetPosition(d time.Duration) { m.position = d }

// SetDuration marks metadata as loaded with the given duration.
func (m *Mock) SetDuration(d time.Duration) {
	m.duration = d
	m.durationKnown = true
}

// ClearDuration marks metadata as not yet loaded.
func (m *Mock) ClearDuration() {
	m.duration = 0
	m.durationKnown = false
}

func (m *Mock) Src() string { return m.src }

func (m *Mock) Playing() bool { return m.playing }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) Closed() bool { return m.closed }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

// PlayCalls returns the source that was loaded at each Play call.
func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []time.Duration { return m.seekCalls }

// Emit queues an event as if the media subsystem had raised it.
func (m *Mock) Emit(e Event) {
	m.events.push(e)
}
