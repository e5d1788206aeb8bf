package player

import (
	"sync"
	"time"
)

// EventKind identifies a media lifecycle notification.
type EventKind int

const (
	MetadataLoaded EventKind = iota
	PositionChanged
	Ended
	LoadError
)

// String returns the event kind name for logging.
func (k EventKind) String() string {
	switch k {
	case MetadataLoaded:
		return "MetadataLoaded"
	case PositionChanged:
		return "PositionChanged"
	case Ended:
		return "Ended"
	case LoadError:
		return "LoadError"
	default:
		return "Unknown"
	}
}

// Event is a media lifecycle notification.
// Src identifies the source the event belongs to, so consumers can drop
// events that arrive after the source was replaced.
type Event struct {
	Kind     EventKind
	Src      string
	Position time.Duration
	Duration time.Duration
	Err      error
}

// maxPendingTicks bounds how many PositionChanged events may wait for the
// consumer. Lifecycle events are never dropped.
const maxPendingTicks = 64

// eventQueue decouples producers from the consumer. push never blocks, so
// it is safe to call with the player lock held or from the audio callback.
// Position ticks beyond maxPendingTicks are dropped; MetadataLoaded, Ended
// and LoadError always reach the consumer.
type eventQueue struct {
	mu      sync.Mutex
	pending []Event
	ticks   int // PositionChanged events in pending
	closed  bool

	wake chan struct{}
	out  chan Event
	done chan struct{}
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		wake: make(chan struct{}, 1),
		out:  make(chan Event),
		done: make(chan struct{}),
	}
	go q.pump()
	return q
}

func (q *eventQueue) push(e Event) {
	q.mu.Lock()
	if q.closed || (e.Kind == PositionChanged && q.ticks >= maxPendingTicks) {
		q.mu.Unlock()
		return
	}
	q.pending = append(q.pending, e)
	if e.Kind == PositionChanged {
		q.ticks++
	}
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// events is the consumer side. It is closed after close.
func (q *eventQueue) events() <-chan Event { return q.out }

// close stops delivery. Pending events are discarded.
func (q *eventQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

func (q *eventQueue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			select {
			case <-q.wake:
				continue
			case <-q.done:
				return
			}
		}
		e := q.pending[0]
		q.pending[0] = Event{}
		q.pending = q.pending[1:]
		if e.Kind == PositionChanged {
			q.ticks--
		}
		q.mu.Unlock()

		select {
		case q.out <- e:
		case <-q.done:
			return
		}
	}
}
