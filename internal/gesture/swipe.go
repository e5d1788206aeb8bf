// Package gesture turns pointer drags and remote hand-gesture lines into
// player actions.
package gesture

import "github.com/GoodBoiDoom/gestures/internal/keymap"

// DefaultSwipeThreshold is the minimum horizontal drag, in cells, that
// counts as a swipe.
const DefaultSwipeThreshold = 5

// Direction is the classified direction of a drag.
type Direction int

const (
	None Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Action returns the player action for a swipe: right skips forward, left
// goes back.
func (d Direction) Action() keymap.Action {
	switch d {
	case Right:
		return keymap.ActionNextTrack
	case Left:
		return keymap.ActionPrevTrack
	default:
		return ""
	}
}

// Classify decides whether a drag of (dx, dy) is a horizontal swipe. The
// drag must be mostly horizontal and longer than threshold.
func Classify(dx, dy, threshold int) Direction {
	adx, ady := abs(dx), abs(dy)
	if adx <= ady || adx <= threshold {
		return None
	}
	if dx > 0 {
		return Right
	}
	return Left
}

// Tracker follows one pointer drag from press to release.
type Tracker struct {
	Threshold int

	active bool
	x, y   int
}

// NewTracker creates a tracker; a non-positive threshold uses the default.
func NewTracker(threshold int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Tracker{Threshold: threshold}
}

// Start records the press position.
func (t *Tracker) Start(x, y int) {
	t.active = true
	t.x, t.y = x, y
}

// Origin returns the press position of the current or last drag.
func (t *Tracker) Origin() (x, y int) { return t.x, t.y }

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// End finishes the drag at (x, y) and classifies it. Without a matching
// Start it returns None.
func (t *Tracker) End(x, y int) Direction {
	if !t.active {
		return None
	}
	t.active = false
	return Classify(x-t.x, y-t.y, t.Threshold)
}

// Cancel drops the drag in progress.
func (t *Tracker) Cancel() { t.active = false }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
