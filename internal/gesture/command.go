package gesture

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

// Mapping maps gesture names, as sent by the hand-tracking client, to
// actions.
type Mapping map[string]keymap.Action

// DefaultMapping is used when the config names no gestures.
func DefaultMapping() Mapping {
	return Mapping{
		"SWIPE_RIGHT": keymap.ActionNextTrack,
		"SWIPE_LEFT":  keymap.ActionPrevTrack,
		"FIST":        keymap.ActionPause,
		"PALM":        keymap.ActionPlay,
		"POINT_UP":    keymap.ActionVolumeUp,
		"POINT_DOWN":  keymap.ActionVolumeDown,
		"2_FINGERS":   keymap.ActionNextTrack,
		"3_FINGERS":   keymap.ActionPrevTrack,
	}
}

type message struct {
	Gesture string `json:"gesture"`
}

// ParseLine extracts the gesture name from one line of the feed. Lines are
// either JSON objects like {"gesture":"FIST"} or a bare name.
func ParseLine(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	if strings.HasPrefix(line, "{") {
		var msg message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return "", false
		}
		name := normalize(msg.Gesture)
		return name, name != ""
	}
	return normalize(line), true
}

// Lookup resolves a feed line to an action. A line that is not an exact
// gesture name matches the longest known name it contains.
func (m Mapping) Lookup(line string) (keymap.Action, bool) {
	name, ok := ParseLine(line)
	if !ok {
		return "", false
	}
	if a, ok := m[name]; ok {
		return a, true
	}

	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, k := range names {
		if strings.Contains(name, k) {
			return m[k], true
		}
	}
	return "", false
}

// ParseMapping builds a mapping from config values, rejecting unknown
// actions. Names are case-insensitive.
func ParseMapping(raw map[string]string) (Mapping, []string) {
	m := make(Mapping, len(raw))
	var invalid []string
	for name, action := range raw {
		a := keymap.Action(strings.ToLower(strings.TrimSpace(action)))
		if !keymap.Known(a) {
			invalid = append(invalid, name)
			continue
		}
		m[normalize(name)] = a
	}
	slices.Sort(invalid)
	return m, invalid
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
