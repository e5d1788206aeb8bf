// Package scene holds the ambient backdrop selection. Exactly one scene of a
// fixed set is active at a time.
package scene

import (
	"errors"
	"fmt"
)

// ID identifies a scene.
type ID string

// Built-in scene identifiers.
const (
	Cafe      ID = "cafe"
	Rainfall  ID = "rainfall-scene"
	Space     ID = "space-scene"
	Waterfall ID = "waterfall-scene"
)

// Scene is a backdrop with the two colors its banner gradient runs between.
type Scene struct {
	ID   ID
	Name string
	From string // hex color
	To   string // hex color
}

// Defaults returns the built-in scene set, starting with the cafe backdrop.
func Defaults() []Scene {
	return []Scene{
		{ID: Cafe, Name: "Cafe", From: "#8B5E3C", To: "#F2C57C"},
		{ID: Rainfall, Name: "Rainfall", From: "#2C3E50", To: "#4CA1AF"},
		{ID: Space, Name: "Space", From: "#0F0C29", To: "#8E44AD"},
		{ID: Waterfall, Name: "Waterfall", From: "#134E5E", To: "#71B280"},
	}
}

// NoticeFor returns the notice raised when switching to id, or "" if the
// scene has none.
func NoticeFor(id ID) string {
	switch id {
	case Rainfall:
		return "🌧️ Rainfall vibes activated"
	case Space:
		return "🌌 Cosmic journey initiated"
	case Waterfall:
		return "💧 Nature sounds flowing"
	default:
		return ""
	}
}

var (
	ErrNoScenes       = errors.New("no scenes configured")
	ErrDuplicateScene = errors.New("duplicate scene id")
	ErrUnknownScene   = errors.New("unknown scene")
)

// Notifier receives transient user notices.
type Notifier interface {
	Notify(text string)
}

// Selector tracks the active scene. Like the player controller it is driven
// from a single event loop and holds no lock.
type Selector struct {
	scenes  []Scene
	active  int
	notices Notifier
}

// NewSelector creates a selector over scenes with initial active.
// An empty initial selects the first scene.
func NewSelector(scenes []Scene, initial ID, notices Notifier) (*Selector, error) {
	if len(scenes) == 0 {
		return nil, ErrNoScenes
	}
	seen := make(map[ID]bool, len(scenes))
	for _, s := range scenes {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateScene, s.ID)
		}
		seen[s.ID] = true
	}

	sel := &Selector{
		scenes:  append([]Scene(nil), scenes...),
		notices: notices,
	}
	if initial != "" {
		idx := sel.indexOf(initial)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownScene, initial)
		}
		sel.active = idx
	}
	return sel, nil
}

// Switch makes id the active scene, even if it already is, and raises the
// scene's notice. Unknown ids are ignored and reported false.
func (s *Selector) Switch(id ID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.active = idx
	if text := NoticeFor(id); text != "" && s.notices != nil {
		s.notices.Notify(text)
	}
	return true
}

func (s *Selector) Active() Scene { return s.scenes[s.active] }

func (s *Selector) ActiveID() ID { return s.scenes[s.active].ID }

func (s *Selector) IsActive(id ID) bool { return s.scenes[s.active].ID == id }

// Scenes returns a copy of the configured scenes in display order.
func (s *Selector) Scenes() []Scene {
	return append([]Scene(nil), s.scenes...)
}

func (s *Selector) indexOf(id ID) int {
	for i, sc := range s.scenes {
		if sc.ID == id {
			return i
		}
	}
	return -1
}
