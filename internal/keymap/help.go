package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpMap adapts the bindings to bubbles/help.
type HelpMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelpMap builds help entries for bindings, grouped by context. Each
// action is listed once, with the keys r resolves to it; actions whose keys
// were all taken by later bindings are left out.
func NewHelpMap(bindings []Binding, r *Resolver) HelpMap {
	entries := make(map[Action]key.Binding)
	contexts := make(map[Action]string)
	for _, b := range bindings {
		if _, ok := entries[b.Action]; ok {
			continue
		}
		if keys := r.KeysFor(b.Action); len(keys) > 0 {
			entries[b.Action] = toKeyBinding(keys, b.Description)
			contexts[b.Action] = b.Context
		}
	}

	var m HelpMap
	for _, ctx := range Contexts {
		var group []key.Binding
		for _, action := range r.Actions() {
			if e, ok := entries[action]; ok && contexts[action] == ctx {
				group = append(group, e)
			}
		}
		if len(group) > 0 {
			m.full = append(m.full, group)
		}
	}
	for _, action := range []Action{ActionPlayPause, ActionNextTrack, ActionVolumeUp, ActionHelp, ActionQuit} {
		if e, ok := entries[action]; ok {
			m.short = append(m.short, e)
		}
	}
	return m
}

// ShortHelp implements help.KeyMap.
func (m HelpMap) ShortHelp() []key.Binding { return m.short }

// FullHelp implements help.KeyMap.
func (m HelpMap) FullHelp() [][]key.Binding { return m.full }

// DisplayKeys renders keys for help text, joined with "/".
func DisplayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = DisplayKey(k)
	}
	return strings.Join(shown, "/")
}

func toKeyBinding(keys []string, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(DisplayKeys(keys), strings.ToLower(description)),
	)
}
