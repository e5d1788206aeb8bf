package keymap

import (
	"slices"
	"sort"
	"strings"
)

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string
	order    []Action
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to the later binding and is no longer listed for the earlier action, so
// KeysFor only reports keys that actually trigger the action.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
	}
	for _, b := range bindings {
		if _, seen := r.byAction[b.Action]; !seen {
			r.order = append(r.order, b.Action)
			r.byAction[b.Action] = nil
		}
		for _, key := range b.Keys {
			if r.bindings[key] == b.Action && !slices.Contains(r.byAction[b.Action], key) {
				r.byAction[b.Action] = append(r.byAction[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys that trigger an action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// Actions returns the bound actions in first-binding order.
func (r *Resolver) Actions() []Action {
	return slices.Clone(r.order)
}

// Extend appends extra key bindings to base. extra maps action names to
// keys, as read from the config file. Because later bindings win, an extra
// key taken from another action moves to the named one. Unknown action
// names are skipped and returned.
func Extend(base []Binding, extra map[string][]string) ([]Binding, []string) {
	names := make([]string, 0, len(extra))
	for name := range extra {
		names = append(names, name)
	}
	sort.Strings(names)

	out := slices.Clone(base)
	var invalid []string
	for _, name := range names {
		action := Action(strings.TrimSpace(name))
		if !Known(action) {
			invalid = append(invalid, name)
			continue
		}
		b := Binding{Action: action, Keys: extra[name], Description: string(action), Context: "global"}
		if i := slices.IndexFunc(base, func(x Binding) bool { return x.Action == action }); i >= 0 {
			b.Description = base[i].Description
			b.Context = base[i].Context
		}
		out = append(out, b)
	}
	return out, invalid
}
