package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GoodBoiDoom/gestures/internal/gesture"
	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

// handleMouse turns wheel turns into volume steps, horizontal drags into
// swipes and clicks into zone actions. A click is resolved at the press
// position once the release shows it was not a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		return m.dispatch(keymap.ActionVolumeUp, 0)
	case msg.Button == tea.MouseButtonWheelDown:
		return m.dispatch(keymap.ActionVolumeDown, 0)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.swipe.Start(msg.X, msg.Y)
		return m, nil

	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonNone:
		// The release never arrived, e.g. it happened outside the window.
		if m.swipe.Active() {
			m.logger.Debug("drag abandoned")
			m.swipe.Cancel()
		}
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		if !m.swipe.Active() {
			return m, nil
		}
		x, y := m.swipe.Origin()
		if dir := m.swipe.End(msg.X, msg.Y); dir != gesture.None {
			m.logger.Debug("swipe", "direction", dir)
			return m.dispatch(dir.Action(), 0)
		}
		return m.click(x, y)
	}
	return m, nil
}

func (m Model) click(x, y int) (tea.Model, tea.Cmd) {
	zone, ok := m.layout().Zones.At(x, y)
	if !ok {
		return m, nil
	}
	action, ok := zoneActions[zone.ID]
	if !ok {
		return m, nil
	}
	value := float64(zone.Index)
	if positional[zone.ID] {
		value = zone.Span.Fraction(x)
	}
	return m.dispatch(action, value)
}
