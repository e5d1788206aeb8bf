package app

import (
	"strings"

	"github.com/GoodBoiDoom/gestures/internal/ui/noticebar"
	"github.com/GoodBoiDoom/gestures/internal/ui/playerbar"
	"github.com/GoodBoiDoom/gestures/internal/ui/render"
	"github.com/GoodBoiDoom/gestures/internal/ui/scenebar"
	"github.com/GoodBoiDoom/gestures/internal/ui/styles"
	"github.com/GoodBoiDoom/gestures/internal/ui/tracklist"
)

const (
	defaultWidth = 60
	maxWidth     = 80
)

var blank = render.Block{Lines: []string{""}}

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return strings.Join(m.layout().Lines, "\n")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return min(m.width, maxWidth)
}

// layout renders every component and stacks them. View and click
// resolution both use it, so zones always match what is on screen. The help
// block gives way first when the terminal is short; past that the top rows
// are cut the same way the renderer would cut them.
func (m Model) layout() render.Block {
	width := m.contentWidth()
	st := styles.T().S()

	body := render.Stack(
		scenebar.Render(m.scenes.Scenes(), m.scenes.ActiveID(), width),
		blank,
		playerbar.Render(playerbar.NewState(m.ctrl), width),
		blank,
		render.Block{Lines: []string{st.Dim.Render(render.Separator(width))}},
		tracklist.Render(m.ctrl.Tracks(), m.ctrl.CurrentIndex(), width),
		blank,
		noticebar.Render(m.notices.Active(), width),
	)
	if m.height <= 0 {
		return render.Stack(body, m.helpBlock())
	}

	help := m.helpBlock()
	if room := m.height - body.Height(); help.Height() > room {
		help.Lines = help.Lines[:max(room, 0)]
	}
	return render.Stack(body, help).Tail(m.height)
}

func (m Model) helpBlock() render.Block {
	m.help.ShowAll = m.showHelp
	return render.Block{Lines: strings.Split(m.help.View(m.helpKeys), "\n")}
}
