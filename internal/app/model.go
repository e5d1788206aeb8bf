package app

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/GoodBoiDoom/gestures/internal/gesture"
	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/playback"
	"github.com/GoodBoiDoom/gestures/internal/player"
	"github.com/GoodBoiDoom/gestures/internal/scene"
)

// Options wires the model to its collaborators.
type Options struct {
	Controller     *playback.Controller
	Scenes         *scene.Selector
	Notices        *notify.Center
	Media          player.Interface
	SwipeThreshold int
	Bindings       []keymap.Binding // defaults to keymap.All
	Logger         *log.Logger
}

// Model is the bubbletea model. It owns no player state; the controller and
// scene selector do.
type Model struct {
	ctrl    *playback.Controller
	scenes  *scene.Selector
	notices *notify.Center
	media   player.Interface
	logger  *log.Logger

	keys     *keymap.Resolver
	helpKeys keymap.HelpMap
	help     help.Model
	showHelp bool
	swipe    *gesture.Tracker

	width, height int
	quitting      bool

	now func() time.Time
}

// New creates the model.
func New(o Options) Model {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	bindings := o.Bindings
	if bindings == nil {
		bindings = keymap.All
	}
	keys := keymap.NewResolver(bindings)
	return Model{
		ctrl:     o.Controller,
		scenes:   o.Scenes,
		notices:  o.Notices,
		media:    o.Media,
		logger:   logger,
		keys:     keys,
		helpKeys: keymap.NewHelpMap(bindings, keys),
		help:     help.New(),
		swipe:    gesture.NewTracker(o.SwipeThreshold),
		now:      time.Now,
	}
}

// Init starts listening for media events.
func (m Model) Init() tea.Cmd {
	return waitForMediaEvent(m.media.Events())
}

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		// Zones moved, so a press from before the resize no longer points at
		// anything.
		m.swipe.Cancel()
		return m, nil

	case tea.KeyMsg:
		action := m.keys.Resolve(msg.String())
		if action == "" {
			return m, nil
		}
		return m.dispatch(action, 0)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ActionMsg:
		return m.dispatch(msg.Action, msg.Value)

	case MediaEventMsg:
		if msg.Closed {
			m.logger.Debug("media event stream closed")
			return m, nil
		}
		attempt := m.ctrl.HandleMediaEvent(msg.Event)
		return m, tea.Batch(awaitPlay(attempt), m.noticeCmds(), waitForMediaEvent(m.media.Events()))

	case PlayResolvedMsg:
		m.ctrl.ResolvePlay(msg.Attempt, msg.Err)
		return m, m.noticeCmds()

	case NoticeExpiredMsg:
		m.notices.Dismiss(msg.ID)
		if !msg.At.IsZero() {
			m.notices.Expire(msg.At)
		}
		return m, nil
	}
	return m, nil
}

// dispatch runs the handler bound to action.
func (m Model) dispatch(action keymap.Action, value float64) (tea.Model, tea.Cmd) {
	h, ok := actionHandlers[action]
	if !ok {
		m.logger.Warn("no handler for action", "action", action)
		return m, nil
	}
	cmd := h(&m, value)
	return m, tea.Batch(cmd, m.noticeCmds())
}

// noticeCmds schedules expiry for notices raised since the last call.
func (m Model) noticeCmds() tea.Cmd {
	fresh := m.notices.Drain()
	if len(fresh) == 0 {
		return nil
	}
	now := m.now()
	cmds := make([]tea.Cmd, 0, len(fresh))
	for _, n := range fresh {
		cmds = append(cmds, expireNotice(n, now))
	}
	return tea.Batch(cmds...)
}

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }
