//go:build linux

package mpris

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"

	"github.com/GoodBoiDoom/gestures/internal/playback"
)

// busName is the suffix of org.mpris.MediaPlayer2.<busName>.
const busName = "lofi"

// Options configures the adapter.
type Options struct {
	// Initial is the controller state at startup.
	Initial playback.State
	// Sub delivers controller changes. The adapter owns it from now on.
	Sub      *playback.Subscription
	Clock    Clock
	Dispatch Dispatcher
	// Quit is called when a client asks the player to exit. Nil disables it.
	Quit   func()
	Logger *log.Logger
}

// Adapter exposes the player over MPRIS on the session bus.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	status *status
	logger *log.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates and starts a new MPRIS adapter.
func New(o Options) (*Adapter, error) {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	st := newStatus(o.Initial)
	a := &Adapter{
		status: st,
		logger: logger,
		done:   make(chan struct{}),
	}

	root := &rootAdapter{quit: o.Quit}
	player := &playerAdapter{status: st, clock: o.Clock, dispatch: o.Dispatch}
	a.server = server.NewServer(busName, root, player)
	a.events = events.NewEventHandler(a.server)

	go func() {
		if err := a.server.Listen(); err != nil {
			a.logger.Warn("mpris server stopped", "err", err)
		}
	}()
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		follow(o.Sub, st, a.done, a.emit)
	}()

	return a, nil
}

// emit signals property changes to bus clients.
func (a *Adapter) emit(c change) {
	var err error
	switch c {
	case changePlayback:
		err = a.events.Player.OnPlayPause()
	case changeTrack:
		err = a.events.Player.OnTitle()
	case changeVolume:
		err = a.events.Player.OnVolume()
	case changePosition:
		return
	}
	if err != nil {
		a.logger.Debug("mpris signal", "change", c, "err", err)
	}
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	close(a.done)
	err := a.server.Stop()
	a.wg.Wait()
	return err
}
