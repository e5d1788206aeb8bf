//go:build !linux

package mpris

import (
	"github.com/charmbracelet/log"

	"github.com/GoodBoiDoom/gestures/internal/playback"
)

// Options configures the adapter.
type Options struct {
	Initial  playback.State
	Sub      *playback.Subscription
	Clock    Clock
	Dispatch Dispatcher
	Quit     func()
	Logger   *log.Logger
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Options) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
