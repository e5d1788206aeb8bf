//go:build !linux

package notify

type stubNotifier struct{}

// New returns a no-op notifier; desktop notices need a D-Bus session.
func New() (Notifier, error) {
	return &stubNotifier{}, nil
}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (s *stubNotifier) Close(_ uint32) error { return nil }
