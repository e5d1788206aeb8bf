package notify

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTTL is how long a notice stays on screen.
const DefaultTTL = 3 * time.Second

// maxVisible bounds the notice stack; older notices are dropped first.
const maxVisible = 3

// Notice is a transient message shown to the user.
type Notice struct {
	ID      string
	Text    string
	Expires time.Time
}

// Center collects notices raised on the UI event loop. It is not safe for
// concurrent use except for the desktop mirror, which runs on its own
// goroutine.
type Center struct {
	ttl     time.Duration
	desktop Notifier
	logger  *log.Logger
	now     func() time.Time

	notices []Notice
	fresh   []Notice

	desktopMu sync.Mutex
	desktopID uint32
}

// NewCenter creates a notice center. desktop may be nil to keep notices in
// the terminal only.
func NewCenter(ttl time.Duration, desktop Notifier, logger *log.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Center{
		ttl:     ttl,
		desktop: desktop,
		logger:  logger,
		now:     time.Now,
	}
}

// Notify raises a notice.
func (c *Center) Notify(text string) {
	n := Notice{
		ID:      uuid.NewString(),
		Text:    text,
		Expires: c.now().Add(c.ttl),
	}
	c.notices = append(c.notices, n)
	if len(c.notices) > maxVisible {
		c.notices = c.notices[len(c.notices)-maxVisible:]
	}
	c.fresh = append(c.fresh, n)

	if c.desktop != nil {
		go c.mirror(text)
	}
}

// Drain returns the notices raised since the last call so the host can
// schedule their expiry.
func (c *Center) Drain() []Notice {
	fresh := c.fresh
	c.fresh = nil
	return fresh
}

// Active returns the visible notices, oldest first.
func (c *Center) Active() []Notice {
	return append([]Notice(nil), c.notices...)
}

// Dismiss removes a notice by id. It reports whether the notice was visible.
func (c *Center) Dismiss(id string) bool {
	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return true
		}
	}
	return false
}

// Expire removes notices whose lifetime ended at or before now.
func (c *Center) Expire(now time.Time) {
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.Expires.After(now) {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}

func (c *Center) mirror(text string) {
	c.desktopMu.Lock()
	defer c.desktopMu.Unlock()

	id, err := c.desktop.Notify(desktopNotice(text, c.ttl, c.desktopID))
	if err != nil {
		c.logger.Warn("desktop notification failed", "err", err)
		return
	}
	c.desktopID = id
}
