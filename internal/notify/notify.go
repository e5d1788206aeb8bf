// Package notify carries transient user notices. A Center keeps the notices
// shown in the terminal and can mirror each one to the desktop over D-Bus.
package notify

import "time"

// AppName is reported to the desktop notification server.
const AppName = "lofi"

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification is a desktop notification.
type Notification struct {
	Title      string
	Body       string
	Icon       string // path or icon name
	Timeout    int32  // ms, -1 = server default, 0 = never expire
	ReplacesID uint32 // 0 = new notification
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends n and returns its server id, or 0 when notifications are
	// unavailable.
	Notify(n Notification) (uint32, error)
	Close(id uint32) error
}

// desktopNotice builds the desktop copy of a terminal notice.
func desktopNotice(text string, ttl time.Duration, replaces uint32) Notification {
	return Notification{
		Title:      AppName,
		Body:       text,
		Icon:       "audio-x-generic",
		Timeout:    int32(ttl / time.Millisecond),
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
