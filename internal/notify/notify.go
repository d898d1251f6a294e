// Package notify sends desktop notifications for playback events.
package notify

// Notification represents a desktop notification to display.
type Notification struct {
	Title string
	Body  string
	// Icon is a path to an image file, or empty for no icon.
	Icon string
	// Timeout is the display duration in milliseconds. 0 means
	// the desktop environment's default, -1 means never expire.
	Timeout int
}

// Notifier sends desktop notifications.
type Notifier interface {
	Notify(n Notification) error
	Close() error
}

// stubNotifier is used when no notification service is available.
type stubNotifier struct{}

func (stubNotifier) Notify(Notification) error { return nil }
func (stubNotifier) Close() error              { return nil }
