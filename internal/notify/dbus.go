//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyInterface = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = "org.freedesktop.Notifications.Notify"
)

type dbusNotifier struct {
	conn *dbus.Conn
	// lastID replaces the previous notification instead of stacking
	// a new one per track change.
	lastID uint32
}

// New connects to the session bus. If no session bus is available
// (headless systems, containers) a no-op notifier is returned.
func New() Notifier {
	conn, err := dbus.SessionBus()
	if err != nil {
		return stubNotifier{}
	}
	return &dbusNotifier{conn: conn}
}

func (d *dbusNotifier) Notify(n Notification) error {
	obj := d.conn.Object(notifyInterface, dbus.ObjectPath(notifyPath))

	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant("yakoplay"),
	}

	call := obj.Call(notifyMethod, 0,
		"Yakoplay",  // app_name
		d.lastID,    // replaces_id
		n.Icon,      // app_icon
		n.Title,     // summary
		n.Body,      // body
		[]string{},  // actions
		hints,       // hints
		int32(n.Timeout), // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	if len(call.Body) > 0 {
		if id, ok := call.Body[0].(uint32); ok {
			d.lastID = id
		}
	}
	return nil
}

func (d *dbusNotifier) Close() error {
	return d.conn.Close()
}
