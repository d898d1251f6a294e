package yako

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClosed is returned by operations on a Player whose handle has
	// already been released.
	ErrClosed = errors.New("yako: player is closed")

	// ErrUnavailable is returned by New when the bindings were built
	// without cgo and the native library is not linked in.
	ErrUnavailable = errors.New("yako: native bindings unavailable (built without cgo)")

	// ErrAllocation is returned by New when the native library fails to
	// allocate a player instance.
	ErrAllocation = errors.New("yako: native player allocation failed")
)

// Error is a failure reported by the native library, carrying the exact
// message text it left in its last-error slot.
type Error struct {
	Op      string // failed operation, e.g. "open", "seek"
	Message string // native error text
}

func (e *Error) Error() string {
	return fmt.Sprintf("yako: %s: %s", e.Op, e.Message)
}

// lastError translates a non-zero native status into an error by draining
// the library's last-error slot. A zero-length message means the status is
// swallowed and nil is returned: the native library reports some benign
// conditions through a non-zero status without recording any text.
//
// Must be called on the same OS thread as the failing call (the slot is
// thread-local) and with the player lock held.
func lastError(be backend, op string) error {
	n := be.LastErrorLength()
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	written := be.ErrorMessageUTF8(buf)
	be.ClearLastError()
	if written <= 0 {
		return nil
	}
	// The native length includes the trailing NUL.
	msg := strings.TrimRight(string(buf[:written]), "\x00")
	if msg == "" {
		return nil
	}
	return &Error{Op: op, Message: msg}
}
