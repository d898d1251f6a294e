//go:build windows

// Package stderr provides a no-op implementation for Windows, where the
// dup2 redirection trick is not available.
package stderr

import "os"

// Messages is never written to on Windows.
var Messages = make(chan string)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
