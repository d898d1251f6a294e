//go:build !cgo

package yako

// Without cgo there is no way to reach the native library. New fails
// immediately so callers get a clear error instead of a crash at first use.
func newBackend() (backend, error) {
	return nil, ErrUnavailable
}
