// Package yako provides Go bindings for the yako_player native audio
// playback library.
//
// yako_player handles decoding, demuxing, output device management and the
// playback clock internally; this package only wraps its C API in a safe,
// resource-managed Go surface.
//
// # Basic Usage
//
//	p, err := yako.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	if err := p.Open("song.flac"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.Play(); err != nil {
//	    log.Fatal(err)
//	}
//
// Positions and durations are exposed as time.Duration; the native library
// works in milliseconds.
//
// # Errors
//
// Failing native calls leave a thread-local error message inside the
// library. The bindings read and clear that message and return it as an
// *Error carrying the operation name and the native text.
//
// # Thread Safety
//
// A Player serializes all calls on its handle, so one instance may be shared
// between goroutines. Whether two Player instances can run concurrently is
// up to the native library.
//
// # Build Requirements
//
// The real bindings require cgo and the yako_player shared library at link
// time. When built with CGO_ENABLED=0, New returns ErrUnavailable.
package yako
