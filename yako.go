package yako

import (
	"runtime"
	"sync"
	"time"
	"unsafe"
)

// Player wraps a single native yako_player instance. The zero value is not
// usable; create instances with New.
//
// The native handle is owned exclusively by the Player and released exactly
// once, on the first Close.
type Player struct {
	mu sync.Mutex
	be backend
	h  unsafe.Pointer
}

// New allocates a native player instance.
func New() (*Player, error) {
	be, err := newBackend()
	if err != nil {
		return nil, err
	}
	return newPlayer(be)
}

// newPlayer wires a Player to an explicit backend. Tests use this to swap
// in a fake native library.
func newPlayer(be backend) (*Player, error) {
	h := be.New()
	if h == nil {
		return nil, ErrAllocation
	}
	return &Player{be: be, h: h}, nil
}

// Close releases the native handle. It is safe to call multiple times;
// only the first call frees the handle.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return nil
	}
	p.be.Free(p.h)
	p.h = nil
	return nil
}

// call runs one status-returning native operation and translates a failure
// through the last-error slot. The OS thread is pinned across call and
// error fetch because the slot is thread-local in the native library.
func (p *Player) call(op string, fn func(h unsafe.Pointer) int32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return ErrClosed
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if status := fn(p.h); status != 0 {
		return lastError(p.be, op)
	}
	return nil
}

// Open loads the media file at path. Any previously opened file is replaced.
func (p *Player) Open(path string) error {
	return p.call("open", func(h unsafe.Pointer) int32 {
		return p.be.Open(h, path)
	})
}

// Play starts or resumes playback of the opened file.
func (p *Player) Play() error {
	return p.call("play", p.be.Play)
}

// Pause suspends playback, keeping the current position.
func (p *Player) Pause() error {
	return p.call("pause", p.be.Pause)
}

// Stop halts playback and resets the position.
func (p *Player) Stop() error {
	return p.call("stop", p.be.Stop)
}

// Seek moves playback to an absolute position from the start of the track.
// Sub-millisecond precision is lost.
func (p *Player) Seek(position time.Duration) error {
	return p.call("seek", func(h unsafe.Pointer) int32 {
		return p.be.Seek(h, position.Milliseconds())
	})
}

// SetVolume sets the playback volume. The native scale is linear, 0.0
// (silent) to 1.0 (full).
func (p *Player) SetVolume(volume float32) error {
	return p.call("set volume", func(h unsafe.Pointer) int32 {
		return p.be.SetVolume(h, volume)
	})
}

// SetMute mutes or unmutes output without changing the stored volume.
func (p *Player) SetMute(mute bool) error {
	return p.call("set mute", func(h unsafe.Pointer) int32 {
		var m int32
		if mute {
			m = 1
		}
		return p.be.SetMute(h, m)
	})
}

// Bitrate returns the bitrate of the opened file in kbit/s, or 0 if no
// file is open or the player is closed.
func (p *Player) Bitrate() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return 0
	}
	return p.be.Bitrate(p.h)
}

// Duration returns the length of the opened file, or 0 if no file is open
// or the player is closed.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return 0
	}
	return time.Duration(p.be.DurationMs(p.h)) * time.Millisecond
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return 0
	}
	return time.Duration(p.be.CurrentTimeMs(p.h)) * time.Millisecond
}

// IsPlaying reports whether the native library is currently producing
// audio. Both paused and stopped players report false.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return false
	}
	return p.be.IsPlaying(p.h) != 0
}

// Volume returns the current volume on the native 0.0-1.0 scale.
func (p *Player) Volume() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return 0
	}
	return p.be.Volume(p.h)
}

// AlbumCover returns the embedded cover art of the opened file as a fresh
// copy, or nil if the file carries none. The returned slice is owned by the
// caller; the native buffer is never referenced after the call returns.
func (p *Player) AlbumCover() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.h == nil {
		return nil
	}
	ptr := p.be.AlbumCover(p.h)
	if ptr == nil {
		return nil
	}
	size := p.be.AlbumCoverSize(p.h)
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	copy(buf, unsafe.Slice((*byte)(ptr), size))
	return buf
}
