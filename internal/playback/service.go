package playback

import "time"

// Service defines the playback service contract. It wraps the raw bindings
// with local state tracking and an event subscription model for front ends
// (TUI, MPRIS).
type Service interface {
	// Playback control
	Open(path string) error
	Play() error
	Pause() error
	Stop() error
	Toggle() error
	SeekBy(delta time.Duration) error
	SeekTo(position time.Duration) error

	// Volume control
	Volume() float64
	SetVolume(level float64) error
	AdjustVolume(delta float64) error
	Muted() bool
	SetMuted(muted bool) error
	ToggleMute() error

	// State queries
	State() State
	IsPlaying() bool
	IsPaused() bool
	IsStopped() bool
	Position() time.Duration
	Duration() time.Duration
	Bitrate() uint32
	CurrentPath() string
	TrackTitle() string
	AlbumCover() []byte

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
