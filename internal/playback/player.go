package playback

import (
	"time"

	yako "github.com/llehouerou/go-yako"
)

// Player is the slice of the bindings the service depends on, kept as an
// interface so tests can substitute a mock.
type Player interface {
	Open(path string) error
	Play() error
	Pause() error
	Stop() error
	Seek(position time.Duration) error
	Bitrate() uint32
	Duration() time.Duration
	Position() time.Duration
	IsPlaying() bool
	Volume() float32
	SetVolume(volume float32) error
	SetMute(mute bool) error
	AlbumCover() []byte
	Close() error
}

// Verify the bindings satisfy Player at compile time.
var _ Player = (*yako.Player)(nil)
