package playback

import "time"

// StateChange is emitted when the playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when a different file is opened.
//
// Emitted by Open only; Play/Pause/Stop never emit TrackChange, so a front
// end can treat it as "new media loaded" without filtering.
type TrackChange struct {
	Previous string // previous path, empty on first open
	Current  string
}

// PositionChange is emitted on seeks and periodically while playing.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume level or mute state changes.
type VolumeChange struct {
	Volume float64
	Muted  bool
}

// TrackFinished is emitted when the native library stops producing audio
// on its own, i.e. the track played to its end.
type TrackFinished struct {
	Path string
}

// ErrorEvent is emitted when a native call fails inside the service.
type ErrorEvent struct {
	Operation string // e.g. "play", "seek"
	Path      string // current track path if applicable
	Err       error
}
