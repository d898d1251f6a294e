package playback

// State represents the playback state tracked by the service.
//
// The native library only reports "producing audio or not", so the service
// keeps its own three-state view on top of it:
//
//   - StateStopped → StatePlaying (via Play)
//   - StatePlaying → StatePaused  (via Pause)
//   - StatePlaying → StateStopped (via Stop, or natural end of track)
//   - StatePaused  → StatePlaying (via Play/Toggle)
//   - StatePaused  → StateStopped (via Stop)
//
// Pausing a stopped player, stopping a stopped player and similar
// mismatched transitions are graceful no-ops.
type State int

const (
	StateStopped State = iota
	StatePlaying
	StatePaused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (Playing or Paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}
