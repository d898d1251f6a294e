package playback

import (
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Verify serviceImpl implements Service at compile time.
var _ Service = (*serviceImpl)(nil)

// tickInterval is how often the background loop polls the native position
// while playing.
const tickInterval = 500 * time.Millisecond

type serviceImpl struct {
	mu sync.RWMutex

	player Player
	path   string
	state  State
	volume float64
	muted  bool

	subs   []*Subscription
	subsMu sync.RWMutex

	done   chan struct{}
	closed bool
}

// New creates a playback service over the given player and starts its
// polling loop.
func New(p Player) Service {
	s := &serviceImpl{
		player: p,
		state:  StateStopped,
		volume: float64(p.Volume()),
		done:   make(chan struct{}),
	}
	go s.loop()
	return s
}

// Open loads a new file, replacing whatever was playing.
func (s *serviceImpl) Open(path string) error {
	s.mu.Lock()
	previous := s.path
	prevState := s.state
	if err := s.player.Open(path); err != nil {
		s.mu.Unlock()
		s.emitError("open", path, err)
		return err
	}
	s.path = path
	s.state = StateStopped
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendTrack(TrackChange{Previous: previous, Current: path})
	})
	if prevState != StateStopped {
		s.emitState(prevState, StateStopped)
	}
	return nil
}

// Play starts playback of the opened file, or resumes from pause.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	if s.path == "" || s.state == StatePlaying {
		s.mu.Unlock()
		return nil
	}
	prev := s.state
	if err := s.player.Play(); err != nil {
		path := s.path
		s.mu.Unlock()
		s.emitError("play", path, err)
		return err
	}
	s.state = StatePlaying
	s.mu.Unlock()

	s.emitState(prev, StatePlaying)
	return nil
}

// Pause suspends playback. No-op unless playing.
func (s *serviceImpl) Pause() error {
	s.mu.Lock()
	if s.state != StatePlaying {
		s.mu.Unlock()
		return nil
	}
	if err := s.player.Pause(); err != nil {
		path := s.path
		s.mu.Unlock()
		s.emitError("pause", path, err)
		return err
	}
	s.state = StatePaused
	s.mu.Unlock()

	s.emitState(StatePlaying, StatePaused)
	return nil
}

// Stop halts playback. No-op when already stopped.
func (s *serviceImpl) Stop() error {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return nil
	}
	prev := s.state
	if err := s.player.Stop(); err != nil {
		path := s.path
		s.mu.Unlock()
		s.emitError("stop", path, err)
		return err
	}
	s.state = StateStopped
	s.mu.Unlock()

	s.emitState(prev, StateStopped)
	return nil
}

// Toggle switches between playing and paused; when stopped it starts
// playback.
func (s *serviceImpl) Toggle() error {
	switch s.State() {
	case StatePlaying:
		return s.Pause()
	default:
		return s.Play()
	}
}

// SeekBy seeks relative to the current position, clamped to the track.
func (s *serviceImpl) SeekBy(delta time.Duration) error {
	return s.SeekTo(s.player.Position() + delta)
}

// SeekTo seeks to an absolute position, clamped to the track.
func (s *serviceImpl) SeekTo(position time.Duration) error {
	s.mu.Lock()
	if s.path == "" {
		s.mu.Unlock()
		return nil
	}
	if position < 0 {
		position = 0
	}
	if d := s.player.Duration(); d > 0 && position > d {
		position = d
	}
	if err := s.player.Seek(position); err != nil {
		path := s.path
		s.mu.Unlock()
		s.emitError("seek", path, err)
		return err
	}
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendPosition(position)
	})
	return nil
}

// Volume returns the current volume level (0.0 to 1.0).
func (s *serviceImpl) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetVolume sets the volume level, clamped to 0.0-1.0.
func (s *serviceImpl) SetVolume(level float64) error {
	level = clampVolume(level)

	s.mu.Lock()
	if err := s.player.SetVolume(float32(level)); err != nil {
		s.mu.Unlock()
		s.emitError("set volume", "", err)
		return err
	}
	s.volume = level
	muted := s.muted
	s.mu.Unlock()

	s.emitVolume(level, muted)
	return nil
}

// AdjustVolume changes the volume by delta, clamped to 0.0-1.0.
func (s *serviceImpl) AdjustVolume(delta float64) error {
	return s.SetVolume(s.Volume() + delta)
}

// Muted returns true if audio is muted.
func (s *serviceImpl) Muted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.muted
}

// SetMuted sets the mute state without touching the stored volume level.
func (s *serviceImpl) SetMuted(muted bool) error {
	s.mu.Lock()
	if s.muted == muted {
		s.mu.Unlock()
		return nil
	}
	if err := s.player.SetMute(muted); err != nil {
		s.mu.Unlock()
		s.emitError("set mute", "", err)
		return err
	}
	s.muted = muted
	volume := s.volume
	s.mu.Unlock()

	s.emitVolume(volume, muted)
	return nil
}

// ToggleMute flips the mute state.
func (s *serviceImpl) ToggleMute() error {
	return s.SetMuted(!s.Muted())
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *serviceImpl) IsPlaying() bool { return s.State() == StatePlaying }
func (s *serviceImpl) IsPaused() bool  { return s.State() == StatePaused }
func (s *serviceImpl) IsStopped() bool { return s.State() == StateStopped }

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the length of the opened file.
func (s *serviceImpl) Duration() time.Duration {
	return s.player.Duration()
}

// Bitrate returns the bitrate of the opened file in kbit/s.
func (s *serviceImpl) Bitrate() uint32 {
	return s.player.Bitrate()
}

// CurrentPath returns the path of the opened file, or "".
func (s *serviceImpl) CurrentPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// TrackTitle derives a display title from the opened file's name. The
// native library does not expose tag metadata, only cover art.
func (s *serviceImpl) TrackTitle() string {
	path := s.CurrentPath()
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// AlbumCover returns the cover art bytes of the opened file, or nil.
func (s *serviceImpl) AlbumCover() []byte {
	return s.player.AlbumCover()
}

// Subscribe registers a new event subscriber.
func (s *serviceImpl) Subscribe() *Subscription {
	sub := newSubscription()
	s.subsMu.Lock()
	s.subs = append(s.subs, sub)
	s.subsMu.Unlock()
	return sub
}

// Close stops the polling loop, notifies subscribers and releases the
// player. Safe to call multiple times.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.done)

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return s.player.Close()
}

// loop polls the native position while playing, so subscribers get
// PositionChange events and natural end of track is detected. The native
// library has no completion callback; is_playing dropping to false while we
// believe we are playing means the track ran out.
func (s *serviceImpl) loop() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *serviceImpl) tick() {
	s.mu.Lock()
	if s.state != StatePlaying {
		s.mu.Unlock()
		return
	}
	if !s.player.IsPlaying() {
		path := s.path
		s.state = StateStopped
		s.mu.Unlock()

		s.emitState(StatePlaying, StateStopped)
		s.broadcast(func(sub *Subscription) {
			sub.sendFinished(TrackFinished{Path: path})
		})
		return
	}
	pos := s.player.Position()
	s.mu.Unlock()

	s.broadcast(func(sub *Subscription) {
		sub.sendPosition(pos)
	})
}

func (s *serviceImpl) broadcast(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *serviceImpl) emitState(prev, cur State) {
	s.broadcast(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	})
}

func (s *serviceImpl) emitVolume(volume float64, muted bool) {
	s.broadcast(func(sub *Subscription) {
		sub.sendVolume(VolumeChange{Volume: volume, Muted: muted})
	})
}

func (s *serviceImpl) emitError(op, path string, err error) {
	s.broadcast(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Operation: op, Path: path, Err: err})
	})
}

func clampVolume(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 1 {
		return 1
	}
	return level
}
