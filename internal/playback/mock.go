package playback

import (
	"sync"
	"time"
)

// MockPlayer is a test double for the bindings.
type MockPlayer struct {
	mu sync.Mutex

	opened    []string
	openErr   error
	playErr   error
	seekCalls []time.Duration
	volume    float32
	muted     bool
	playing   bool
	position  time.Duration
	duration  time.Duration
	bitrate   uint32
	cover     []byte
	closed    int
}

// NewMockPlayer creates a mock with the native default volume.
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{volume: 1.0}
}

func (m *MockPlayer) Open(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.openErr != nil {
		return m.openErr
	}
	m.opened = append(m.opened, path)
	return nil
}

func (m *MockPlayer) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playErr != nil {
		return m.playErr
	}
	m.playing = true
	return nil
}

func (m *MockPlayer) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	return nil
}

func (m *MockPlayer) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.position = 0
	return nil
}

func (m *MockPlayer) Seek(position time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, position)
	m.position = position
	return nil
}

func (m *MockPlayer) Bitrate() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bitrate
}

func (m *MockPlayer) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *MockPlayer) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *MockPlayer) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

func (m *MockPlayer) Volume() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *MockPlayer) SetVolume(volume float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	return nil
}

func (m *MockPlayer) SetMute(mute bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = mute
	return nil
}

func (m *MockPlayer) AlbumCover() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cover
}

func (m *MockPlayer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed++
	return nil
}

// setPlaying flips the native playing flag, simulating the track running
// out when set to false during playback.
func (m *MockPlayer) setPlaying(playing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = playing
}

// Verify MockPlayer implements Player at compile time.
var _ Player = (*MockPlayer)(nil)
