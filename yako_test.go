package yako

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T) (*Player, *fakeBackend) {
	t.Helper()
	be := newFakeBackend()
	p, err := newPlayer(be)
	require.NoError(t, err)
	return p, be
}

func TestNew_AllocationFailure(t *testing.T) {
	be := newFakeBackend()
	be.allocFail = true

	p, err := newPlayer(be)
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	if p != nil {
		t.Errorf("player = %v, want nil", p)
	}
}

func TestClose_ReleasesHandleExactlyOnce(t *testing.T) {
	p, be := newTestPlayer(t)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	assert.Equal(t, 1, be.freeCalls, "handle must be freed exactly once")
}

func TestOperationsAfterClose(t *testing.T) {
	p, be := newTestPlayer(t)
	require.NoError(t, p.Close())

	tests := []struct {
		name string
		call func() error
	}{
		{"Open", func() error { return p.Open("a.flac") }},
		{"Play", p.Play},
		{"Pause", p.Pause},
		{"Stop", p.Stop},
		{"Seek", func() error { return p.Seek(time.Second) }},
		{"SetVolume", func() error { return p.SetVolume(0.5) }},
		{"SetMute", func() error { return p.SetMute(true) }},
	}
	for _, tt := range tests {
		if err := tt.call(); !errors.Is(err, ErrClosed) {
			t.Errorf("%s after Close = %v, want ErrClosed", tt.name, err)
		}
	}

	// Getters degrade to zero values instead of erroring.
	if p.IsPlaying() {
		t.Error("IsPlaying after Close = true, want false")
	}
	if d := p.Duration(); d != 0 {
		t.Errorf("Duration after Close = %v, want 0", d)
	}
	if got := p.AlbumCover(); got != nil {
		t.Errorf("AlbumCover after Close = %v, want nil", got)
	}

	// None of the above may have reached the backend.
	assert.Empty(t, be.calls, "no native call may happen after Close")
}

func TestFailedCall_RaisesNativeErrorText(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.fail("open", "No such file or directory (os error 2)")

	err := p.Open("/missing/track.mp3")
	require.Error(t, err)

	var yerr *Error
	require.ErrorAs(t, err, &yerr)
	assert.Equal(t, "open", yerr.Op)
	assert.Equal(t, "No such file or directory (os error 2)", yerr.Message)
	assert.Contains(t, err.Error(), "No such file or directory (os error 2)")

	// The error slot is drained after a read.
	assert.Equal(t, 1, be.cleared)
	assert.Zero(t, be.LastErrorLength())
}

func TestFailedCall_EmptyMessageIsSwallowed(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.fail("play", "")

	if err := p.Play(); err != nil {
		t.Fatalf("Play with empty error text = %v, want nil", err)
	}
}

func TestSeek_ConvertsToMilliseconds(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	require.NoError(t, p.Seek(2500*time.Millisecond))
	require.NoError(t, p.Seek(90*time.Second))

	assert.Equal(t, []int64{2500, 90000}, be.seeks)
}

func TestTimeGetters_ConvertFromMilliseconds(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.duration = 214_000
	be.current = 73_500

	assert.Equal(t, 3*time.Minute+34*time.Second, p.Duration())
	assert.Equal(t, 73*time.Second+500*time.Millisecond, p.Position())
}

func TestSetMute_EncodesBool(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	require.NoError(t, p.SetMute(true))
	require.NoError(t, p.SetMute(false))

	assert.Equal(t, []int32{1, 0}, be.setMute)
}

func TestAlbumCover_NullPointerReturnsNil(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.cover = nil
	if got := p.AlbumCover(); got != nil {
		t.Errorf("AlbumCover = %v, want nil", got)
	}
}

func TestAlbumCover_ZeroSizeReturnsNil(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.cover = []byte{}
	if got := p.AlbumCover(); got != nil {
		t.Errorf("AlbumCover = %v, want nil", got)
	}
}

func TestAlbumCover_ReturnsIndependentCopy(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	be.cover = []byte{0xff, 0xd8, 0xff, 0xe0}

	first := p.AlbumCover()
	require.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, first)

	// Corrupting one copy must not leak into the native buffer or into
	// later requests.
	first[0] = 0x00
	second := p.AlbumCover()
	assert.Equal(t, []byte{0xff, 0xd8, 0xff, 0xe0}, second)
}

func TestIsPlaying(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	if p.IsPlaying() {
		t.Error("IsPlaying = true before playback")
	}
	be.playing = 1
	if !p.IsPlaying() {
		t.Error("IsPlaying = false, want true")
	}
}

func TestOpen_PassesPathThrough(t *testing.T) {
	p, be := newTestPlayer(t)
	defer p.Close()

	require.NoError(t, p.Open("/music/アルバム/track.flac"))
	assert.Equal(t, []string{"/music/アルバム/track.flac"}, be.opened)
}
