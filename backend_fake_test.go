package yako

import "unsafe"

// fakeBackend stands in for the native library in tests. One instance
// serves one handle; the handle value is a pointer to the fake itself.
type fakeBackend struct {
	allocFail bool
	newCalls  int
	freeCalls int

	// Per-op status overrides, keyed by op name. Missing entries
	// succeed.
	status map[string]int32

	// Pending last-error message. Length reported includes the trailing
	// NUL, matching the native accessors.
	errMsg  string
	cleared int

	cover []byte

	bitrate   uint32
	duration  int64
	current   int64
	playing   int32
	volume    float32
	setVolume []float32
	setMute   []int32
	opened    []string
	seeks     []int64
	calls     []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{status: map[string]int32{}}
}

// fail arms op to return a non-zero status and msg as the pending
// last-error text. An empty msg leaves the error slot empty.
func (f *fakeBackend) fail(op, msg string) {
	f.status[op] = -1
	f.errMsg = msg
}

func (f *fakeBackend) op(name string) int32 {
	f.calls = append(f.calls, name)
	return f.status[name]
}

func (f *fakeBackend) New() unsafe.Pointer {
	f.newCalls++
	if f.allocFail {
		return nil
	}
	return unsafe.Pointer(f)
}

func (f *fakeBackend) Free(unsafe.Pointer) { f.freeCalls++ }

func (f *fakeBackend) Open(_ unsafe.Pointer, path string) int32 {
	f.opened = append(f.opened, path)
	return f.op("open")
}

func (f *fakeBackend) Play(unsafe.Pointer) int32  { return f.op("play") }
func (f *fakeBackend) Pause(unsafe.Pointer) int32 { return f.op("pause") }
func (f *fakeBackend) Stop(unsafe.Pointer) int32  { return f.op("stop") }

func (f *fakeBackend) Seek(_ unsafe.Pointer, positionMs int64) int32 {
	f.seeks = append(f.seeks, positionMs)
	return f.op("seek")
}

func (f *fakeBackend) Bitrate(unsafe.Pointer) uint32      { return f.bitrate }
func (f *fakeBackend) DurationMs(unsafe.Pointer) int64    { return f.duration }
func (f *fakeBackend) CurrentTimeMs(unsafe.Pointer) int64 { return f.current }
func (f *fakeBackend) IsPlaying(unsafe.Pointer) int32     { return f.playing }
func (f *fakeBackend) Volume(unsafe.Pointer) float32      { return f.volume }

func (f *fakeBackend) SetVolume(_ unsafe.Pointer, volume float32) int32 {
	f.setVolume = append(f.setVolume, volume)
	return f.op("set volume")
}

func (f *fakeBackend) SetMute(_ unsafe.Pointer, mute int32) int32 {
	f.setMute = append(f.setMute, mute)
	return f.op("set mute")
}

func (f *fakeBackend) AlbumCover(unsafe.Pointer) unsafe.Pointer {
	if f.cover == nil {
		return nil
	}
	if len(f.cover) == 0 {
		// Non-nil pointer with zero reported size.
		return unsafe.Pointer(f)
	}
	return unsafe.Pointer(&f.cover[0])
}

func (f *fakeBackend) AlbumCoverSize(unsafe.Pointer) uint32 {
	return uint32(len(f.cover))
}

func (f *fakeBackend) ClearLastError() {
	f.errMsg = ""
	f.cleared++
}

func (f *fakeBackend) LastErrorLength() int32 {
	if f.errMsg == "" {
		return 0
	}
	return int32(len(f.errMsg)) + 1
}

func (f *fakeBackend) ErrorMessageUTF8(buf []byte) int32 {
	if f.errMsg == "" {
		return 0
	}
	n := copy(buf, f.errMsg)
	if n < len(buf) {
		buf[n] = 0
		n++
	}
	return int32(n)
}
