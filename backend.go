package yako

import "unsafe"

// backend mirrors the yako_player C function table. The wrapper logic in
// Player is written against this interface so it can be exercised without
// the native library linked in.
type backend interface {
	New() unsafe.Pointer
	Free(h unsafe.Pointer)

	Open(h unsafe.Pointer, path string) int32
	Play(h unsafe.Pointer) int32
	Pause(h unsafe.Pointer) int32
	Stop(h unsafe.Pointer) int32
	Seek(h unsafe.Pointer, positionMs int64) int32

	Bitrate(h unsafe.Pointer) uint32
	DurationMs(h unsafe.Pointer) int64
	CurrentTimeMs(h unsafe.Pointer) int64
	IsPlaying(h unsafe.Pointer) int32
	Volume(h unsafe.Pointer) float32
	SetVolume(h unsafe.Pointer, volume float32) int32
	SetMute(h unsafe.Pointer, mute int32) int32

	// AlbumCover returns a pointer into native-owned memory, or nil.
	// The pointed-to bytes are only valid until the next call on the
	// handle; callers must copy before releasing the lock.
	AlbumCover(h unsafe.Pointer) unsafe.Pointer
	AlbumCoverSize(h unsafe.Pointer) uint32

	// Last-error accessors. The message slot is thread-local inside the
	// native library.
	ClearLastError()
	LastErrorLength() int32
	ErrorMessageUTF8(buf []byte) int32
}
