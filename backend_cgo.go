//go:build cgo

package yako

/*
#cgo LDFLAGS: -lyako_player

#include <stdint.h>
#include <stdlib.h>

typedef struct YakoPlayer YakoPlayer;

YakoPlayer *yako_player_new(void);
void yako_player_free(YakoPlayer *player);
int32_t yako_player_play(YakoPlayer *player);
int32_t yako_player_pause(const YakoPlayer *player);
int32_t yako_player_stop(const YakoPlayer *player);
int32_t yako_player_seek(const YakoPlayer *player, int64_t position);
uint32_t yako_player_get_bitrate(const YakoPlayer *player);
int64_t yako_player_get_duration(const YakoPlayer *player);
int64_t yako_player_get_current_time(const YakoPlayer *player);
int32_t yako_player_is_playing(const YakoPlayer *player);
float yako_player_get_volume(const YakoPlayer *player);
int32_t yako_player_set_volume(YakoPlayer *player, float volume);
int32_t yako_player_set_mute(const YakoPlayer *player, int32_t mute);
const uint8_t *yako_player_get_album_cover(const YakoPlayer *player);
uint32_t yako_player_get_album_cover_size(const YakoPlayer *player);
void clear_last_error(void);
int32_t last_error_length(void);
int32_t error_message_utf8(char *buf, int32_t length);
*/
import "C"

import "unsafe"

// cgoBackend forwards every call to the linked yako_player library.
type cgoBackend struct{}

func newBackend() (backend, error) {
	return cgoBackend{}, nil
}

func (cgoBackend) New() unsafe.Pointer {
	return unsafe.Pointer(C.yako_player_new())
}

func (cgoBackend) Free(h unsafe.Pointer) {
	C.yako_player_free((*C.YakoPlayer)(h))
}

func (cgoBackend) Open(h unsafe.Pointer, path string) int32 {
	// Path encoding differs per platform; see path_unix.go/path_windows.go.
	return openNative(h, path)
}

func (cgoBackend) Play(h unsafe.Pointer) int32 {
	return int32(C.yako_player_play((*C.YakoPlayer)(h)))
}

func (cgoBackend) Pause(h unsafe.Pointer) int32 {
	return int32(C.yako_player_pause((*C.YakoPlayer)(h)))
}

func (cgoBackend) Stop(h unsafe.Pointer) int32 {
	return int32(C.yako_player_stop((*C.YakoPlayer)(h)))
}

func (cgoBackend) Seek(h unsafe.Pointer, positionMs int64) int32 {
	return int32(C.yako_player_seek((*C.YakoPlayer)(h), C.int64_t(positionMs)))
}

func (cgoBackend) Bitrate(h unsafe.Pointer) uint32 {
	return uint32(C.yako_player_get_bitrate((*C.YakoPlayer)(h)))
}

func (cgoBackend) DurationMs(h unsafe.Pointer) int64 {
	return int64(C.yako_player_get_duration((*C.YakoPlayer)(h)))
}

func (cgoBackend) CurrentTimeMs(h unsafe.Pointer) int64 {
	return int64(C.yako_player_get_current_time((*C.YakoPlayer)(h)))
}

func (cgoBackend) IsPlaying(h unsafe.Pointer) int32 {
	return int32(C.yako_player_is_playing((*C.YakoPlayer)(h)))
}

func (cgoBackend) Volume(h unsafe.Pointer) float32 {
	return float32(C.yako_player_get_volume((*C.YakoPlayer)(h)))
}

func (cgoBackend) SetVolume(h unsafe.Pointer, volume float32) int32 {
	return int32(C.yako_player_set_volume((*C.YakoPlayer)(h), C.float(volume)))
}

func (cgoBackend) SetMute(h unsafe.Pointer, mute int32) int32 {
	return int32(C.yako_player_set_mute((*C.YakoPlayer)(h), C.int32_t(mute)))
}

func (cgoBackend) AlbumCover(h unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.yako_player_get_album_cover((*C.YakoPlayer)(h)))
}

func (cgoBackend) AlbumCoverSize(h unsafe.Pointer) uint32 {
	return uint32(C.yako_player_get_album_cover_size((*C.YakoPlayer)(h)))
}

func (cgoBackend) ClearLastError() {
	C.clear_last_error()
}

func (cgoBackend) LastErrorLength() int32 {
	return int32(C.last_error_length())
}

func (cgoBackend) ErrorMessageUTF8(buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	return int32(C.error_message_utf8(
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.int32_t(len(buf)),
	))
}
