//go:build cgo && windows

package yako

/*
#include <stdint.h>

typedef struct YakoPlayer YakoPlayer;

int32_t yako_player_open(YakoPlayer *player, const char *path);
*/
import "C"

import (
	"unicode/utf16"
	"unsafe"
)

// openNative passes the path as a NUL-terminated UTF-16 string. The Windows
// build of yako_player reinterprets the char pointer as wide characters.
func openNative(h unsafe.Pointer, path string) int32 {
	wpath := utf16.Encode([]rune(path))
	wpath = append(wpath, 0)
	return int32(C.yako_player_open(
		(*C.YakoPlayer)(h),
		(*C.char)(unsafe.Pointer(&wpath[0])),
	))
}
