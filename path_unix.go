//go:build cgo && !windows

package yako

/*
#include <stdint.h>
#include <stdlib.h>

typedef struct YakoPlayer YakoPlayer;

int32_t yako_player_open(YakoPlayer *player, const char *path);
*/
import "C"

import "unsafe"

// openNative passes the path as a NUL-terminated UTF-8 string.
func openNative(h unsafe.Pointer, path string) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.yako_player_open((*C.YakoPlayer)(h), cpath))
}
