//go:build linux

package mpris

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// CoverFile materializes the embedded cover art of a track as a cache file
// and returns its path, or "" when the track has no cover. MPRIS metadata
// can only reference art by URL, not carry the bytes.
func CoverFile(trackPath string, cover []byte) string {
	if len(cover) == 0 {
		return ""
	}
	dir := filepath.Join(xdg.CacheHome, "yakoplay", "covers")
	path, err := writeCoverFile(dir, trackPath, cover)
	if err != nil {
		return ""
	}
	return path
}

// writeCoverFile writes cover bytes into dir under a name derived from the
// track path, skipping the write when the file already exists.
func writeCoverFile(dir, trackPath string, cover []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	h := fnv.New64a()
	h.Write([]byte(trackPath))
	name := fmt.Sprintf("%x%s", h.Sum64(), coverExt(cover))
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if err := os.WriteFile(path, cover, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

var (
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
)

// coverExt sniffs the image format from the first bytes. The native
// library hands over the raw attached picture without naming its type.
func coverExt(cover []byte) string {
	switch {
	case bytes.HasPrefix(cover, pngMagic):
		return ".png"
	case bytes.HasPrefix(cover, jpegMagic):
		return ".jpg"
	default:
		return ".img"
	}
}
