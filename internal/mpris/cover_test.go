//go:build linux

package mpris

import (
	"os"
	"testing"
)

func TestCoverExt(t *testing.T) {
	tests := []struct {
		name  string
		cover []byte
		want  string
	}{
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}, ".jpg"},
		{"png", []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}, ".png"},
		{"unknown", []byte{0x00, 0x01}, ".img"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverExt(tt.cover); got != tt.want {
				t.Errorf("coverExt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteCoverFile(t *testing.T) {
	dir := t.TempDir()
	cover := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	path, err := writeCoverFile(dir, "/music/a.flac", cover)
	if err != nil {
		t.Fatalf("writeCoverFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != string(cover) {
		t.Error("written cover differs from input")
	}

	// Same track maps to the same file; the write is skipped.
	again, err := writeCoverFile(dir, "/music/a.flac", cover)
	if err != nil {
		t.Fatalf("writeCoverFile failed: %v", err)
	}
	if again != path {
		t.Errorf("path changed between calls: %q vs %q", again, path)
	}

	// Different tracks map to different files.
	other, err := writeCoverFile(dir, "/music/b.flac", cover)
	if err != nil {
		t.Fatalf("writeCoverFile failed: %v", err)
	}
	if other == path {
		t.Error("different tracks share a cover file")
	}
}
