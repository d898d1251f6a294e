package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/music",
			expected: filepath.Join(home, "music"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/usr/local/music",
			expected: "/usr/local/music",
		},
		{
			name:     "relative path unchanged",
			input:    "music/albums",
			expected: "music/albums",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.GetVolumeStep(); got != 0.05 {
		t.Errorf("GetVolumeStep() = %v, want 0.05", got)
	}
	if got := cfg.GetSeekStep(); got != 5*time.Second {
		t.Errorf("GetSeekStep() = %v, want 5s", got)
	}
	if !cfg.ShouldRestoreSession() {
		t.Error("ShouldRestoreSession() = false, want true by default")
	}
	if !cfg.MprisEnabled() {
		t.Error("MprisEnabled() = false, want true by default")
	}
}

func TestDefaults_Overridden(t *testing.T) {
	off := false
	cfg := &Config{VolumeStep: 0.1, SeekStep: 10, RestoreSession: &off, Mpris: &off}

	if got := cfg.GetVolumeStep(); got != 0.1 {
		t.Errorf("GetVolumeStep() = %v, want 0.1", got)
	}
	if got := cfg.GetSeekStep(); got != 10*time.Second {
		t.Errorf("GetSeekStep() = %v, want 10s", got)
	}
	if cfg.ShouldRestoreSession() {
		t.Error("ShouldRestoreSession() = true, want false")
	}
	if cfg.MprisEnabled() {
		t.Error("MprisEnabled() = true, want false")
	}
}

func TestDefaults_OutOfRangeVolumeStep(t *testing.T) {
	cfg := &Config{VolumeStep: 0.9}
	if got := cfg.GetVolumeStep(); got != 0.05 {
		t.Errorf("GetVolumeStep() = %v, want 0.05 for out of range value", got)
	}
}
