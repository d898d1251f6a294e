package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/go-yako/internal/icons"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{9 * time.Second, "0:09"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	got := ansi.Strip(RenderProgressBar(time.Minute, 4*time.Minute, 40, true))

	if !strings.HasPrefix(got, "▶") {
		t.Errorf("bar = %q, want play symbol prefix", got)
	}
	if !strings.Contains(got, "1:00") || !strings.Contains(got, "4:00") {
		t.Errorf("bar = %q, want both times", got)
	}
	// A quarter of the bar should be filled.
	filled := strings.Count(got, icons.BarFilled())
	empty := strings.Count(got, icons.BarEmpty())
	if filled == 0 || empty == 0 {
		t.Fatalf("bar = %q, want mixed fill", got)
	}
	if filled >= empty {
		t.Errorf("bar = %q: filled %d >= empty %d at 25%%", got, filled, empty)
	}
}

func TestRenderProgressBar_Paused(t *testing.T) {
	got := ansi.Strip(RenderProgressBar(0, time.Minute, 40, false))
	if !strings.HasPrefix(got, "⏸") {
		t.Errorf("bar = %q, want pause symbol prefix", got)
	}
}

func TestRenderProgressBar_TooNarrow(t *testing.T) {
	got := ansi.Strip(RenderProgressBar(30*time.Second, time.Minute, 12, true))
	if strings.Contains(got, icons.BarFilled()) || strings.Contains(got, icons.BarEmpty()) {
		t.Errorf("bar = %q, want times only when too narrow", got)
	}
	if !strings.Contains(got, "/") {
		t.Errorf("bar = %q, want pos/dur form", got)
	}
}

func TestRenderVolume(t *testing.T) {
	got := ansi.Strip(RenderVolume(0.8, false))
	if !strings.Contains(got, "80%") {
		t.Errorf("volume = %q, want 80%%", got)
	}

	muted := ansi.Strip(RenderVolume(0.8, true))
	if !strings.Contains(muted, icons.Volume(true)) {
		t.Errorf("volume = %q, want mute icon", muted)
	}
}

func TestRender_StoppedIsEmpty(t *testing.T) {
	s := State{}
	if got := s.Render(80); got != "" {
		t.Errorf("Render = %q, want empty for stopped state", got)
	}
}

func TestRender_CompactContainsTitle(t *testing.T) {
	s := State{
		Playing:  true,
		Title:    "Some Track",
		Path:     "/music/Some Track.flac",
		Position: time.Minute,
		Duration: 3 * time.Minute,
		Volume:   1.0,
	}
	got := ansi.Strip(s.Render(80))
	if !strings.Contains(got, "Some Track") {
		t.Errorf("compact bar missing title: %q", got)
	}
}

func TestRender_ExpandedContainsDetails(t *testing.T) {
	s := State{
		Playing:     true,
		Title:       "Some Track",
		Path:        "/music/Some Track.flac",
		Position:    time.Minute,
		Duration:    3 * time.Minute,
		Bitrate:     320,
		CoverSize:   49152,
		Volume:      0.5,
		DisplayMode: ModeExpanded,
	}
	got := ansi.Strip(s.Render(80))
	if !strings.Contains(got, "320 kbps") {
		t.Errorf("expanded bar missing bitrate: %q", got)
	}
	if !strings.Contains(got, "48 KiB") {
		t.Errorf("expanded bar missing cover size: %q", got)
	}
	if !strings.Contains(got, "/music/Some Track.flac") {
		t.Errorf("expanded bar missing path: %q", got)
	}
}
