// Package playerbar renders the player status bar for the terminal front
// end, in a compact single-line form and an expanded form with details.
package playerbar

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/go-yako/internal/playback"
	"github.com/llehouerou/go-yako/internal/ui/render"
	"github.com/llehouerou/go-yako/internal/ui/styles"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // Single-line view
	ModeExpanded                    // Detailed view
)

// State holds everything needed to render the player bar.
type State struct {
	Playing     bool
	Paused      bool
	Title       string
	Path        string
	Position    time.Duration
	Duration    time.Duration
	Bitrate     uint32 // kbit/s
	CoverSize   int    // bytes of embedded cover art, 0 if none
	Volume      float64
	Muted       bool
	DisplayMode DisplayMode
}

// Height returns the total height of the player bar for the given mode.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return 6 // 4 content rows + 2 border rows
	}
	return 3 // top border + content + bottom border
}

// NewState builds a State from the playback service. Returns an empty
// State when nothing is loaded.
func NewState(s playback.Service, mode DisplayMode) State {
	if s.CurrentPath() == "" {
		return State{}
	}
	return State{
		Playing:     s.IsPlaying(),
		Paused:      s.IsPaused(),
		Title:       s.TrackTitle(),
		Path:        s.CurrentPath(),
		Position:    s.Position(),
		Duration:    s.Duration(),
		Bitrate:     s.Bitrate(),
		CoverSize:   len(s.AlbumCover()),
		Volume:      s.Volume(),
		Muted:       s.Muted(),
		DisplayMode: mode,
	}
}

// Render returns the player bar string for the given terminal width.
// Returns an empty string when playback is stopped.
func (s State) Render(width int) string {
	if !s.Playing && !s.Paused {
		return ""
	}
	if s.DisplayMode == ModeExpanded {
		return s.renderExpanded(width)
	}
	return s.renderCompact(width)
}

func (s State) renderCompact(width int) string {
	theme := styles.Default()
	innerWidth := max(width-4, 0)

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	left := theme.Title().Render(render.Truncate(title, innerWidth/3))
	vol := RenderVolume(s.Volume, s.Muted)
	barWidth := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(vol)-4, 0)
	bar := RenderProgressBar(s.Position, s.Duration, barWidth, s.Playing)

	row := render.Row(left+"  "+bar, vol, innerWidth)
	return theme.PanelBorder().Width(innerWidth + 2).Render(" " + row + " ")
}

func (s State) renderExpanded(width int) string {
	theme := styles.Default()
	innerWidth := max(width-4, 0)

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	titleRow := styles.ApplyGradient(render.Truncate(title, innerWidth), theme.Primary, theme.Secondary)
	pathRow := theme.Muted().Render(render.Truncate(s.Path, innerWidth))
	barRow := RenderProgressBar(s.Position, s.Duration, innerWidth, s.Playing)
	infoRow := render.Row(s.renderInfo(), RenderVolume(s.Volume, s.Muted), innerWidth)

	content := titleRow + "\n" + pathRow + "\n" + barRow + "\n" + infoRow
	return theme.PanelBorder().Width(innerWidth + 2).Padding(0, 1).Render(content)
}

// renderInfo builds the "320 kbps · cover 48 KiB" detail segment.
func (s State) renderInfo() string {
	theme := styles.Default()

	info := ""
	if s.Bitrate > 0 {
		info = fmt.Sprintf("%d kbps", s.Bitrate)
	}
	if s.CoverSize > 0 {
		if info != "" {
			info += " · "
		}
		info += "cover " + humanize.IBytes(uint64(s.CoverSize))
	}
	return theme.Muted().Render(info)
}

// formatDuration renders a duration as m:ss, or h:mm:ss over an hour.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
