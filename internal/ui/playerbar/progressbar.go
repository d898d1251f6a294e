package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/go-yako/internal/icons"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func RenderProgressBar(position, duration time.Duration, width int, playing bool) string {
	status := icons.Play()
	if !playing {
		status = icons.Pause()
	}

	posStr := formatDuration(position)
	durStr := formatDuration(duration)

	// Space taken by everything except the bar itself
	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for a bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)

	bar := strings.Repeat(icons.BarFilled(), filled) + strings.Repeat(icons.BarEmpty(), barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}
