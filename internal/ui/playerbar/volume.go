package playerbar

import (
	"fmt"

	"github.com/llehouerou/go-yako/internal/icons"
	"github.com/llehouerou/go-yako/internal/ui/styles"
)

// RenderVolume renders the volume indicator.
// Format: "🔊 100%" or "🔇 100%" when muted.
func RenderVolume(volume float64, muted bool) string {
	pct := int(volume*100 + 0.5)
	return styles.Default().Muted().Render(fmt.Sprintf("%s %3d%%", icons.Volume(muted), pct))
}
