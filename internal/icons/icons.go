// Package icons provides the symbol set used by the terminal front end,
// selectable between unicode glyphs and a plain ASCII fallback.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play      string
	Pause     string
	VolumeOn  string
	VolumeOff string
	BarFilled string
	BarEmpty  string
}

var (
	unicodeIcons = Icons{
		Play:      "▶",
		Pause:     "⏸",
		VolumeOn:  "🔊",
		VolumeOff: "🔇",
		BarFilled: "▓",
		BarEmpty:  "░",
	}

	noneIcons = Icons{
		Play:      ">",
		Pause:     "|",
		VolumeOn:  "vol",
		VolumeOff: "mut",
		BarFilled: "#",
		BarEmpty:  "-",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the playback indicator for the playing state.
func Play() string {
	return current.Play
}

// Pause returns the playback indicator for the paused state.
func Pause() string {
	return current.Pause
}

// Volume returns the volume indicator, muted or not.
func Volume(muted bool) string {
	if muted {
		return current.VolumeOff
	}
	return current.VolumeOn
}

// BarFilled returns the filled progress bar cell.
func BarFilled() string {
	return current.BarFilled
}

// BarEmpty returns the empty progress bar cell.
func BarEmpty() string {
	return current.BarEmpty
}
