// Package icons provides the glyphs for player controls in the configured
// style.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for one style.
type Icons struct {
	Play       string
	Pause      string
	Prev       string
	Next       string
	VolumeMute string
	VolumeLow  string
	VolumeHigh string
	Track      string
	Playing    string
	Scene      string
}

var (
	nerdIcons = Icons{
		Play:       "", // nf-fa-play
		Pause:      "", // nf-fa-pause
		Prev:       "", // nf-fa-step_backward
		Next:       "", // nf-fa-step_forward
		VolumeMute: "󰝟",      // nf-md-volume_off
		VolumeLow:  "󰖀",      // nf-md-volume_medium
		VolumeHigh: "󰕾",      // nf-md-volume_high
		Track:      "", // nf-fa-music
		Playing:    "󰐊",      // nf-md-play
		Scene:      "󰸉",      // nf-md-image_area
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Prev:       "⏮",
		Next:       "⏭",
		VolumeMute: "🔇",
		VolumeLow:  "🔉",
		VolumeHigh: "🔊",
		Track:      "🎵",
		Playing:    "♪",
		Scene:      "🖼",
	}

	noneIcons = Icons{
		Play:       "[>]",
		Pause:      "[||]",
		Prev:       "[<<]",
		Next:       "[>>]",
		VolumeMute: "vol:off",
		VolumeLow:  "vol:lo",
		VolumeHigh: "vol:hi",
		Track:      "",
		Playing:    ">",
		Scene:      "",
	}

	current = unicodeIcons
)

// Init selects the icon set. Call this once at startup with the config value.
// Unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons { return current }

// PlayPause returns the glyph for the toggle button: pause while playing,
// play otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// Volume returns the glyph for a volume tier: 0 muted, 1 low, 2 high.
func Volume(tier int) string {
	switch tier {
	case 0:
		return current.VolumeMute
	case 1:
		return current.VolumeLow
	default:
		return current.VolumeHigh
	}
}

// FormatTrack prefixes a track label with the track glyph.
func FormatTrack(label string) string {
	if current.Track == "" {
		return label
	}
	return current.Track + " " + label
}

// FormatScene prefixes a scene name with the scene glyph.
func FormatScene(name string) string {
	if current.Scene == "" {
		return name
	}
	return current.Scene + " " + name
}
