package playback

import (
	"fmt"
	"math"
	"time"
)

// FormatTime renders seconds as m:ss with zero-padded seconds.
// NaN, infinite and negative inputs render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	mins := int(math.Floor(seconds / 60))
	secs := int(math.Floor(math.Mod(seconds, 60)))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatDuration renders a duration as m:ss.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Seconds())
}

// Progress holds display-only values derived from the media position.
type Progress struct {
	Elapsed string
	Total   string
	Percent float64 // 0-100
	Known   bool    // duration has loaded
}

func unknownProgress() Progress {
	return Progress{Elapsed: "0:00", Total: "0:00"}
}

// computeProgress derives display values. An unknown duration is treated
// like NaN: both times read 0:00 and percent is 0.
func computeProgress(pos, dur time.Duration, known bool) Progress {
	if !known || dur <= 0 {
		p := unknownProgress()
		p.Known = known
		return p
	}
	percent := float64(pos) / float64(dur) * 100
	percent = max(0, min(100, percent))
	return Progress{
		Elapsed: FormatDuration(pos),
		Total:   FormatDuration(dur),
		Percent: percent,
		Known:   true,
	}
}

// VolumeTier is the three-level icon state for a volume.
type VolumeTier int

const (
	VolumeMuted VolumeTier = iota
	VolumeLow
	VolumeHigh
)

// String returns the tier name.
func (t VolumeTier) String() string {
	switch t {
	case VolumeMuted:
		return "Muted"
	case VolumeLow:
		return "Low"
	case VolumeHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// Tier maps a volume level to its icon state.
func Tier(volume float64) VolumeTier {
	switch {
	case volume <= 0:
		return VolumeMuted
	case volume < 0.5:
		return VolumeLow
	default:
		return VolumeHigh
	}
}
