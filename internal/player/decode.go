package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

type decodeFunc func(src string) (beep.StreamSeekCloser, beep.Format, error)

// decodeFile opens a local file and picks a decoder by extension.
// The returned streamer owns the file and closes it on Close.
func decodeFile(src string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(src))
	switch ext {
	case ".mp3", ".flac", ".wav", ".ogg":
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %q", ext)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(src), err)
	}
	return streamer, format, nil
}
