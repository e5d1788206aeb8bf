package playlist

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

// IsMusicFile reports whether the file extension is one the player can decode.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG:
		return true
	}
	return false
}

// ReadTags returns the embedded title and artist of an audio file.
func ReadTags(path string) (title, artist string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return "", "", err
	}

	artist = m.Artist()
	if artist == "" {
		artist = m.AlbumArtist()
	}
	return m.Title(), artist, nil
}

// Resolve fills blank titles and artists from the files' embedded tags.
// Titles fall back to the file name without extension when tags are missing.
// Tracks that already carry both fields are returned untouched.
func Resolve(tracks []Track) []Track {
	result := make([]Track, len(tracks))
	for i, t := range tracks {
		if t.Title == "" || t.Artist == "" {
			title, artist, err := ReadTags(t.Src)
			if err == nil {
				if t.Title == "" {
					t.Title = title
				}
				if t.Artist == "" {
					t.Artist = artist
				}
			}
			if t.Title == "" {
				base := filepath.Base(t.Src)
				t.Title = strings.TrimSuffix(base, filepath.Ext(base))
			}
		}
		result[i] = t
	}
	return result
}
