// Package playlist holds the fixed, ordered track list the player cycles through.
package playlist

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a playlist is built without tracks.
var ErrEmpty = errors.New("playlist has no tracks")

// Track represents a single playlist entry.
// Duration is a display string only; the media handle is authoritative.
type Track struct {
	Title    string
	Artist   string
	Duration string
	Src      string
}

// Playlist is an immutable ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// New creates a playlist from the given tracks.
// Every track must have a source locator.
func New(tracks ...Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, ErrEmpty
	}
	for i, t := range tracks {
		if t.Src == "" {
			return nil, fmt.Errorf("track %d (%q): missing src", i, t.Title)
		}
	}
	owned := make([]Track, len(tracks))
	copy(owned, tracks)
	return &Playlist{tracks: owned}, nil
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Track returns the track at the given index.
func (p *Playlist) Track(index int) (Track, bool) {
	if !p.Valid(index) {
		return Track{}, false
	}
	return p.tracks[index], true
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Valid reports whether index addresses a track.
func (p *Playlist) Valid(index int) bool {
	return index >= 0 && index < len(p.tracks)
}

// Wrap maps any integer onto a valid index, wrapping at both ends.
func (p *Playlist) Wrap(index int) int {
	n := len(p.tracks)
	return ((index % n) + n) % n
}
