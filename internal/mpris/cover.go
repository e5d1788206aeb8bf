package mpris

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	artExts = []string{".jpg", ".png", ".jpeg"}

	// dirArtNames are tried when the track has no art of its own.
	dirArtNames = []string{"cover", "folder", "front"}
)

// ArtURL returns a file URL for artwork belonging to the track at src, or
// "" if none exists. Art named after the track wins over directory art.
func ArtURL(src string) string {
	if src == "" {
		return ""
	}
	dir := filepath.Dir(src)
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))

	for _, name := range append([]string{stem}, dirArtNames...) {
		for _, ext := range artExts {
			path := filepath.Join(dir, name+ext)
			if fi, err := os.Stat(path); err == nil && !fi.IsDir() {
				return fileURL(path)
			}
		}
	}
	return ""
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}
