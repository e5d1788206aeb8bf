// Package config loads lofi settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/GoodBoiDoom/gestures/internal/gesture"
	"github.com/GoodBoiDoom/gestures/internal/keymap"
	"github.com/GoodBoiDoom/gestures/internal/notify"
	"github.com/GoodBoiDoom/gestures/internal/player"
	"github.com/GoodBoiDoom/gestures/internal/playlist"
	"github.com/GoodBoiDoom/gestures/internal/scene"
)

const appName = "lofi"

// DefaultVolume is the startup volume when none is configured.
const DefaultVolume = 0.7

var ErrConfigNotFound = errors.New("config file not found")

type Config struct {
	Icons string `koanf:"icons"` // "nerd", "unicode", or "none"
	Scene string `koanf:"scene"` // initial scene id

	Player  PlayerConfig  `koanf:"player"`
	Tracks  []TrackConfig `koanf:"tracks"`
	Scenes  []SceneConfig `koanf:"scenes"`
	Notices NoticesConfig `koanf:"notices"`
	Gesture GestureConfig `koanf:"gesture"`
	MPRIS   MPRISConfig   `koanf:"mpris"`
	Log     LogConfig     `koanf:"log"`

	// Keys adds key bindings per action name, e.g. next_track = ["l"].
	Keys map[string][]string `koanf:"keys"`

	// trackDir is the directory relative track sources resolve against.
	trackDir string
}

// PlayerConfig holds playback behavior.
type PlayerConfig struct {
	Volume           *float64      `koanf:"volume"`            // 0-1 (default: 0.7)
	OptimisticPlay   *bool         `koanf:"optimistic_play"`   // show playing before the output confirms (default: true)
	StopOnError      bool          `koanf:"stop_on_error"`     // stop when a track fails to load
	PositionInterval time.Duration `koanf:"position_interval"` // progress refresh rate (default: 250ms)
}

// TrackConfig is one playlist entry. Title and artist may be left empty to
// read them from the file's tags.
type TrackConfig struct {
	Title    string `koanf:"title"`
	Artist   string `koanf:"artist"`
	Duration string `koanf:"duration"` // display only, e.g. "3:45"
	Src      string `koanf:"src"`
}

// SceneConfig is one backdrop. From and To are hex colors.
type SceneConfig struct {
	ID   string `koanf:"id"`
	Name string `koanf:"name"`
	From string `koanf:"from"`
	To   string `koanf:"to"`
}

// NoticesConfig controls transient notices.
type NoticesConfig struct {
	TTL     time.Duration `koanf:"ttl"`     // on-screen lifetime (default: 3s)
	Desktop bool          `koanf:"desktop"` // mirror to desktop notifications
}

// GestureConfig controls the remote gesture feed. An empty Listen disables it.
type GestureConfig struct {
	Listen         string            `koanf:"listen"`          // e.g. "127.0.0.1:5005"
	SwipeThreshold int               `koanf:"swipe_threshold"` // mouse drag cells (default: 5)
	MinInterval    time.Duration     `koanf:"min_interval"`    // between accepted gestures (default: 800ms)
	Mapping        map[string]string `koanf:"mapping"`         // gesture name -> action
}

// MPRISConfig controls the D-Bus media player interface.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/lofi/lofi.log
}

// Load reads the config files in priority order (last wins): the XDG config
// file, ./config.toml, then explicit when non-empty. A missing explicit file
// is an error; missing default files are skipped.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		explicit = expandPath(explicit)
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		paths = append(paths, explicit)
	}

	k := koanf.New(".")
	trackDir := DataDir()

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		fk := koanf.New(".")
		if err := fk.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if fk.Exists("tracks") {
			if abs, err := filepath.Abs(path); err == nil {
				trackDir = filepath.Dir(abs)
			}
		}
		if err := k.Merge(fk); err != nil {
			return nil, fmt.Errorf("merge %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.trackDir = trackDir
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Tracks) == 0 {
		c.Tracks = defaultTracks()
	}
	if len(c.Scenes) == 0 {
		for _, s := range scene.Defaults() {
			c.Scenes = append(c.Scenes, SceneConfig{ID: string(s.ID), Name: s.Name, From: s.From, To: s.To})
		}
	}
	if c.Player.PositionInterval <= 0 {
		c.Player.PositionInterval = player.DefaultPositionInterval
	}
	if c.Notices.TTL <= 0 {
		c.Notices.TTL = notify.DefaultTTL
	}
	if c.Gesture.SwipeThreshold <= 0 {
		c.Gesture.SwipeThreshold = gesture.DefaultSwipeThreshold
	}
	if c.Gesture.MinInterval <= 0 {
		c.Gesture.MinInterval = gesture.DefaultMinInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

func defaultTracks() []TrackConfig {
	return []TrackConfig{
		{Title: "Midnight Coffee", Artist: "Chill Beats Collective", Duration: "3:45", Src: "assets/audio/midnight-coffee.mp3"},
		{Title: "Rainy Window", Artist: "Lofi Dreams", Duration: "4:12", Src: "assets/audio/rainy-window.mp3"},
		{Title: "Cosmic Drift", Artist: "Space Vibes", Duration: "5:23", Src: "assets/audio/cosmic-drift.mp3"},
		{Title: "Forest Stream", Artist: "Nature Sounds Co.", Duration: "4:56", Src: "assets/audio/forest-stream.mp3"},
	}
}

// Volume returns the configured startup volume clamped to [0,1].
func (c *Config) Volume() float64 {
	if c.Player.Volume == nil || math.IsNaN(*c.Player.Volume) {
		return DefaultVolume
	}
	return max(0, min(1, *c.Player.Volume))
}

// OptimisticPlay reports whether play shows as playing before confirmation.
func (c *Config) OptimisticPlay() bool {
	return c.Player.OptimisticPlay == nil || *c.Player.OptimisticPlay
}

// MPRISEnabled reports whether the D-Bus media interface should start.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// HasGestureFeed reports whether the remote gesture listener is configured.
func (c *Config) HasGestureFeed() bool {
	return c.Gesture.Listen != ""
}

// Playlist returns the configured tracks with sources resolved to paths.
func (c *Config) Playlist() []playlist.Track {
	tracks := make([]playlist.Track, 0, len(c.Tracks))
	for _, t := range c.Tracks {
		tracks = append(tracks, playlist.Track{
			Title:    t.Title,
			Artist:   t.Artist,
			Duration: t.Duration,
			Src:      c.resolveSrc(t.Src),
		})
	}
	return tracks
}

// SceneList returns the configured scenes.
func (c *Config) SceneList() []scene.Scene {
	scenes := make([]scene.Scene, 0, len(c.Scenes))
	for _, s := range c.Scenes {
		name := s.Name
		if name == "" {
			name = s.ID
		}
		scenes = append(scenes, scene.Scene{ID: scene.ID(s.ID), Name: name, From: s.From, To: s.To})
	}
	return scenes
}

// GestureMapping returns the gesture mapping, the default one when none is
// configured, and the names of entries with unknown actions.
func (c *Config) GestureMapping() (gesture.Mapping, []string) {
	if len(c.Gesture.Mapping) == 0 {
		return gesture.DefaultMapping(), nil
	}
	return gesture.ParseMapping(c.Gesture.Mapping)
}

// KeyBindings returns the built-in key bindings extended with the
// configured ones, and the action names that were not recognized.
func (c *Config) KeyBindings() ([]keymap.Binding, []string) {
	return keymap.Extend(keymap.All, c.Keys)
}

func (c *Config) resolveSrc(src string) string {
	if src == "" {
		return ""
	}
	src = expandPath(src)
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(c.trackDir, src)
}

// DataDir is where default track sources live.
func DataDir() string {
	return filepath.Join(xdg.DataHome, appName)
}

func getConfigPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
