// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Playback
	OpPlaybackStart Op = "start playback"
	OpTrackLoad     Op = "load track"
	OpTrackSelect   Op = "select track"
	OpPlaybackSeek  Op = "seek"

	// Startup
	OpConfigLoad    Op = "load config"
	OpPlaylistBuild Op = "build playlist"
	OpSceneSetup    Op = "set up scenes"
	OpAudioOutput   Op = "open audio output"
	OpLogOpen       Op = "open log file"

	// Remote inputs
	OpGestureListen Op = "start gesture listener"
	OpMPRISStart    Op = "start MPRIS service"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	if subject == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, subject, err)
}

// Wrap returns err annotated with op, for errors that travel up to the CLI
// instead of being shown as a notice.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
