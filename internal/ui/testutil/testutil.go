// Package testutil provides helpers for asserting on rendered views.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Plain removes ANSI escape sequences so rendered output can be compared
// as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Lines returns the plain lines of a view, without trailing blank lines.
func Lines(view string) []string {
	lines := strings.Split(Plain(view), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// FindLine returns the index of the first plain line containing substr,
// or -1.
func FindLine(view, substr string) int {
	for i, line := range strings.Split(Plain(view), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Width returns the display width of s, ignoring escape sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}
