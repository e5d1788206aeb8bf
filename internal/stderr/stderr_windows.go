//go:build windows

// Package stderr is a no-op on Windows, whose audio backend does not write
// to the process stderr.
package stderr

import (
	"os"

	"github.com/charmbracelet/log"
)

type Capture struct{}

func Start(_ *log.Logger) (*Capture, error) { return &Capture{}, nil }

func (c *Capture) WriteOriginal(msg string) { _, _ = os.Stderr.WriteString(msg) }

func (c *Capture) Restore() {}
