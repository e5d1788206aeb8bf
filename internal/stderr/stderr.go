//go:build !windows

// Package stderr captures output that C audio libraries (ALSA) write
// straight to file descriptor 2 and forwards it to the logger, so it does
// not corrupt the terminal UI.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
)

// Capture redirects fd 2 into the logger until Restore is called.
type Capture struct {
	orig  int
	read  *os.File
	write *os.File
	done  chan struct{}
}

// Start begins capturing. Call it before the audio output is opened. On
// error the program continues with the original stderr.
func Start(logger *log.Logger) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, read: r, write: w, done: make(chan struct{})}
	go c.forward(logger)
	return c, nil
}

func (c *Capture) forward(logger *log.Logger) {
	defer close(c.done)
	scanner := bufio.NewScanner(c.read)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn("stderr", "line", line)
		}
	}
}

// WriteOriginal writes to the terminal's stderr, bypassing the capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = syscall.Write(c.orig, []byte(msg))
}

// Restore puts the original stderr back and waits for pending lines to be
// logged.
func (c *Capture) Restore() {
	_ = syscall.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = syscall.Close(c.orig)
	c.write.Close()
	<-c.done
	c.read.Close()
}
