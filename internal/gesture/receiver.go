package gesture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/GoodBoiDoom/gestures/internal/keymap"
)

// DefaultMinInterval is the minimum spacing between accepted gestures. The
// tracking client repeats a held gesture on every frame.
const DefaultMinInterval = 800 * time.Millisecond

const maxLineLength = 4096

// Receiver accepts gesture feed connections and forwards matched actions.
type Receiver struct {
	mapping Mapping
	limiter *rate.Limiter
	handle  func(keymap.Action)
	logger  *log.Logger

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// NewReceiver creates a receiver. handle is called from connection
// goroutines and must be safe for concurrent use.
func NewReceiver(mapping Mapping, minInterval time.Duration, handle func(keymap.Action), logger *log.Logger) *Receiver {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Receiver{
		mapping: mapping,
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
		handle:  handle,
		logger:  logger,
		conns:   make(map[net.Conn]struct{}),
	}
}

// Listen opens addr and serves until ctx is done.
func (r *Receiver) Listen(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done. It closes ln and every
// open connection before returning.
func (r *Receiver) Serve(ctx context.Context, ln net.Listener) error {
	r.logger.Info("gesture feed listening", "addr", ln.Addr().String())

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
		r.closeConns()
	})
	defer stop()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		if !r.track(conn) {
			conn.Close()
			return nil
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.serveConn(ctx, conn)
		}()
	}
}

func (r *Receiver) serveConn(ctx context.Context, conn net.Conn) {
	defer r.untrack(conn)
	logger := r.logger.With("remote", conn.RemoteAddr().String())
	logger.Info("gesture client connected")

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 256), maxLineLength)
	for scanner.Scan() {
		r.HandleLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
		logger.Warn("gesture client read failed", "err", err)
	}
	logger.Info("gesture client disconnected")
}

// HandleLine resolves one feed line and forwards its action unless the rate
// limit drops it. It reports whether an action was forwarded.
func (r *Receiver) HandleLine(line string) bool {
	action, ok := r.mapping.Lookup(line)
	if !ok {
		r.logger.Debug("ignoring gesture line", "line", line)
		return false
	}
	if !r.limiter.Allow() {
		r.logger.Debug("gesture rate limited", "action", action)
		return false
	}
	r.logger.Debug("gesture", "action", action)
	r.handle(action)
	return true
}

func (r *Receiver) track(conn net.Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conns == nil {
		return false
	}
	r.conns[conn] = struct{}{}
	return true
}

func (r *Receiver) untrack(conn net.Conn) {
	conn.Close()
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, conn)
}

func (r *Receiver) closeConns() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.conns {
		c.Close()
	}
	r.conns = nil
}
