package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// outputRate is the speaker sample rate; sources at other rates are resampled.
const outputRate = beep.SampleRate(44100)

// DefaultPositionInterval matches the cadence browsers use for timeupdate.
const DefaultPositionInterval = 250 * time.Millisecond

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(outputRate, outputRate.N(time.Second/10))
	})
	return speakerErr
}

// Player is a beep-backed media handle for local audio files.
//
// Commands are serialized by mu. The speaker callback never takes mu, so
// the lock order is always mu before speaker.Lock.
type Player struct {
	mu sync.Mutex

	src      string
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    float64
	queued   bool // chain handed to the speaker
	playing  bool
	gen      uint64
	decode   decodeFunc
	events   *eventQueue
	interval time.Duration
	done     chan struct{}
	closed   bool
}

// Option configures a Player.
type Option func(*Player)

// WithPositionInterval sets how often PositionChanged fires while playing.
func WithPositionInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

func withDecoder(fn decodeFunc) Option {
	return func(p *Player) { p.decode = fn }
}

// New creates a player with no source loaded.
func New(opts ...Option) *Player {
	p := &Player{
		level:    1,
		decode:   decodeFile,
		events:   newEventQueue(),
		interval: DefaultPositionInterval,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	go p.positionLoop()
	return p
}

// Load replaces the current source. Decode failures are reported as a
// LoadError event rather than returned.
func (p *Player) Load(src string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.releaseLocked()
	p.src = src

	streamer, format, err := p.decode(src)
	if err != nil {
		p.events.push(Event{Kind: LoadError, Src: src, Err: err})
		return
	}

	var s beep.Streamer = streamer
	if format.SampleRate != outputRate {
		s = beep.Resample(4, format.SampleRate, outputRate, streamer)
	}

	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: s, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	}

	p.events.push(Event{
		Kind:     MetadataLoaded,
		Src:      src,
		Duration: format.SampleRate.D(streamer.Len()),
	})
}

// Play starts playback asynchronously.
func (p *Player) Play() <-chan error {
	result := make(chan error, 1)

	p.mu.Lock()
	gen := p.gen
	p.mu.Unlock()

	go func() {
		result <- p.start(gen)
	}()
	return result
}

func (p *Player) start(gen uint64) error {
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputUnavailable, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gen != gen {
		return ErrSuperseded
	}
	if p.ctrl == nil {
		return ErrNoSource
	}

	if !p.queued {
		src := p.src
		events := p.events
		speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
			events.push(Event{Kind: Ended, Src: src})
		})))
		p.queued = true
	}

	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.playing = true
	return nil
}

// Pause pauses playback and supersedes any pending Play.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.playing = false
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// SeekTo moves playback to an absolute position, clamped to the stream.
func (p *Player) SeekTo(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}

	n := p.format.SampleRate.N(pos)
	n = max(min(n, p.streamer.Len()-1), 0)

	speaker.Lock()
	err := p.streamer.Seek(n)
	speaker.Unlock()
	if err != nil {
		return
	}

	p.events.push(Event{
		Kind:     PositionChanged,
		Src:      p.src,
		Position: p.format.SampleRate.D(n),
	})
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	n := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(n)
}

// Duration returns the length of the loaded source.
func (p *Player) Duration() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0, false
	}
	return p.format.SampleRate.D(p.streamer.Len()), true
}

// Events returns the media notification stream.
func (p *Player) Events() <-chan Event {
	return p.events.events()
}

// Close stops playback and releases the current source.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.gen++
	p.releaseLocked()
	close(p.done)
	p.events.close()
	return nil
}

// releaseLocked detaches the current chain from the speaker and closes it.
func (p *Player) releaseLocked() {
	if p.queued {
		speaker.Clear()
		p.queued = false
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
	}
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.playing = false
}

// positionLoop emits PositionChanged while playing.
func (p *Player) positionLoop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.playing {
				p.events.push(Event{
					Kind:     PositionChanged,
					Src:      p.src,
					Position: p.positionLocked(),
				})
			}
			p.mu.Unlock()
		}
	}
}
