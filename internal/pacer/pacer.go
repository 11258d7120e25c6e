// Package pacer drives chunked speed reading: it advances a position through a
// tokenized document on a timer derived from the reading speed.
package pacer

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/metcalfc/skim/internal/reader"
)

const (
	MinWPM       = 100
	MaxWPM       = 800
	DefaultWPM   = 300
	WPMStep      = 50
	MinChunkSize = 1
	MaxChunkSize = 10

	DefaultChunkSize = 4
)

// Stop reasons reported in logs.
const (
	reasonPause = "pause"
	reasonEnd   = "end"
	reasonReset = "reset"
	reasonLoad  = "load"
	reasonClose = "close"
)

// Pacer holds the state of one reading session. All methods are safe for
// concurrent use; ticks arrive on the scheduler's goroutine.
type Pacer struct {
	mu sync.Mutex

	words     []string
	position  int
	chunkSize int
	wpm       int
	running   bool
	finished  bool

	accumulated  time.Duration
	runStartedAt time.Time

	clock Clock
	sched Scheduler
	task  Task
	gen   uint64

	onChange func(Snapshot)
	log      zerolog.Logger
	closed   bool
}

// Option configures a Pacer.
type Option func(*Pacer)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(p *Pacer) { p.clock = c }
}

// WithScheduler overrides how ticks are scheduled.
func WithScheduler(s Scheduler) Option {
	return func(p *Pacer) { p.sched = s }
}

// WithWPM sets the initial speed, clamped to [MinWPM, MaxWPM].
func WithWPM(wpm int) Option {
	return func(p *Pacer) { p.wpm = clamp(wpm, MinWPM, MaxWPM) }
}

// WithChunkSize sets the initial chunk size, clamped to [MinChunkSize, MaxChunkSize].
func WithChunkSize(n int) Option {
	return func(p *Pacer) { p.chunkSize = clamp(n, MinChunkSize, MaxChunkSize) }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pacer) { p.log = l }
}

// WithOnChange registers fn to be called with a fresh snapshot after every
// state change. fn runs outside the pacer lock and may call back into it.
func WithOnChange(fn func(Snapshot)) Option {
	return func(p *Pacer) { p.onChange = fn }
}

// New creates a stopped Pacer with an empty document.
func New(opts ...Option) *Pacer {
	p := &Pacer{
		chunkSize: DefaultChunkSize,
		wpm:       DefaultWPM,
		clock:     SystemClock(),
		sched:     TickerScheduler(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadText replaces the document, stops any active run and resets position
// and accumulated reading time.
func (p *Pacer) LoadText(text string) {
	p.mutate(func() {
		p.stopLocked(reasonLoad)
		p.words = reader.ParseText(text)
		p.position = 0
		p.finished = false
		p.accumulated = 0
		p.log.Debug().Int("words", len(p.words)).Msg("document loaded")
	})
}

// SetWPM changes the reading speed. A running pacer is rescheduled so the new
// interval applies from the next tick.
func (p *Pacer) SetWPM(wpm int) {
	p.mutate(func() {
		p.wpm = clamp(wpm, MinWPM, MaxWPM)
		p.rescheduleLocked()
	})
}

// IncreaseSpeed raises the speed by WPMStep.
func (p *Pacer) IncreaseSpeed() {
	p.mutate(func() {
		p.wpm = clamp(p.wpm+WPMStep, MinWPM, MaxWPM)
		p.rescheduleLocked()
	})
}

// DecreaseSpeed lowers the speed by WPMStep.
func (p *Pacer) DecreaseSpeed() {
	p.mutate(func() {
		p.wpm = clamp(p.wpm-WPMStep, MinWPM, MaxWPM)
		p.rescheduleLocked()
	})
}

// SetChunkSize changes how many words are shown and advanced per tick.
func (p *Pacer) SetChunkSize(n int) {
	p.mutate(func() {
		p.chunkSize = clamp(n, MinChunkSize, MaxChunkSize)
		p.rescheduleLocked()
	})
}

// Toggle starts a stopped pacer or stops a running one. Starting from the
// last chunk rewinds to the beginning first.
func (p *Pacer) Toggle() {
	p.mutate(func() {
		if p.running {
			p.stopLocked(reasonPause)
			return
		}
		p.startLocked()
	})
}

// Start begins reading if stopped.
func (p *Pacer) Start() {
	p.mutate(func() {
		if !p.running {
			p.startLocked()
		}
	})
}

// Pause stops reading if running.
func (p *Pacer) Pause() {
	p.mutate(func() {
		p.stopLocked(reasonPause)
	})
}

// Reset stops reading and rewinds to the start of the document.
func (p *Pacer) Reset() {
	p.mutate(func() {
		p.stopLocked(reasonReset)
		p.position = 0
		p.finished = false
		p.accumulated = 0
	})
}

// StepForward moves one chunk ahead without passing the last chunk.
func (p *Pacer) StepForward() {
	p.mutate(func() {
		p.moveLocked(p.position + p.chunkSize)
	})
}

// StepBack moves one chunk back without passing the beginning.
func (p *Pacer) StepBack() {
	p.mutate(func() {
		p.moveLocked(p.position - p.chunkSize)
	})
}

// Close stops the pacer and releases its tick task. A closed pacer never
// starts reading again.
func (p *Pacer) Close() {
	p.mu.Lock()
	p.stopLocked(reasonClose)
	p.closed = true
	p.mu.Unlock()
}

// Snapshot returns the current state with derived statistics.
func (p *Pacer) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// Words returns a copy of the loaded document.
func (p *Pacer) Words() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.words...)
}

func (p *Pacer) mutate(fn func()) {
	p.mu.Lock()
	fn()
	snap := p.snapshotLocked()
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

// tick is the body of the repeating task scheduled under generation gen.
func (p *Pacer) tick(gen uint64) {
	p.mu.Lock()
	if !p.running || gen != p.gen {
		p.mu.Unlock()
		return
	}
	last := p.lastChunkLocked()
	if p.position >= last {
		p.position = last
		p.finished = true
		p.stopLocked(reasonEnd)
	} else {
		p.position += p.chunkSize
	}
	snap := p.snapshotLocked()
	onChange := p.onChange
	p.mu.Unlock()

	if onChange != nil {
		onChange(snap)
	}
}

func (p *Pacer) startLocked() {
	if p.closed {
		return
	}
	if p.position >= p.lastChunkLocked() {
		p.position = 0
		p.accumulated = 0
	}
	p.running = true
	p.finished = false
	p.runStartedAt = p.clock.Now()
	p.scheduleLocked()
	p.log.Debug().Int("position", p.position).Int("wpm", p.wpm).Int("chunk", p.chunkSize).Msg("reading started")
}

// moveLocked steps to pos, clamped to the chunk starts of the document.
func (p *Pacer) moveLocked(pos int) {
	pos = clamp(pos, 0, p.lastChunkLocked())
	if pos != p.position {
		p.position = pos
		p.finished = false
	}
}

func (p *Pacer) stopLocked(reason string) {
	p.cancelLocked()
	if !p.running {
		return
	}
	p.running = false
	if d := p.clock.Now().Sub(p.runStartedAt); d > 0 {
		p.accumulated += d
	}
	p.runStartedAt = time.Time{}
	p.log.Debug().Str("reason", reason).Int("position", p.position).Dur("read", p.accumulated).Msg("reading stopped")
}

func (p *Pacer) rescheduleLocked() {
	if p.running {
		p.scheduleLocked()
	}
}

// scheduleLocked replaces the active task with one for the current interval.
func (p *Pacer) scheduleLocked() {
	p.cancelLocked()
	if p.closed {
		return
	}
	gen := p.gen
	p.task = p.sched.Every(tickInterval(p.wpm, p.chunkSize), func() { p.tick(gen) })
}

func (p *Pacer) cancelLocked() {
	p.gen++
	if p.task != nil {
		p.task.Stop()
		p.task = nil
	}
}

// lastChunkLocked is the highest position a full chunk can start at.
func (p *Pacer) lastChunkLocked() int {
	return max(0, len(p.words)-p.chunkSize)
}

func tickInterval(wpm, chunkSize int) time.Duration {
	return time.Duration(chunkSize) * time.Minute / time.Duration(wpm)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
