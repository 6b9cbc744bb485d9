package rotation

import (
	"context"
	"sync"
	"time"
)

type Trigger string

const (
	TriggerAuto   Trigger = "auto"
	TriggerManual Trigger = "manual"
	TriggerReset  Trigger = "reset"
)

// Ticker is the part of *time.Ticker the rotator needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) Chan() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()                  { t.t.Stop() }

func newTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type Option func(*Rotator)

// WithTicker replaces the wall-clock ticker.
func WithTicker(fn func(time.Duration) Ticker) Option {
	return func(r *Rotator) {
		if fn != nil {
			r.newTicker = fn
		}
	}
}

// OnChange is called after every cursor move, outside the rotator lock.
func OnChange(fn func(index, length int, trigger Trigger)) Option {
	return func(r *Rotator) {
		r.onChange = fn
	}
}

// Rotator owns a Cursor and, when interval > 0, advances it on a timer while
// the collection is non-empty. An interval of 0 means manual navigation only.
type Rotator struct {
	mu        sync.Mutex
	cursor    Cursor
	interval  time.Duration
	newTicker func(time.Duration) Ticker
	onChange  func(index, length int, trigger Trigger)

	ctx     context.Context
	started bool
	gen     uint64
	halt    chan struct{}
}

func NewRotator(interval time.Duration, opts ...Option) *Rotator {
	if interval < 0 {
		interval = 0
	}
	r := &Rotator{
		interval:  interval,
		newTicker: newTimeTicker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start enables auto-advance until Stop is called or ctx is done.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.started = true
	r.ctx = ctx
	r.armLocked()
}

// Stop cancels the timer. The cursor keeps its position.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started = false
	r.disarmLocked()
}

// SetLen installs a new collection length. The cursor goes back to 0, the
// timer stops for an empty collection and restarts otherwise.
func (r *Rotator) SetLen(n int) {
	r.mu.Lock()
	r.cursor.Reset(n)
	r.disarmLocked()
	r.armLocked()
	index, length := r.cursor.i, r.cursor.n
	r.mu.Unlock()

	r.emit(index, length, TriggerReset)
}

func (r *Rotator) Current() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor.Current()
}

func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor.Len()
}

// Running reports whether the auto-advance timer is armed.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.halt != nil
}

func (r *Rotator) Next() int {
	return r.move(TriggerManual, func(c *Cursor) int { return c.Next() })
}

func (r *Rotator) Prev() int {
	return r.move(TriggerManual, func(c *Cursor) int { return c.Prev() })
}

func (r *Rotator) Goto(i int) int {
	return r.move(TriggerManual, func(c *Cursor) int { return c.Goto(i) })
}

func (r *Rotator) move(trigger Trigger, fn func(*Cursor) int) int {
	r.mu.Lock()
	if r.cursor.n == 0 {
		r.mu.Unlock()
		return 0
	}
	index := fn(&r.cursor)
	length := r.cursor.n
	r.mu.Unlock()

	r.emit(index, length, trigger)
	return index
}

func (r *Rotator) emit(index, length int, trigger Trigger) {
	if r.onChange != nil {
		r.onChange(index, length, trigger)
	}
}

func (r *Rotator) armLocked() {
	if !r.started || r.interval <= 0 || r.cursor.n == 0 || r.halt != nil {
		return
	}

	r.gen++
	gen := r.gen
	halt := make(chan struct{})
	r.halt = halt
	ticker := r.newTicker(r.interval)
	ctx := r.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	go r.loop(ctx, gen, halt, ticker)
}

func (r *Rotator) disarmLocked() {
	if r.halt == nil {
		return
	}
	close(r.halt)
	r.halt = nil
}

func (r *Rotator) loop(ctx context.Context, gen uint64, halt <-chan struct{}, ticker Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-halt:
			return
		case <-ctx.Done():
			r.mu.Lock()
			if r.gen == gen {
				r.started = false
				r.disarmLocked()
			}
			r.mu.Unlock()
			return
		case <-ticker.Chan():
			r.mu.Lock()
			if r.gen != gen || r.halt == nil || r.cursor.n == 0 {
				r.mu.Unlock()
				continue
			}
			index := r.cursor.Next()
			length := r.cursor.n
			r.mu.Unlock()

			r.emit(index, length, TriggerAuto)
		}
	}
}
