// Package viewstate holds the load state of one data-driven view:
// Idle, Loading, then Success or Failure. Recovery is always caller driven.
package viewstate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/platform/metrics"
	"github.com/iqscore/scorefeed/internal/usecase"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailure State = "failure"
)

var (
	// ErrClosed is returned by Refresh once the view has been closed.
	ErrClosed = errors.New("view is closed")
	// ErrSuperseded is returned to a Refresh whose result was discarded
	// because a newer refresh started or the view was closed.
	ErrSuperseded = errors.New("view refresh superseded")
)

// Loader produces the view's value. It must honour ctx cancellation.
type Loader[T any] func(ctx context.Context) (T, error)

// Snapshot is an immutable copy of the view. Value keeps the last good
// result while a refresh is loading or after it failed; HasValue tells
// whether there has been one.
type Snapshot[T any] struct {
	Name       string
	State      State
	Value      T
	HasValue   bool
	Err        error
	Message    string
	UpdatedAt  time.Time
	Generation uint64
}

type Listener[T any] func(Snapshot[T])

type options struct {
	logger  *logging.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

type Option func(*options)

func WithLogger(logger *logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithMetrics(recorder *metrics.Recorder) Option {
	return func(o *options) { o.metrics = recorder }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

type View[T any] struct {
	name    string
	load    Loader[T]
	logger  *logging.Logger
	metrics *metrics.Recorder
	now     func() time.Time

	mu        sync.Mutex
	state     State
	value     T
	hasValue  bool
	err       error
	message   string
	updatedAt time.Time
	gen       uint64
	cancel    context.CancelFunc
	closed    bool
	listeners map[int]Listener[T]
	nextID    int
}

func New[T any](name string, load Loader[T], opts ...Option) *View[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Default()
	}
	return &View[T]{
		name:      name,
		load:      load,
		logger:    o.logger.Named("view." + name),
		metrics:   o.metrics,
		now:       o.now,
		state:     StateIdle,
		listeners: make(map[int]Listener[T]),
	}
}

func (v *View[T]) Name() string {
	return v.name
}

// Subscribe registers fn for every transition and returns its removal.
func (v *View[T]) Subscribe(fn Listener[T]) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// Refresh moves the view to Loading and runs the loader. A refresh started
// while another is in flight cancels the older one; its late result is
// dropped and it returns ErrSuperseded. The loader error, if any, is returned
// after the view has moved to Failure.
func (v *View[T]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = StateLoading
	v.err = nil
	v.message = ""
	snap, listeners := v.transitionLocked()
	v.mu.Unlock()
	v.notify(snap, listeners)

	value, err := v.load(loadCtx)

	v.mu.Lock()
	if v.closed || gen != v.gen {
		v.mu.Unlock()
		cancel()
		v.logger.DebugContext(ctx, "discarding superseded view result", "generation", gen)
		return ErrSuperseded
	}
	cancel()
	v.cancel = nil
	v.updatedAt = v.now()
	if err != nil {
		v.state = StateFailure
		v.err = err
		v.message = usecase.FailureMessage(err)
	} else {
		v.state = StateSuccess
		v.value = value
		v.hasValue = true
	}
	snap, listeners = v.transitionLocked()
	v.mu.Unlock()

	if err != nil {
		v.logger.WarnContext(ctx, "view refresh failed", "error", err, "message", snap.Message)
	}
	v.notify(snap, listeners)
	return err
}

// Close cancels any in-flight load and refuses further refreshes. The last
// snapshot stays readable.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	clear(v.listeners)
}

func (v *View[T]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{
		Name:       v.name,
		State:      v.state,
		Value:      v.value,
		HasValue:   v.hasValue,
		Err:        v.err,
		Message:    v.message,
		UpdatedAt:  v.updatedAt,
		Generation: v.gen,
	}
}

func (v *View[T]) transitionLocked() (Snapshot[T], []Listener[T]) {
	v.metrics.RecordViewState(v.name, string(v.state))
	listeners := make([]Listener[T], 0, len(v.listeners))
	for _, fn := range v.listeners {
		listeners = append(listeners, fn)
	}
	return v.snapshotLocked(), listeners
}

func (v *View[T]) notify(snap Snapshot[T], listeners []Listener[T]) {
	for _, fn := range listeners {
		fn(snap)
	}
}
