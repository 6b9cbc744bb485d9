package resilience

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// Flight coalesces concurrent calls that share a key into one execution.
// The shared call runs on a context detached from any caller's cancellation;
// every caller, the first included, stops waiting when its own context ends.
type Flight[T any] struct {
	mu    sync.Mutex
	calls map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Do runs fn once per key among concurrent callers. shared reports whether
// the result was produced for more than one caller. A panic in fn reaches
// every caller as an error.
func (g *Flight[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flightCall[T])
	}
	c, joined := g.calls[key]
	if joined {
		c.dups++
	} else {
		c = &flightCall[T]{done: make(chan struct{})}
		g.calls[key] = c
		go g.run(context.WithoutCancel(ctx), key, c, fn)
	}
	g.mu.Unlock()

	select {
	case <-c.done:
		g.mu.Lock()
		shared = c.dups > 0
		g.mu.Unlock()
		return c.val, c.err, shared
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err(), joined
	}
}

func (g *Flight[T]) run(ctx context.Context, key string, c *flightCall[T], fn func(ctx context.Context) (T, error)) {
	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()

	var catcher panics.Catcher
	catcher.Try(func() { c.val, c.err = fn(ctx) })
	if recovered := catcher.Recovered(); recovered != nil {
		var zero T
		c.val, c.err = zero, recovered.AsError()
	}
}
