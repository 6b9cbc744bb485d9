package resilience

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// HostGuard hands out one breaker and one rate limiter per upstream host so a
// failing scraper on one host does not trip requests to the others.
type HostGuard struct {
	mu       sync.Mutex
	breaker  CircuitBreakerConfig
	rate     RateConfig
	onChange StateListener
	hosts    map[string]*hostEntry
}

type hostEntry struct {
	breaker *CircuitBreaker
	limiter *rate.Limiter
}

func NewHostGuard(breaker CircuitBreakerConfig, limits RateConfig, onChange StateListener) *HostGuard {
	return &HostGuard{
		breaker:  NormalizeCircuitBreakerConfig(breaker),
		rate:     NormalizeRateConfig(limits),
		onChange: onChange,
		hosts:    make(map[string]*hostEntry),
	}
}

func (g *HostGuard) entry(host string) *hostEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	if e, ok := g.hosts[host]; ok {
		return e
	}
	e := &hostEntry{
		breaker: NewCircuitBreaker(host, g.breaker, g.onChange),
		limiter: rate.NewLimiter(rate.Limit(g.rate.PerSecond), g.rate.Burst),
	}
	g.hosts[host] = e
	return e
}

func (g *HostGuard) Breaker(host string) *CircuitBreaker {
	return g.entry(host).breaker
}

// Wait blocks until the host has rate budget for one more request.
func (g *HostGuard) Wait(ctx context.Context, host string) error {
	return g.entry(host).limiter.Wait(ctx)
}
