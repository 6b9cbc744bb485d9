package scraper

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/platform/metrics"
	"github.com/iqscore/scorefeed/internal/platform/resilience"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxResponseBytes = 6 << 20
	defaultUserAgent = "scorefeed/1.0"
)

var errUpstreamTransient = crerr.New("scraper transient failure")

var scraperTracer = otel.Tracer("scorefeed/external/scraper")

type ClientConfig struct {
	HTTPClient     *http.Client
	Endpoints      Endpoints
	Timeout        time.Duration
	UserAgent      string
	Logger         *logging.Logger
	Metrics        *metrics.Recorder
	CircuitBreaker resilience.CircuitBreakerConfig
	RateLimit      resilience.RateConfig
	// Coalesce shares one in-flight GET among identical concurrent callers.
	Coalesce bool
}

// Client talks to every scraper endpoint family and implements the domain
// Source ports. It never retries beyond the single fallback request.
type Client struct {
	httpClient *http.Client
	endpoints  Endpoints
	userAgent  string
	logger     *logging.Logger
	metrics    *metrics.Recorder
	guard      *resilience.HostGuard
	coalesce   bool
	flight     resilience.Flight[response]
}

type response struct {
	body   []byte
	status int
}

func NewClient(cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("scraper")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	endpoints, err := cfg.Endpoints.withDefaults().validate()
	if err != nil {
		return nil, err
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	recorder := cfg.Metrics
	guard := resilience.NewHostGuard(cfg.CircuitBreaker, cfg.RateLimit, func(host string, from, to resilience.CircuitState) {
		recorder.RecordBreaker(host, string(to))
		logger.Warn("upstream circuit state changed", "host", host, "from", string(from), "to", string(to))
	})

	return &Client{
		httpClient: httpClient,
		endpoints:  endpoints,
		userAgent:  userAgent,
		logger:     logger,
		metrics:    recorder,
		guard:      guard,
		coalesce:   cfg.Coalesce,
	}, nil
}

func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// admit checks the breaker of primary's host once for a whole fetch. The
// caller reports the combined outcome through settle.
func (c *Client) admit(ctx context.Context, primary RequestSpec) (*resilience.CircuitBreaker, error) {
	host, err := requestHost(primary)
	if err != nil {
		return nil, err
	}
	breaker := c.guard.Breaker(host)
	if err := breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "upstream circuit breaker rejected request", "family", primary.Family, "host", host, "state", string(breaker.State()))
		return breaker, err
	}
	return breaker, nil
}

// settle records one outcome per admitted fetch: a failure only when every
// stage that ran failed on transport or a 5xx/429 status.
func (c *Client) settle(ctx context.Context, breaker *resilience.CircuitBreaker, reachable bool) {
	if !reachable && ctx.Err() == nil {
		breaker.RecordFailure()
		return
	}
	breaker.RecordSuccess()
}

// execute performs exactly one HTTP round trip for spec.
func (c *Client) execute(ctx context.Context, spec RequestSpec, stage string) (response, error) {
	started := time.Now()
	res, err := c.limited(ctx, spec)
	c.metrics.RecordUpstream(spec.Family, stage, outcomeLabel(res.status, err), time.Since(started))
	return res, err
}

func (c *Client) limited(ctx context.Context, spec RequestSpec) (response, error) {
	host, err := requestHost(spec)
	if err != nil {
		return response{}, err
	}
	if err := c.guard.Wait(ctx, host); err != nil {
		return response{}, err
	}

	if !c.coalesce || spec.Method != http.MethodGet {
		return c.roundTrip(ctx, spec)
	}

	res, err, shared := c.flight.Do(ctx, spec.Method+" "+spec.URL, func(ctx context.Context) (response, error) {
		return c.roundTrip(ctx, spec)
	})
	if shared {
		c.logger.DebugContext(ctx, "coalesced upstream request", "family", spec.Family, "url", spec.URL)
	}
	return res, err
}

func requestHost(spec RequestSpec) (string, error) {
	target, err := url.Parse(spec.URL)
	if err != nil {
		return "", crerr.Wrapf(err, "parse request url %q", spec.URL)
	}
	return target.Host, nil
}

func (c *Client) roundTrip(ctx context.Context, spec RequestSpec) (response, error) {
	ctx, span := scraperTracer.Start(ctx, "scraper.roundTrip", trace.WithAttributes(
		attribute.String("scraper.family", spec.Family),
		attribute.String("http.request.method", spec.Method),
		attribute.String("url.full", spec.URL),
	))
	defer span.End()

	var body io.Reader
	if len(spec.Body) > 0 {
		body = bytes.NewReader(spec.Body)
	}
	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, body)
	if err != nil {
		return response{}, crerr.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br, zstd")
	req.Header.Set("User-Agent", c.userAgent)
	if len(spec.Body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send request")
		if ctx.Err() != nil {
			return response{}, ctx.Err()
		}
		return response{}, fmt.Errorf("%w: send request: %v", errUpstreamTransient, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := readBody(resp, maxResponseBytes)
	if err != nil {
		span.RecordError(err)
		if stderrors.Is(err, errResponseTooLarge) {
			return response{status: resp.StatusCode}, crerr.Wrap(err, "read response body")
		}
		return response{status: resp.StatusCode}, fmt.Errorf("%w: read response body: %v", errUpstreamTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
		if isRetryableStatus(resp.StatusCode) {
			return response{body: raw, status: resp.StatusCode}, fmt.Errorf("%w: upstream status=%d body=%s", errUpstreamTransient, resp.StatusCode, abbreviateBody(raw))
		}
		return response{body: raw, status: resp.StatusCode}, fmt.Errorf("upstream status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	return response{body: raw, status: resp.StatusCode}, nil
}

func isCircuitFailure(status int, err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) {
		return false
	}
	return status == 0 || isRetryableStatus(status)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func outcomeLabel(status int, err error) string {
	switch {
	case err == nil:
		return "ok"
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		return "circuit_open"
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case status > 0:
		return fmt.Sprintf("status_%dxx", status/100)
	default:
		return "transport_error"
	}
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}
