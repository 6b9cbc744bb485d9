package scraper

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/iqscore/scorefeed/internal/usecase"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// RequestSpec describes one upstream call.
type RequestSpec struct {
	Family string
	Method string
	URL    string
	Body   []byte
}

func getSpec(family, rawURL string) RequestSpec {
	return RequestSpec{Family: family, Method: http.MethodGet, URL: rawURL}
}

type fetchStage struct {
	name string
	spec RequestSpec
}

// FetchWithFallback runs primary and, only if it fails and fallback is set,
// fallback. There is no third attempt and no delay between the two. A
// cancelled context ends the sequence without trying the fallback.
func (c *Client) FetchWithFallback(ctx context.Context, primary RequestSpec, fallback *RequestSpec) ([]byte, error) {
	return fetchNormalized(ctx, c, primary, fallback, func(raw []byte) ([]byte, error) { return raw, nil })
}

// fetchNormalized is FetchWithFallback with the normalizer inside the stage:
// a payload that does not normalize counts as a failed stage, so a broken
// primary body still gets the fallback. When the last stage failed on shape
// the NormalizationError is returned as is.
func fetchNormalized[T any](ctx context.Context, c *Client, primary RequestSpec, fallback *RequestSpec, normalize func([]byte) (T, error)) (T, error) {
	ctx, span := scraperTracer.Start(ctx, "scraper.Client.FetchWithFallback")
	defer span.End()
	span.SetAttributes(attribute.String("scraper.family", primary.Family))

	stages := []fetchStage{{name: usecase.StagePrimary, spec: primary}}
	if fallback != nil {
		stages = append(stages, fetchStage{name: usecase.StageFallback, spec: *fallback})
	}

	var (
		zero      T
		last      response
		lastErr   error
		stage     = usecase.StagePrimary
		attempts  int
		reachable bool
	)

	breaker, err := c.admit(ctx, primary)
	if err != nil {
		c.metrics.RecordUpstream(primary.Family, usecase.StagePrimary, outcomeLabel(0, err), 0)
		span.SetStatus(codes.Error, "upstream fetch rejected")
		span.RecordError(err)
		return zero, &usecase.FetchError{
			Family:   primary.Family,
			Stage:    usecase.StagePrimary,
			Message:  err.Error(),
			Attempts: 0,
			Err:      err,
		}
	}

	for i, s := range stages {
		stage = s.name
		attempts++
		last, lastErr = c.execute(ctx, s.spec, s.name)
		if !isCircuitFailure(last.status, lastErr) {
			reachable = true
		}
		if lastErr == nil {
			out, err := normalize(last.body)
			if err == nil {
				c.settle(ctx, breaker, true)
				span.SetAttributes(attribute.String("scraper.stage", s.name))
				return out, nil
			}
			c.metrics.RecordNormalizationFailure(primary.Family)
			lastErr = err
		}
		if ctx.Err() != nil {
			break
		}
		if i+1 < len(stages) {
			c.logger.WarnContext(ctx, "primary upstream request failed, trying fallback",
				"family", primary.Family,
				"status", last.status,
				"error", lastErr,
				"fallback", requestPreview(stages[i+1].spec),
			)
		}
	}
	c.settle(ctx, breaker, reachable)

	span.SetStatus(codes.Error, "upstream fetch failed")
	span.RecordError(lastErr)
	c.logger.WarnContext(ctx, "upstream fetch failed", "family", primary.Family, "stage", stage, "attempts", attempts, "status", last.status, "error", lastErr)

	var normErr *usecase.NormalizationError
	if stderrors.As(lastErr, &normErr) {
		return zero, normErr
	}
	return zero, &usecase.FetchError{
		Family:   primary.Family,
		Stage:    stage,
		Status:   last.status,
		Message:  lastErr.Error(),
		Attempts: attempts,
		Err:      lastErr,
	}
}

// detailRequests builds the GET-by-id primary and the POST-by-link fallback
// for a match detail lookup.
func (c *Client) detailRequests(link string) (RequestSpec, *RequestSpec, error) {
	link = strings.TrimSpace(link)
	id := lastPathSegment(link)
	if id == "" {
		return RequestSpec{}, nil, crerr.Wrapf(usecase.ErrInvalidInput, "detail link %q has no path segment", link)
	}

	body, err := encodeJSONBody(map[string]string{"url": link})
	if err != nil {
		return RequestSpec{}, nil, err
	}

	primary := getSpec(FamilyMatchDetail, c.endpoints.MatchDetail+"/"+id)
	fallback := RequestSpec{
		Family: FamilyMatchDetail,
		Method: http.MethodPost,
		URL:    c.endpoints.MatchDetail,
		Body:   body,
	}
	return primary, &fallback, nil
}

func lastPathSegment(link string) string {
	trimmed := strings.TrimRight(link, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = strings.TrimRight(trimmed[:i], "/")
	}
	idx := strings.LastIndex(trimmed, "/")
	segment := trimmed[idx+1:]
	if strings.Contains(segment, ":") {
		return ""
	}
	return segment
}

func encodeJSONBody(v any) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := jsoniter.NewEncoder(buf).Encode(v); err != nil {
		return nil, crerr.Wrap(err, "encode request body")
	}
	out := make([]byte, 0, buf.Len())
	out = append(out, bytesTrimNewline(buf.B)...)
	return out, nil
}

func bytesTrimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

// requestPreview renders spec as a curl command for logs.
func requestPreview(spec RequestSpec) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart("-X")
	appendPart(spec.Method)
	appendPart(shellQuote(spec.URL))
	if len(spec.Body) > 0 {
		appendPart("-H")
		appendPart(shellQuote("Content-Type: application/json"))
		appendPart("-d")
		appendPart(shellQuote(string(spec.Body)))
	}
	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}
