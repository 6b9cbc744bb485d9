package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/iqscore/scorefeed/internal/domain/match"
	"github.com/iqscore/scorefeed/internal/domain/news"
	"github.com/iqscore/scorefeed/internal/domain/standing"
	matchmock "github.com/iqscore/scorefeed/internal/mocks/domain/match"
	newsmock "github.com/iqscore/scorefeed/internal/mocks/domain/news"
	standingmock "github.com/iqscore/scorefeed/internal/mocks/domain/standing"
	"github.com/iqscore/scorefeed/internal/platform/logging"
	"github.com/iqscore/scorefeed/internal/usecase"
	"github.com/iqscore/scorefeed/internal/viewmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(services Services) http.Handler {
	return NewRouter(NewHandler(services, logging.NewNop()), nil, logging.NewNop(), []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func twoLeagueSnapshot() standing.Snapshot {
	return standing.Snapshot{Leagues: []standing.League{
		{Name: "Liga A", Rows: []standing.Row{{Position: 1, Team: "Millonarios"}}},
		{Name: "Liga B", Rows: []standing.Row{{Position: 1, Team: "Nacional"}}},
	}}
}

func expandedFlags(t *testing.T, body map[string]any) []bool {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", body)
	}
	tables, _ := data["tables"].([]any)
	out := make([]bool, 0, len(tables))
	for _, item := range tables {
		table, _ := item.(map[string]any)
		expanded, _ := table["expanded"].(bool)
		out = append(out, expanded)
	}
	return out
}

func TestGetStandings_ExpandedQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []bool
	}{
		{name: "absent opens first league", query: "", want: []bool{true, false}},
		{name: "named league", query: "?expanded=Liga%20B", want: []bool{false, true}},
		{name: "empty collapses all", query: "?expanded=", want: []bool{false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := standingmock.NewSource(t)
			source.On("ListStandings", mock.Anything).Return(twoLeagueSnapshot(), nil).Once()
			router := newTestRouter(Services{Standings: usecase.NewStandingService(source)})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/standings"+tt.query, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}

			got := expandedFlags(t, decodeEnvelope(t, rec))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tables, got %v", len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("table %d expanded=%v want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGetNews_UpstreamFailureMapsToUnavailable(t *testing.T) {
	t.Parallel()

	source := newsmock.NewSource(t)
	source.On("ListArticles", mock.Anything).
		Return(news.Feed{}, &usecase.FetchError{Family: "news", Stage: usecase.StagePrimary, Status: http.StatusBadGateway, Attempts: 1}).
		Once()
	router := newTestRouter(Services{News: usecase.NewNewsService(source, 3)})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/news", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	errorObj, ok := decodeEnvelope(t, rec)["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object")
	}
	if got, _ := errorObj["message"].(string); got != "Error al cargar los datos: 502 Bad Gateway" {
		t.Fatalf("unexpected error message %q", got)
	}
}

func TestGetNews_EmptyFeedMapsToNotFound(t *testing.T) {
	t.Parallel()

	source := newsmock.NewSource(t)
	source.On("ListArticles", mock.Anything).Return(news.Feed{}, nil).Once()
	router := newTestRouter(Services{News: usecase.NewNewsService(source, 3)})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/news", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetMatchDetail_ValidBody(t *testing.T) {
	t.Parallel()

	link := "https://example.com/partido/junior-cali/77"
	home := decimal.NewFromInt(52)
	source := matchmock.NewSource(t)
	source.On("GetDetail", mock.Anything, link).
		Return(match.Detail{Score: "1-1", Status: "En vivo", Probabilities: match.PartialProbabilities{Home: &home}}, nil).
		Once()
	router := newTestRouter(Services{Matches: usecase.NewMatchService(source, viewmodel.CarouselOptions{})})

	body := `{"home":{"name":"Junior","logo":"/j.png"},"away":{"name":"Cali"},"date":"2026-10-19","time":"19:30","status":"scheduled","detail_link":" ` + link + ` "}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/detail", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	if got, _ := data["status_label"].(string); got != viewmodel.StatusLabelLive {
		t.Fatalf("unexpected status label %q", got)
	}
	probs, _ := data["probabilities"].(map[string]any)
	if got, _ := probs["home"].(string); got != "52" {
		t.Fatalf("unexpected home probability %v", probs["home"])
	}
	if got, _ := probs["draw"].(string); got != "34" {
		t.Fatalf("unexpected draw probability %v", probs["draw"])
	}
}

func TestGetMatchDetail_RejectsInvalidBodies(t *testing.T) {
	t.Parallel()

	bodies := map[string]string{
		"malformed json": `{"home":`,
		"missing link":   `{"home":{"name":"Junior"},"away":{"name":"Cali"}}`,
		"missing team":   `{"home":{"name":""},"away":{"name":"Cali"},"detail_link":"https://example.com/p/1"}`,
		"unknown field":  `{"home":{"name":"Junior"},"away":{"name":"Cali"},"detail_link":"https://example.com/p/1","extra":true}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			source := matchmock.NewSource(t)
			router := newTestRouter(Services{Matches: usecase.NewMatchService(source, viewmodel.CarouselOptions{})})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/detail", strings.NewReader(body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetHome_ReportsCardsIndependently(t *testing.T) {
	t.Parallel()

	matchSource := matchmock.NewSource(t)
	matchSource.On("ListTopMatches", mock.Anything).
		Return(nil, &usecase.NormalizationError{Family: "top_matches", Reason: "payload is not an object"}).
		Once()
	standingSource := standingmock.NewSource(t)
	standingSource.On("ListStandings", mock.Anything).Return(twoLeagueSnapshot(), nil).Once()

	matches := usecase.NewMatchService(matchSource, viewmodel.CarouselOptions{})
	standings := usecase.NewStandingService(standingSource)
	router := newTestRouter(Services{
		Matches:   matches,
		Standings: standings,
		Home:      usecase.NewHomeService(usecase.HomeServices{Matches: matches, Standings: standings}, 2),
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/home", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data, _ := decodeEnvelope(t, rec)["data"].(map[string]any)
	cards, _ := data["cards"].([]any)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	first, _ := cards[0].(map[string]any)
	if first["name"] != "top_matches" || first["status"] != usecase.CardStatusError {
		t.Fatalf("unexpected first card %v", first)
	}
	if first["message"] != "Los datos recibidos no tienen el formato esperado" {
		t.Fatalf("unexpected failure message %v", first["message"])
	}
	second, _ := cards[1].(map[string]any)
	if second["name"] != "standings" || second["status"] != usecase.CardStatusOK {
		t.Fatalf("unexpected second card %v", second)
	}
}

func TestRouter_UnconfiguredServiceIsNotRouted(t *testing.T) {
	t.Parallel()

	router := newTestRouter(Services{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/scorers", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRouter_HealthzAndRequestID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(Services{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected caller request id to be echoed, got %q", got)
	}
}

func TestRouter_MetricsRoute(t *testing.T) {
	t.Parallel()

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
	router := NewRouter(NewHandler(Services{}, logging.NewNop()), metrics, logging.NewNop(), []string{"*"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "# metrics" {
		t.Fatalf("unexpected metrics response %d %q", rec.Code, rec.Body.String())
	}
}

func TestRecoverPanic_WritesInternalError(t *testing.T) {
	t.Parallel()

	handler := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/news", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestResolveRequestID(t *testing.T) {
	t.Parallel()

	if got := resolveRequestID("  keep-me "); got != "keep-me" {
		t.Fatalf("expected trimmed id, got %q", got)
	}
	for _, raw := range []string{"", "has space", strings.Repeat("x", 200)} {
		if got := resolveRequestID(raw); len(got) != 36 {
			t.Fatalf("expected generated uuid for %q, got %q", raw, got)
		}
	}
}
