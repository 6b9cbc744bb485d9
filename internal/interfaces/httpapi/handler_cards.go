package httpapi

import (
	"fmt"
	"net/http"

	"github.com/iqscore/scorefeed/internal/usecase"
	"github.com/iqscore/scorefeed/internal/viewmodel"
)

func (h *Handler) GetOddsBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOddsBoard")
	defer span.End()

	board, err := h.oddsService.Board(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get odds board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetLeagueCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueCard")
	defer span.End()

	card, err := h.leagueCardService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get league card failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, card)
}

func (h *Handler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPromotions")
	defer span.End()

	list, err := h.promotionService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list promotions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, list)
}

// GetStandings honours ?expanded=. Absent opens the first league; present and
// empty collapses every table.
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	expansion := viewmodel.Expansion{}
	if values, ok := r.URL.Query()["expanded"]; ok {
		name := ""
		if len(values) > 0 {
			name = values[0]
		}
		expansion = viewmodel.Expand(name)
	}

	view, err := h.standingService.Tables(ctx, expansion)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "expanded", expansion.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorers")
	defer span.End()

	board, err := h.scorerService.Board(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	feed, err := h.newsService.Feed(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feed)
}

func (h *Handler) GetTopMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopMatches")
	defer span.End()

	view, err := h.matchService.TopCarousel(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get top matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetMatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetail")
	defer span.End()

	req, err := decodeMatchDetailRequest(w, r)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.Detail(ctx, req.toMatch())
	if err != nil {
		h.logger.WarnContext(ctx, "get match detail failed", "detail_link", req.DetailLink, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}
