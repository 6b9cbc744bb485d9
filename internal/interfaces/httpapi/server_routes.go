package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerCardRoutes(mux *http.ServeMux, handler *Handler) {
	if handler.homeService != nil {
		mux.HandleFunc("GET /v1/home", handler.GetHome)
	}
	if handler.oddsService != nil {
		mux.HandleFunc("GET /v1/odds/leagues", handler.GetOddsBoard)
	}
	if handler.leagueCardService != nil {
		mux.HandleFunc("GET /v1/odds/card", handler.GetLeagueCard)
	}
	if handler.promotionService != nil {
		mux.HandleFunc("GET /v1/odds/promotions", handler.ListPromotions)
	}
	if handler.standingService != nil {
		mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	}
	if handler.scorerService != nil {
		mux.HandleFunc("GET /v1/scorers", handler.GetScorers)
	}
	if handler.newsService != nil {
		mux.HandleFunc("GET /v1/news", handler.GetNews)
	}
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	if handler.matchService == nil {
		return
	}
	mux.HandleFunc("GET /v1/matches/top", handler.GetTopMatches)
	mux.HandleFunc("POST /v1/matches/detail", handler.GetMatchDetail)
}
