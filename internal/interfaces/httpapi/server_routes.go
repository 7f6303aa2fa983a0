package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/series/{seriesID}/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/series/{seriesID}/matches/{matchID}/scorecard", handler.GetScorecard)
	mux.HandleFunc("GET /v1/series/{seriesID}/matches/{matchID}/innings/{inning}", handler.GetInnings)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
	mux.HandleFunc("GET /v1/live", handler.ListLiveScores)
}

func registerSeriesRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/series/{seriesID}", handler.GetSeries)
	mux.HandleFunc("GET /v1/series/{seriesID}/matches", handler.ListSeriesMatches)
	mux.HandleFunc("GET /v1/series/{seriesID}/events", handler.ListSeriesEvents)
	mux.HandleFunc("GET /v1/series/{seriesID}/seasons/{year}", handler.GetSeason)
}

func registerProfileRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/grounds/{groundID}", handler.GetGround)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}", handler.GetTeam)
}
