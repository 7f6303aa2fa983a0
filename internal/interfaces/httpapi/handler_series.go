package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricinfo"
)

type seriesDTO struct {
	Series cricinfo.SeriesRecord `json:"series"`
	Refs   []cricinfo.MatchRef   `json:"refs"`
}

func (h *Handler) series(w http.ResponseWriter, r *http.Request) (*cricinfo.Series, bool) {
	ctx := r.Context()

	seriesID, err := pathID(r, "seriesID")
	if err != nil {
		writeError(ctx, w, err)
		return nil, false
	}
	s, err := h.source.Series(ctx, seriesID)
	if err != nil {
		h.logger.WarnContext(ctx, "get series failed", "series_id", seriesID, "error", err)
		writeError(ctx, w, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeries")
	defer span.End()
	r = r.WithContext(ctx)

	s, ok := h.series(w, r)
	if !ok {
		return
	}
	refs, err := s.MatchRefs(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list series refs failed", "series_id", s.ID(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seriesDTO{Series: s.Record(), Refs: refs})
}

func (h *Handler) ListSeriesMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeriesMatches")
	defer span.End()
	r = r.WithContext(ctx)

	s, ok := h.series(w, r)
	if !ok {
		return
	}
	matches, err := s.Matches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list series matches failed", "series_id", s.ID(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(matches))
}

func (h *Handler) ListSeriesEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeriesEvents")
	defer span.End()
	r = r.WithContext(ctx)

	s, ok := h.series(w, r)
	if !ok {
		return
	}
	events, err := s.Events(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list series events failed", "series_id", s.ID(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, events)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeason")
	defer span.End()

	seriesID, err := pathID(r, "seriesID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	year, err := pathID(r, "year")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := h.source.Season(ctx, seriesID, int(year))
	if err != nil {
		h.logger.WarnContext(ctx, "get season failed", "series_id", seriesID, "year", year, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, season)
}
