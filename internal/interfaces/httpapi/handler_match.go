package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/cricinfo"
)

type matchDTO struct {
	Record       cricinfo.MatchRecord `json:"record"`
	MatchClass   string               `json:"match_class,omitempty"`
	TossWinner   string               `json:"toss_winner,omitempty"`
	TossDecision string               `json:"toss_decision,omitempty"`
	Winner       string               `json:"winner,omitempty"`
	BattingFirst string               `json:"batting_first,omitempty"`
	HomeTeam     string               `json:"home_team,omitempty"`
	EventURL     string               `json:"event_url"`
	ScorecardURL string               `json:"scorecard_url"`
}

type inningsDTO struct {
	Innings     cricinfo.InningsRecord  `json:"innings"`
	BattingCard []cricinfo.BattingEntry `json:"batting_card"`
	Extras      map[string]*int         `json:"extras"`
}

type summaryDTO struct {
	Date    string              `json:"date"`
	Refs    []cricinfo.MatchRef `json:"refs"`
	Matches []matchDTO          `json:"matches,omitempty"`
}

func teamAbbreviation(t *cricinfo.Team) string {
	if t == nil {
		return ""
	}
	return t.Abbreviation()
}

func matchToDTO(m *cricinfo.Match) matchDTO {
	return matchDTO{
		Record:       m.Record(),
		MatchClass:   m.MatchClass(),
		TossWinner:   teamAbbreviation(m.TossWinner()),
		TossDecision: m.TossDecisionName(),
		Winner:       teamAbbreviation(m.MatchWinner()),
		BattingFirst: teamAbbreviation(m.BattingFirst()),
		HomeTeam:     teamAbbreviation(m.HomeTeam()),
		EventURL:     m.EventURL(),
		ScorecardURL: m.ScorecardURL(),
	}
}

func matchesToDTO(matches []*cricinfo.Match) []matchDTO {
	out := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, matchToDTO(m))
	}
	return out
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	ref, err := pathRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := h.source.MatchByRef(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "series_id", ref.SeriesID, "match_id", ref.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorecard")
	defer span.End()

	ref, err := pathRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := h.source.MatchByRef(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get scorecard failed", "series_id", ref.SeriesID, "match_id", ref.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, m.BattingScorecard())
}

func (h *Handler) GetInnings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetInnings")
	defer span.End()

	ref, err := pathRef(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	inning, err := pathID(r, "inning")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := h.source.MatchByRef(ctx, ref)
	if err != nil {
		h.logger.WarnContext(ctx, "get innings failed", "series_id", ref.SeriesID, "match_id", ref.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	inn := m.InningsAt(int(inning))
	if inn == nil {
		writeError(ctx, w, notFound("innings %d of match %d", inning, ref.MatchID))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, inningsDTO{
		Innings:     inn.Record(),
		BattingCard: inn.BattingCard(),
		Extras:      inn.Extras(),
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	hydrate, err := queryBool(r, "hydrate")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	date := r.URL.Query().Get("date")
	summary, err := h.source.Summary(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get summary failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := summaryDTO{
		Date: summary.Date.Format(time.DateOnly),
		Refs: summary.Matches,
	}
	if hydrate {
		matches, err := summary.Hydrate(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "hydrate summary failed", "date", out.Date, "error", err)
			writeError(ctx, w, err)
			return
		}
		out.Matches = matchesToDTO(matches)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListLiveScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveScores")
	defer span.End()

	scores, err := h.source.LiveScores(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scores)
}
