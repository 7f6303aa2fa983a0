package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/cricinfo"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

// Source is the read side of *cricinfo.Client the handlers need.
type Source interface {
	MatchByRef(ctx context.Context, ref cricinfo.MatchRef) (*cricinfo.Match, error)
	Summary(ctx context.Context, date string) (*cricinfo.Summary, error)
	Series(ctx context.Context, seriesID int64) (*cricinfo.Series, error)
	Season(ctx context.Context, seriesID int64, year int) (cricinfo.Season, error)
	Ground(ctx context.Context, groundID int64) (cricinfo.Ground, error)
	Player(ctx context.Context, playerID int64) (cricinfo.Player, error)
	Team(ctx context.Context, leagueID, teamID int64) (cricinfo.TeamProfile, error)
	LiveScores(ctx context.Context) ([]cricinfo.LiveScore, error)
}

type Handler struct {
	source Source
	logger *logging.Logger
}

func NewHandler(source Source, logger *logging.Logger) *Handler {
	return &Handler{
		source: source,
		logger: logging.OrDefault(logger),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// pathID reads a positive integer path value.
func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q must be a positive integer", cricinfo.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func pathRef(r *http.Request) (cricinfo.MatchRef, error) {
	return cricinfo.NewMatchRef(r.PathValue("seriesID"), r.PathValue("matchID"))
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", cricinfo.ErrNotFound, fmt.Sprintf(format, args...))
}

func queryBool(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: query %s=%q is not a boolean", cricinfo.ErrInvalidInput, name, raw)
	}
	return value, nil
}
