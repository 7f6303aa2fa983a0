package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricinfo/internal/domain/ground"
	"github.com/riskibarqy/cricinfo/internal/domain/player"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/team"
	"github.com/riskibarqy/cricinfo/internal/normalize"
)

// ProfileService resolves grounds, players and teams. Grounds and players
// merge the core JSON document with the rendered page; the page only fills
// gaps, so a missing or unreachable page degrades to a JSON-only record.
type ProfileService struct {
	base
}

func NewProfileService(provider Provider, opts Options) *ProfileService {
	return &ProfileService{base: newBase(provider, opts)}
}

func (s *ProfileService) Ground(ctx context.Context, groundID int64) (record ground.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Ground", attribute.Int64("ground_id", groundID))
	defer func() { endSpan(span, err) }()

	if groundID <= 0 {
		return ground.Record{}, fmt.Errorf("%w: ground id must be > 0", ErrInvalidInput)
	}

	payload, err := s.provider.FetchGround(ctx, groundID)
	if err != nil {
		return ground.Record{}, fmt.Errorf("fetch ground=%d: %w", groundID, err)
	}
	tree, err := normalize.DecodeJSON(s.keep(ctx, payload).Body)
	if err != nil {
		return ground.Record{}, err
	}
	record, err = normalize.Ground(tree, groundID)
	if err != nil {
		return ground.Record{}, err
	}

	page, ok := s.page(ctx, "ground", groundID, s.provider.FetchGroundPage)
	if !ok {
		return record, nil
	}
	doc, err := normalize.DecodeHTML(page.Body)
	if err != nil {
		s.logger.WarnContext(ctx, "ground page unreadable", "ground_id", groundID, "error", err)
		return record, nil
	}
	return record.Merge(normalize.GroundPage(doc, groundID)), nil
}

func (s *ProfileService) Player(ctx context.Context, playerID int64) (record player.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Player", attribute.Int64("player_id", playerID))
	defer func() { endSpan(span, err) }()

	if playerID <= 0 {
		return player.Record{}, fmt.Errorf("%w: player id must be > 0", ErrInvalidInput)
	}

	payload, err := s.provider.FetchPlayer(ctx, playerID)
	if err != nil {
		return player.Record{}, fmt.Errorf("fetch player=%d: %w", playerID, err)
	}
	tree, err := normalize.DecodeJSON(s.keep(ctx, payload).Body)
	if err != nil {
		return player.Record{}, err
	}
	record, err = normalize.Player(tree, playerID)
	if err != nil {
		return player.Record{}, err
	}

	page, ok := s.page(ctx, "player", playerID, s.provider.FetchPlayerPage)
	if !ok {
		return record, nil
	}
	doc, err := normalize.DecodeHTML(page.Body)
	if err != nil {
		s.logger.WarnContext(ctx, "player page unreadable", "player_id", playerID, "error", err)
		return record, nil
	}
	return record.Merge(normalize.PlayerPage(doc, playerID)), nil
}

func (s *ProfileService) Team(ctx context.Context, leagueID, teamID int64) (record team.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProfileService.Team",
		attribute.Int64("league_id", leagueID),
		attribute.Int64("team_id", teamID),
	)
	defer func() { endSpan(span, err) }()

	if leagueID <= 0 || teamID <= 0 {
		return team.Record{}, fmt.Errorf("%w: league id and team id must be > 0", ErrInvalidInput)
	}

	payload, err := s.provider.FetchTeam(ctx, leagueID, teamID)
	if err != nil {
		return team.Record{}, fmt.Errorf("fetch team=%d league=%d: %w", teamID, leagueID, err)
	}
	tree, err := normalize.DecodeJSON(s.keep(ctx, payload).Body)
	if err != nil {
		return team.Record{}, err
	}
	return normalize.Team(tree, teamID, leagueID)
}

// page fetches an optional rendered page; failures are logged and reported
// as absent.
func (s *ProfileService) page(
	ctx context.Context,
	kind string,
	id int64,
	fetch func(context.Context, int64) (rawdata.Payload, error),
) (rawdata.Payload, bool) {
	payload, err := fetch(ctx, id)
	switch {
	case err == nil:
		return s.keep(ctx, payload), !payload.Empty()
	case errors.Is(err, ErrNotFound):
		s.logger.DebugContext(ctx, "profile page not found", "kind", kind, "id", id)
	default:
		s.logger.WarnContext(ctx, "profile page fetch failed", "kind", kind, "id", id, "error", err)
	}
	return rawdata.Payload{}, false
}
