package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

// Provider fetches raw upstream payloads. It owns transport concerns
// (timeouts, retries, rendering) and maps a missing resource to ErrNotFound.
type Provider interface {
	FetchMatch(ctx context.Context, ref match.Ref) (rawdata.Payload, error)
	FetchResults(ctx context.Context, date time.Time) (rawdata.Payload, error)
	FetchLiveScores(ctx context.Context) (rawdata.Payload, error)
	FetchGround(ctx context.Context, groundID int64) (rawdata.Payload, error)
	FetchGroundPage(ctx context.Context, groundID int64) (rawdata.Payload, error)
	FetchPlayer(ctx context.Context, playerID int64) (rawdata.Payload, error)
	FetchPlayerPage(ctx context.Context, playerID int64) (rawdata.Payload, error)
	FetchSeries(ctx context.Context, seriesID int64) (rawdata.Payload, error)
	FetchSeasons(ctx context.Context, seriesID int64) (rawdata.Payload, error)
	FetchSeason(ctx context.Context, seriesID int64, year int) (rawdata.Payload, error)
	FetchEvents(ctx context.Context, seriesID int64) (rawdata.Payload, error)
	FetchEvent(ctx context.Context, ref series.EventRef) (rawdata.Payload, error)
	FetchTeam(ctx context.Context, leagueID, teamID int64) (rawdata.Payload, error)
}

// Options are shared by every service.
type Options struct {
	Logger *logging.Logger
	// Archive receives every fetched payload when set. Archive failures are
	// logged and never fail the call.
	Archive rawdata.Repository
	// Workers bounds collection hydration; values below 1 mean 1.
	Workers int
}

type base struct {
	provider Provider
	logger   *logging.Logger
	archive  rawdata.Repository
	workers  int
}

func newBase(provider Provider, opts Options) base {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return base{
		provider: provider,
		logger:   logging.OrDefault(opts.Logger),
		archive:  opts.Archive,
		workers:  workers,
	}
}

// keep archives the payload and hands it back unchanged.
func (b base) keep(ctx context.Context, payload rawdata.Payload) rawdata.Payload {
	if b.archive == nil || payload.Empty() {
		return payload
	}
	if err := b.archive.UpsertMany(ctx, []rawdata.Payload{payload}); err != nil {
		b.logger.WarnContext(ctx, "archive raw payload failed",
			"entity_type", payload.EntityType,
			"entity_key", payload.EntityKey,
			"error", err,
		)
	}
	return payload
}
