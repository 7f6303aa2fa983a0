package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
	"github.com/riskibarqy/cricinfo/internal/normalize"
)

type SeriesService struct {
	base
	matches *MatchService
}

func NewSeriesService(provider Provider, matches *MatchService, opts Options) *SeriesService {
	if matches == nil {
		matches = NewMatchService(provider, opts)
	}
	return &SeriesService{base: newBase(provider, opts), matches: matches}
}

// Get fetches the league document and its seasons listing. A series with no
// seasons listing upstream still resolves, with no years.
func (s *SeriesService) Get(ctx context.Context, seriesID int64) (record series.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Get", attribute.Int64("series_id", seriesID))
	defer func() { endSpan(span, err) }()

	if seriesID <= 0 {
		return series.Record{}, fmt.Errorf("%w: series id must be > 0", ErrInvalidInput)
	}

	league, err := s.fetchTree(ctx, seriesID, s.provider.FetchSeries)
	if err != nil {
		return series.Record{}, fmt.Errorf("fetch series=%d: %w", seriesID, err)
	}

	seasons, err := s.fetchTree(ctx, seriesID, s.provider.FetchSeasons)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.WarnContext(ctx, "series has no seasons listing", "series_id", seriesID)
		seasons = nil
	case err != nil:
		return series.Record{}, fmt.Errorf("fetch seasons series=%d: %w", seriesID, err)
	}

	return normalize.Series(league, seasons, seriesID)
}

// EventRefs lists the events of a series without hydrating them.
func (s *SeriesService) EventRefs(ctx context.Context, seriesID int64) (refs []series.EventRef, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.EventRefs", attribute.Int64("series_id", seriesID))
	defer func() { endSpan(span, err) }()

	if seriesID <= 0 {
		return nil, fmt.Errorf("%w: series id must be > 0", ErrInvalidInput)
	}
	tree, err := s.fetchTree(ctx, seriesID, s.provider.FetchEvents)
	if err != nil {
		return nil, fmt.Errorf("fetch events series=%d: %w", seriesID, err)
	}
	return normalize.EventRefs(tree, seriesID), nil
}

// MatchRefs lists the events of a series as match references.
func (s *SeriesService) MatchRefs(ctx context.Context, seriesID int64) ([]match.Ref, error) {
	events, err := s.EventRefs(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	out := make([]match.Ref, 0, len(events))
	for _, event := range events {
		out = append(out, match.Ref{SeriesID: event.SeriesID, MatchID: event.EventID})
	}
	return out, nil
}

// Events hydrates every event of a series on the worker pool.
func (s *SeriesService) Events(ctx context.Context, seriesID int64) (events []series.Event, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Events", attribute.Int64("series_id", seriesID))
	defer func() { endSpan(span, err) }()

	refs, err := s.EventRefs(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return hydratePool(ctx, s.logger, s.workers, refs,
		func(ref series.EventRef) string { return fmt.Sprintf("event=%d", ref.EventID) },
		s.event,
	)
}

// Matches hydrates every event of a series into a full match record.
func (s *SeriesService) Matches(ctx context.Context, seriesID int64) ([]match.Record, error) {
	refs, err := s.MatchRefs(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return s.matches.GetMany(ctx, refs)
}

// Season fetches one season of a series.
func (s *SeriesService) Season(ctx context.Context, seriesID int64, year int) (season series.Season, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeriesService.Season",
		attribute.Int64("series_id", seriesID),
		attribute.Int("year", year),
	)
	defer func() { endSpan(span, err) }()

	if seriesID <= 0 || year <= 0 {
		return series.Season{}, fmt.Errorf("%w: series id and year must be > 0", ErrInvalidInput)
	}
	payload, err := s.provider.FetchSeason(ctx, seriesID, year)
	if err != nil {
		return series.Season{}, fmt.Errorf("fetch season series=%d year=%d: %w", seriesID, year, err)
	}
	tree, err := normalize.DecodeJSON(s.keep(ctx, payload).Body)
	if err != nil {
		return series.Season{}, err
	}
	return normalize.Season(tree, seriesID)
}

func (s *SeriesService) event(ctx context.Context, ref series.EventRef) (series.Event, error) {
	payload, err := s.provider.FetchEvent(ctx, ref)
	if err != nil {
		return series.Event{}, err
	}
	tree, err := normalize.DecodeJSON(s.keep(ctx, payload).Body)
	if err != nil {
		return series.Event{}, err
	}
	return normalize.Event(tree, ref)
}

func (s *SeriesService) fetchTree(
	ctx context.Context,
	seriesID int64,
	fetch func(context.Context, int64) (rawdata.Payload, error),
) (any, error) {
	payload, err := fetch(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	return normalize.DecodeJSON(s.keep(ctx, payload).Body)
}
