package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/normalize"
)

type MatchService struct {
	base
}

func NewMatchService(provider Provider, opts Options) *MatchService {
	return &MatchService{base: newBase(provider, opts)}
}

// Get fetches one match and normalizes it. Errors are ErrInvalidInput,
// ErrNotFound, ErrNoScorecard, ErrDependencyUnavailable or a
// *normalize.StructureError.
func (s *MatchService) Get(ctx context.Context, ref match.Ref) (record match.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get",
		attribute.Int64("series_id", ref.SeriesID),
		attribute.Int64("match_id", ref.MatchID),
	)
	defer func() { endSpan(span, err) }()

	if err := ref.Validate(); err != nil {
		return match.Record{}, fmt.Errorf("%w: match ref %d/%d: %v", ErrInvalidInput, ref.SeriesID, ref.MatchID, err)
	}

	payload, err := s.provider.FetchMatch(ctx, ref)
	if err != nil {
		return match.Record{}, fmt.Errorf("fetch match=%d: %w", ref.MatchID, err)
	}
	payload = s.keep(ctx, payload)

	record, err = normalize.MatchPayload(payload, ref.MatchID, ref.SeriesID)
	if err != nil {
		return match.Record{}, fmt.Errorf("normalize match=%d: %w", ref.MatchID, err)
	}
	return record, nil
}

// GetMany hydrates refs in input order. The first failure cancels the
// remaining units and no partial list is returned.
func (s *MatchService) GetMany(ctx context.Context, refs []match.Ref) (records []match.Record, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMany",
		attribute.Int("match_count", len(refs)),
	)
	defer func() { endSpan(span, err) }()

	return hydrateContext(ctx, s.logger, s.workers, refs,
		func(ref match.Ref) string { return fmt.Sprintf("match=%d", ref.MatchID) },
		s.Get,
	)
}
