package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/normalize"
)

var summaryDateLayouts = []string{time.DateOnly, "02-01-2006"}

// ParseSummaryDate accepts YYYY-MM-DD or DD-MM-YYYY. An empty value means
// today in UTC.
func ParseSummaryDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range summaryDateLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD or DD-MM-YYYY", ErrInvalidInput, raw)
}

type SummaryService struct {
	base
	now func() time.Time
}

func NewSummaryService(provider Provider, opts Options) *SummaryService {
	return &SummaryService{base: newBase(provider, opts), now: time.Now}
}

// Summary lists the matches on the results page of a date as lightweight
// refs; nothing is hydrated.
func (s *SummaryService) Summary(ctx context.Context, date string) (refs []match.Ref, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.Summary", attribute.String("date", date))
	defer func() { endSpan(span, err) }()

	day, err := ParseSummaryDate(date, s.now())
	if err != nil {
		return nil, err
	}

	payload, err := s.provider.FetchResults(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("fetch results date=%s: %w", day.Format(time.DateOnly), err)
	}
	tree, err := normalize.DecodeTree(s.keep(ctx, payload))
	if errors.Is(err, ErrNoScorecard) {
		return []match.Ref{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode results date=%s: %w", day.Format(time.DateOnly), err)
	}
	return normalize.Results(tree), nil
}

// LiveScores reads the livescore feed.
func (s *SummaryService) LiveScores(ctx context.Context) (scores []match.LiveScore, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.LiveScores")
	defer func() { endSpan(span, err) }()

	payload, err := s.provider.FetchLiveScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch livescores: %w", err)
	}
	return normalize.LiveScores(s.keep(ctx, payload).Body)
}
