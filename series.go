package cricinfo

import (
	"context"

	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

// Series is a competition with its seasons. Listing and hydrating its
// events goes back to the client that loaded it.
type Series struct {
	record series.Record
	client *Client
}

func (s *Series) Record() SeriesRecord { return s.record }

func (s *Series) ID() int64            { return s.record.SeriesID }
func (s *Series) Name() string         { return s.record.Name }
func (s *Series) ShortName() string    { return s.record.ShortName }
func (s *Series) Abbreviation() string { return s.record.Abbreviation }
func (s *Series) Slug() string         { return s.record.Slug }
func (s *Series) IsTournament() bool   { return s.record.IsTournament }
func (s *Series) URL() string          { return s.record.URL }
func (s *Series) SeasonRefs() []string { return s.record.SeasonRefs }
func (s *Series) Years() []string      { return s.record.Years }

// MatchRefs lists the series events as refs without hydrating them.
func (s *Series) MatchRefs(ctx context.Context) ([]MatchRef, error) {
	refs, err := s.client.series.MatchRefs(ctx, s.record.SeriesID)
	if err != nil {
		return nil, err
	}
	return fromDomainRefs(refs), nil
}

// Events hydrates every listed event document in listing order.
func (s *Series) Events(ctx context.Context) ([]Event, error) {
	return s.client.series.Events(ctx, s.record.SeriesID)
}

// Matches fetches and normalizes every listed match. The first failure
// cancels the rest.
func (s *Series) Matches(ctx context.Context) ([]*Match, error) {
	records, err := s.client.series.Matches(ctx, s.record.SeriesID)
	if err != nil {
		return nil, err
	}
	return s.client.wrapMatches(records), nil
}

func (s *Series) Season(ctx context.Context, year int) (Season, error) {
	return s.client.Season(ctx, s.record.SeriesID, year)
}
