package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/normalize"
)

func TestParseSummaryDate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 15, 22, 30, 0, 0, time.FixedZone("ACDT", 10*3600+1800))
	cases := map[string]struct {
		raw     string
		want    string
		wantErr bool
	}{
		"iso":       {raw: "2026-02-15", want: "2026-02-15"},
		"day first": {raw: "15-02-2026", want: "2026-02-15"},
		"empty":     {raw: "  ", want: "2026-02-15"},
		"slashes":   {raw: "15/02/2026", wantErr: true},
		"bad month": {raw: "2026-13-01", wantErr: true},
		"free text": {raw: "yesterday", wantErr: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSummaryDate(tc.raw, now)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("unexpected error got=%v want=%v", err, ErrInvalidInput)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse date: %v", err)
			}
			if got.Format(time.DateOnly) != tc.want || got.Location() != time.UTC {
				t.Fatalf("unexpected date got=%v want=%s UTC", got, tc.want)
			}
		})
	}
}

func TestParseSummaryDate_EmptyUsesUTCDay(t *testing.T) {
	t.Parallel()

	// 08:00 on the 16th in UTC+10:30 is still the 15th in UTC.
	now := time.Date(2026, 2, 16, 8, 0, 0, 0, time.FixedZone("ACDT", 10*3600+1800))
	got, err := ParseSummaryDate("", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-15", got.Format(time.DateOnly))
}

func TestSummaryService_Summary(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	day := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	provider.On("FetchResults", mock.Anything, day).
		Return(fixturePayload(t, rawdata.EntityResults, "2026-02-15", "results_page.html"), nil).Once()

	refs, err := NewSummaryService(provider, Options{}).Summary(context.Background(), "15-02-2026")
	require.NoError(t, err)
	assert.Equal(t, []match.Ref{
		{SeriesID: 1478874, MatchID: 1478914},
		{SeriesID: 1478874, MatchID: 1478915},
	}, refs)
}

func TestSummaryService_SummaryPageWithoutData(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchResults", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(rawdata.Payload{Body: []byte("<html><body>maintenance</body></html>")}, nil).Once()

	service := NewSummaryService(provider, Options{})
	service.now = func() time.Time { return time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC) }

	refs, err := service.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, refs)
}

func TestSummaryService_SummaryRejectsBadDate(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	_, err := NewSummaryService(provider, Options{}).Summary(context.Background(), "Feb 15")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unexpected error got=%v want=%v", err, ErrInvalidInput)
	}
	provider.AssertNotCalled(t, "FetchResults", mock.Anything, mock.Anything)
}

func TestSummaryService_LiveScores(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchLiveScores", mock.Anything).
		Return(fixturePayload(t, rawdata.EntityFeed, "livescores", "livescores.xml"), nil).Once()

	scores, err := NewSummaryService(provider, Options{}).LiveScores(context.Background())
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, int64(1478914), scores[0].MatchID)
}

func TestSummaryService_LiveScoresErrors(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchLiveScores", mock.Anything).
		Return(nil, fmt.Errorf("feed: %w", ErrDependencyUnavailable)).Once()
	_, err := NewSummaryService(provider, Options{}).LiveScores(context.Background())
	assert.ErrorIs(t, err, ErrDependencyUnavailable)

	broken := newProviderMock(t)
	broken.On("FetchLiveScores", mock.Anything).
		Return(rawdata.Payload{Body: []byte("<rss><channel>")}, nil).Once()
	_, err = NewSummaryService(broken, Options{}).LiveScores(context.Background())
	assert.ErrorIs(t, err, normalize.ErrStructure)
}
