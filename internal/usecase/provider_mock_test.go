package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/cricinfo/internal/domain/match"
	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
	"github.com/riskibarqy/cricinfo/internal/domain/series"
)

type providerMock struct {
	mock.Mock
}

func newProviderMock(t *testing.T) *providerMock {
	t.Helper()

	m := &providerMock{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *providerMock) payload(args mock.Arguments) (rawdata.Payload, error) {
	var payload rawdata.Payload
	if v := args.Get(0); v != nil {
		payload = v.(rawdata.Payload)
	}
	return payload, args.Error(1)
}

func (m *providerMock) FetchMatch(ctx context.Context, ref match.Ref) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, ref))
}

func (m *providerMock) FetchResults(ctx context.Context, date time.Time) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, date))
}

func (m *providerMock) FetchLiveScores(ctx context.Context) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx))
}

func (m *providerMock) FetchGround(ctx context.Context, groundID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, groundID))
}

func (m *providerMock) FetchGroundPage(ctx context.Context, groundID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, groundID))
}

func (m *providerMock) FetchPlayer(ctx context.Context, playerID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, playerID))
}

func (m *providerMock) FetchPlayerPage(ctx context.Context, playerID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, playerID))
}

func (m *providerMock) FetchSeries(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, seriesID))
}

func (m *providerMock) FetchSeasons(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, seriesID))
}

func (m *providerMock) FetchSeason(ctx context.Context, seriesID int64, year int) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, seriesID, year))
}

func (m *providerMock) FetchEvents(ctx context.Context, seriesID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, seriesID))
}

func (m *providerMock) FetchEvent(ctx context.Context, ref series.EventRef) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, ref))
}

func (m *providerMock) FetchTeam(ctx context.Context, leagueID, teamID int64) (rawdata.Payload, error) {
	return m.payload(m.Called(ctx, leagueID, teamID))
}

type archiveStub struct {
	mu    sync.Mutex
	items []rawdata.Payload
	err   error
}

func (a *archiveStub) UpsertMany(_ context.Context, items []rawdata.Payload) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.items = append(a.items, items...)
	return a.err
}

func (a *archiveStub) Get(_ context.Context, source, entityType, entityKey string) (rawdata.Payload, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.items {
		if item.Source == source && item.EntityType == entityType && item.EntityKey == entityKey {
			return item, true, nil
		}
	}
	return rawdata.Payload{}, false, nil
}

func fixture(t *testing.T, name string) []byte {
	t.Helper()

	body, err := os.ReadFile(filepath.Join("..", "normalize", "testdata", name))
	if err != nil {
		t.Fatalf("read fixture %s: %v", name, err)
	}
	return body
}

func fixturePayload(t *testing.T, entityType, key, name string) rawdata.Payload {
	t.Helper()

	return rawdata.Payload{
		Source:     "espncricinfo",
		EntityType: entityType,
		EntityKey:  key,
		Body:       fixture(t, name),
	}
}
