package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

func TestProfileService_GroundMergesPage(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchGround", mock.Anything, int64(56490)).
		Return(fixturePayload(t, rawdata.EntityGround, "56490", "venue_56490.json"), nil).Once()
	provider.On("FetchGroundPage", mock.Anything, int64(56490)).
		Return(fixturePayload(t, rawdata.EntityGround, "56490/page", "ground_56490.html"), nil).Once()

	record, err := NewProfileService(provider, Options{}).Ground(context.Background(), 56490)
	require.NoError(t, err)
	assert.Equal(t, "Adelaide Oval", record.FullName)
	require.NotNil(t, record.Established)
	assert.Equal(t, "1871", *record.Established)
}

func TestProfileService_GroundPageFailureDegrades(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchGround", mock.Anything, int64(56490)).
		Return(fixturePayload(t, rawdata.EntityGround, "56490", "venue_56490.json"), nil).Once()
	provider.On("FetchGroundPage", mock.Anything, int64(56490)).
		Return(nil, fmt.Errorf("page: %w", ErrDependencyUnavailable)).Once()

	record, err := NewProfileService(provider, Options{}).Ground(context.Background(), 56490)
	require.NoError(t, err)
	assert.Equal(t, "Adelaide Oval", record.FullName)
	assert.Nil(t, record.Established)
}

func TestProfileService_GroundNotFound(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchGround", mock.Anything, int64(7)).
		Return(nil, fmt.Errorf("ground 7: %w", ErrNotFound)).Once()

	_, err := NewProfileService(provider, Options{}).Ground(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error got=%v want=%v", err, ErrNotFound)
	}
	provider.AssertNotCalled(t, "FetchGroundPage", mock.Anything, mock.Anything)
}

func TestProfileService_PlayerMergesPage(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchPlayer", mock.Anything, int64(597806)).
		Return(fixturePayload(t, rawdata.EntityPlayer, "597806", "athlete_597806.json"), nil).Once()
	provider.On("FetchPlayerPage", mock.Anything, int64(597806)).
		Return(fixturePayload(t, rawdata.EntityPlayer, "597806/page", "player_597806.html"), nil).Once()

	record, err := NewProfileService(provider, Options{}).Player(context.Background(), 597806)
	require.NoError(t, err)
	assert.Equal(t, "Smriti Mandhana", record.Name)
	assert.Len(t, record.MajorTeams, 3)
	assert.Len(t, record.Debuts, 3)
	require.NotNil(t, record.Position, "JSON-only field survives the merge")
}

func TestProfileService_PlayerPageMissing(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchPlayer", mock.Anything, int64(597806)).
		Return(fixturePayload(t, rawdata.EntityPlayer, "597806", "athlete_597806.json"), nil).Once()
	provider.On("FetchPlayerPage", mock.Anything, int64(597806)).
		Return(nil, fmt.Errorf("page: %w", ErrNotFound)).Once()

	record, err := NewProfileService(provider, Options{}).Player(context.Background(), 597806)
	require.NoError(t, err)
	assert.Empty(t, record.MajorTeams)
	assert.Empty(t, record.BattingFieldingAverages)
}

func TestProfileService_Team(t *testing.T) {
	t.Parallel()

	provider := newProviderMock(t)
	provider.On("FetchTeam", mock.Anything, int64(8081), int64(960)).
		Return(fixturePayload(t, rawdata.EntityTeam, "8081/960", "team_960.json"), nil).Once()

	record, err := NewProfileService(provider, Options{}).Team(context.Background(), 8081, 960)
	require.NoError(t, err)
	assert.Equal(t, "IND-W", record.Abbreviation)
	assert.Equal(t, int64(8081), record.LeagueID)

	_, err = NewProfileService(provider, Options{}).Team(context.Background(), 0, 960)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
