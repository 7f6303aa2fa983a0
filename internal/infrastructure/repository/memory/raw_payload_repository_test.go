package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

func TestRawPayloadRepository_UpsertAndGet(t *testing.T) {
	t.Parallel()

	repo := NewRawPayloadRepository()
	ctx := context.Background()
	first := rawdata.Payload{
		Source:     "espncricinfo",
		EntityType: rawdata.EntityMatch,
		EntityKey:  "1478914",
		Body:       []byte(`{"v":1}`),
		FetchedAt:  time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{first}))

	// Same body keeps the first fetch time.
	same := first
	same.FetchedAt = first.FetchedAt.Add(time.Hour)
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{same}))
	got, ok, err := repo.Get(ctx, first.Source, first.EntityType, first.EntityKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.FetchedAt.Equal(first.FetchedAt))

	changed := first
	changed.Body = []byte(`{"v":2}`)
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{changed}))
	got, _, _ = repo.Get(ctx, first.Source, first.EntityType, first.EntityKey)
	assert.Equal(t, changed.Body, got.Body)
	assert.Equal(t, 1, repo.Len())

	_, ok, err = repo.Get(ctx, first.Source, rawdata.EntityGround, first.EntityKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRawPayloadRepository_CopiesBodies(t *testing.T) {
	t.Parallel()

	repo := NewRawPayloadRepository()
	body := []byte("abc")
	require.NoError(t, repo.UpsertMany(context.Background(), []rawdata.Payload{{EntityType: "x", EntityKey: "1", Body: body}}))
	body[0] = 'z'

	got, _, _ := repo.Get(context.Background(), "", "x", "1")
	got.Body[1] = 'z'
	again, _, _ := repo.Get(context.Background(), "", "x", "1")
	assert.Equal(t, []byte("abc"), again.Body)
}

func TestRawPayloadRepository_ListOrderAndConcurrency(t *testing.T) {
	t.Parallel()

	repo := NewRawPayloadRepository()
	var wg sync.WaitGroup
	for _, key := range []string{"3", "1", "2"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			_ = repo.UpsertMany(context.Background(), []rawdata.Payload{
				{EntityType: rawdata.EntityPlayer, EntityKey: key, Body: []byte(key)},
				{EntityType: rawdata.EntityGround, EntityKey: key, Body: []byte(key)},
			})
		}(key)
	}
	wg.Wait()

	items := repo.List()
	require.Len(t, items, 6)
	assert.Equal(t, rawdata.EntityGround, items[0].EntityType)
	assert.Equal(t, "1", items[0].EntityKey)
	assert.Equal(t, rawdata.EntityPlayer, items[5].EntityType)
	assert.Equal(t, "3", items[5].EntityKey)
}
