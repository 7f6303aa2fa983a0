package postgres

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

func TestRawPayloadRow_RoundTrip(t *testing.T) {
	t.Parallel()

	fetched := time.Date(2026, 2, 15, 9, 30, 0, 0, time.FixedZone("ACDT", 10*3600+1800))
	in := rawdata.Payload{
		Source:     "espncricinfo",
		Shape:      rawdata.ShapeCoreAPIJSON,
		EntityType: rawdata.EntityGround,
		EntityKey:  "56490",
		URL:        "http://core.espnuk.org/v2/sports/cricket/venues/56490",
		Body:       []byte(`{"id":"56490"}`),
		FetchedAt:  fetched,
	}

	row := rowFromPayload(in)
	assert.Equal(t, in.Hash(), row.PayloadHash)
	assert.True(t, row.URL.Valid)
	assert.Equal(t, time.UTC, row.FetchedAt.Location())

	out := row.toPayload()
	assert.True(t, out.FetchedAt.Equal(fetched))
	out.FetchedAt = in.FetchedAt
	assert.Equal(t, in, out)
}

func TestRawPayloadRow_Defaults(t *testing.T) {
	t.Parallel()

	row := rowFromPayload(rawdata.Payload{Source: "espncricinfo", EntityType: rawdata.EntityFeed, EntityKey: "livescores"})
	assert.False(t, row.URL.Valid)
	assert.False(t, row.FetchedAt.IsZero())
	assert.Empty(t, row.Shape)
}

func TestUpsertQueryUsesNamedColumns(t *testing.T) {
	t.Parallel()

	for _, col := range []string{"source", "entity_type", "entity_key", "shape", "url", "payload", "payload_hash", "fetched_at"} {
		if !strings.Contains(upsertRawPayloadQuery, ":"+col) {
			t.Fatalf("upsert query should bind %s", col)
		}
	}
}

// TestRawPayloadRepository_Postgres runs against a live database named by
// CRICINFO_TEST_DB_URL.
func TestRawPayloadRepository_Postgres(t *testing.T) {
	dbURL := strings.TrimSpace(os.Getenv("CRICINFO_TEST_DB_URL"))
	if dbURL == "" {
		t.Skip("CRICINFO_TEST_DB_URL not set")
	}

	m, err := NewMigrator(dbURL, false)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrate up: %v", err)
	}

	ctx := context.Background()
	db, err := Open(ctx, Options{URL: dbURL})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRawPayloadRepository(db)
	key := "test-" + time.Now().UTC().Format("150405.000000000")
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM raw_payloads WHERE entity_key = $1", key)
	})

	first := rawdata.Payload{Source: "espncricinfo", EntityType: rawdata.EntityMatch, EntityKey: key, Body: []byte(`{"v":1}`)}
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{first}))

	second := first
	second.Body = []byte(`{"v":2}`)
	second.Shape = rawdata.ShapeEmbeddedPageJSON
	require.NoError(t, repo.UpsertMany(ctx, []rawdata.Payload{second}))

	got, ok, err := repo.Get(ctx, first.Source, first.EntityType, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.Body, got.Body)
	assert.Equal(t, rawdata.ShapeEmbeddedPageJSON, got.Shape)

	_, ok, err = repo.Get(ctx, first.Source, first.EntityType, key+"-missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
