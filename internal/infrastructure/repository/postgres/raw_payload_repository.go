package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

const upsertRawPayloadQuery = `INSERT INTO raw_payloads (
    source, entity_type, entity_key, shape, url, payload, payload_hash, fetched_at
) VALUES (
    :source, :entity_type, :entity_key, :shape, :url, :payload, :payload_hash, :fetched_at
)
ON CONFLICT (source, entity_type, entity_key)
DO UPDATE SET
    shape = EXCLUDED.shape,
    url = EXCLUDED.url,
    payload = EXCLUDED.payload,
    payload_hash = EXCLUDED.payload_hash,
    fetched_at = EXCLUDED.fetched_at,
    archived_at = NOW()
WHERE raw_payloads.payload_hash IS DISTINCT FROM EXCLUDED.payload_hash`

const getRawPayloadQuery = `SELECT source, entity_type, entity_key, shape, url, payload, payload_hash, fetched_at
FROM raw_payloads
WHERE source = $1 AND entity_type = $2 AND entity_key = $3`

// RawPayloadRepository archives upstream bodies. A payload whose hash did
// not change keeps its original row untouched.
type RawPayloadRepository struct {
	db *sqlx.DB
}

func NewRawPayloadRepository(db *sqlx.DB) *RawPayloadRepository {
	return &RawPayloadRepository{db: db}
}

func (r *RawPayloadRepository) UpsertMany(ctx context.Context, items []rawdata.Payload) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert raw payloads: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareNamedContext(ctx, upsertRawPayloadQuery)
	if err != nil {
		return fmt.Errorf("prepare upsert raw payload: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, rowFromPayload(item)); err != nil {
			return fmt.Errorf("upsert raw payload entity=%s key=%s: %w", item.EntityType, item.EntityKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert raw payloads tx: %w", err)
	}
	return nil
}

func (r *RawPayloadRepository) Get(ctx context.Context, source, entityType, entityKey string) (rawdata.Payload, bool, error) {
	var row rawPayloadRow
	err := r.db.GetContext(ctx, &row, getRawPayloadQuery, source, entityType, entityKey)
	if isNotFound(err) {
		return rawdata.Payload{}, false, nil
	}
	if err != nil {
		return rawdata.Payload{}, false, fmt.Errorf("get raw payload entity=%s key=%s: %w", entityType, entityKey, err)
	}
	return row.toPayload(), true, nil
}

type rawPayloadRow struct {
	Source      string         `db:"source"`
	EntityType  string         `db:"entity_type"`
	EntityKey   string         `db:"entity_key"`
	Shape       string         `db:"shape"`
	URL         sql.NullString `db:"url"`
	Payload     []byte         `db:"payload"`
	PayloadHash string         `db:"payload_hash"`
	FetchedAt   time.Time      `db:"fetched_at"`
}

func rowFromPayload(p rawdata.Payload) rawPayloadRow {
	fetchedAt := p.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}
	return rawPayloadRow{
		Source:      p.Source,
		EntityType:  p.EntityType,
		EntityKey:   p.EntityKey,
		Shape:       string(p.Shape),
		URL:         sql.NullString{String: p.URL, Valid: p.URL != ""},
		Payload:     p.Body,
		PayloadHash: p.Hash(),
		FetchedAt:   fetchedAt.UTC(),
	}
}

func (r rawPayloadRow) toPayload() rawdata.Payload {
	return rawdata.Payload{
		Source:     r.Source,
		Shape:      rawdata.SourceShape(r.Shape),
		EntityType: r.EntityType,
		EntityKey:  r.EntityKey,
		URL:        r.URL.String,
		Body:       r.Payload,
		FetchedAt:  r.FetchedAt,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
