package rawdata

import "context"

// Repository archives raw payloads keyed by (source, entity type, entity key).
type Repository interface {
	UpsertMany(ctx context.Context, items []Payload) error
	Get(ctx context.Context, source, entityType, entityKey string) (Payload, bool, error)
}
