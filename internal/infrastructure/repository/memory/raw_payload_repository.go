package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/cricinfo/internal/domain/rawdata"
)

// RawPayloadRepository keeps archived payloads in process memory.
type RawPayloadRepository struct {
	mu    sync.RWMutex
	items map[string]rawdata.Payload
}

func NewRawPayloadRepository() *RawPayloadRepository {
	return &RawPayloadRepository{items: make(map[string]rawdata.Payload)}
}

func (r *RawPayloadRepository) UpsertMany(_ context.Context, items []rawdata.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		key := payloadKey(item.Source, item.EntityType, item.EntityKey)
		if prev, ok := r.items[key]; ok && prev.Hash() == item.Hash() {
			continue
		}
		r.items[key] = clonePayload(item)
	}
	return nil
}

func (r *RawPayloadRepository) Get(_ context.Context, source, entityType, entityKey string) (rawdata.Payload, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[payloadKey(source, entityType, entityKey)]
	if !ok {
		return rawdata.Payload{}, false, nil
	}
	return clonePayload(item), true, nil
}

// List returns every archived payload ordered by entity type then key.
func (r *RawPayloadRepository) List() []rawdata.Payload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]rawdata.Payload, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, clonePayload(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EntityType != out[j].EntityType {
			return out[i].EntityType < out[j].EntityType
		}
		return out[i].EntityKey < out[j].EntityKey
	})
	return out
}

func (r *RawPayloadRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func payloadKey(source, entityType, entityKey string) string {
	return source + "::" + entityType + "::" + entityKey
}

func clonePayload(p rawdata.Payload) rawdata.Payload {
	copied := p
	copied.Body = append([]byte(nil), p.Body...)
	return copied
}
