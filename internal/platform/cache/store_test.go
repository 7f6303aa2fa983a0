package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[[]byte](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]byte, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []byte(`{"match":{}}`), nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	var mismatches atomic.Int32

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			body, err := store.GetOrLoad(context.Background(), "GET http://core.test/events/1", loader)
			if err != nil || string(body) != `{"match":{}}` {
				mismatches.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := mismatches.Load(); got != 0 {
		t.Fatalf("unexpected results from %d workers", got)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected loader once, got %d", got)
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("cached entries mismatch: got=%d want=1", got)
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2026, 2, 15, 8, 40, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "match:1478914:page", "v1")
	if got, ok := store.Get(context.Background(), "match:1478914:page"); !ok || got != "v1" {
		t.Fatalf("expected cached value, got=%q ok=%v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "match:1478914:page"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	ctx := context.Background()
	store.Set(ctx, "match:1:details:1", 1)
	store.Set(ctx, "match:1:details:2", 2)
	store.Set(ctx, "match:2:details:1", 3)

	store.DeletePrefix(ctx, "match:1:")
	if got := store.Len(); got != 1 {
		t.Fatalf("entries after prefix delete: got=%d want=1", got)
	}
}

func TestStore_DisabledAlwaysLoadsAndSkipsErrors(t *testing.T) {
	t.Parallel()

	disabled := NewStore[string](0)
	var calls int
	loader := func(context.Context) (string, error) {
		calls++
		return "fresh", nil
	}
	for i := 0; i < 3; i++ {
		if _, err := disabled.GetOrLoad(context.Background(), "k", loader); err != nil {
			t.Fatalf("load: %v", err)
		}
	}
	if calls != 3 {
		t.Fatalf("disabled store should not cache: calls=%d", calls)
	}

	store := NewStore[string](time.Minute)
	boom := errors.New("upstream 503")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("failed loads must not be cached")
	}
}
