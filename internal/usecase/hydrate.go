package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

// Both hydrators share one policy: results keep input order, the first
// unit error cancels the rest, and no partial list is returned.

// hydrateContext runs units on a conc context pool.
func hydrateContext[In, Out any](
	ctx context.Context,
	logger *logging.Logger,
	workers int,
	items []In,
	label func(In) string,
	unit func(context.Context, In) (Out, error),
) ([]Out, error) {
	if len(items) == 0 {
		return []Out{}, nil
	}

	out := make([]Out, len(items))
	p := pool.New().
		WithMaxGoroutines(boundWorkers(workers, len(items))).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()
	for i, item := range items {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			value, err := unit(ctx, item)
			if err != nil {
				logger.WarnContext(ctx, "hydrate unit failed", "unit", label(item), "error", err)
				return fmt.Errorf("%s: %w", label(item), err)
			}
			out[i] = value
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// hydratePool runs units on an ants worker pool.
func hydratePool[In, Out any](
	parent context.Context,
	logger *logging.Logger,
	workers int,
	items []In,
	label func(In) string,
	unit func(context.Context, In) (Out, error),
) ([]Out, error) {
	if len(items) == 0 {
		return []Out{}, nil
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	workerPool, err := ants.NewPool(boundWorkers(workers, len(items)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	out := make([]Out, len(items))
	for i, item := range items {
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			value, err := unit(ctx, item)
			if err != nil {
				logger.WarnContext(ctx, "hydrate unit failed", "unit", label(item), "error", err)
				fail(fmt.Errorf("%s: %w", label(item), err))
				return
			}
			out[i] = value
		}); err != nil {
			wg.Done()
			fail(fmt.Errorf("submit task to worker pool: %w", err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func boundWorkers(workers, items int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > items {
		workers = items
	}
	return workers
}
