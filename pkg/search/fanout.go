package search

import (
	"context"

	"github.com/sourcegraph/conc/pool"
)

const maxConcurrentFetches = 100

// fanOut runs task for every input concurrently and keeps results in input order.
// The first failure cancels the remaining tasks and is returned.
func fanOut[In any, Out any](ctx context.Context, inputs []In, task func(ctx context.Context, input In) (Out, error)) ([]Out, error) {
	results := make([]Out, len(inputs))

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(maxConcurrentFetches)

	for i, input := range inputs {
		p.Go(func(ctx context.Context) error {
			result, err := task(ctx, input)
			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func flatten[T any](groups [][]T) []T {
	var flattened []T
	for _, group := range groups {
		flattened = append(flattened, group...)
	}
	return flattened
}
