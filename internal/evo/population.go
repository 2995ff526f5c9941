package evo

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"gaci/internal/model"
)

// EvaluatePopulation scores every individual with at most workers goroutines.
// The result is index-aligned with population. The first failing individual
// cancels the remaining work.
func EvaluatePopulation(ctx context.Context, evaluator *Evaluator, population []model.Individual, workers int) ([]float64, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("nil evaluator")
	}
	if len(population) == 0 {
		return nil, ErrEmptyCollection
	}
	if workers <= 0 {
		workers = 1
	}

	fitness := make([]float64, len(population))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError().WithMaxGoroutines(workers)
	for i, ind := range population {
		i, ind := i, ind
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, err := evaluator.Evaluate(ind)
			if err != nil {
				return fmt.Errorf("individual %d: %w", i, err)
			}
			fitness[i] = score
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return fitness, nil
}

// Best returns the index of the lowest fitness, preferring the earliest on
// ties.
func Best(fitness []float64) (int, error) {
	if len(fitness) == 0 {
		return 0, ErrEmptyCollection
	}
	best := 0
	for i := 1; i < len(fitness); i++ {
		if fitness[i] < fitness[best] {
			best = i
		}
	}
	return best, nil
}
