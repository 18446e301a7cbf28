package orchestrator

import (
	"context"
	"sync"
)

// Result wraps one input's output with its error. Index is the position of
// the input that produced it.
type Result[Out any] struct {
	Value Out
	Err   error
	Index int
}

// Stage is a processing step applied to every input with bounded concurrency.
// Concurrency 1 degenerates to a plain sequential loop.
type Stage[In, Out any] struct {
	Name        string
	Concurrency int
	Process     func(ctx context.Context, input In) (Out, error)
}

// Run executes the stage over all inputs. Results come back in input order
// regardless of concurrency, and one input's failure never affects another's
// result.
func Run[In, Out any](ctx context.Context, stage Stage[In, Out], inputs []In) []Result[Out] {
	if len(inputs) == 0 {
		return nil
	}

	concurrency := stage.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(inputs) {
		concurrency = len(inputs)
	}

	results := make([]Result[Out], len(inputs))

	if concurrency == 1 {
		for i, input := range inputs {
			if ctx.Err() != nil {
				results[i] = Result[Out]{Err: ctx.Err(), Index: i}
				continue
			}

			out, err := stage.Process(ctx, input)
			results[i] = Result[Out]{Value: out, Err: err, Index: i}
		}

		return results
	}

	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)

		go func(idx int, in In) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[Out]{Err: ctx.Err(), Index: idx}
				return
			}

			if ctx.Err() != nil {
				results[idx] = Result[Out]{Err: ctx.Err(), Index: idx}
				return
			}

			out, err := stage.Process(ctx, in)
			results[idx] = Result[Out]{Value: out, Err: err, Index: idx}
		}(i, input)
	}

	wg.Wait()

	return results
}
