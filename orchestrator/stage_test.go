package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Sequential(t *testing.T) {
	t.Run("should process all inputs in order", func(t *testing.T) {
		var order []int
		stage := Stage[int, string]{
			Name:        "double",
			Concurrency: 1,
			Process: func(_ context.Context, n int) (string, error) {
				order = append(order, n)
				return fmt.Sprintf("v%d", n*2), nil
			},
		}

		results := Run(context.Background(), stage, []int{1, 2, 3})

		require.Len(t, results, 3)
		assert.Equal(t, []int{1, 2, 3}, order)
		assert.Equal(t, "v2", results[0].Value)
		assert.Equal(t, "v6", results[2].Value)
		assert.Equal(t, 2, results[2].Index)
	})

	t.Run("should isolate failures per input", func(t *testing.T) {
		stage := Stage[int, int]{
			Name:        "odd-fails",
			Concurrency: 1,
			Process: func(_ context.Context, n int) (int, error) {
				if n%2 == 1 {
					return 0, errors.New("odd input")
				}
				return n, nil
			},
		}

		results := Run(context.Background(), stage, []int{1, 2, 3, 4})

		require.Len(t, results, 4)
		assert.Error(t, results[0].Err)
		assert.NoError(t, results[1].Err)
		assert.Error(t, results[2].Err)
		assert.Equal(t, 4, results[3].Value)
	})

	t.Run("should return nil for no inputs", func(t *testing.T) {
		stage := Stage[int, int]{Name: "noop", Process: func(_ context.Context, n int) (int, error) { return n, nil }}
		assert.Nil(t, Run(context.Background(), stage, nil))
	})

	t.Run("should treat non-positive concurrency as sequential", func(t *testing.T) {
		stage := Stage[int, int]{
			Name:        "identity",
			Concurrency: 0,
			Process:     func(_ context.Context, n int) (int, error) { return n, nil },
		}

		results := Run(context.Background(), stage, []int{7, 8})
		require.Len(t, results, 2)
		assert.Equal(t, 7, results[0].Value)
		assert.Equal(t, 8, results[1].Value)
	})
}

func TestRun_Concurrent(t *testing.T) {
	t.Run("should preserve input order in the results", func(t *testing.T) {
		stage := Stage[int, int]{
			Name:        "identity",
			Concurrency: 4,
			Process:     func(_ context.Context, n int) (int, error) { return n, nil },
		}

		inputs := make([]int, 50)
		for i := range inputs {
			inputs[i] = i
		}

		results := Run(context.Background(), stage, inputs)

		require.Len(t, results, 50)
		for i, r := range results {
			assert.Equal(t, i, r.Value)
			assert.Equal(t, i, r.Index)
		}
	})

	t.Run("should never exceed the concurrency bound", func(t *testing.T) {
		var mu sync.Mutex
		var active, peak int

		stage := Stage[int, int]{
			Name:        "track-active",
			Concurrency: 3,
			Process: func(_ context.Context, n int) (int, error) {
				mu.Lock()
				active++
				if active > peak {
					peak = active
				}
				mu.Unlock()

				mu.Lock()
				active--
				mu.Unlock()
				return n, nil
			},
		}

		Run(context.Background(), stage, make([]int, 30))

		assert.LessOrEqual(t, peak, 3)
	})

	t.Run("should record a cancelled context as the result error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		stage := Stage[int, int]{
			Name:        "identity",
			Concurrency: 1,
			Process:     func(_ context.Context, n int) (int, error) { return n, nil },
		}

		results := Run(ctx, stage, []int{1, 2})

		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, context.Canceled)
		assert.ErrorIs(t, results[1].Err, context.Canceled)
	})
}
