package worker_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cjaradhye/quirkventory/internal/core/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPool_Submit(t *testing.T) {
	pool := worker.NewPool(2, 4, zap.NewNop())
	defer pool.Stop()

	okResult := pool.Submit(func() error { return nil })

	taskErr := errors.New("boom")
	errResult := pool.Submit(func() error { return taskErr })

	assert.NoError(t, okResult.Wait())
	assert.ErrorIs(t, errResult.Wait(), taskErr)
}

func TestPool_WaitIsIdempotent(t *testing.T) {
	pool := worker.NewPool(1, 1, zap.NewNop())
	defer pool.Stop()

	result := pool.Submit(func() error { return nil })
	require.NoError(t, result.Wait())
	require.NoError(t, result.Wait())

	select {
	case <-result.Done():
	default:
		t.Fatal("Done must stay closed after completion")
	}
}

func TestPool_BoundedConcurrency(t *testing.T) {
	const workers = 3
	const tasks = 20

	pool := worker.NewPool(workers, tasks, zap.NewNop())
	defer pool.Stop()

	var inFlight, peak int64
	var mu sync.Mutex

	results := make([]*worker.Result, 0, tasks)
	for i := 0; i < tasks; i++ {
		results = append(results, pool.Submit(func() error {
			current := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if current > peak {
				peak = current
			}
			mu.Unlock()
			defer atomic.AddInt64(&inFlight, -1)
			return nil
		}))
	}

	for _, result := range results {
		require.NoError(t, result.Wait())
	}

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(workers))
	assert.Greater(t, peak, int64(0))
}

func TestPool_RecoversPanic(t *testing.T) {
	pool := worker.NewPool(1, 1, zap.NewNop())
	defer pool.Stop()

	panicked := pool.Submit(func() error { panic("kaboom") })

	err := panicked.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task panic")
	assert.Contains(t, err.Error(), "kaboom")

	// the worker survives the panic and keeps serving
	assert.NoError(t, pool.Submit(func() error { return nil }).Wait())
}

func TestPool_StopWaitsForQueuedTasks(t *testing.T) {
	pool := worker.NewPool(2, 8, zap.NewNop())

	var done int64
	for i := 0; i < 8; i++ {
		pool.Submit(func() error {
			atomic.AddInt64(&done, 1)
			return nil
		})
	}

	pool.Stop()
	assert.Equal(t, int64(8), atomic.LoadInt64(&done))
}

func TestPool_DefaultSizes(t *testing.T) {
	pool := worker.NewPool(0, 0, zap.NewNop())
	defer pool.Stop()

	assert.NoError(t, pool.Submit(func() error { return nil }).Wait())
}
