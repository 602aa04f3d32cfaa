package parallel_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezoic/ztensor/core/parallel"
)

func coverage(t *testing.T, n int, run func(fn func(start, end int))) {
	t.Helper()
	var mu sync.Mutex
	hits := make([]int, n)
	run(func(start, end int) {
		assert.LessOrEqual(t, 0, start)
		assert.LessOrEqual(t, start, end)
		assert.LessOrEqual(t, end, n)
		mu.Lock()
		defer mu.Unlock()
		for i := start; i < end; i++ {
			hits[i]++
		}
	})
	for i, h := range hits {
		assert.Equal(t, 1, h, "index %d", i)
	}
}

func TestParallelize_CoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 1000, 1001} {
		coverage(t, n, func(fn func(start, end int)) { parallel.Parallelize(n, fn) })
		for _, workers := range []int{1, 3, 16, 5000} {
			coverage(t, n, func(fn func(start, end int)) { parallel.ParallelizeWorkers(n, workers, fn) })
		}
	}
}

func TestParallelizeWithThreshold_Sequential(t *testing.T) {
	var calls int
	parallel.ParallelizeWithThreshold(10, 100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)

	coverage(t, 500, func(fn func(start, end int)) { parallel.ParallelizeWithThreshold(500, 100, fn) })
}

func TestParallelize_Empty(t *testing.T) {
	called := false
	parallel.ParallelizeWithThreshold(0, 10, func(start, end int) { called = true })
	parallel.ParallelizeWorkers(-1, 4, func(start, end int) { called = true })
	assert.False(t, called)
}
