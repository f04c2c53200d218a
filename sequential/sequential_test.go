package sequential_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
	"github.com/exascience/forkjoin/sequential"
)

func TestReduceMatchesParallel(t *testing.T) {
	f := func(_ int, r partition.Range) (int64, error) {
		var sum int64
		for i := r.Low; i < r.High; i++ {
			sum += int64(i)
		}
		return sum, nil
	}
	opts := []parallel.Option{parallel.WithWorkers(5), parallel.WithMinChunk(1)}
	seq, seqReport := sequential.Reduce(1000, f, opts...)
	par, parReport := parallel.Reduce(1000, f, opts...)
	assert.EqualValues(t, 999*1000/2, seq)
	assert.Equal(t, par, seq)
	assert.Equal(t, parReport.Workers, seqReport.Workers)
}

func TestCollectInWorkerOrder(t *testing.T) {
	results, report := sequential.Collect(10, func(worker int, r partition.Range, emit func(int)) error {
		for i := r.Low; i < r.High; i++ {
			emit(i)
		}
		if worker == 1 {
			return errors.New("worker 1 failed after emitting")
		}
		return nil
	}, parallel.WithWorkers(3), parallel.WithMinChunk(1))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, results)
	assert.Equal(t, forkjoin.CompletedWithFaults, report.Status())
	require.Len(t, report.Faults(), 1)
	assert.Equal(t, 1, report.Faults()[0].Worker)
}
