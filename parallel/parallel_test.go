package parallel_test

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
)

func ExampleReduce() {
	numDivisors := func(n int) int64 {
		count, _ := parallel.Reduce(
			n, func(_ int, r partition.Range) (int64, error) {
				var sum int64
				for i := r.Low; i < r.High; i++ {
					if n%(i+1) == 0 {
						sum++
					}
				}
				return sum, nil
			},
			parallel.WithWorkers(4), parallel.WithMinChunk(1),
		)
		return count
	}

	fmt.Println(numDivisors(12))

	// Output:
	// 6
}

func ExampleCollect() {
	findPrimes := func(n int) []int {
		primes, _ := parallel.Collect(
			n, func(_ int, r partition.Range, emit func(int)) error {
			outer:
				for i := r.Low; i < r.High; i++ {
					if i < 2 {
						continue
					}
					for d := 2; d*d <= i; d++ {
						if i%d == 0 {
							continue outer
						}
					}
					emit(i)
				}
				return nil
			},
			parallel.WithWorkers(3), parallel.WithMinChunk(1),
		)
		sort.Ints(primes)
		return primes
	}

	fmt.Println(findPrimes(20))

	// Output:
	// [2 3 5 7 11 13 17 19]
}

func TestNewPlan(t *testing.T) {
	plan := parallel.NewPlan(1000, parallel.WithWorkers(8), parallel.WithMinChunk(1))
	assert.Equal(t, 8, plan.Workers)
	require.Len(t, plan.Ranges, 8)
	assert.Equal(t, partition.Range{Low: 875, High: 1000}, plan.Ranges[7])

	plan = parallel.NewPlan(1000, parallel.WithWorkers(8))
	assert.Equal(t, 3, plan.Workers, "default minimum chunk caps the worker count")

	plan = parallel.NewPlan(0)
	assert.Equal(t, 1, plan.Workers)
	assert.Equal(t, []partition.Range{{}}, plan.Ranges)

	plan = parallel.NewPlan(1<<20, parallel.WithLogger(nil))
	assert.Equal(t, partition.WorkerCount(partition.DefaultHint()), plan.Workers)
	assert.NotNil(t, plan.Logger)

	assert.Panics(t, func() { parallel.WithWorkers(-1) })
}

func TestReduceCountsEveryIndexOnce(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprint(w), func(t *testing.T) {
			const n = 100003
			var calls atomic.Int32
			total, report := parallel.Reduce(n, func(_ int, r partition.Range) (int64, error) {
				calls.Add(1)
				return int64(r.Len()), nil
			}, parallel.WithWorkers(w), parallel.WithMinChunk(1))
			assert.EqualValues(t, n, total)
			assert.EqualValues(t, w, calls.Load())
			assert.Equal(t, w, report.Workers)
			assert.Equal(t, w-1, report.Spawned())
			assert.Equal(t, forkjoin.Completed, report.Status())
			assert.NoError(t, report.Err())
		})
	}
}

func TestReduceRunsLastWorkerInline(t *testing.T) {
	var lastWorker atomic.Int32
	lastWorker.Store(-1)
	_, report := parallel.Reduce(4, func(worker int, r partition.Range) (int64, error) {
		if r.High == 4 {
			lastWorker.Store(int32(worker))
		}
		return 0, nil
	}, parallel.WithWorkers(4), parallel.WithMinChunk(1))
	assert.EqualValues(t, 3, lastWorker.Load())
	assert.Equal(t, 3, report.Spawned())
}

func TestReduceFaultedWorkerContributesNothing(t *testing.T) {
	boom := errors.New("boom")
	total, report := parallel.Reduce(400, func(worker int, r partition.Range) (int64, error) {
		switch worker {
		case 1:
			return 1000, boom
		case 2:
			var s []int
			return int64(s[r.Low]), nil
		}
		return int64(r.Len()), nil
	}, parallel.WithWorkers(4), parallel.WithMinChunk(1))

	assert.EqualValues(t, 200, total)
	assert.Equal(t, forkjoin.CompletedWithFaults, report.Status())
	faults := report.Faults()
	require.Len(t, faults, 2)
	assert.Equal(t, 1, faults[0].Worker)
	assert.ErrorIs(t, faults[0], boom)
	assert.Equal(t, 2, faults[1].Worker)
	assert.Equal(t, 200, faults[1].Low)
	assert.Equal(t, 300, faults[1].High)
	assert.ErrorIs(t, report.Err(), boom)
	assert.Nil(t, report.Outcomes[0].Fault)
	assert.Nil(t, report.Outcomes[3].Fault)
}

func TestCollectKeepsResultsBeforeFault(t *testing.T) {
	results, report := parallel.Collect(40, func(worker int, r partition.Range, emit func(int)) error {
		for i := r.Low; i < r.High; i++ {
			if worker == 0 && i == 5 {
				panic("stop here")
			}
			emit(i)
		}
		return nil
	}, parallel.WithWorkers(4), parallel.WithMinChunk(1))

	sort.Ints(results)
	want := []int{0, 1, 2, 3, 4}
	for i := 10; i < 40; i++ {
		want = append(want, i)
	}
	assert.Equal(t, want, results)
	assert.Equal(t, forkjoin.CompletedWithFaults, report.Status())
	require.Len(t, report.Faults(), 1)
	assert.Contains(t, report.Faults()[0].Error(), "stop here")
}

func TestCollectEmptyRange(t *testing.T) {
	results, report := parallel.Collect(0, func(_ int, r partition.Range, emit func(string)) error {
		assert.Zero(t, r.Len())
		return nil
	})
	assert.Empty(t, results)
	assert.Equal(t, 1, report.Workers)
	assert.Zero(t, report.Spawned())
}

func TestDo(t *testing.T) {
	var n atomic.Int32
	thunks := make([]func(), 7)
	for i := range thunks {
		thunks[i] = func() { n.Add(1) }
	}
	parallel.Do(thunks...)
	assert.EqualValues(t, 7, n.Load())

	assert.NotPanics(t, func() { parallel.Do() })
	assert.PanicsWithValue(t, "left", func() {
		parallel.Do(func() { panic("left") }, func() {}, func() { panic("right") })
	})
}
