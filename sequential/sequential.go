// Package sequential provides sequential implementations of the engines
// provided by the parallel package. This is useful for testing and
// debugging, and as a baseline for timing reports.
//
// The range is partitioned exactly as package parallel would partition it,
// and each worker's range function is invoked in worker order on the
// calling goroutine. Faults are recorded with the same policy.
package sequential

import (
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
)

// Reduce receives a range size n and a range reducer f, divides [0, n)
// into batches, and invokes f for each batch sequentially, summing the
// results of the invocations that did not fault.
//
// Reduce panics if n < 0.
func Reduce(
	n int,
	f func(worker int, r partition.Range) (int64, error),
	opts ...parallel.Option,
) (total int64, report parallel.Report) {
	plan := parallel.NewPlan(n, opts...)
	report.Workers = plan.Workers
	report.Outcomes = make([]parallel.Outcome, plan.Workers)
	for i, r := range plan.Ranges {
		fault := parallel.RunWorker(i, r, func() error {
			count, err := f(i, r)
			if err != nil {
				return err
			}
			total += count
			return nil
		})
		report.Outcomes[i] = parallel.Outcome{Worker: i, Range: r, Fault: fault}
	}
	return
}

// Collect receives a range size n and a range function f, divides [0, n)
// into batches, and invokes f for each batch sequentially. Results are
// returned in the order in which they were emitted.
//
// Collect panics if n < 0.
func Collect[T any](
	n int,
	f func(worker int, r partition.Range, emit func(T)) error,
	opts ...parallel.Option,
) (results []T, report parallel.Report) {
	plan := parallel.NewPlan(n, opts...)
	emit := func(v T) {
		results = append(results, v)
	}
	report.Workers = plan.Workers
	report.Outcomes = make([]parallel.Outcome, plan.Workers)
	for i, r := range plan.Ranges {
		fault := parallel.RunWorker(i, r, func() error {
			return f(i, r, emit)
		})
		report.Outcomes[i] = parallel.Outcome{Worker: i, Range: r, Fault: fault}
	}
	return
}
