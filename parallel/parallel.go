// Package parallel provides the fork/join engines of this module.
//
// Reduce and Collect receive a range size n and a range function, divide
// the half-open interval [0, n) into one contiguous subrange per worker,
// start all but the last worker on their own goroutine, run the last
// subrange on the calling goroutine, and return only when every worker has
// been joined. Shared results are read only after that join.
//
// Workers never see each other's state. Reduce combines their results
// through a single atomic counter; Collect gathers them into a single
// collection that is only touched while holding one mutex.
//
// A worker that returns an error or panics is stopped and recorded as a
// forkjoin.WorkerFault in the returned Report. Its siblings are not
// affected.
package parallel

import (
	"sync"
	"sync/atomic"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/guard"
	"github.com/exascience/forkjoin/internal"
	"github.com/exascience/forkjoin/partition"
)

// RunWorker invokes f for the given worker and range, and converts a
// returned error or a panic into a forkjoin.WorkerFault. It is exported for
// package sequential, which shares the fault policy of this package.
func RunWorker(worker int, r partition.Range, f func() error) (fault *forkjoin.WorkerFault) {
	defer func() {
		if p := recover(); p != nil {
			fault = &forkjoin.WorkerFault{Worker: worker, Low: r.Low, High: r.High, Err: internal.PanicError(p)}
		}
	}()
	if err := f(); err != nil {
		fault = &forkjoin.WorkerFault{Worker: worker, Low: r.Low, High: r.High, Err: err}
	}
	return
}

// fork runs body for every worker of plan: workers 0..W-2 on goroutines
// owned by a guard, worker W-1 on the calling goroutine. It returns after
// all of them have been joined.
func fork(plan Plan, body func(worker int, r partition.Range) *forkjoin.WorkerFault) Report {
	outcomes := make([]Outcome, plan.Workers)
	logger := plan.Logger
	g := guard.New(logger)
	defer g.Wait()

	run := func(i int) {
		r := plan.Ranges[i]
		fault := body(i, r)
		if fault != nil {
			logger.WithField("worker", i).
				WithField("range", r.String()).
				WithError(fault.Err).
				Warn("worker fault")
		}
		outcomes[i] = Outcome{Worker: i, Range: r, Fault: fault}
	}

	last := plan.Workers - 1
	logger.WithField("workers", plan.Workers).Debug("spawning workers")
	for i := 0; i < last; i++ {
		i := i
		g.Go(i, func() { run(i) })
	}
	run(last)
	g.Wait()
	logger.WithField("workers", plan.Workers).Debug("workers joined")

	return Report{
		Workers:    plan.Workers,
		Outcomes:   outcomes,
		JoinFaults: g.JoinFaults(),
	}
}

// Reduce receives a range size n and a range reducer f, divides [0, n) into
// batches, and invokes f for each batch in parallel. Each invocation
// computes a private count, which is added to a shared atomic counter
// exactly once, after f returns without fault. Since addition is
// commutative and associative, the order in which workers finish does not
// matter.
//
// The counter is read only after all workers have been joined, and returned
// together with a Report. A faulted worker contributes nothing.
//
// Reduce panics if n < 0.
func Reduce(
	n int,
	f func(worker int, r partition.Range) (int64, error),
	opts ...Option,
) (int64, Report) {
	var acc atomic.Int64
	report := fork(NewPlan(n, opts...), func(worker int, r partition.Range) *forkjoin.WorkerFault {
		return RunWorker(worker, r, func() error {
			count, err := f(worker, r)
			if err != nil {
				return err
			}
			acc.Add(count)
			return nil
		})
	})
	return acc.Load(), report
}

// Collect receives a range size n and a range function f, divides [0, n)
// into batches, and invokes f for each batch in parallel. The range
// function reports results by calling emit, which appends to a shared
// collection while holding a mutex. Everything else f does runs without
// locks.
//
// The collection is returned only after all workers have been joined. Its
// order is unspecified; sort it if a particular order is required. Results
// emitted by a worker before it faults are kept.
//
// Collect panics if n < 0.
func Collect[T any](
	n int,
	f func(worker int, r partition.Range, emit func(T)) error,
	opts ...Option,
) ([]T, Report) {
	var (
		mu      sync.Mutex
		results []T
	)
	emit := func(v T) {
		mu.Lock()
		results = append(results, v)
		mu.Unlock()
	}
	report := fork(NewPlan(n, opts...), func(worker int, r partition.Range) *forkjoin.WorkerFault {
		return RunWorker(worker, r, func() error {
			return f(worker, r, emit)
		})
	})
	return results, report
}

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only when all
// thunks have terminated.
//
// If one or more thunks panic, the corresponding goroutines recover the
// panics, and Do eventually panics with the left-most recovered panic
// value.
func Do(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	}
	var p interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	half := len(thunks) / 2
	go func() {
		defer func() {
			p = recover()
			wg.Done()
		}()
		Do(thunks[half:]...)
	}()
	func() {
		defer func() {
			if p0 := recover(); p0 != nil {
				wg.Wait()
				panic(p0)
			}
		}()
		Do(thunks[:half]...)
	}()
	wg.Wait()
	if p != nil {
		panic(p)
	}
}
