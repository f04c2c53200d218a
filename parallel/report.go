package parallel

import (
	"errors"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/partition"
)

// An Outcome is the result of one worker, collected at join time.
type Outcome struct {
	Worker int
	Range  partition.Range

	// Fault is nil if the worker ran to completion.
	Fault *forkjoin.WorkerFault
}

// A Report describes how an invocation of Reduce or Collect terminated.
type Report struct {
	// Workers is the effective number of workers.
	Workers int

	// Outcomes holds one entry per worker, indexed by worker.
	Outcomes []Outcome

	// JoinFaults is the number of faults observed while joining workers.
	JoinFaults int
}

// Spawned returns the number of workers that ran on their own goroutine.
func (r Report) Spawned() int {
	if r.Workers == 0 {
		return 0
	}
	return r.Workers - 1
}

// Faults returns the worker faults in worker order.
func (r Report) Faults() (faults []*forkjoin.WorkerFault) {
	for _, o := range r.Outcomes {
		if o.Fault != nil {
			faults = append(faults, o.Fault)
		}
	}
	return
}

// Status returns forkjoin.CompletedWithFaults if any worker or join fault
// was recorded, and forkjoin.Completed otherwise.
func (r Report) Status() forkjoin.Status {
	if r.JoinFaults > 0 || len(r.Faults()) > 0 {
		return forkjoin.CompletedWithFaults
	}
	return forkjoin.Completed
}

// Err joins all worker faults into a single error, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, f := range r.Faults() {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}
