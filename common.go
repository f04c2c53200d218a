package forkjoin

import (
	"errors"
	"fmt"
)

// Status summarizes how a parallel invocation terminated.
type Status int

const (
	// Completed means every worker ran to completion without a fault.
	Completed Status = iota

	// CompletedWithFaults means all workers were joined, but at least one
	// of them stopped early because of a fault.
	CompletedWithFaults
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case CompletedWithFaults:
		return "completed with faults"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ErrInvalidArgument is returned, before any worker is spawned, when an
// invocation has no work to do: zero samples, an empty pattern, or a range
// in which no result is possible.
var ErrInvalidArgument = errors.New("invalid argument")

// A WorkerFault records that a single worker stopped early. Sibling workers
// are not affected, and results the worker produced before the fault are
// kept.
type WorkerFault struct {
	Worker int
	Low    int
	High   int
	Err    error
}

func (f *WorkerFault) Error() string {
	return fmt.Sprintf("worker %d [%d:%d) faulted: %v", f.Worker, f.Low, f.High, f.Err)
}

func (f *WorkerFault) Unwrap() error {
	return f.Err
}

// A JoinFault records a panic that escaped a guarded unit of work and was
// only caught while joining it. Join faults are logged, never re-raised.
type JoinFault struct {
	Worker int
	Value  interface{}
}

func (f *JoinFault) Error() string {
	return fmt.Sprintf("join of worker %d failed: %v", f.Worker, f.Value)
}
