// Package forkjoin provides a small fork/join engine for embarrassingly
// parallel workloads over a linear index range, together with two
// applications of it: a Monte Carlo estimator for π and a pattern search
// that locates every occurrence of a pattern inside a large sequence.
//
// Forkjoin provides the following subpackages:
//
// forkjoin/partition provides the worker-count policy and the partitioner
// that splits a half-open range [0, n) into contiguous, non-overlapping
// subranges, with the remainder assigned to the last worker.
//
// forkjoin/guard provides a lifecycle guard that makes "spawn n workers,
// always converge" safe on every exit path.
//
// forkjoin/parallel provides the two engines: Reduce, which combines
// per-worker counts through a single atomic counter, and Collect, which
// gathers per-worker results into one lock-protected collection.
//
// forkjoin/sequential provides sequential implementations of the engines,
// for testing and debugging purposes.
//
// forkjoin/montecarlo and forkjoin/search are the two workloads built on the
// engines. forkjoin/sequence generates random test sequences, and
// forkjoin/sort sorts match offsets in parallel.
//
// All engines follow the same shape: partition, spawn all but the last
// worker, run the last partition on the calling goroutine, join, and only
// then read the shared result. Workers are statically partitioned, run to
// completion and are never cancelled.
package forkjoin
