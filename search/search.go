// Package search locates every occurrence of a pattern inside a sequence.
//
// The candidate start positions are partitioned across workers by
// parallel.Collect; the sequence itself is not partitioned, so a match that
// starts near the end of one worker's range may read into the next one and
// is still reported exactly once, by the worker that owns its start
// position. Overlapping occurrences are all reported.
package search

import (
	"fmt"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
	"github.com/exascience/forkjoin/sequential"
	"github.com/exascience/forkjoin/sort"
)

var (
	// ErrEmptyPattern is returned when searching for an empty pattern.
	ErrEmptyPattern = fmt.Errorf("%w: empty pattern", forkjoin.ErrInvalidArgument)

	// ErrNoPossibleMatch is returned when the pattern is longer than the
	// sequence, so that no start position exists.
	ErrNoPossibleMatch = fmt.Errorf("%w: pattern longer than sequence", forkjoin.ErrInvalidArgument)
)

// A Result holds the absolute, 0-based offsets of all occurrences, in
// unspecified order, together with the engine report.
type Result struct {
	Offsets []int
	Report  parallel.Report
}

// Sorted returns the offsets in increasing order. The receiver is not
// modified.
func (r Result) Sorted() []int {
	offsets := make([]int, len(r.Offsets))
	copy(offsets, r.Offsets)
	sort.Ints(offsets)
	return offsets
}

// extent returns the number of candidate start positions.
func extent(n, m int) (int, error) {
	if m == 0 {
		return 0, ErrEmptyPattern
	}
	if k := n - m + 1; k > 0 {
		return k, nil
	}
	return 0, ErrNoPossibleMatch
}

func matchAt[E comparable](seq, pattern []E, p int) bool {
	for i, e := range pattern {
		if seq[p+i] != e {
			return false
		}
	}
	return true
}

// scanner returns the range function for one worker. It tests every start
// position in its range and emits the absolute offset of each match.
func scanner[E comparable](seq, pattern []E) func(int, partition.Range, func(int)) error {
	return func(_ int, r partition.Range, emit func(int)) error {
		for p := r.Low; p < r.High; p++ {
			if matchAt(seq, pattern, p) {
				emit(p)
			}
		}
		return nil
	}
}

// Search finds all occurrences of pattern in seq in parallel. It returns
// ErrEmptyPattern or ErrNoPossibleMatch, both wrapping
// forkjoin.ErrInvalidArgument, without spawning any worker if no match is
// possible.
//
// A fault in one worker stops that worker only. It is recorded in the
// report; matches found before it are kept.
func Search[E comparable](seq, pattern []E, opts ...parallel.Option) (Result, error) {
	k, err := extent(len(seq), len(pattern))
	if err != nil {
		return Result{}, err
	}
	offsets, report := parallel.Collect(k, scanner(seq, pattern), opts...)
	return Result{Offsets: offsets, Report: report}, nil
}

// SearchSequential is like Search, but scans all partitions one after the
// other on the calling goroutine.
func SearchSequential[E comparable](seq, pattern []E, opts ...parallel.Option) (Result, error) {
	k, err := extent(len(seq), len(pattern))
	if err != nil {
		return Result{}, err
	}
	offsets, report := sequential.Collect(k, scanner(seq, pattern), opts...)
	return Result{Offsets: offsets, Report: report}, nil
}

// FindAll returns the offsets of all occurrences of pattern in seq, in
// unspecified order. It returns an empty result if the pattern is empty,
// longer than the sequence, or not found.
func FindAll[E comparable](seq, pattern []E, opts ...parallel.Option) []int {
	r, err := Search(seq, pattern, opts...)
	if err != nil || r.Offsets == nil {
		return []int{}
	}
	return r.Offsets
}

// FindAllString is FindAll for strings, comparing bytes.
func FindAllString(s, pattern string, opts ...parallel.Option) []int {
	return FindAll([]byte(s), []byte(pattern), opts...)
}

// FindAllSequential is like FindAll, without parallelism.
func FindAllSequential[E comparable](seq, pattern []E, opts ...parallel.Option) []int {
	r, err := SearchSequential(seq, pattern, opts...)
	if err != nil || r.Offsets == nil {
		return []int{}
	}
	return r.Offsets
}
