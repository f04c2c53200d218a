// Package partition provides the worker-count policy and the partitioner
// shared by the engines in package parallel and package sequential.
package partition

import (
	"fmt"
	"runtime"
)

// MinWorkers is the smallest worker count returned by WorkerCount.
const MinWorkers = 2

// A Range is a half-open interval from Low to High, including Low but
// excluding High, with 0 <= Low <= High.
type Range struct {
	Low, High int
}

// Len returns the number of indices in r.
func (r Range) Len() int {
	return r.High - r.Low
}

func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Low, r.High)
}

// DefaultHint returns the detected hardware parallelism, as seen by the Go
// scheduler.
func DefaultHint() int {
	return runtime.GOMAXPROCS(0)
}

// WorkerCount returns the number of workers to use for a given hint of
// available hardware parallelism. A hint <= 0 means the parallelism is
// unknown. The result is never less than MinWorkers, and otherwise equal to
// the hint.
func WorkerCount(hint int) int {
	if hint < MinWorkers {
		return MinWorkers
	}
	return hint
}

// Effective reduces the worker count w so that each worker receives at least
// minChunk indices of a range of size n. A minChunk <= 0 is treated as 1.
// The result is between 1 and w, and 1 if n == 0.
//
// Effective panics if n < 0 or w < 1.
func Effective(n, w, minChunk int) int {
	switch {
	case n < 0:
		panic(fmt.Sprintf("invalid range size: %v", n))
	case w < 1:
		panic(fmt.Sprintf("invalid number of workers: %v", w))
	}
	if minChunk <= 0 {
		minChunk = 1
	}
	if limit := n / minChunk; w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Split divides the range [0, n) into w contiguous, non-overlapping
// subranges. The first w-1 subranges have size n/w, and the last one also
// receives the remainder n%w. The subranges cover [0, n) exactly once.
//
// Split panics if n < 0 or w < 1.
func Split(n, w int) []Range {
	switch {
	case n < 0:
		panic(fmt.Sprintf("invalid range size: %v", n))
	case w < 1:
		panic(fmt.Sprintf("invalid number of workers: %v", w))
	}
	size := n / w
	ranges := make([]Range, w)
	low := 0
	for i := 0; i < w-1; i++ {
		ranges[i] = Range{low, low + size}
		low += size
	}
	ranges[w-1] = Range{low, n}
	return ranges
}
