/*
Package sort provides a parallel sort for the offsets produced by package
search, whose engine makes no ordering promise.
*/
package sort

import (
	"sort"

	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
)

/*
SequentialSorter is a type, typically a collection, that can be
sequentially sorted. This is needed as a base case for the parallel
sorting algorithm in this package.
*/
type SequentialSorter interface {
	// Sort the range that starts at index i and ends at index j. If the
	// collection that is represented by this interface is a slice, then
	// the slice expression collection[i:j] returns the correct slice to
	// be sorted.
	SequentialSort(i, j int)
}

/*
IsSorted determines in parallel whether data is already sorted, by
counting the positions at which an element is less than its
predecessor.
*/
func IsSorted(data sort.Interface) bool {
	size := data.Len()
	if size < qsortGrainSize {
		return sort.IsSorted(data)
	}
	descents, _ := parallel.Reduce(size-1, func(_ int, r partition.Range) (int64, error) {
		var n int64
		for i := r.Low + 1; i <= r.High; i++ {
			if data.Less(i, i-1) {
				n++
			}
		}
		return n, nil
	}, parallel.WithMinChunk(qsortGrainSize))
	return descents == 0
}

/*
IntSlice attaches the methods of sort.Interface, SequentialSorter, and
Sorter to []int, sorting in increasing order.
*/
type IntSlice []int

// SequentialSort implements the method of the SequentialSorter interface.
func (s IntSlice) SequentialSort(i, j int) {
	sort.Ints(s[i:j])
}

func (s IntSlice) Len() int {
	return len(s)
}

func (s IntSlice) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s IntSlice) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Ints sorts a slice of ints in increasing order, in parallel.
func Ints(a []int) {
	Sort(IntSlice(a))
}

/*
IntsAreSorted determines in parallel whether a slice of ints is
already sorted in increasing order.
*/
func IntsAreSorted(a []int) bool {
	return IsSorted(IntSlice(a))
}
