package sort

import (
	"sort"

	"github.com/exascience/forkjoin/parallel"
)

const qsortGrainSize = 0x500

/*
A Sorter is a collection that can be sorted by Sort in this package.
The methods require that (ranges of) elements of the collection can be
enumerated by integer indices.
*/
type Sorter interface {
	SequentialSorter
	sort.Interface
}

func medianOfThree(data sort.Interface, l, m, r int) int {
	if data.Less(l, m) {
		if data.Less(m, r) {
			return m
		} else if data.Less(l, r) {
			return r
		}
	} else if data.Less(r, m) {
		return m
	} else if data.Less(r, l) {
		return r
	}
	return l
}

func pseudoMedianOfNine(data sort.Interface, low, high int) int {
	step := (high - low) / 8
	return medianOfThree(data,
		medianOfThree(data, low, low+step, low+step*2),
		medianOfThree(data, low+step*3, low+step*4, low+step*5),
		medianOfThree(data, low+step*6, low+step*7, high-1),
	)
}

// split moves the pivot to data[low], partitions [low, high) around it,
// and returns the final position of the pivot. Elements before the
// returned index are not greater than the pivot, elements after it are not
// less.
func split(data sort.Interface, low, high int) int {
	if m := pseudoMedianOfNine(data, low, high); m > low {
		data.Swap(low, m)
	}
	i, j := low, high
	for {
		for j--; data.Less(low, j); j-- {
		}
		for i < j {
			i++
			if !data.Less(i, low) {
				break
			}
		}
		if i >= j {
			break
		}
		data.Swap(i, j)
	}
	data.Swap(j, low)
	return j
}

/*
Sort uses a parallel quicksort implementation. Ranges smaller than the
grain size are sorted sequentially; larger ones are split around a
pseudo-median of nine, and both sides are sorted in parallel.
*/
func Sort(data Sorter) {
	size := data.Len()
	if size < qsortGrainSize {
		data.SequentialSort(0, size)
		return
	}
	var pSort func(low, high int)
	pSort = func(low, high int) {
		if high-low < qsortGrainSize {
			data.SequentialSort(low, high)
			return
		}
		mid := split(data, low, high)
		parallel.Do(
			func() { pSort(low, mid) },
			func() { pSort(mid+1, high) },
		)
	}
	if !IsSorted(data) {
		pSort(0, size)
	}
}
