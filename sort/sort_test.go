package sort

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRandomSlice(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func TestInts(t *testing.T) {
	for _, size := range []int{0, 1, 10, qsortGrainSize - 1, qsortGrainSize, 100 * 0x600} {
		orgSlice := makeRandomSlice(size, 4*size+1)
		s1 := make([]int, len(orgSlice))
		s2 := make([]int, len(orgSlice))
		copy(s1, orgSlice)
		copy(s2, orgSlice)

		sort.Ints(s1)
		Ints(s2)
		if !reflect.DeepEqual(s1, s2) {
			t.Errorf("Parallel sort incorrect for size %d.", size)
		}
		assert.True(t, IntsAreSorted(s2))
	}
}

func TestIntsFewDistinctValues(t *testing.T) {
	s := makeRandomSlice(50*qsortGrainSize, 3)
	Ints(s)
	assert.True(t, sort.IntsAreSorted(s))
}

func TestIntsAreSorted(t *testing.T) {
	s := make([]int, 10*qsortGrainSize)
	for i := range s {
		s[i] = i
	}
	assert.True(t, IntsAreSorted(s))
	s[len(s)/2], s[len(s)/2+1] = s[len(s)/2+1], s[len(s)/2]
	assert.False(t, IntsAreSorted(s))
	assert.False(t, IntsAreSorted([]int{2, 1}))
	assert.True(t, IntsAreSorted(nil))
}

func BenchmarkSort(b *testing.B) {
	orgSlice := makeRandomSlice(100*0x6000, 100*100*0x6000)
	s1 := make([]int, len(orgSlice))
	s2 := make([]int, len(orgSlice))

	b.Run("SequentialSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s1, orgSlice)
			b.StartTimer()
			sort.Ints(s1)
		}
	})

	b.Run("ParallelSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s2, orgSlice)
			b.StartTimer()
			Ints(s2)
		}
	})
}
