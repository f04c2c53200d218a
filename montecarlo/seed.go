package montecarlo

import (
	"sync"
	"time"
)

// A SeedSource provides the seed for the private generator of each worker.
// Seeds of different workers of the same invocation must differ, otherwise
// the workers draw correlated samples and bias the estimate.
type SeedSource interface {
	Seed(worker int) uint64
}

// SeedFunc adapts an ordinary function to SeedSource.
type SeedFunc func(worker int) uint64

// Seed implements SeedSource.
func (f SeedFunc) Seed(worker int) uint64 {
	return f(worker)
}

// mix is the SplitMix64 finalizer. Consecutive inputs produce unrelated
// outputs.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// TimeSeeds returns a seed source that combines the wall clock with the
// worker index.
func TimeSeeds() SeedSource {
	return SeedFunc(func(worker int) uint64 {
		return mix(uint64(time.Now().UnixNano()) + uint64(worker))
	})
}

// FixedSeeds returns a deterministic seed source derived from base. Two
// invocations with the same base and the same worker count draw exactly the
// same samples.
func FixedSeeds(base uint64) SeedSource {
	return SeedFunc(func(worker int) uint64 {
		return mix(base + uint64(worker))
	})
}

var (
	defaultSeedsMu sync.RWMutex
	defaultSeeds   = TimeSeeds()
)

// DefaultSeeds returns the process-wide seed source used by estimators that
// were not given one explicitly.
func DefaultSeeds() SeedSource {
	defaultSeedsMu.RLock()
	defer defaultSeedsMu.RUnlock()
	return defaultSeeds
}

// SetDefaultSeeds replaces the process-wide seed source and returns the
// previous one. A nil source restores TimeSeeds.
func SetDefaultSeeds(s SeedSource) (previous SeedSource) {
	if s == nil {
		s = TimeSeeds()
	}
	defaultSeedsMu.Lock()
	defer defaultSeedsMu.Unlock()
	previous, defaultSeeds = defaultSeeds, s
	return
}
