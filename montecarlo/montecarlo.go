// Package montecarlo estimates π by sampling points in the unit square and
// counting how many fall inside the quarter circle.
//
// The sample count is partitioned across workers by parallel.Reduce. The
// distribution parameters are an immutable value shared by all workers;
// each worker copies it and attaches its own generator, seeded from a
// SeedSource, so no generator state is ever shared.
package montecarlo

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/partition"
	"github.com/exascience/forkjoin/sequential"
)

// InsideUnitCircle reports whether the point (x, y) lies strictly inside
// the unit circle.
func InsideUnitCircle(x, y float64) bool {
	return x*x+y*y < 1
}

// An Estimator estimates π. The zero Estimator is not valid; use New.
type Estimator struct {
	dist  distuv.Uniform
	seeds SeedSource
	opts  []parallel.Option
}

// An Option configures an Estimator.
type Option func(*Estimator)

// WithSeeds sets the seed source. By default, DefaultSeeds() is consulted
// on every estimate.
func WithSeeds(s SeedSource) Option {
	return func(e *Estimator) {
		e.seeds = s
	}
}

// WithEngineOptions passes options, such as the worker count, to the
// underlying engine.
func WithEngineOptions(opts ...parallel.Option) Option {
	return func(e *Estimator) {
		e.opts = append(e.opts, opts...)
	}
}

// New returns an estimator that samples coordinates uniformly from [0, 1).
func New(opts ...Option) *Estimator {
	e := &Estimator{dist: distuv.Uniform{Min: 0, Max: 1}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// A Result is a π estimate together with the counts it was derived from.
type Result struct {
	Estimate float64
	Hits     int64
	Samples  int64
	Report   parallel.Report
}

func (r Result) String() string {
	return fmt.Sprintf("π ≈ %.6f (%d of %d samples inside)", r.Estimate, r.Hits, r.Samples)
}

func (e *Estimator) seedSource() SeedSource {
	if e.seeds != nil {
		return e.seeds
	}
	return DefaultSeeds()
}

// sampler returns the per-worker range reducer. Every worker builds its own
// distribution from the shared parameters and a private source.
func (e *Estimator) sampler(seeds SeedSource) func(worker int, r partition.Range) (int64, error) {
	return func(worker int, r partition.Range) (int64, error) {
		u := e.dist
		u.Src = rand.NewSource(seeds.Seed(worker))
		var hits int64
		for i := r.Low; i < r.High; i++ {
			x := u.Rand()
			y := u.Rand()
			if InsideUnitCircle(x, y) {
				hits++
			}
		}
		return hits, nil
	}
}

func (e *Estimator) estimate(
	total int,
	reduce func(int, func(int, partition.Range) (int64, error), ...parallel.Option) (int64, parallel.Report),
) (Result, error) {
	if total <= 0 {
		return Result{}, fmt.Errorf("%w: sample count must be positive, got %d", forkjoin.ErrInvalidArgument, total)
	}
	hits, report := reduce(total, e.sampler(e.seedSource()), e.opts...)
	return Result{
		Estimate: 4 * float64(hits) / float64(total),
		Hits:     hits,
		Samples:  int64(total),
		Report:   report,
	}, nil
}

// Estimate draws total samples in parallel and returns 4 * hits / total.
// It fails with forkjoin.ErrInvalidArgument if total <= 0.
func (e *Estimator) Estimate(total int) (Result, error) {
	return e.estimate(total, parallel.Reduce)
}

// EstimateSequential is like Estimate, but runs all workers one after the
// other on the calling goroutine.
func (e *Estimator) EstimateSequential(total int) (Result, error) {
	return e.estimate(total, sequential.Reduce)
}

// Estimate estimates π from total samples with a default Estimator.
func Estimate(total int) (float64, error) {
	r, err := New().Estimate(total)
	return r.Estimate, err
}

// EstimateSequential estimates π from total samples without parallelism.
func EstimateSequential(total int) (float64, error) {
	r, err := New().EstimateSequential(total)
	return r.Estimate, err
}
