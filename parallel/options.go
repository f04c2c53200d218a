package parallel

import (
	"fmt"

	"github.com/exascience/forkjoin/log"
	"github.com/exascience/forkjoin/partition"
)

// DefaultMinChunk is the default minimum number of indices per worker.
// Ranges smaller than this are processed by fewer workers, down to one.
const DefaultMinChunk = 256

type config struct {
	workers  int
	minChunk int
	logger   log.Logger
}

// An Option configures an invocation of Reduce or Collect, or of their
// counterparts in package sequential.
type Option func(*config)

func defaultConfig() config {
	return config{
		minChunk: DefaultMinChunk,
		logger:   log.Discard{},
	}
}

// WithWorkers requests n workers. A value of 0 (the default) uses
// partition.WorkerCount(partition.DefaultHint()). An explicit count,
// including 1, is used as given, but still reduced by the minimum chunk size.
//
// WithWorkers panics if n is negative.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("invalid number of workers: %v", n))
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithMinChunk sets the minimum number of indices each worker receives.
// Values <= 0 mean 1.
func WithMinChunk(n int) Option {
	return func(c *config) {
		c.minChunk = n
	}
}

// WithLogger sets the logger for worker faults, join faults and debug
// output. A nil logger discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = log.OrDiscard(logger)
	}
}

// A Plan is the static partitioning of one invocation.
type Plan struct {
	// Workers is the effective number of workers, including the one that
	// runs on the calling goroutine.
	Workers int

	// Ranges holds one range per worker; the last one is run inline.
	Ranges []partition.Range

	// Logger is the configured logger, never nil.
	Logger log.Logger
}

// NewPlan partitions the range [0, n) according to opts.
//
// NewPlan panics if n < 0.
func NewPlan(n int, opts ...Option) Plan {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	w := cfg.workers
	if w == 0 {
		w = partition.WorkerCount(partition.DefaultHint())
	}
	w = partition.Effective(n, w, cfg.minChunk)
	return Plan{
		Workers: w,
		Ranges:  partition.Split(n, w),
		Logger:  cfg.logger,
	}
}
