// Command forkjoin runs the two workloads of this module and reports their
// results and timings.
//
//	forkjoin -samples 10000000 -runs 3
//	forkjoin -length 100 -pattern AGT
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/forkjoin/log"
	"github.com/exascience/forkjoin/montecarlo"
	"github.com/exascience/forkjoin/parallel"
	"github.com/exascience/forkjoin/search"
	"github.com/exascience/forkjoin/sequence"
)

type options struct {
	samples  int
	runs     int
	length   int
	pattern  string
	alphabet string
	workers  int
	minChunk int
	seed     uint64
	logLevel string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("forkjoin", flag.ContinueOnError)
	fs.IntVar(&o.samples, "samples", 10000000, "number of Monte Carlo samples (0 skips the estimate)")
	fs.IntVar(&o.runs, "runs", 1, "number of repeated estimates")
	fs.IntVar(&o.length, "length", 100, "length of the generated sequence (0 skips the search)")
	fs.StringVar(&o.pattern, "pattern", "AGTC", "pattern to search for")
	fs.StringVar(&o.alphabet, "alphabet", sequence.DefaultAlphabet, "symbols of the generated sequence")
	fs.IntVar(&o.workers, "workers", 0, "number of workers (0 uses the hardware parallelism)")
	fs.IntVar(&o.minChunk, "min-chunk", parallel.DefaultMinChunk, "minimum number of indices per worker")
	fs.Uint64Var(&o.seed, "seed", 0, "fixed seed for reproducible runs (0 seeds from the clock)")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.runs < 1 {
		return o, fmt.Errorf("invalid -runs: %d", o.runs)
	}
	if o.workers < 0 {
		return o, fmt.Errorf("invalid -workers: %d", o.workers)
	}
	return o, nil
}

func newLogger(level string) (log.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log.Logrus{FieldLogger: logger}, nil
}

func timed(f func() error) (time.Duration, error) {
	start := time.Now()
	err := f()
	return time.Since(start), err
}

func runEstimate(o options, engine []parallel.Option, logger log.Logger) error {
	estimates := make([]float64, 0, o.runs)
	for run := 0; run < o.runs; run++ {
		seeds := montecarlo.TimeSeeds()
		if o.seed != 0 {
			seeds = montecarlo.FixedSeeds(o.seed + uint64(run)<<32)
		}
		e := montecarlo.New(montecarlo.WithSeeds(seeds), montecarlo.WithEngineOptions(engine...))

		var seq, par montecarlo.Result
		seqTime, err := timed(func() (err error) {
			seq, err = e.EstimateSequential(o.samples)
			return
		})
		if err != nil {
			return err
		}
		parTime, err := timed(func() (err error) {
			par, err = e.Estimate(o.samples)
			return
		})
		if err != nil {
			return err
		}
		fmt.Printf("SEQ: %v seconds\nPI = %.6f\n", seqTime.Seconds(), seq.Estimate)
		fmt.Printf("PAR: %v seconds (%d workers)\nPI = %.6f\n", parTime.Seconds(), par.Report.Workers, par.Estimate)
		if err := par.Report.Err(); err != nil {
			logger.WithError(err).Warn("estimate completed with faults")
		}
		estimates = append(estimates, par.Estimate)
	}
	if len(estimates) > 1 {
		mean, std := stat.MeanStdDev(estimates, nil)
		fmt.Printf("runs: %d, mean: %.6f, stddev: %.6f\n", len(estimates), mean, std)
	}
	return nil
}

func runSearch(o options, engine []parallel.Option, logger log.Logger) error {
	genOpts := []sequence.Option{sequence.WithAlphabet(o.alphabet)}
	if o.seed != 0 {
		genOpts = append(genOpts, sequence.WithSeed(o.seed))
	}
	seq := sequence.Generate(o.length, genOpts...)
	if len(seq) <= 200 {
		fmt.Println(string(seq))
	}

	var r search.Result
	d, err := timed(func() (err error) {
		r, err = search.Search(seq, []byte(o.pattern), engine...)
		return
	})
	if err != nil {
		logger.WithError(err).Debug("search skipped")
		fmt.Println("not found")
		return nil
	}
	if err := r.Report.Err(); err != nil {
		logger.WithError(err).Warn("search completed with faults")
	}
	logger.WithField("workers", r.Report.Workers).
		WithField("seconds", d.Seconds()).
		Debug("search done")
	if len(r.Offsets) == 0 {
		fmt.Println("not found")
		return nil
	}
	for _, offset := range r.Sorted() {
		fmt.Print(offset, " ")
	}
	fmt.Println()
	return nil
}

func run(args []string) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(o.logLevel)
	if err != nil {
		return err
	}
	engine := []parallel.Option{
		parallel.WithWorkers(o.workers),
		parallel.WithMinChunk(o.minChunk),
		parallel.WithLogger(logger),
	}
	if o.samples > 0 {
		if err := runEstimate(o, engine, logger); err != nil {
			return err
		}
	}
	if o.length > 0 {
		if err := runSearch(o, engine, logger); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
