// Package sequence generates random sequences of symbols drawn uniformly
// from a fixed alphabet, for use as input to package search.
package sequence

import (
	"time"

	"golang.org/x/exp/rand"
)

// DefaultAlphabet holds the four nucleotide symbols.
const DefaultAlphabet = "AGTC"

type config struct {
	alphabet string
	src      rand.Source
}

// An Option configures Generate.
type Option func(*config)

// WithAlphabet sets the symbols to draw from. An empty alphabet is ignored.
func WithAlphabet(alphabet string) Option {
	return func(c *config) {
		if alphabet != "" {
			c.alphabet = alphabet
		}
	}
}

// WithSeed makes Generate deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource draws symbols from src. The source is used by a single
// goroutine and must not be shared with others while Generate runs.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.src = src
	}
}

// Generate returns n symbols drawn uniformly from the alphabet. By default
// the alphabet is DefaultAlphabet and the source is seeded from the clock.
// Generate returns an empty sequence if n <= 0.
func Generate(n int, opts ...Option) []byte {
	cfg := config{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&cfg)
	}
	if n <= 0 {
		return []byte{}
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	rng := rand.New(cfg.src)
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = cfg.alphabet[rng.Intn(len(cfg.alphabet))]
	}
	return seq
}
