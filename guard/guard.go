// Package guard provides a lifecycle guard for a group of goroutines.
//
// A Guard makes "spawn n workers, always converge" safe: once a worker has
// been started with Go, a deferred Wait guarantees that it is joined before
// the owning function returns, whether that function returns normally or
// unwinds because of a panic.
//
//	g := guard.New(logger)
//	defer g.Wait()
//	for i := range work[:len(work)-1] {
//		g.Go(i, work[i])
//	}
//	work[len(work)-1]()
//	g.Wait()
//	// results are safe to read here
package guard

import (
	"sync"
	"sync/atomic"

	"github.com/exascience/forkjoin"
	"github.com/exascience/forkjoin/internal"
	"github.com/exascience/forkjoin/log"
)

type handle struct {
	worker int
	done   chan struct{}
	joined bool
	fault  *forkjoin.JoinFault
}

// A Guard owns the completion signals of the goroutines it spawned. It never
// owns their data.
//
// The zero Guard is valid and discards its log output.
type Guard struct {
	logger log.Logger

	mu      sync.Mutex
	handles []*handle
	faults  atomic.Int64
}

// New returns a guard that logs join faults to logger. A nil logger
// discards them.
func New(logger log.Logger) *Guard {
	return &Guard{logger: logger}
}

// Go runs fn in a new goroutine and records a handle for it. The worker
// index is only used to attribute join faults.
//
// A panic that escapes fn is recovered by the handle and reported as a
// forkjoin.JoinFault when the handle is joined.
func (g *Guard) Go(worker int, fn func()) {
	h := &handle{worker: worker, done: make(chan struct{})}
	g.mu.Lock()
	g.handles = append(g.handles, h)
	g.mu.Unlock()
	go func() {
		defer func() {
			if p := recover(); p != nil {
				h.fault = &forkjoin.JoinFault{Worker: worker, Value: internal.PanicError(p)}
			}
			close(h.done)
		}()
		fn()
	}()
}

// Wait joins every handle that has not been joined yet, in the order in
// which they were spawned, and skips handles that were already joined. Wait
// can be called any number of times, including from a deferred call, and
// never panics: join faults are logged and counted, but not re-raised.
func (g *Guard) Wait() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, h := range g.handles {
		if h.joined {
			continue
		}
		<-h.done
		h.joined = true
		if h.fault != nil {
			g.faults.Add(1)
			log.OrDiscard(g.logger).
				WithField("worker", h.worker).
				WithError(h.fault).
				Warn("join fault")
		}
	}
}

// Len returns the number of goroutines spawned so far.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.handles)
}

// JoinFaults returns the number of join faults observed by Wait so far.
func (g *Guard) JoinFaults() int {
	return int(g.faults.Load())
}
