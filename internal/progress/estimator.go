// Package progress fakes a progress signal for the analysis call. The
// webhook gives no byte-level progress, so the value is an estimate
// that climbs on a fixed schedule and jumps to 100 when the call
// returns.
package progress

import (
	"sync"
	"time"
)

const (
	defaultInterval = 300 * time.Millisecond
	defaultStep     = 5
	// The estimate never claims completion on its own; only Finish
	// moves the value past ceiling.
	ceiling = 95
)

type Estimator struct {
	mu       sync.Mutex
	value    int
	done     bool
	stop     chan struct{}
	interval time.Duration
	step     int
}

func NewEstimator() *Estimator {
	return &Estimator{
		stop:     make(chan struct{}),
		interval: defaultInterval,
		step:     defaultStep,
	}
}

// Start launches the ticking goroutine. Tests drive Tick directly and
// never call Start.
func (e *Estimator) Start() {
	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				e.Tick()
			case <-e.stop:
				return
			}
		}
	}()
}

// Tick advances the estimate by one step, capped at the ceiling. It is
// a no-op once Finish has run.
func (e *Estimator) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return
	}
	if e.value+e.step >= ceiling {
		e.value = ceiling
		return
	}
	e.value += e.step
}

// Finish pins the estimate at 100 and stops the ticking goroutine.
// Safe to call more than once.
func (e *Estimator) Finish() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return
	}
	e.done = true
	e.value = 100
	close(e.stop)
}

func (e *Estimator) Value() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.value
}
