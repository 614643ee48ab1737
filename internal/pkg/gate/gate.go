package gate

import (
	"context"
	"sync"
	"time"
)

// Observer is the minimal interface for recording wait-duration metrics.
type Observer interface {
	Observe(float64)
}

// Gate bounds the number of callers concurrently inside a protected section.
// Excess callers queue in strict arrival order; a released slot is handed
// directly to the oldest waiter, so the held count never dips while someone
// is queued and late arrivals cannot jump the queue.
type Gate struct {
	mu           sync.Mutex
	limit        int
	held         int
	waiters      []*waiter
	waitDuration Observer // Optional: nil if not tracking
}

type waiter struct {
	ready   chan struct{}
	granted bool
}

// New returns a gate admitting at most limit concurrent holders.
func New(limit int) *Gate {
	return NewWithMetric(limit, nil)
}

// NewWithMetric returns a gate that optionally tracks the duration spent
// waiting to acquire a slot.
func NewWithMetric(limit int, waitDuration Observer) *Gate {
	if limit < 1 {
		panic("gate.New: limit must be at least 1")
	}
	return &Gate{
		limit:        limit,
		waitDuration: waitDuration,
	}
}

// Acquire blocks until a slot is granted or ctx is done. The wait queue is
// unbounded; context cancellation is the only way out of it.
func (g *Gate) Acquire(ctx context.Context) error {
	g.mu.Lock()
	if g.held < g.limit {
		g.held++
		g.mu.Unlock()
		g.observe(0)
		return nil
	}

	w := &waiter{ready: make(chan struct{})}
	g.waiters = append(g.waiters, w)
	g.mu.Unlock()

	start := time.Now()
	select {
	case <-w.ready:
		g.observe(time.Since(start).Seconds())
		return nil
	case <-ctx.Done():
		g.mu.Lock()
		if w.granted {
			// A release handed us the slot while we were cancelling; the
			// grant wins so the slot is not lost.
			g.mu.Unlock()
			g.observe(time.Since(start).Seconds())
			return nil
		}
		for i, queued := range g.waiters {
			if queued == w {
				g.waiters = append(g.waiters[:i], g.waiters[i+1:]...)
				break
			}
		}
		g.mu.Unlock()
		return ctx.Err()
	}
}

// Release frees one slot. It must be called exactly once per successful
// Acquire; calling it without a held slot panics.
func (g *Gate) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.held == 0 {
		panic("gate.Release: more releases than acquires")
	}

	if len(g.waiters) > 0 {
		w := g.waiters[0]
		g.waiters = g.waiters[1:]
		w.granted = true
		close(w.ready)
		// held is unchanged: the slot moves directly to the waiter.
		return
	}

	g.held--
}

// InFlight reports the number of currently held slots.
func (g *Gate) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.held
}

// Waiting reports the number of queued acquirers.
func (g *Gate) Waiting() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.waiters)
}

func (g *Gate) observe(seconds float64) {
	if g.waitDuration != nil {
		g.waitDuration.Observe(seconds)
	}
}
