package dedupe

import (
	"sync"
	"time"
)

// Registry remembers which message ids have already been claimed for
// processing. The platform redelivers webhooks on slow acks, so a claim
// must be atomic: check-and-insert under one lock, no race window.
//
// Entries expire after the configured window; the retry horizon for
// duplicate deliveries is minutes, so a generous window preserves
// at-most-once processing while keeping memory bounded.
type Registry struct {
	mu      sync.Mutex
	claimed map[string]time.Time
	window  time.Duration
	stopCh  chan struct{}
	once    sync.Once
	now     func() time.Time
}

func NewRegistry(window time.Duration) *Registry {
	r := &Registry{
		claimed: make(map[string]time.Time),
		window:  window,
		stopCh:  make(chan struct{}),
		now:     time.Now,
	}
	if window > 0 {
		go r.sweep()
	}
	return r
}

// TryClaim marks id as being processed. It returns false when the id was
// already claimed within the window, in which case the caller must not
// process the message again.
func (r *Registry) TryClaim(id string) bool {
	if id == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if at, ok := r.claimed[id]; ok {
		if r.window <= 0 || r.now().Sub(at) < r.window {
			return false
		}
	}
	r.claimed[id] = r.now()
	return true
}

// Len reports the current number of remembered ids.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.claimed)
}

// Stop terminates the background sweeper.
func (r *Registry) Stop() {
	r.once.Do(func() { close(r.stopCh) })
}

func (r *Registry) sweep() {
	interval := r.window / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			cutoff := r.now().Add(-r.window)
			r.mu.Lock()
			for id, at := range r.claimed {
				if at.Before(cutoff) {
					delete(r.claimed, id)
				}
			}
			r.mu.Unlock()
		}
	}
}
