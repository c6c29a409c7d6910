package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttle limits login attempts per key, which is the normalized email address.
type Throttle struct {
	mu       sync.Mutex
	every    time.Duration
	burst    int
	limiters map[string]*attempts
}

type attempts struct {
	limiter *rate.Limiter
	seen    time.Time
}

// NewThrottle allows burst attempts per key, refilling one attempt every interval.
func NewThrottle(every time.Duration, burst int) *Throttle {
	return &Throttle{
		every:    every,
		burst:    burst,
		limiters: make(map[string]*attempts),
	}
}

// Allow reports if another attempt for the key is allowed at the given time.
func (t *Throttle) Allow(key string, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prune(now)

	a, ok := t.limiters[key]
	if !ok {
		a = &attempts{limiter: rate.NewLimiter(rate.Every(t.every), t.burst)}
		t.limiters[key] = a
	}

	a.seen = now
	return a.limiter.AllowN(now, 1)
}

// Reset forgets all attempts for the key, e.g. after a successful login.
func (t *Throttle) Reset(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.limiters, key)
}

// prune removes limiters that are completely refilled. Must be called with mu held.
func (t *Throttle) prune(now time.Time) {
	full := t.every * time.Duration(t.burst)
	for key, a := range t.limiters {
		if now.Sub(a.seen) >= full {
			delete(t.limiters, key)
		}
	}
}
