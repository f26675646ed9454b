package throttle

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const cleanupEvery = 5 * time.Minute

// MemoryLimiter keeps a token bucket per key inside the process. Buckets
// refill at Requests per Window and hold at most Requests tokens.
type MemoryLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	cfg = cfg.normalized()
	return &MemoryLimiter{
		rate:        rate.Limit(float64(cfg.Requests) / cfg.Window.Seconds()),
		burst:       cfg.Requests,
		lastCleanup: time.Now(),
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	limiter := l.get(key)

	if limiter.Allow() {
		return Decision{Allowed: true}, nil
	}

	r := limiter.Reserve()
	delay := r.Delay()
	r.Cancel()

	return Decision{Allowed: false, RetryAfter: delay}, nil
}

func (l *MemoryLimiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	v, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rate, l.burst))
	l.maybeCleanup()
	return v.(*rate.Limiter)
}

// maybeCleanup drops buckets that are full again, i.e. idle keys.
func (l *MemoryLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < cleanupEvery {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}
