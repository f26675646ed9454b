// Package throttle limits how often a client may hit the credential
// endpoints.
package throttle

import (
	"context"
	"time"
)

type Config struct {
	Requests int
	Window   time.Duration
}

func (c Config) normalized() Config {
	if c.Requests <= 0 {
		c.Requests = 10
	}
	if c.Window <= 0 {
		c.Window = time.Minute
	}
	return c
}

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter counts attempts per key. An error means the limiter could not
// decide; callers let the request through.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
