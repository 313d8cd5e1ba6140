package freshbooks

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter interface for rate limiting
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// NewIntervalLimiter returns a limiter that spaces requests at least
// interval apart. It is safe for concurrent use. A non-positive interval
// disables limiting.
func NewIntervalLimiter(interval time.Duration) RateLimiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}
