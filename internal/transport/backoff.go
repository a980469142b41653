package transport

import (
	"math/rand/v2"
	"time"
)

// backoff returns a full-jitter exponential delay: a uniform value in
// [0, base*2^attempt), capped at max.
func backoff(attempt int, base, max time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 30 {
		attempt = 30 // avoid shifting into overflow
	}
	d := base << attempt
	if d <= 0 || d > max {
		d = max
	}
	return time.Duration(rand.Int64N(int64(d)))
}
