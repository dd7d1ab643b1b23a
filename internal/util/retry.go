// ABOUTME: Retry backoff helper shared by the model-provider adapter
// ABOUTME: Exponential delay with jitter, capped at 30 seconds
package util

import (
	"math/rand/v2"
	"time"
)

// Backoff returns the delay before the given retry attempt: exponential
// in the attempt number with random jitter of up to 25% either way
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	delay := baseDelay * time.Duration(1<<uint(attempt))
	if delay > 30*time.Second {
		delay = 30 * time.Second
	}
	if delay <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int64N(int64(delay)/2)) - delay/4
	return delay + jitter
}
