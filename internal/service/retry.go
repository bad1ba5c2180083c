package service

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy shapes the delay between failed sync passes. Individual records
// are never retried inside a pass; a record that fails simply stays queued,
// and the policy only governs how soon the background job tries again.
type RetryPolicy struct {
	// Base is the delay after the first failed pass.
	Base time.Duration
	// Cap bounds the exponential growth. Zero means uncapped.
	Cap time.Duration
}

// Next returns the delay to wait before the pass after `attempt` consecutive
// failures (attempt >= 1). Capped exponential: Base, 2*Base, 4*Base, ...
func (p RetryPolicy) Next(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	d := p.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.Cap > 0 && d >= p.Cap {
			return p.Cap
		}
	}
	if p.Cap > 0 && d > p.Cap {
		return p.Cap
	}
	return d
}

// Backoff adapts the policy for retry.Do in the background sync job.
func (p RetryPolicy) Backoff() retry.Backoff {
	b := retry.NewExponential(p.Base)
	if p.Cap > 0 {
		b = retry.WithCappedDuration(p.Cap, b)
	}
	return b
}
