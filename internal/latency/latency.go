// Package latency simulates the network round trip of a form submission.
package latency

import (
	"context"
	"time"
)

// Simulate blocks for d or until ctx is done, whichever comes first.
func Simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
