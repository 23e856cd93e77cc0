// Package clock holds the context-aware wait shared by the simulation roles.
package clock

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is done. Non-positive durations return
// immediately.
func Sleep(ctx context.Context, d time.Duration) error {
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
