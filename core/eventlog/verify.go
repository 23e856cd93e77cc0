package eventlog

import (
	"fmt"

	"github.com/kilianp07/kitchen/core/model"
)

// Verify checks the per-order lifecycle invariants over a complete event
// sequence: every order starts with exactly one place, moves follow a
// placement, pickup or discard is terminal and unique, and a pickup or
// discard names the pool of the last place or move. It returns one error per
// violation.
func Verify(events []model.Event) []error {
	type track struct {
		placed   bool
		pool     model.PoolKind
		terminal model.EventKind
	}
	seen := make(map[string]*track)
	var errs []error
	for i, e := range events {
		tr, ok := seen[e.OrderID]
		if !ok {
			tr = &track{}
			seen[e.OrderID] = tr
		}
		if tr.terminal != "" {
			errs = append(errs, fmt.Errorf("event %d: %s of %s after %s", i, e.Kind, e.OrderID, tr.terminal))
			continue
		}
		switch e.Kind {
		case model.EventPlace:
			if tr.placed {
				errs = append(errs, fmt.Errorf("event %d: %s placed twice", i, e.OrderID))
			}
			tr.placed = true
			tr.pool = e.Target
		case model.EventMove, model.EventPickup, model.EventDiscard:
			if !tr.placed {
				errs = append(errs, fmt.Errorf("event %d: %s of %s before place", i, e.Kind, e.OrderID))
			} else if e.Kind.Terminal() && e.Target != tr.pool {
				errs = append(errs, fmt.Errorf("event %d: %s of %s from %s, resident in %s", i, e.Kind, e.OrderID, e.Target, tr.pool))
			}
			if e.Kind == model.EventMove {
				tr.pool = e.Target
			}
			if e.Kind.Terminal() {
				tr.terminal = e.Kind
			}
		default:
			errs = append(errs, fmt.Errorf("event %d: unknown kind %q", i, e.Kind))
		}
	}
	return errs
}
