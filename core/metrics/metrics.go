// Package metrics defines the instrumentation hooks of the kitchen roles.
package metrics

import (
	"time"

	"github.com/kilianp07/kitchen/core/model"
)

// Sink records lifecycle events for observability purposes.
type Sink interface {
	RecordEvent(ev model.Event)
	RecordOccupancy(pool model.PoolKind, residents, capacity int)
	RecordDwell(d time.Duration)
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEvent(model.Event)                  {}
func (NopSink) RecordOccupancy(model.PoolKind, int, int) {}
func (NopSink) RecordDwell(time.Duration)                {}
