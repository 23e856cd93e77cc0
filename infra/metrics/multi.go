package metrics

import (
	"time"

	coremetrics "github.com/kilianp07/kitchen/core/metrics"
	"github.com/kilianp07/kitchen/core/model"
)

// MultiSink fans out records to multiple sinks.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink. Nil sinks are skipped.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	ms := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			ms.sinks = append(ms.sinks, s)
		}
	}
	return ms
}

func (m *MultiSink) RecordEvent(ev model.Event) {
	for _, s := range m.sinks {
		s.RecordEvent(ev)
	}
}

func (m *MultiSink) RecordOccupancy(pool model.PoolKind, residents, capacity int) {
	for _, s := range m.sinks {
		s.RecordOccupancy(pool, residents, capacity)
	}
}

func (m *MultiSink) RecordDwell(d time.Duration) {
	for _, s := range m.sinks {
		s.RecordDwell(d)
	}
}
