package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/kitchen/core/model"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	sink.RecordEvent(model.Event{OrderID: "a", Kind: model.EventPlace, Target: model.Shelf})
	sink.RecordEvent(model.Event{OrderID: "b", Kind: model.EventPlace, Target: model.Shelf})
	sink.RecordEvent(model.Event{OrderID: "a", Kind: model.EventDiscard, Target: model.Shelf})
	sink.RecordOccupancy(model.Heater, 3, 6)
	sink.RecordDwell(4 * time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(sink.events.WithLabelValues("place", "shelf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.events.WithLabelValues("discard", "shelf")))
	assert.Equal(t, 3.0, testutil.ToFloat64(sink.occupancy.WithLabelValues("heater")))
	assert.Equal(t, 6.0, testutil.ToFloat64(sink.capacity.WithLabelValues("heater")))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, n := range []string{"kitchen_events_total", "kitchen_pool_residents", "kitchen_pool_capacity", "kitchen_pickup_dwell_seconds"} {
		assert.True(t, names[n], "metric %s not registered", n)
	}
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)
	second, err := NewPromSink(reg)
	require.NoError(t, err)

	first.RecordEvent(model.Event{Kind: model.EventPickup, Target: model.Cooler})
	second.RecordEvent(model.Event{Kind: model.EventPickup, Target: model.Cooler})
	assert.Equal(t, 2.0, testutil.ToFloat64(first.events.WithLabelValues("pickup", "cooler")))
}

type countingSink struct{ events, occ, dwell int }

func (c *countingSink) RecordEvent(model.Event)                  { c.events++ }
func (c *countingSink) RecordOccupancy(model.PoolKind, int, int) { c.occ++ }
func (c *countingSink) RecordDwell(time.Duration)                { c.dwell++ }

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	ms := NewMultiSink(a, nil, b)
	ms.RecordEvent(model.Event{})
	ms.RecordOccupancy(model.Shelf, 1, 2)
	ms.RecordDwell(time.Second)
	assert.Equal(t, countingSink{1, 1, 1}, *a)
	assert.Equal(t, countingSink{1, 1, 1}, *b)
}
