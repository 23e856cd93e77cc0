package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/kitchen/core/metrics"
	"github.com/kilianp07/kitchen/core/model"
)

// PromSink records kitchen events in Prometheus collectors. It only
// registers collectors; serving them is left to the embedding program.
type PromSink struct {
	events    *prometheus.CounterVec
	occupancy *prometheus.GaugeVec
	capacity  *prometheus.GaugeVec
	dwell     prometheus.Histogram
}

var _ coremetrics.Sink = (*PromSink)(nil)

// NewPromSink registers the collectors on reg.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kitchen_events_total",
		Help: "Total number of order lifecycle events",
	}, []string{"kind", "pool"})
	occupancy := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kitchen_pool_residents",
		Help: "Number of orders currently resident in a pool",
	}, []string{"pool"})
	capacity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kitchen_pool_capacity",
		Help: "Configured capacity of a pool",
	}, []string{"pool"})
	dwell := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kitchen_pickup_dwell_seconds",
		Help:    "Time between placement and pickup",
		Buckets: prometheus.LinearBuckets(1, 1, 10),
	})

	var err error
	if events, err = register(reg, events); err != nil {
		return nil, err
	}
	if occupancy, err = register(reg, occupancy); err != nil {
		return nil, err
	}
	if capacity, err = register(reg, capacity); err != nil {
		return nil, err
	}
	if dwell, err = register(reg, dwell); err != nil {
		return nil, err
	}
	return &PromSink{events: events, occupancy: occupancy, capacity: capacity, dwell: dwell}, nil
}

// register reuses an already registered collector of the same shape.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordEvent increments the event counter.
func (s *PromSink) RecordEvent(ev model.Event) {
	s.events.WithLabelValues(string(ev.Kind), string(ev.Target)).Inc()
}

// RecordOccupancy sets the residents and capacity gauges of a pool.
func (s *PromSink) RecordOccupancy(pool model.PoolKind, residents, capacity int) {
	s.occupancy.WithLabelValues(string(pool)).Set(float64(residents))
	s.capacity.WithLabelValues(string(pool)).Set(float64(capacity))
}

// RecordDwell observes a realised dwell time.
func (s *PromSink) RecordDwell(d time.Duration) {
	s.dwell.Observe(d.Seconds())
}
