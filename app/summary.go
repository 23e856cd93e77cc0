package app

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/pickup"
)

// Result is the outcome of one run. Events is the ordered event log.
type Result struct {
	RunID     string
	Seed      int64
	Orders    int
	Events    []model.Event
	Counts    map[model.EventKind]int
	Occupancy map[model.PoolKind]int
	// Peak is the highest resident count each pool reached during the run.
	Peak       map[model.PoolKind]int
	Outcomes   map[pickup.Outcome]int
	Dwell      DwellStats
	Duration   time.Duration
	Violations []error
}

// DwellStats summarizes realised dwell times in seconds.
type DwellStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Median float64
	P95    float64
	Max    float64
}

// peakSink keeps the highest occupancy reported per pool.
type peakSink struct {
	mu   sync.Mutex
	peak map[model.PoolKind]int
}

func newPeakSink() *peakSink {
	return &peakSink{peak: make(map[model.PoolKind]int, len(model.PoolKinds))}
}

func (p *peakSink) RecordEvent(model.Event)   {}
func (p *peakSink) RecordDwell(time.Duration) {}

func (p *peakSink) RecordOccupancy(pool model.PoolKind, residents, _ int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if residents > p.peak[pool] {
		p.peak[pool] = residents
	}
}

func (p *peakSink) snapshot() map[model.PoolKind]int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[model.PoolKind]int, len(model.PoolKinds))
	for _, k := range model.PoolKinds {
		out[k] = p.peak[k]
	}
	return out
}

func summarizeDwell(ds []time.Duration) DwellStats {
	if len(ds) == 0 {
		return DwellStats{}
	}
	xs := make([]float64, len(ds))
	for i, d := range ds {
		xs[i] = d.Seconds()
	}
	sort.Float64s(xs)
	st := DwellStats{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, xs, nil),
		Max:    xs[len(xs)-1],
	}
	if len(xs) > 1 {
		st.StdDev = stat.StdDev(xs, nil)
	}
	return st
}

func (r *Result) String() string {
	return fmt.Sprintf("orders=%d place=%d move=%d pickup=%d discard=%d dwell_mean=%.2fs peak=%d/%d/%d",
		r.Orders,
		r.Counts[model.EventPlace],
		r.Counts[model.EventMove],
		r.Counts[model.EventPickup],
		r.Counts[model.EventDiscard],
		r.Dwell.Mean,
		r.Peak[model.Heater], r.Peak[model.Cooler], r.Peak[model.Shelf])
}
