// Package pickup implements the pickup role: it drains placements from the
// handoff queue, waits out a randomized dwell time and removes the order.
package pickup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kilianp07/kitchen/core/kitchen"
	"github.com/kilianp07/kitchen/core/logger"
	"github.com/kilianp07/kitchen/core/metrics"
	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/random"
	"github.com/kilianp07/kitchen/internal/clock"
	"github.com/kilianp07/kitchen/internal/handoff"
)

// Outcome classifies what happened to one dequeued placement.
type Outcome int

const (
	OutcomePickedUp Outcome = iota
	// OutcomeSkipped means the order was discarded before it was dequeued.
	OutcomeSkipped
	// OutcomeLost means the order was discarded during the dwell wait.
	OutcomeLost
	OutcomeCancelled
)

// Worker is the pickup role.
type Worker struct {
	state  *kitchen.State
	queue  *handoff.Queue[model.Event]
	rng    *random.Source
	bounds Bounds
	sink   metrics.Sink
	logger logger.Logger

	mu     sync.Mutex
	dwells []time.Duration
	counts map[Outcome]int
}

// NewWorker wires a worker. rng is the run-owned random source.
func NewWorker(state *kitchen.State, queue *handoff.Queue[model.Event], rng *random.Source, b Bounds, sink metrics.Sink, log logger.Logger) (*Worker, error) {
	if state == nil || queue == nil || rng == nil {
		return nil, fmt.Errorf("pickup worker requires state, queue and random source")
	}
	if b.Min < 0 || b.Max < b.Min {
		return nil, fmt.Errorf("invalid dwell bounds [%s, %s)", b.Min, b.Max)
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Worker{
		state:  state,
		queue:  queue,
		rng:    rng,
		bounds: b,
		sink:   sink,
		logger: log,
		counts: make(map[Outcome]int),
	}, nil
}

// Run consumes placements until the queue is closed and drained, or ctx is
// done. In concurrent mode it waits for in-flight pickups before returning.
// Dwell targets are drawn in dequeue order so a seeded run is reproducible
// in both modes.
func (w *Worker) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	for {
		ev, ok := w.queue.Pop(ctx)
		if !ok {
			break
		}
		target := w.rng.Duration(w.bounds.Min, w.bounds.Max)
		if w.bounds.Concurrent {
			wg.Add(1)
			go func(ev model.Event, target time.Duration) {
				defer wg.Done()
				w.record(w.Handle(ctx, ev, target))
			}(ev, target)
			continue
		}
		w.record(w.Handle(ctx, ev, target))
	}
	wg.Wait()
	return ctx.Err()
}

// Handle processes one placement event, picking the order up once target
// has elapsed since its placement.
func (w *Worker) Handle(ctx context.Context, placed model.Event, target time.Duration) Outcome {
	if w.state.IsDiscarded(placed.OrderID) {
		w.logger.Debugf("skip %s: discarded before pickup", placed.OrderID)
		return OutcomeSkipped
	}
	elapsed := w.state.Now().Sub(placed.Timestamp)
	if wait := target - elapsed; wait > 0 {
		if err := clock.Sleep(ctx, wait); err != nil {
			return OutcomeCancelled
		}
	}
	ev, ok := w.state.Pickup(placed.OrderID)
	if !ok {
		w.logger.Debugf("skip %s: discarded while waiting", placed.OrderID)
		return OutcomeLost
	}
	dwell := ev.Timestamp.Sub(placed.Timestamp)
	w.sink.RecordDwell(dwell)
	w.mu.Lock()
	w.dwells = append(w.dwells, dwell)
	w.mu.Unlock()
	w.logger.Debugw("pickup", map[string]any{
		"order_id": ev.OrderID,
		"pool":     string(ev.Target),
		"dwell":    dwell.String(),
		"target":   target.String(),
	})
	return OutcomePickedUp
}

func (w *Worker) record(o Outcome) {
	w.mu.Lock()
	w.counts[o]++
	w.mu.Unlock()
}

// Dwells returns the realised dwell times of completed pickups.
func (w *Worker) Dwells() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]time.Duration, len(w.dwells))
	copy(out, w.dwells)
	return out
}

// Outcomes returns how many placements ended in each outcome.
func (w *Worker) Outcomes() map[Outcome]int {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[Outcome]int, len(w.counts))
	for k, v := range w.counts {
		out[k] = v
	}
	return out
}
