package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/kilianp07/kitchen/core/kitchen"
	"github.com/kilianp07/kitchen/core/logger"
	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/internal/clock"
	"github.com/kilianp07/kitchen/internal/handoff"
)

// Dispatcher is the dispatch role: it walks the feed at a fixed pace,
// applies the policy against the shared state and hands placements to the
// pickup role.
type Dispatcher struct {
	state  *kitchen.State
	policy kitchen.Decider
	queue  *handoff.Queue[model.Event]
	cfg    Config
	logger logger.Logger
}

// NewDispatcher wires a dispatcher. A nil policy selects Policy with the
// state clock and a nil logger discards output.
func NewDispatcher(state *kitchen.State, policy kitchen.Decider, queue *handoff.Queue[model.Event], cfg Config, log logger.Logger) (*Dispatcher, error) {
	if state == nil || queue == nil {
		return nil, fmt.Errorf("dispatcher requires state and queue")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = Policy{Now: state.Now}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Dispatcher{state: state, policy: policy, queue: queue, cfg: cfg, logger: log}, nil
}

// Run dispatches every order and closes the queue when done, whatever the
// outcome, so the pickup role can drain and stop.
func (d *Dispatcher) Run(ctx context.Context, orders []model.Order) error {
	defer d.queue.Close()
	delay := d.cfg.BatchDelay()
	for i, o := range orders {
		if i != 0 && i%d.cfg.BatchSize == 0 {
			if err := clock.Sleep(ctx, delay); err != nil {
				return err
			}
		}
		evs, err := d.state.Dispatch(o, d.policy)
		if errors.Is(err, kitchen.ErrDuplicateOrder) {
			d.logger.Warnf("skipping duplicate order %s", o.ID)
			continue
		}
		for _, ev := range evs {
			d.logger.Debugw("dispatch event", map[string]any{
				"order_id":    ev.OrderID,
				"kind":        string(ev.Kind),
				"pool":        string(ev.Target),
				"queue_depth": d.queue.Len(),
			})
			if ev.Kind != model.EventPlace {
				continue
			}
			// Pushed outside the state lock so backpressure never blocks pickup.
			if err := d.queue.Push(ctx, ev); err != nil {
				return fmt.Errorf("enqueue %s: %w", ev.OrderID, err)
			}
		}
	}
	d.logger.Infof("dispatched %d orders", len(orders))
	return nil
}
