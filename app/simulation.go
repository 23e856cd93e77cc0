// Package app wires one kitchen simulation run: the order feed, the shared
// state and the dispatch and pickup roles.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/kitchen/config"
	"github.com/kilianp07/kitchen/core/dispatch"
	"github.com/kilianp07/kitchen/core/eventlog"
	"github.com/kilianp07/kitchen/core/feed"
	"github.com/kilianp07/kitchen/core/kitchen"
	"github.com/kilianp07/kitchen/core/logger"
	"github.com/kilianp07/kitchen/core/metrics"
	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/pickup"
	"github.com/kilianp07/kitchen/core/random"
	"github.com/kilianp07/kitchen/infra/export"
	inframetrics "github.com/kilianp07/kitchen/infra/metrics"
	"github.com/kilianp07/kitchen/internal/handoff"
)

// Simulation runs the dispatch and pickup roles over one order feed.
type Simulation struct {
	cfg    *config.Config
	feed   feed.Feed
	sink   metrics.Sink
	log    logger.Logger
	bounds pickup.Bounds
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithFeed replaces the default problem feed.
func WithFeed(f feed.Feed) Option {
	return func(s *Simulation) { s.feed = f }
}

// WithMetrics sets the instrumentation sink.
func WithMetrics(sink metrics.Sink) Option {
	return func(s *Simulation) { s.sink = sink }
}

// WithLogger sets the run logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithDwellBounds overrides the second-granularity pickup bounds from the
// configuration.
func WithDwellBounds(b pickup.Bounds) Option {
	return func(s *Simulation) { s.bounds = b }
}

// New validates cfg and builds a Simulation.
func New(cfg *config.Config, opts ...Option) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg:    cfg,
		feed:   feed.Problem(),
		sink:   metrics.NopSink{},
		log:    logger.NopLogger{},
		bounds: cfg.Pickup.Bounds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.feed == nil {
		return nil, fmt.Errorf("%w: nil feed", feed.ErrFeedUnavailable)
	}
	return s, nil
}

// Run fetches the orders and runs both roles until the feed is exhausted and
// every placement has been handled, or ctx is done. Only a feed failure or
// cancellation returns an error.
func (s *Simulation) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	log := s.log.With("run_id", runID)

	orders, err := s.feed.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}

	peaks := newPeakSink()
	sink := inframetrics.NewMultiSink(s.sink, peaks)
	state := kitchen.NewState(s.cfg.Storage, kitchen.WithMetrics(sink))
	capacity := s.cfg.Dispatch.QueueCapacity
	if capacity == 0 {
		capacity = len(orders)
	}
	queue := handoff.New[model.Event](capacity)
	rng := random.New(s.cfg.Run.Seed)

	dispatcher, err := dispatch.NewDispatcher(state, nil, queue, s.cfg.Dispatch, log.With("role", "dispatch"))
	if err != nil {
		return nil, err
	}
	worker, err := pickup.NewWorker(state, queue, rng, s.bounds, sink, log.With("role", "pickup"))
	if err != nil {
		return nil, err
	}

	log.Infof("starting simulation with %d orders (seed %d, queue capacity %d)", len(orders), rng.Seed(), queue.Cap())
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return dispatcher.Run(gctx, orders) })
	g.Go(func() error { return worker.Run(gctx) })
	runErr := g.Wait()

	res := &Result{
		RunID:      runID,
		Seed:       rng.Seed(),
		Orders:     len(orders),
		Events:     state.Log().Events(),
		Occupancy:  state.Occupancy(),
		Peak:       peaks.snapshot(),
		Outcomes:   worker.Outcomes(),
		Duration:   time.Since(start),
		Dwell:      summarizeDwell(worker.Dwells()),
		Violations: eventlog.Verify(state.Log().Events()),
	}
	res.Counts = state.Log().CountByKind()
	for _, v := range res.Violations {
		log.Errorf("lifecycle violation: %v", v)
	}
	if runErr != nil {
		return res, runErr
	}

	if s.cfg.Output.Enabled() {
		if err := export.WriteFile(s.cfg.Output, export.Run{RunID: runID, Seed: res.Seed, Events: res.Events}); err != nil {
			return res, fmt.Errorf("export events: %w", err)
		}
		log.Infof("wrote %d events to %s", len(res.Events), s.cfg.Output.Path)
	}
	log.Infof("simulation finished in %s: %s", res.Duration.Round(time.Millisecond), res)
	return res, nil
}
