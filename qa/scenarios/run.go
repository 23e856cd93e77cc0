package scenarios

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/kitchen/app"
	"github.com/kilianp07/kitchen/config"
	"github.com/kilianp07/kitchen/core/feed"
	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/infra/metrics"
)

func RunScenario(t *testing.T, sc *Scenario) {
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSink(reg)
	if err != nil {
		t.Fatalf("prom sink: %v", err)
	}

	orders := make([]model.Order, len(sc.Orders))
	for i, o := range sc.Orders {
		if orders[i], err = o.ToModel(); err != nil {
			t.Fatalf("order %s: %v", o.ID, err)
		}
	}

	cfg := config.Default()
	cfg.Storage = sc.Storage
	if sc.BatchSize > 0 {
		cfg.Dispatch.BatchSize = sc.BatchSize
	}
	cfg.Dispatch.BatchDelayMS = sc.BatchDelayMS

	sim, err := app.New(cfg,
		app.WithFeed(feed.Static{Orders: orders}),
		app.WithDwellBounds(sc.Dwell.Bounds()),
		app.WithMetrics(sink))
	if err != nil {
		t.Fatalf("simulation: %v", err)
	}
	res, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, v := range res.Violations {
		t.Errorf("scenario %s: %v", sc.Name, v)
	}
	placed := placementsByPool(res.Events)
	for pool, want := range sc.Expected.Place {
		if got := placed[pool]; got != want {
			t.Errorf("scenario %s expected %d placed on %s, got %d", sc.Name, want, pool, got)
		}
	}
	check := func(kind model.EventKind, want int) {
		if got := res.Counts[kind]; got != want {
			t.Errorf("scenario %s expected %d %s events, got %d", sc.Name, want, kind, got)
		}
		if got := countedEvents(t, reg, kind); int(got) != want {
			t.Errorf("scenario %s expected %d %s in metrics, got %v", sc.Name, want, kind, got)
		}
	}
	check(model.EventMove, sc.Expected.Move)
	check(model.EventDiscard, sc.Expected.Discard)
	check(model.EventPickup, sc.Expected.Pickup)
}

func placementsByPool(evs []model.Event) map[string]int {
	out := make(map[string]int)
	for _, e := range evs {
		if e.Kind == model.EventPlace {
			out[string(e.Target)]++
		}
	}
	return out
}

// countedEvents sums kitchen_events_total over pools for one kind.
func countedEvents(t *testing.T, reg *prometheus.Registry, kind model.EventKind) float64 {
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, mf := range mfs {
		if mf.GetName() != "kitchen_events_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "kind" && l.GetValue() == string(kind) {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}
