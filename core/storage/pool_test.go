package storage

import (
	"fmt"
	"testing"

	"github.com/kilianp07/kitchen/core/model"
)

func order(id string, temp model.TempClass) model.Order {
	return model.Order{ID: id, Name: "dish " + id, Temp: temp, Freshness: 60}
}

func ids(orders []model.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestPoolTryAddRespectsCapacity(t *testing.T) {
	p := NewPool(model.Heater, 2)
	if !p.TryAdd(order("a", model.TempHot)) || !p.TryAdd(order("b", model.TempHot)) {
		t.Fatal("expected two adds to succeed")
	}
	if p.TryAdd(order("c", model.TempHot)) {
		t.Fatal("add beyond capacity succeeded")
	}
	if p.Count() != 2 || p.HasSpace() {
		t.Fatalf("expected full pool of 2, got %d", p.Count())
	}
}

func TestPoolRemove(t *testing.T) {
	p := NewPool(model.Shelf, 3)
	p.TryAdd(order("a", model.TempRoom))
	p.TryAdd(order("b", model.TempRoom))
	if !p.Remove("a") {
		t.Fatal("expected a to be removed")
	}
	if p.Remove("a") {
		t.Fatal("a removed twice")
	}
	if got := ids(p.Members()); len(got) != 1 || got[0] != "b" {
		t.Fatalf("expected [b], got %v", got)
	}
}

func TestPoolFindReturnsFirstInserted(t *testing.T) {
	p := NewPool(model.Shelf, 4)
	p.TryAdd(order("r1", model.TempRoom))
	p.TryAdd(order("c1", model.TempCold))
	p.TryAdd(order("c2", model.TempCold))
	got, ok := p.Find(func(o model.Order) bool { return o.Temp == model.TempCold })
	if !ok || got.ID != "c1" {
		t.Fatalf("expected c1, got %q (ok=%v)", got.ID, ok)
	}
	if _, ok := p.Find(func(o model.Order) bool { return o.Temp == model.TempHot }); ok {
		t.Fatal("found a hot order on a shelf without one")
	}
}

func TestPoolRemoveOldest(t *testing.T) {
	p := NewPool(model.Shelf, 3)
	if _, ok := p.RemoveOldest(); ok {
		t.Fatal("evicted from an empty pool")
	}

	for i := 0; i < 3; i++ {
		p.TryAdd(order(fmt.Sprintf("o%d", i), model.TempRoom))
	}
	got, ok := p.RemoveOldest()
	if !ok || got.ID != "o0" {
		t.Fatalf("expected o0, got %q (ok=%v)", got.ID, ok)
	}
	if p.Count() != 2 {
		t.Fatalf("expected 2 residents, got %d", p.Count())
	}
	if !p.TryAdd(order("o3", model.TempRoom)) {
		t.Fatal("eviction did not free a slot")
	}
	if first := p.Members()[0].ID; first != "o1" {
		t.Fatalf("expected o1 to be oldest, got %s", first)
	}
}

func TestPoolsDelegateByKind(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	ps := NewPools(cfg)

	if !ps.TryAdd(model.Cooler, order("c", model.TempCold)) {
		t.Fatal("cooler add failed")
	}
	if ps.Count(model.Cooler) != 1 || ps.Count(model.Heater) != 0 {
		t.Fatalf("unexpected counts %v", ps.Occupancy())
	}
	if ps.Remove(model.Heater, "c") {
		t.Fatal("removed c from the wrong pool")
	}
	if !ps.Remove(model.Cooler, "c") {
		t.Fatal("expected c removed from cooler")
	}
	if ps.Get("freezer") != nil || ps.TryAdd("freezer", order("x", model.TempRoom)) {
		t.Fatal("unknown pool kind accepted")
	}
	for kind, n := range ps.Occupancy() {
		if n != 0 {
			t.Errorf("pool %s expected empty, has %d", kind, n)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{HeaterCapacity: 1, CoolerCapacity: 0, ShelfCapacity: 1}).Validate(); err == nil {
		t.Fatal("expected error for zero cooler capacity")
	}
	if err := (Config{HeaterCapacity: 1, CoolerCapacity: 1, ShelfCapacity: 1}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
