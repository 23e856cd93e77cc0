package dispatch

import (
	"time"

	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/storage"
)

// Policy is the placement, move and discard decision logic. It touches only
// the pools it is given and returns the events describing what it did.
type Policy struct {
	// Now stamps the events. Defaults to time.Now.
	Now func() time.Time
}

func (p Policy) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Decide places o, evaluating in order: ideal heater or cooler, then the
// shelf, then relieving a full shelf by moving misplaced orders to their
// ideal pool, and finally evicting the oldest shelf resident.
func (p Policy) Decide(pools *storage.Pools, o model.Order) []model.Event {
	now := p.now()
	event := func(id string, kind model.EventKind, target model.PoolKind) model.Event {
		return model.Event{Timestamp: now, OrderID: id, Kind: kind, Target: target}
	}

	switch {
	case o.Temp == model.TempHot && pools.Heater.TryAdd(o):
		return []model.Event{event(o.ID, model.EventPlace, model.Heater)}
	case o.Temp == model.TempCold && pools.Cooler.TryAdd(o):
		return []model.Event{event(o.ID, model.EventPlace, model.Cooler)}
	case pools.Shelf.TryAdd(o):
		return []model.Event{event(o.ID, model.EventPlace, model.Shelf)}
	}

	// Both candidates and their capacity checks come from the same snapshot.
	// Each check is against the destination pool, so they cannot interfere.
	cold, hasCold := pools.Shelf.Find(isTemp(model.TempCold))
	hot, hasHot := pools.Shelf.Find(isTemp(model.TempHot))
	coolerFree, heaterFree := pools.Cooler.HasSpace(), pools.Heater.HasSpace()

	var evs []model.Event
	if hasCold && coolerFree {
		evs = append(evs, move(pools.Shelf, pools.Cooler, cold, event))
	}
	if hasHot && heaterFree {
		evs = append(evs, move(pools.Shelf, pools.Heater, hot, event))
	}

	if !pools.Shelf.TryAdd(o) {
		if evicted, ok := pools.Shelf.RemoveOldest(); ok {
			evs = append(evs, event(evicted.ID, model.EventDiscard, model.Shelf))
		}
		pools.Shelf.TryAdd(o)
	}
	return append(evs, event(o.ID, model.EventPlace, model.Shelf))
}

func move(from, to *storage.Pool, o model.Order, event func(string, model.EventKind, model.PoolKind) model.Event) model.Event {
	from.Remove(o.ID)
	to.TryAdd(o)
	return event(o.ID, model.EventMove, to.Kind())
}

func isTemp(t model.TempClass) func(model.Order) bool {
	return func(o model.Order) bool { return o.Temp == t }
}
