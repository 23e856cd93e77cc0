// Package kitchen holds the state shared by the dispatch and pickup roles of
// one simulation run.
//
// Locking discipline: State.mu guards the pools and the per-order status map.
// Every pool mutation and the matching log append happen under State.mu, so
// the log order matches the order of state transitions. The event log has
// its own lock and never calls back into State, so the lock order is always
// State.mu then the log lock.
package kitchen

import (
	"errors"
	"sync"
	"time"

	"github.com/kilianp07/kitchen/core/eventlog"
	"github.com/kilianp07/kitchen/core/metrics"
	"github.com/kilianp07/kitchen/core/model"
	"github.com/kilianp07/kitchen/core/storage"
)

// ErrDuplicateOrder is returned when an order id was already dispatched.
var ErrDuplicateOrder = errors.New("order already dispatched")

// Status is the lifecycle position of an order.
type Status int

const (
	StatusUnknown Status = iota
	StatusResident
	StatusPickedUp
	StatusDiscarded
)

func (s Status) String() string {
	switch s {
	case StatusResident:
		return "resident"
	case StatusPickedUp:
		return "picked_up"
	case StatusDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// OrderState is the tracked position of one order.
type OrderState struct {
	Status   Status
	Pool     model.PoolKind
	PlacedAt time.Time
}

// Decider applies a placement decision to the pools and returns the events
// describing it. It is called with State.mu held and must not block.
type Decider interface {
	Decide(pools *storage.Pools, o model.Order) []model.Event
}

// State is owned by one run and passed by reference to both roles.
type State struct {
	mu     sync.Mutex
	pools  *storage.Pools
	orders map[string]*OrderState
	log    *eventlog.Log
	sink   metrics.Sink
	now    func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithMetrics sets the sink receiving events and occupancy.
func WithMetrics(s metrics.Sink) Option {
	return func(st *State) {
		if s != nil {
			st.sink = s
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(st *State) {
		if now != nil {
			st.now = now
		}
	}
}

// NewState creates empty pools from cfg and an empty log.
func NewState(cfg storage.Config, opts ...Option) *State {
	s := &State{
		pools:  storage.NewPools(cfg),
		orders: make(map[string]*OrderState),
		log:    eventlog.New(),
		sink:   metrics.NopSink{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mu.Lock()
	s.recordOccupancy()
	s.mu.Unlock()
	return s
}

// Log returns the shared event log.
func (s *State) Log() *eventlog.Log { return s.log }

// Now returns the current time of the state clock.
func (s *State) Now() time.Time { return s.now() }

// Dispatch runs d for a new order and commits the resulting events.
func (s *State) Dispatch(o model.Order, d Decider) ([]model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.orders[o.ID]; seen {
		return nil, ErrDuplicateOrder
	}
	evs := d.Decide(s.pools, o)
	s.commit(evs)
	return evs, nil
}

// Pickup removes a resident order, searching the heater, the cooler and the
// shelf in turn, and records the pickup. It returns false without recording
// anything when the order is no longer resident.
func (s *State) Pickup(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.orders[id]
	if !ok || st.Status != StatusResident {
		return model.Event{}, false
	}
	ev := model.Event{Timestamp: s.now(), OrderID: id, Kind: model.EventPickup}
	for _, kind := range model.PoolKinds {
		if s.pools.Remove(kind, id) {
			ev.Target = kind
			break
		}
	}
	s.commit([]model.Event{ev})
	return ev, true
}

// Lookup returns the tracked state of an order.
func (s *State) Lookup(id string) (OrderState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.orders[id]
	if !ok {
		return OrderState{}, false
	}
	return *st, true
}

// IsDiscarded reports whether the order was evicted.
func (s *State) IsDiscarded(id string) bool {
	st, ok := s.Lookup(id)
	return ok && st.Status == StatusDiscarded
}

// Occupancy snapshots the resident count of every pool.
func (s *State) Occupancy() map[model.PoolKind]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pools.Occupancy()
}

// Residents returns the ids resident in a pool in insertion order.
func (s *State) Residents(kind model.PoolKind) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool := s.pools.Get(kind)
	if pool == nil {
		return nil
	}
	members := pool.Members()
	ids := make([]string, len(members))
	for i, o := range members {
		ids[i] = o.ID
	}
	return ids
}

// commit updates order tracking, appends to the log and feeds metrics.
// Caller holds s.mu.
func (s *State) commit(evs []model.Event) {
	if len(evs) == 0 {
		return
	}
	for _, ev := range evs {
		st := s.orders[ev.OrderID]
		if st == nil {
			st = &OrderState{}
			s.orders[ev.OrderID] = st
		}
		switch ev.Kind {
		case model.EventPlace:
			st.Status = StatusResident
			st.Pool = ev.Target
			st.PlacedAt = ev.Timestamp
		case model.EventMove:
			st.Pool = ev.Target
		case model.EventPickup:
			st.Status = StatusPickedUp
			st.Pool = ""
		case model.EventDiscard:
			st.Status = StatusDiscarded
			st.Pool = ""
		}
		s.sink.RecordEvent(ev)
	}
	s.log.Append(evs...)
	s.recordOccupancy()
}

func (s *State) recordOccupancy() {
	for _, kind := range model.PoolKinds {
		pool := s.pools.Get(kind)
		s.sink.RecordOccupancy(kind, pool.Count(), pool.Capacity())
	}
}
