// Package eventlog holds the append-only record of order lifecycle events.
package eventlog

import (
	"sync"

	"github.com/kilianp07/kitchen/core/model"
)

// Query filters events. Zero fields match everything.
type Query struct {
	OrderID string
	Kind    model.EventKind
	Target  model.PoolKind
}

func (q Query) match(e model.Event) bool {
	if q.OrderID != "" && e.OrderID != q.OrderID {
		return false
	}
	if q.Kind != "" && e.Kind != q.Kind {
		return false
	}
	if q.Target != "" && e.Target != q.Target {
		return false
	}
	return true
}

// Log is a goroutine-safe append-only event sequence. Events are never
// modified or removed once appended.
type Log struct {
	mu     sync.RWMutex
	events []model.Event
}

// New creates an empty log.
func New() *Log { return &Log{} }

// Append records the events in order.
func (l *Log) Append(evs ...model.Event) {
	l.mu.Lock()
	l.events = append(l.events, evs...)
	l.mu.Unlock()
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}

// Events returns a copy of all events in append order.
func (l *Log) Events() []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Query returns the events matching q in append order.
func (l *Log) Query(q Query) []model.Event {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var res []model.Event
	for _, e := range l.events {
		if q.match(e) {
			res = append(res, e)
		}
	}
	return res
}

// HasDiscard scans the log for a discard of the order id.
func (l *Log) HasDiscard(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.events {
		if e.OrderID == id && e.Kind == model.EventDiscard {
			return true
		}
	}
	return false
}

// CountByKind tallies events per kind.
func (l *Log) CountByKind() map[model.EventKind]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	counts := make(map[model.EventKind]int, 4)
	for _, e := range l.events {
		counts[e.Kind]++
	}
	return counts
}
