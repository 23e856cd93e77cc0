package storage

import (
	"fmt"

	"github.com/kilianp07/kitchen/core/model"
)

// Pool is a bounded collection of resident orders kept in insertion order.
type Pool struct {
	kind     model.PoolKind
	capacity int
	members  []model.Order
}

// NewPool creates an empty pool. Capacity must be positive.
func NewPool(kind model.PoolKind, capacity int) *Pool {
	return &Pool{kind: kind, capacity: capacity, members: make([]model.Order, 0, capacity)}
}

// Kind returns the pool name.
func (p *Pool) Kind() model.PoolKind { return p.kind }

// Capacity returns the maximum number of residents.
func (p *Pool) Capacity() int { return p.capacity }

// Count returns the current number of residents.
func (p *Pool) Count() int { return len(p.members) }

// HasSpace reports whether another order fits.
func (p *Pool) HasSpace() bool { return len(p.members) < p.capacity }

// TryAdd appends the order when the pool has spare capacity.
func (p *Pool) TryAdd(o model.Order) bool {
	if !p.HasSpace() {
		return false
	}
	p.members = append(p.members, o)
	return true
}

// Remove deletes the order with the given id. It returns false when absent.
func (p *Pool) Remove(id string) bool {
	for i, o := range p.members {
		if o.ID == id {
			p.members = append(p.members[:i], p.members[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the first resident, in insertion order, matching pred.
func (p *Pool) Find(pred func(model.Order) bool) (model.Order, bool) {
	for _, o := range p.members {
		if pred(o) {
			return o, true
		}
	}
	return model.Order{}, false
}

// Contains reports whether the order id is resident.
func (p *Pool) Contains(id string) bool {
	_, ok := p.Find(func(o model.Order) bool { return o.ID == id })
	return ok
}

// RemoveOldest evicts the first-inserted resident.
func (p *Pool) RemoveOldest() (model.Order, bool) {
	if len(p.members) == 0 {
		return model.Order{}, false
	}
	o := p.members[0]
	p.members = append(p.members[:0], p.members[1:]...)
	return o, true
}

// Members returns a copy of the residents in insertion order.
func (p *Pool) Members() []model.Order {
	out := make([]model.Order, len(p.members))
	copy(out, p.members)
	return out
}

func (p *Pool) String() string {
	return fmt.Sprintf("%s(%d/%d)", p.kind, len(p.members), p.capacity)
}
