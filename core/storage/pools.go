package storage

import (
	"fmt"

	"github.com/kilianp07/kitchen/core/model"
)

// Config defines the pool capacities.
type Config struct {
	HeaterCapacity int `json:"heater_capacity" yaml:"heater_capacity"`
	CoolerCapacity int `json:"cooler_capacity" yaml:"cooler_capacity"`
	ShelfCapacity  int `json:"shelf_capacity" yaml:"shelf_capacity"`
}

// SetDefaults applies the standard kitchen layout.
func (c *Config) SetDefaults() {
	if c.HeaterCapacity == 0 {
		c.HeaterCapacity = 6
	}
	if c.CoolerCapacity == 0 {
		c.CoolerCapacity = 6
	}
	if c.ShelfCapacity == 0 {
		c.ShelfCapacity = 12
	}
}

// Validate checks that every capacity is positive.
func (c Config) Validate() error {
	if c.HeaterCapacity <= 0 || c.CoolerCapacity <= 0 || c.ShelfCapacity <= 0 {
		return fmt.Errorf("pool capacities must be positive: heater=%d cooler=%d shelf=%d",
			c.HeaterCapacity, c.CoolerCapacity, c.ShelfCapacity)
	}
	return nil
}

// Pools groups the heater, cooler and shelf.
type Pools struct {
	Heater *Pool
	Cooler *Pool
	Shelf  *Pool
}

// NewPools builds empty pools from cfg.
func NewPools(cfg Config) *Pools {
	return &Pools{
		Heater: NewPool(model.Heater, cfg.HeaterCapacity),
		Cooler: NewPool(model.Cooler, cfg.CoolerCapacity),
		Shelf:  NewPool(model.Shelf, cfg.ShelfCapacity),
	}
}

// Get returns the pool of the given kind, or nil for an unknown kind.
func (p *Pools) Get(kind model.PoolKind) *Pool {
	switch kind {
	case model.Heater:
		return p.Heater
	case model.Cooler:
		return p.Cooler
	case model.Shelf:
		return p.Shelf
	default:
		return nil
	}
}

// TryAdd adds the order to the named pool.
func (p *Pools) TryAdd(kind model.PoolKind, o model.Order) bool {
	pool := p.Get(kind)
	return pool != nil && pool.TryAdd(o)
}

// Remove deletes the order id from the named pool.
func (p *Pools) Remove(kind model.PoolKind, id string) bool {
	pool := p.Get(kind)
	return pool != nil && pool.Remove(id)
}

// Find searches the named pool.
func (p *Pools) Find(kind model.PoolKind, pred func(model.Order) bool) (model.Order, bool) {
	pool := p.Get(kind)
	if pool == nil {
		return model.Order{}, false
	}
	return pool.Find(pred)
}

// Count returns the number of residents of the named pool.
func (p *Pools) Count(kind model.PoolKind) int {
	pool := p.Get(kind)
	if pool == nil {
		return 0
	}
	return pool.Count()
}

// Occupancy snapshots resident counts for every pool.
func (p *Pools) Occupancy() map[model.PoolKind]int {
	return map[model.PoolKind]int{
		model.Heater: p.Heater.Count(),
		model.Cooler: p.Cooler.Count(),
		model.Shelf:  p.Shelf.Count(),
	}
}
