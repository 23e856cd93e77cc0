package model

import "fmt"

// TempClass is the ideal storage temperature of an order.
type TempClass string

const (
	TempHot  TempClass = "hot"
	TempCold TempClass = "cold"
	TempRoom TempClass = "room"
)

// ParseTempClass converts the feed representation into a TempClass.
func ParseTempClass(s string) (TempClass, error) {
	switch TempClass(s) {
	case TempHot, TempCold, TempRoom:
		return TempClass(s), nil
	default:
		return "", fmt.Errorf("unknown temperature class %q", s)
	}
}

// Order is an immutable kitchen order received from the feed.
type Order struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Temp TempClass `json:"temp"`
	// Freshness is the freshness budget in seconds. It is carried through
	// unchanged and never enforced as an expiry.
	Freshness int `json:"freshness"`
}

// IdealPool returns the pool matching the order temperature class.
func (o Order) IdealPool() PoolKind {
	switch o.Temp {
	case TempHot:
		return Heater
	case TempCold:
		return Cooler
	default:
		return Shelf
	}
}

// PoolKind names one of the three storage pools.
type PoolKind string

const (
	Heater PoolKind = "heater"
	Cooler PoolKind = "cooler"
	Shelf  PoolKind = "shelf"
)

// PoolKinds lists the pools in the order pickup searches them.
var PoolKinds = []PoolKind{Heater, Cooler, Shelf}
