// Package storage implements the three capacity-bounded pools an order can
// reside in: the heater, the cooler and the overflow shelf.
//
// Pools are not synchronized. Callers serialize access through the lock owned
// by kitchen.State so that multi-pool transitions such as a move are atomic.
package storage
