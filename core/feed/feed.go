// Package feed supplies the ordered list of orders consumed by a run.
package feed

import (
	"context"
	"errors"

	"github.com/kilianp07/kitchen/core/model"
)

// ErrFeedUnavailable reports that the orders could not be obtained.
var ErrFeedUnavailable = errors.New("order feed unavailable")

// Feed is the upstream order source.
type Feed interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
}

// Static serves a fixed list of orders.
type Static struct {
	Orders []model.Order
}

// FetchOrders returns a copy of the configured orders.
func (s Static) FetchOrders(ctx context.Context) ([]model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFeedUnavailable, err)
	}
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// Func adapts a function to the Feed interface.
type Func func(ctx context.Context) ([]model.Order, error)

func (f Func) FetchOrders(ctx context.Context) ([]model.Order, error) { return f(ctx) }
