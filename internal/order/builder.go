// Package order snapshots carts into immutable order records and
// manages the order lifecycle.
package order

import (
	"strconv"
	"time"

	"wahibashop/internal/cart"
	"wahibashop/internal/domain"
)

// NewID derives an order identifier from the last six decimal digits
// of the epoch-millisecond clock, e.g. "ORD-381904". Two orders placed
// at the same millisecond modulo 1e6 would collide; the volume this
// shop handles makes that an accepted tradeoff.
func NewID(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "ORD-" + ms
}

// Build snapshots the cart lines into a pending order. The items are
// deep copies, so mutating the source cart afterwards cannot touch the
// order. Build does not persist anything and does not clear the cart;
// both are separate caller steps, so a persistence failure leaves the
// cart intact for retry.
func Build(lines []domain.CartLine, customer domain.Customer, now time.Time) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	return &domain.Order{
		ID:         NewID(now),
		Date:       now.UTC(),
		Status:     domain.StatusPending,
		Customer:   customer,
		Items:      domain.CloneLines(lines),
		TotalCents: cart.Total(lines),
	}, nil
}
