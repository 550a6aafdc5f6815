// Package cart implements the aggregation rules for a session cart.
// Every operation is a pure transformation: the input slice is never
// mutated and a fresh slice is returned.
package cart

import (
	"wahibashop/internal/domain"
	"wahibashop/internal/pricing"
)

// AddLine merges line into lines. When a line with the same identity
// key already exists its quantity grows by line.Quantity and every
// other field keeps the existing line's value, so a repeat add does
// not refresh the captured price or display fields. Otherwise line is
// appended with its quantity clamped to at least 1.
func AddLine(lines []domain.CartLine, line domain.CartLine) []domain.CartLine {
	qty := line.Quantity
	if qty < 1 {
		qty = 1
	}

	for i, existing := range lines {
		if pricing.SameLine(existing, line.ProductID, line.VariationID) {
			next := domain.CloneLines(lines)
			next[i].Quantity = existing.Quantity + qty
			return next
		}
	}

	line.Quantity = qty
	next := domain.CloneLines(lines)
	return append(next, line.Clone())
}

// RemoveLine drops the line matching the identity key. Removing an
// absent line is a no-op.
func RemoveLine(lines []domain.CartLine, productID string, variationID *string) []domain.CartLine {
	next := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if pricing.SameLine(l, productID, variationID) {
			continue
		}
		next = append(next, l.Clone())
	}
	return next
}

// SetQuantity sets the matching line's quantity, clamped to a minimum
// of 1. Reducing to zero is not expressible here; RemoveLine is the
// explicit way to drop a line.
func SetQuantity(lines []domain.CartLine, productID string, variationID *string, quantity int) []domain.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	next := domain.CloneLines(lines)
	for i, l := range next {
		if pricing.SameLine(l, productID, variationID) {
			next[i].Quantity = quantity
		}
	}
	return next
}

// Increment raises the matching line's quantity by one.
func Increment(lines []domain.CartLine, productID string, variationID *string) []domain.CartLine {
	next := domain.CloneLines(lines)
	for i, l := range next {
		if pricing.SameLine(l, productID, variationID) {
			next[i].Quantity = l.Quantity + 1
		}
	}
	return next
}

// Decrement lowers the matching line's quantity by one, flooring at 1.
func Decrement(lines []domain.CartLine, productID string, variationID *string) []domain.CartLine {
	next := domain.CloneLines(lines)
	for i, l := range next {
		if pricing.SameLine(l, productID, variationID) && l.Quantity > 1 {
			next[i].Quantity = l.Quantity - 1
		}
	}
	return next
}

// Total returns the cart total in cents: Σ priceAtTime × quantity.
func Total(lines []domain.CartLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.PriceAtTimeCents * int64(l.Quantity)
	}
	return sum
}

// Count returns the total number of units across all lines.
func Count(lines []domain.CartLine) int {
	var n int
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}
