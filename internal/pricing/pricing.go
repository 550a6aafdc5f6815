// Package pricing resolves unit prices and cart line identity keys.
package pricing

import (
	"strings"

	"wahibashop/internal/domain"
)

// ResolveUnitPrice returns the price of the selected variation, or the
// product's base price when no variation is selected or the id does not
// match any variation. An unknown variation id is not an error.
func ResolveUnitPrice(p domain.Product, variationID *string) int64 {
	id := normalizeVariation(variationID)
	if id == "" {
		return p.PriceCents
	}
	for _, v := range p.Variations {
		if v.ID == id {
			return v.PriceCents
		}
	}
	return p.PriceCents
}

// ResolveVariationName returns the display name of the selected
// variation, or "" when none matches.
func ResolveVariationName(p domain.Product, variationID *string) string {
	id := normalizeVariation(variationID)
	if id == "" {
		return ""
	}
	for _, v := range p.Variations {
		if v.ID == id {
			return v.Name
		}
	}
	return ""
}

// IdentityKey composes the composite key identifying a cart line. A
// nil, empty, or blank variation id all collapse to the same
// "no variation" case.
func IdentityKey(productID string, variationID *string) string {
	return productID + "\x00" + normalizeVariation(variationID)
}

// SameLine reports whether a cart line matches the given composite key
// parts.
func SameLine(l domain.CartLine, productID string, variationID *string) bool {
	return IdentityKey(l.ProductID, l.VariationID) == IdentityKey(productID, variationID)
}

func normalizeVariation(variationID *string) string {
	if variationID == nil {
		return ""
	}
	return strings.TrimSpace(*variationID)
}
