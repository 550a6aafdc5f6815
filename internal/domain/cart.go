package domain

// CartLine is one product(+variation) entry in a cart. The composite
// key (ProductID, VariationID-or-nil) is unique within a cart.
type CartLine struct {
	ProductID        string    `json:"productId"`
	VariationID      *string   `json:"variationId,omitempty"`
	Quantity         int       `json:"quantity"`
	PriceAtTimeCents int64     `json:"priceAtTimeCents"`
	ProductName      Localized `json:"productName"`
	VariationName    string    `json:"variationName,omitempty"`
	Image            string    `json:"image,omitempty"`
}

// Clone returns an independent copy of the line, including the
// VariationID pointer target and the localized name map.
func (l CartLine) Clone() CartLine {
	out := l
	if l.VariationID != nil {
		v := *l.VariationID
		out.VariationID = &v
	}
	if l.ProductName != nil {
		name := make(Localized, len(l.ProductName))
		for k, v := range l.ProductName {
			name[k] = v
		}
		out.ProductName = name
	}
	return out
}

// CloneLines deep-copies a cart line slice so later mutation of the
// source cannot reach the copy.
func CloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
