package order

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wahibashop/internal/domain"
)

func strPtr(v string) *string { return &v }

func TestBuildEmptyCart(t *testing.T) {
	_, err := Build(nil, domain.Customer{}, time.Now())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	_, err = Build([]domain.CartLine{}, domain.Customer{}, time.Now())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestBuildSnapshot(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: "p1", VariationID: strPtr("v1"), Quantity: 1, PriceAtTimeCents: 19500},
		{ProductID: "p2", Quantity: 2, PriceAtTimeCents: 4500},
	}
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	o, err := Build(lines, domain.Customer{FirstName: "Wahiba"}, now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("status = %q, want pending", o.Status)
	}
	if o.TotalCents != 28500 {
		t.Fatalf("total = %d, want 28500", o.TotalCents)
	}
	if !o.Date.Equal(now) {
		t.Fatalf("date = %v, want %v", o.Date, now)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}

	// Mutating the source cart afterwards must not reach the order.
	lines[0].Quantity = 99
	*lines[0].VariationID = "changed"
	if o.Items[0].Quantity != 1 {
		t.Fatalf("order item quantity changed to %d", o.Items[0].Quantity)
	}
	if *o.Items[0].VariationID != "v1" {
		t.Fatalf("order item variation changed to %q", *o.Items[0].VariationID)
	}
	if o.TotalCents != 28500 {
		t.Fatalf("order total drifted to %d", o.TotalCents)
	}
}

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1700000381904)
	id := NewID(now)
	if id != "ORD-381904" {
		t.Fatalf("id = %q, want ORD-381904", id)
	}
	if !strings.HasPrefix(NewID(time.Now()), "ORD-") {
		t.Fatal("id must carry the ORD- prefix")
	}
}
