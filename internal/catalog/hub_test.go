package catalog

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestHubDispatchAndCancel(t *testing.T) {
	h := newHub()

	var mu sync.Mutex
	var got int
	_, cancel := h.add(ColProducts, func(_ []json.RawMessage) {
		mu.Lock()
		got++
		mu.Unlock()
	})

	h.dispatch(ColProducts, nil)
	h.dispatch(ColProducts, nil)
	cancel()
	h.dispatch(ColProducts, nil)

	mu.Lock()
	defer mu.Unlock()
	if got != 2 {
		t.Fatalf("expected 2 deliveries before cancel, got %d", got)
	}
}

func TestHubCancelIsIdempotentAndScoped(t *testing.T) {
	h := newHub()

	var products, orders int
	_, cancelProducts := h.add(ColProducts, func(_ []json.RawMessage) { products++ })
	_, cancelOrders := h.add(ColOrders, func(_ []json.RawMessage) { orders++ })

	cancelProducts()
	cancelProducts()

	h.dispatch(ColProducts, nil)
	h.dispatch(ColOrders, nil)

	if products != 0 {
		t.Fatalf("cancelled subscriber must not fire, got %d", products)
	}
	if orders != 1 {
		t.Fatalf("other collection's subscriber must still fire, got %d", orders)
	}
	cancelOrders()
}

func TestHubCloseAllStopsEverything(t *testing.T) {
	h := newHub()
	var fired bool
	h.add(ColMessages, func(_ []json.RawMessage) { fired = true })

	h.closeAll()
	h.dispatch(ColMessages, nil)

	if fired {
		t.Fatal("no callback may fire after closeAll")
	}
	if h.hasSubscribers(ColMessages) {
		t.Fatal("closeAll must drop all registrations")
	}
}
