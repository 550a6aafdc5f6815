package catalog

import (
	"encoding/json"
	"sync"
)

// SnapshotFunc receives the full ordered contents of a collection
// after any of its members changed.
type SnapshotFunc func(records []json.RawMessage)

type subscriber struct {
	mu     sync.Mutex
	closed bool
	fn     SnapshotFunc
}

// deliver invokes the callback unless the subscription was cancelled.
// The per-subscriber lock makes cancellation a hard cut: once cancel
// returns, no further callback can be running or start.
func (sub *subscriber) deliver(records []json.RawMessage) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.fn(records)
}

func (sub *subscriber) close() {
	sub.mu.Lock()
	sub.closed = true
	sub.mu.Unlock()
}

type hub struct {
	mu   sync.RWMutex
	subs map[Collection]map[*subscriber]struct{}
}

func newHub() *hub {
	return &hub{subs: make(map[Collection]map[*subscriber]struct{})}
}

func (h *hub) add(col Collection, fn SnapshotFunc) (*subscriber, func()) {
	sub := &subscriber{fn: fn}

	h.mu.Lock()
	if h.subs[col] == nil {
		h.subs[col] = make(map[*subscriber]struct{})
	}
	h.subs[col][sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		sub.close()
		h.mu.Lock()
		delete(h.subs[col], sub)
		h.mu.Unlock()
	}
	return sub, cancel
}

func (h *hub) hasSubscribers(col Collection) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[col]) > 0
}

func (h *hub) dispatch(col Collection, records []json.RawMessage) {
	h.mu.RLock()
	targets := make([]*subscriber, 0, len(h.subs[col]))
	for sub := range h.subs[col] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	for _, sub := range targets {
		sub.deliver(records)
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	for _, subs := range h.subs {
		for sub := range subs {
			sub.close()
		}
	}
	h.subs = make(map[Collection]map[*subscriber]struct{})
	h.mu.Unlock()
}
