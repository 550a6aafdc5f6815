package catalog

import "context"

// Subscribe registers fn to receive the full ordered snapshot of a
// collection whenever any of its members changes. The current snapshot
// is delivered once right away. The returned cancel must be called on
// teardown; after it returns, fn will not be invoked again.
func (s *Store) Subscribe(ctx context.Context, col Collection, fn SnapshotFunc) (func(), error) {
	if _, err := tableFor(col); err != nil {
		return nil, err
	}

	// Holding dispatchMu across query, registration and first delivery
	// keeps a concurrent refresh from slipping an older snapshot in
	// after the initial one.
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	snap, err := s.Snapshot(ctx, col)
	if err != nil {
		return nil, err
	}

	sub, cancel := s.hub.add(col, fn)
	sub.deliver(snap)

	return cancel, nil
}
