// Package catalog is the shared document store behind the storefront:
// products, orders, contact messages and reference data, persisted in
// Postgres with live change subscriptions fanned out over Redis
// pub/sub so every running instance sees every write.
package catalog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"wahibashop/internal/redisx"
)

// Collection names one of the tracked record sets.
type Collection string

const (
	ColProducts      Collection = "products"
	ColOrders        Collection = "orders"
	ColMessages      Collection = "messages"
	ColHeroImages    Collection = "hero_images"
	ColClientResults Collection = "client_results"
	ColTestimonials  Collection = "testimonials"
)

// Collections lists every tracked collection, in reset order.
var Collections = []Collection{
	ColProducts,
	ColOrders,
	ColMessages,
	ColHeroImages,
	ColClientResults,
	ColTestimonials,
}

// dateSorted marks collections whose snapshots are delivered sorted
// descending by date. This is a view convenience, not a storage-order
// guarantee.
var dateSorted = map[Collection]bool{
	ColOrders:   true,
	ColMessages: true,
}

// Seeds maps a collection to the default records written on first
// init. Records must carry fixed ids so seeding stays idempotent.
type Seeds map[Collection][]any

type Store struct {
	pool   *pgxpool.Pool
	rdb    *redis.Client
	logger *log.Logger
	hub    *hub

	// dispatchMu serializes change-driven refreshes with the initial
	// snapshot delivery in Subscribe, so a subscriber never receives
	// an older snapshot after a newer one.
	dispatchMu sync.Mutex

	pubsub *redis.PubSub
	done   chan struct{}
}

func New(pool *pgxpool.Pool, rdb *redis.Client, logger *log.Logger) *Store {
	return &Store{
		pool:   pool,
		rdb:    rdb,
		logger: logger,
		hub:    newHub(),
	}
}

// Start begins listening for change announcements and pushing fresh
// snapshots to subscribers. It returns once the listener goroutine is
// running; Close stops it.
func (s *Store) Start(ctx context.Context) {
	s.pubsub = s.rdb.PSubscribe(ctx, fmt.Sprintf(redisx.ChannelStoreChanged, "*"))
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		prefix := fmt.Sprintf(redisx.ChannelStoreChanged, "")
		for msg := range s.pubsub.Channel() {
			col := Collection(strings.TrimPrefix(msg.Channel, prefix))
			s.refresh(ctx, col)
		}
	}()
}

// refresh re-queries a collection and pushes the fresh snapshot to its
// subscribers.
func (s *Store) refresh(ctx context.Context, col Collection) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	if !s.hub.hasSubscribers(col) {
		return
	}
	snap, err := s.Snapshot(ctx, col)
	if err != nil {
		s.logger.Printf("snapshot %s for subscribers: %v", col, err)
		return
	}
	s.hub.dispatch(col, snap)
}

// Close cancels every subscription and stops the change listener. No
// subscriber callback fires after Close returns.
func (s *Store) Close() {
	s.hub.closeAll()
	if s.pubsub != nil {
		_ = s.pubsub.Close()
		<-s.done
	}
}

// announce publishes a change marker for the collection. Writes must
// not fail because the announcement did, so errors are only logged.
func (s *Store) announce(ctx context.Context, col Collection) {
	channel := fmt.Sprintf(redisx.ChannelStoreChanged, col)
	if err := s.rdb.Publish(ctx, channel, "1").Err(); err != nil {
		s.logger.Printf("announce change on %s: %v", col, err)
	}
}

func tableFor(col Collection) (string, error) {
	for _, known := range Collections {
		if col == known {
			// Collection names double as table names; the whitelist
			// above keeps them safe to interpolate.
			return string(col), nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", col)
}
