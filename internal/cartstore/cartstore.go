// Package cartstore persists session carts in Redis. Each session
// owns exactly one cart, stored as a JSON array of cart lines.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wahibashop/internal/domain"
	"wahibashop/internal/redisx"
)

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load restores the cart for a session. A missing key is an empty
// cart. A stored value that no longer parses is also an empty cart: a
// corrupt cache must never block the session, so the bad value is
// dropped rather than surfaced.
func (s *Store) Load(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return []domain.CartLine{}, nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load cart", Err: err}
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		_ = s.rdb.Del(ctx, key(sessionID)).Err()
		return []domain.CartLine{}, nil
	}
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return lines, nil
}

// Save overwrites the session cart. Called after every mutation.
func (s *Store) Save(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.rdb.Set(ctx, key(sessionID), payload, redisx.TTLCart).Err(); err != nil {
		return &domain.PersistenceError{Op: "save cart", Err: err}
	}
	return nil
}

// Clear drops the session cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, key(sessionID)).Err(); err != nil {
		return &domain.PersistenceError{Op: "clear cart", Err: err}
	}
	return nil
}

func key(sessionID string) string {
	return fmt.Sprintf(redisx.KeyCart, sessionID)
}
