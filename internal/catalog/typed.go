package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"wahibashop/internal/domain"
)

// Typed accessors over the generic document operations. Handlers and
// services use these; the raw Snapshot/Upsert surface stays available
// for the subscription path.

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return snapshotAs[domain.Product](ctx, s, ColProducts)
}

func (s *Store) Product(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := s.get(ctx, ColProducts, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SaveProduct(ctx context.Context, p domain.Product) error {
	return s.Upsert(ctx, ColProducts, p.ID, p)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.Remove(ctx, ColProducts, id)
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	return snapshotAs[domain.Order](ctx, s, ColOrders)
}

func (s *Store) AddOrder(ctx context.Context, o domain.Order) error {
	return s.Upsert(ctx, ColOrders, o.ID, o)
}

// UpdateOrderStatus patches only the status field of the stored order
// document; nothing else is rewritten or revalidated.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	const q = `
UPDATE orders
SET doc = jsonb_set(doc, '{status}', to_jsonb($2::text))
WHERE id = $1
`
	tag, err := s.pool.Exec(ctx, q, NormalizeID(id), string(status))
	if err != nil {
		return &domain.PersistenceError{Op: "update status", Collection: string(ColOrders), Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	s.announce(ctx, ColOrders)
	return nil
}

func (s *Store) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	return snapshotAs[domain.ContactMessage](ctx, s, ColMessages)
}

func (s *Store) AddMessage(ctx context.Context, m domain.ContactMessage) error {
	return s.Upsert(ctx, ColMessages, m.ID, m)
}

func (s *Store) HeroImages(ctx context.Context) ([]domain.HeroImage, error) {
	return snapshotAs[domain.HeroImage](ctx, s, ColHeroImages)
}

func (s *Store) AddHeroImage(ctx context.Context, img domain.HeroImage) error {
	return s.Upsert(ctx, ColHeroImages, img.ID, img)
}

func (s *Store) RemoveHeroImage(ctx context.Context, id string) error {
	return s.Remove(ctx, ColHeroImages, id)
}

func (s *Store) ClientResults(ctx context.Context) ([]domain.ClientResult, error) {
	return snapshotAs[domain.ClientResult](ctx, s, ColClientResults)
}

func (s *Store) AddClientResult(ctx context.Context, r domain.ClientResult) error {
	return s.Upsert(ctx, ColClientResults, r.ID, r)
}

func (s *Store) RemoveClientResult(ctx context.Context, id string) error {
	return s.Remove(ctx, ColClientResults, id)
}

func (s *Store) Testimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return snapshotAs[domain.Testimonial](ctx, s, ColTestimonials)
}

func (s *Store) AddTestimonial(ctx context.Context, t domain.Testimonial) error {
	return s.Upsert(ctx, ColTestimonials, t.ID, t)
}

func (s *Store) RemoveTestimonial(ctx context.Context, id string) error {
	return s.Remove(ctx, ColTestimonials, id)
}

func snapshotAs[T any](ctx context.Context, s *Store, col Collection) ([]T, error) {
	snap, err := s.Snapshot(ctx, col)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(snap))
	for _, raw := range snap {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", col, err)
		}
		out = append(out, v)
	}
	return out, nil
}
