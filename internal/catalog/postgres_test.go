package catalog

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"wahibashop/internal/domain"
	"wahibashop/internal/migrate"
	"wahibashop/internal/redisx"
)

// Integration tests against a live Postgres; run with TEST_DB_DSN set.
// Change announcements go to a throwaway Redis address: publish
// failures are logged and must never fail a write.

func testStore(ctx context.Context, t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	logger := log.New(io.Discard, "", 0)
	return New(pool, redisx.New("localhost:0"), logger), pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE products, orders, messages, hero_images, client_results, testimonials`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	records := []any{
		domain.Testimonial{ID: "t1", Text: "super", Author: "A"},
		domain.Testimonial{ID: "t2", Text: "bien", Author: "B"},
	}

	if err := store.SeedIfEmpty(ctx, ColTestimonials, records); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := store.SeedIfEmpty(ctx, ColTestimonials, records); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	got, err := store.Testimonials(ctx)
	if err != nil {
		t.Fatalf("Testimonials: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected exactly one set of records, got %d", len(got))
	}
}

func TestSeedIfEmptySkipsPopulatedCollection(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	if err := store.AddTestimonial(ctx, domain.Testimonial{ID: "existing", Text: "x", Author: "A"}); err != nil {
		t.Fatalf("AddTestimonial: %v", err)
	}
	if err := store.SeedIfEmpty(ctx, ColTestimonials, []any{domain.Testimonial{ID: "seeded", Text: "y", Author: "B"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := store.Testimonials(ctx)
	if err != nil {
		t.Fatalf("Testimonials: %v", err)
	}
	if len(got) != 1 || got[0].ID != "existing" {
		t.Fatalf("seed against populated collection must be a no-op, got %+v", got)
	}
}

func TestUpsertReplacesAndSanitizes(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	p := domain.Product{ID: "p/1", Slug: "s", Name: domain.Localized{"fr": "Avant"}, PriceCents: 1000}
	if err := store.SaveProduct(ctx, p); err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	got, err := store.Product(ctx, "p-1")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if got.Name["fr"] != "Avant" {
		t.Fatalf("unexpected product %+v", got)
	}

	p.ID = "p-1"
	p.Name = domain.Localized{"fr": "Après"}
	if err := store.SaveProduct(ctx, p); err != nil {
		t.Fatalf("second SaveProduct: %v", err)
	}
	got, err = store.Product(ctx, "p-1")
	if err != nil {
		t.Fatalf("Product after replace: %v", err)
	}
	if got.Name["fr"] != "Après" {
		t.Fatalf("upsert must fully replace, got %+v", got)
	}

	products, err := store.Products(ctx)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected a single record, got %d", len(products))
	}
}

func TestOrdersSnapshotSortedByDateDesc(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		o := domain.Order{ID: id, Date: base.Add(time.Duration(i) * time.Hour), Status: domain.StatusPending}
		if err := store.AddOrder(ctx, o); err != nil {
			t.Fatalf("AddOrder %s: %v", id, err)
		}
	}

	got, err := store.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(got))
	}
	for i, want := range []string{"ORD-3", "ORD-2", "ORD-1"} {
		if got[i].ID != want {
			t.Fatalf("orders not newest-first: position %d is %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestUpdateOrderStatusIsPartial(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	o := domain.Order{
		ID:         "ORD-77",
		Date:       time.Now().UTC().Truncate(time.Second),
		Status:     domain.StatusPending,
		Customer:   domain.Customer{FirstName: "W", LastName: "C", Email: "w@x", Address: "a", Phone: "p"},
		TotalCents: 28500,
	}
	if err := store.AddOrder(ctx, o); err != nil {
		t.Fatalf("AddOrder: %v", err)
	}

	if err := store.UpdateOrderStatus(ctx, "ORD-77", domain.StatusShipped); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}

	got, err := store.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if got[0].Status != domain.StatusShipped {
		t.Fatalf("status = %q, want shipped", got[0].Status)
	}
	if got[0].TotalCents != 28500 || got[0].Customer.FirstName != "W" {
		t.Fatalf("status update must not touch other fields: %+v", got[0])
	}

	if err := store.UpdateOrderStatus(ctx, "ORD-missing", domain.StatusShipped); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown order, got %v", err)
	}
}

func TestResetAllReseedsCatalogOnly(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	seeds := Seeds{
		ColProducts:     []any{domain.Product{ID: "seed-p", Slug: "s", Name: domain.Localized{"fr": "P"}, PriceCents: 100}},
		ColTestimonials: []any{domain.Testimonial{ID: "seed-t", Text: "x", Author: "A"}},
	}

	if err := store.AddOrder(ctx, domain.Order{ID: "ORD-9", Date: time.Now().UTC(), Status: domain.StatusPending}); err != nil {
		t.Fatalf("AddOrder: %v", err)
	}
	if err := store.SaveProduct(ctx, domain.Product{ID: "old-p", Slug: "o", Name: domain.Localized{"fr": "Old"}, PriceCents: 1}); err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	if err := store.ResetAll(ctx, seeds); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	orders, err := store.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("orders must reset to empty, got %d", len(orders))
	}

	products, err := store.Products(ctx)
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "seed-p" {
		t.Fatalf("products must be reseeded from defaults, got %+v", products)
	}

	testimonials, err := store.Testimonials(ctx)
	if err != nil {
		t.Fatalf("Testimonials: %v", err)
	}
	if len(testimonials) != 1 || testimonials[0].ID != "seed-t" {
		t.Fatalf("testimonials must be reseeded, got %+v", testimonials)
	}
}

func TestSubscribeDeliversSnapshotsInOrder(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	if err := store.AddTestimonial(ctx, domain.Testimonial{ID: "t1", Text: "first", Author: "A"}); err != nil {
		t.Fatalf("AddTestimonial: %v", err)
	}

	var snapshots [][]string
	cancel, err := store.Subscribe(ctx, ColTestimonials, func(records []json.RawMessage) {
		ids := make([]string, 0, len(records))
		for _, r := range records {
			var rec struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(r, &rec); err != nil {
				t.Errorf("decode record: %v", err)
			}
			ids = append(ids, rec.ID)
		}
		snapshots = append(snapshots, ids)
	})
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	defer cancel()

	if err := store.AddTestimonial(ctx, domain.Testimonial{ID: "t2", Text: "second", Author: "B"}); err != nil {
		t.Fatalf("second AddTestimonial: %v", err)
	}
	store.refresh(ctx, ColTestimonials)

	if len(snapshots) != 2 {
		t.Fatalf("expected initial plus refreshed snapshot, got %d", len(snapshots))
	}
	if len(snapshots[0]) != 1 || snapshots[0][0] != "t1" {
		t.Fatalf("initial snapshot = %v, want [t1]", snapshots[0])
	}
	if len(snapshots[1]) != 2 {
		t.Fatalf("refreshed snapshot = %v, want both records", snapshots[1])
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store, pool := testStore(ctx, t)
	defer pool.Close()

	if err := store.Remove(ctx, ColHeroImages, "missing"); err != nil {
		t.Fatalf("removing an absent id must be a no-op, got %v", err)
	}
}
