package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"wahibashop/internal/domain"
)

// SeedIfEmpty writes the default records into a collection, but only
// when the collection currently holds nothing. The check and the
// writes share one transaction and every insert targets a fixed id
// with ON CONFLICT DO NOTHING, so two racing first-time inits cannot
// double-write: the second attempt is a guaranteed no-op.
func (s *Store) SeedIfEmpty(ctx context.Context, col Collection, records []any) error {
	table, err := tableFor(col)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &domain.PersistenceError{Op: "seed", Collection: string(col), Err: err}
	}
	defer tx.Rollback(ctx)

	var populated bool
	if err := tx.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s)`, table)).Scan(&populated); err != nil {
		return &domain.PersistenceError{Op: "seed", Collection: string(col), Err: err}
	}
	if populated {
		return nil
	}

	insert := fmt.Sprintf(`
INSERT INTO %s (id, doc, date)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO NOTHING
`, table)
	for _, record := range records {
		id, doc, date, err := encodeRecord(record)
		if err != nil {
			return fmt.Errorf("seed %s: %w", col, err)
		}
		if _, err := tx.Exec(ctx, insert, id, doc, date); err != nil {
			return &domain.PersistenceError{Op: "seed", Collection: string(col), Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.PersistenceError{Op: "seed", Collection: string(col), Err: err}
	}
	s.announce(ctx, col)
	return nil
}

// SeedDefaults runs SeedIfEmpty for every seeded collection.
func (s *Store) SeedDefaults(ctx context.Context, seeds Seeds) error {
	for _, col := range Collections {
		records, ok := seeds[col]
		if !ok {
			continue
		}
		if err := s.SeedIfEmpty(ctx, col, records); err != nil {
			return err
		}
	}
	return nil
}

// Upsert fully replaces or inserts a record under a sanitized id. The
// record's own id field is rewritten to the storage key so the two can
// never drift apart.
func (s *Store) Upsert(ctx context.Context, col Collection, id string, record any) error {
	table, err := tableFor(col)
	if err != nil {
		return err
	}
	id = NormalizeID(id)
	doc, date, err := encodeDoc(id, record)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", col, err)
	}

	q := fmt.Sprintf(`
INSERT INTO %s (id, doc, date)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE
SET doc = EXCLUDED.doc,
    date = EXCLUDED.date
`, table)
	if _, err := s.pool.Exec(ctx, q, id, doc, date); err != nil {
		return &domain.PersistenceError{Op: "upsert", Collection: string(col), Err: err}
	}
	s.announce(ctx, col)
	return nil
}

// Remove deletes a record by id. Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, col Collection, id string) error {
	table, err := tableFor(col)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)
	if _, err := s.pool.Exec(ctx, q, NormalizeID(id)); err != nil {
		return &domain.PersistenceError{Op: "remove", Collection: string(col), Err: err}
	}
	s.announce(ctx, col)
	return nil
}

// Snapshot returns the full current contents of a collection, in the
// order subscribers see it: orders and messages newest-first by date,
// everything else in insertion order.
func (s *Store) Snapshot(ctx context.Context, col Collection) ([]json.RawMessage, error) {
	table, err := tableFor(col)
	if err != nil {
		return nil, err
	}
	orderBy := "created_at ASC"
	if dateSorted[col] {
		orderBy = "date DESC NULLS LAST"
	}

	rows, err := s.pool.Query(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY %s`, table, orderBy))
	if err != nil {
		return nil, &domain.PersistenceError{Op: "snapshot", Collection: string(col), Err: err}
	}
	defer rows.Close()

	records := make([]json.RawMessage, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, &domain.PersistenceError{Op: "snapshot", Collection: string(col), Err: err}
		}
		records = append(records, json.RawMessage(doc))
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "snapshot", Collection: string(col), Err: err}
	}
	return records, nil
}

// get decodes a single record into out.
func (s *Store) get(ctx context.Context, col Collection, id string, out any) error {
	table, err := tableFor(col)
	if err != nil {
		return err
	}
	var doc []byte
	q := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, table)
	if err := s.pool.QueryRow(ctx, q, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return &domain.PersistenceError{Op: "get", Collection: string(col), Err: err}
	}
	return json.Unmarshal(doc, out)
}

// ResetAll wipes every collection, then reseeds the catalog defaults.
// Orders and messages reset to empty and stay empty. Each delete is
// its own batch: a failure partway leaves earlier deletions in place,
// there is no cross-collection transaction. Callers must have already
// confirmed this with the administrator.
func (s *Store) ResetAll(ctx context.Context, seeds Seeds) error {
	for _, col := range Collections {
		table, err := tableFor(col)
		if err != nil {
			return err
		}
		if _, err := s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return &domain.PersistenceError{Op: "reset", Collection: string(col), Err: err}
		}
		s.announce(ctx, col)
	}

	reseed := Seeds{}
	for _, col := range []Collection{ColProducts, ColHeroImages, ColClientResults, ColTestimonials} {
		if records, ok := seeds[col]; ok {
			reseed[col] = records
		}
	}
	return s.SeedDefaults(ctx, reseed)
}

// encodeRecord prepares a seed/upsert payload keyed by the record's
// own (sanitized) id.
func encodeRecord(record any) (string, []byte, *time.Time, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", nil, nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", nil, nil, err
	}
	id, _ := fields["id"].(string)
	id = NormalizeID(id)
	doc, date, err := encodeDoc(id, fields)
	return id, doc, date, err
}

// encodeDoc flattens a record to its stored JSON form, with the id
// field forced to the storage key and the date field (when present and
// parseable) lifted out for sorting.
func encodeDoc(id string, record any) ([]byte, *time.Time, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, nil, err
	}
	fields["id"] = id

	var date *time.Time
	if v, ok := fields["date"].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			date = &t
		}
	}

	doc, err := json.Marshal(fields)
	if err != nil {
		return nil, nil, err
	}
	return doc, date, nil
}
