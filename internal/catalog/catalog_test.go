package catalog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"wahibashop/internal/domain"
)

func TestNormalizeID(t *testing.T) {
	if got := NormalizeID("  abc  "); got != "abc" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeID("a/b/c"); got != "a-b-c" {
		t.Fatalf("path separators must be replaced, got %q", got)
	}
	generated := NormalizeID("   ")
	if generated == "" || strings.Contains(generated, "/") {
		t.Fatalf("blank id must yield a generated safe id, got %q", generated)
	}
	if NormalizeID("") == NormalizeID("") {
		t.Fatal("generated ids must differ")
	}
}

func TestEncodeDocForcesID(t *testing.T) {
	doc, _, err := encodeDoc("fixed-id", domain.Testimonial{ID: "other", Text: "bien"})
	if err != nil {
		t.Fatalf("encodeDoc: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["id"] != "fixed-id" {
		t.Fatalf("id = %v, want fixed-id", fields["id"])
	}
}

func TestEncodeDocExtractsDate(t *testing.T) {
	when := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	_, date, err := encodeDoc("o1", domain.Order{ID: "o1", Date: when, Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("encodeDoc: %v", err)
	}
	if date == nil || !date.Equal(when) {
		t.Fatalf("date = %v, want %v", date, when)
	}

	_, date, err = encodeDoc("t1", domain.Testimonial{ID: "t1"})
	if err != nil {
		t.Fatalf("encodeDoc: %v", err)
	}
	if date != nil {
		t.Fatalf("records without a date field must store NULL, got %v", date)
	}
}

func TestEncodeRecordUsesRecordID(t *testing.T) {
	id, doc, _, err := encodeRecord(domain.HeroImage{ID: "hero/1", URL: "u"})
	if err != nil {
		t.Fatalf("encodeRecord: %v", err)
	}
	if id != "hero-1" {
		t.Fatalf("id = %q, want hero-1", id)
	}
	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["id"] != "hero-1" {
		t.Fatalf("stored id = %v, want hero-1", fields["id"])
	}
}

func TestTableForRejectsUnknownCollections(t *testing.T) {
	if _, err := tableFor("products; DROP TABLE orders"); err == nil {
		t.Fatal("unknown collection must be rejected")
	}
	for _, col := range Collections {
		if _, err := tableFor(col); err != nil {
			t.Fatalf("known collection %s rejected: %v", col, err)
		}
	}
}
