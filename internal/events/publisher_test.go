package events

import (
	"encoding/json"
	"io"
	"log"
	"testing"
	"time"

	"wahibashop/internal/domain"
)

type stubProducer struct {
	keys   [][]byte
	values [][]byte
}

func (s *stubProducer) Publish(key, value []byte) {
	s.keys = append(s.keys, key)
	s.values = append(s.values, value)
}

func TestOrderCreatedEnvelope(t *testing.T) {
	producer := &stubProducer{}
	pub := NewPublisher(producer, "shop-api", log.New(io.Discard, "", 0))

	o := domain.Order{
		ID:         "ORD-381904",
		Date:       time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
		Status:     domain.StatusPending,
		TotalCents: 28500,
	}
	pub.OrderCreated(o)

	if len(producer.values) != 1 {
		t.Fatalf("expected one message, got %d", len(producer.values))
	}
	if string(producer.keys[0]) != "ORD-381904" {
		t.Fatalf("partition key = %q, want order id", producer.keys[0])
	}

	var env Envelope
	if err := json.Unmarshal(producer.values[0], &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.EventType != EventOrderCreated || env.EventVersion != 1 || env.Producer != "shop-api" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.EventID == "" {
		t.Fatal("envelope must carry an event id")
	}

	var payload OrderCreatedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Order.ID != o.ID || payload.Order.TotalCents != 28500 {
		t.Fatalf("unexpected payload %+v", payload.Order)
	}
}
