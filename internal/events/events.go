// Package events defines the order event stream published to Kafka.
package events

import (
	"encoding/json"
	"time"

	"wahibashop/internal/domain"
)

const (
	TopicOrderCreated = "order.created"

	EventOrderCreated = "OrderCreated"
)

// Envelope wraps every published event.
type Envelope struct {
	EventID      string          `json:"event_id"`
	EventType    string          `json:"event_type"`
	EventVersion int             `json:"event_version"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Producer     string          `json:"producer"`
	Payload      json.RawMessage `json:"payload"`
}

// OrderCreatedPayload carries the full order record so downstream
// consumers (the email notifier) need no extra lookup.
type OrderCreatedPayload struct {
	Order domain.Order `json:"order"`
}

// PartitionKey keeps all events of one order in order.
func PartitionKey(orderID string) []byte { return []byte(orderID) }
