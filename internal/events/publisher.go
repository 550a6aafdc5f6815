package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"wahibashop/internal/domain"
)

type producer interface {
	Publish(key, value []byte)
}

// Publisher turns domain happenings into enveloped Kafka messages.
// Publishing is fire-and-forget: a broker problem is logged by the
// producer loop and never reaches the caller.
type Publisher struct {
	producer producer
	name     string
	logger   *log.Logger
}

func NewPublisher(p producer, serviceName string, logger *log.Logger) *Publisher {
	return &Publisher{producer: p, name: serviceName, logger: logger}
}

// OrderCreated announces a freshly persisted order.
func (p *Publisher) OrderCreated(o domain.Order) {
	payload, err := json.Marshal(OrderCreatedPayload{Order: o})
	if err != nil {
		p.logger.Printf("marshal order created payload %s: %v", o.ID, err)
		return
	}
	env := Envelope{
		EventID:      uuid.NewString(),
		EventType:    EventOrderCreated,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     p.name,
		Payload:      payload,
	}
	value, err := json.Marshal(env)
	if err != nil {
		p.logger.Printf("marshal order created envelope %s: %v", o.ID, err)
		return
	}
	p.producer.Publish(PartitionKey(o.ID), value)
}
