package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"wahibashop/internal/events"
)

type emailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// OrderNotifier emails the operator the full payload of every new
// order. A delivery failure is logged and swallowed: notification is a
// side effect and must never feed back into order processing.
type OrderNotifier struct {
	client emailClient
	from   string
	to     string
	logger *log.Logger
}

func NewOrderNotifier(client emailClient, from, to string, logger *log.Logger) *OrderNotifier {
	return &OrderNotifier{client: client, from: from, to: to, logger: logger}
}

// HandleEnvelope processes one order event message. It always returns
// nil so the consumer commits the offset; a mail we could not send is
// not worth replaying forever.
func (n *OrderNotifier) HandleEnvelope(ctx context.Context, raw []byte) error {
	var env events.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		n.logger.Printf("decode event envelope: %v", err)
		return nil
	}
	if env.EventType != events.EventOrderCreated {
		return nil
	}

	var payload events.OrderCreatedPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		n.logger.Printf("decode order created payload: %v", err)
		return nil
	}

	body, err := json.MarshalIndent(payload.Order, "", "  ")
	if err != nil {
		n.logger.Printf("render order %s: %v", payload.Order.ID, err)
		return nil
	}

	subject := fmt.Sprintf("New order %s", payload.Order.ID)
	text := fmt.Sprintf("New order %s\n\n%s", payload.Order.ID, body)
	if err := n.client.Send(ctx, n.from, n.to, subject, text); err != nil {
		n.logger.Printf("notify order %s: %v", payload.Order.ID, err)
	}
	return nil
}
