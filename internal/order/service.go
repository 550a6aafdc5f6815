package order

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"wahibashop/internal/domain"
)

type cartStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Clear(ctx context.Context, sessionID string) error
}

type orderStore interface {
	AddOrder(ctx context.Context, o domain.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

type eventPublisher interface {
	OrderCreated(o domain.Order)
}

type Service struct {
	carts  cartStore
	store  orderStore
	events eventPublisher
	logger *log.Logger
	now    func() time.Time
}

func NewService(carts cartStore, store orderStore, events eventPublisher, logger *log.Logger) *Service {
	return &Service{
		carts:  carts,
		store:  store,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

// Place loads the session cart, snapshots it into an order, persists
// the order, announces it, and finally clears the cart. The order
// event is fire-and-forget: a publish failure never rolls back or
// delays the order.
func (s *Service) Place(ctx context.Context, sessionID string, customer domain.Customer) (*domain.Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	lines, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	o, err := Build(lines, customer, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.AddOrder(ctx, *o); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.OrderCreated(*o)
	}

	// The order is already placed; a failed cart clear only risks a
	// duplicate submission attempt, so log and move on.
	if err := s.carts.Clear(ctx, sessionID); err != nil && s.logger != nil {
		s.logger.Printf("clear cart %s after order %s: %v", sessionID, o.ID, err)
	}

	return o, nil
}

// UpdateStatus patches only the status field of an existing order.
// Any known status may replace any other; there is no transition
// state machine.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if !domain.ValidStatus(status) {
		return errors.New("unknown order status")
	}
	return s.store.UpdateOrderStatus(ctx, id, status)
}

func validateCustomer(c domain.Customer) error {
	for _, field := range []struct {
		name, value string
	}{
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"email", c.Email},
		{"address", c.Address},
		{"phone", c.Phone},
	} {
		if strings.TrimSpace(field.value) == "" {
			return errors.New(field.name + " required")
		}
	}
	return nil
}
