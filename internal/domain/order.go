package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the four known order states.
// Transitions between states are deliberately unrestricted.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Customer holds the checkout contact fields. All are required but
// their format is not validated.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// Order is an immutable snapshot of a cart at submission time. Only
// Status may change after creation.
type Order struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"`
	Status     OrderStatus `json:"status"`
	Customer   Customer    `json:"customer"`
	Items      []CartLine  `json:"items"`
	TotalCents int64       `json:"totalCents"`
}
