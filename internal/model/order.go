package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// orderTransitions lists the states reachable from each non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped: {OrderStatusDelivered},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo reports whether an order in state s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts a raw string into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// Order represents a customer order.
type Order struct {
	ID              uuid.UUID   `json:"id" db:"id"`
	UserID          string      `json:"userId" db:"user_id"`
	Cart            []CartItem  `json:"cart"`
	ShippingAddress string      `json:"shippingAddress" db:"shipping_address"`
	TotalAmount     float64     `json:"totalAmount" db:"total_amount"`
	Status          OrderStatus `json:"status" db:"status"`
	CreatedAt       time.Time   `json:"createdAt" db:"created_at"`
}

// CartItem is a line item of an order's cart.
type CartItem struct {
	ProductID string  `json:"productId" db:"product_id"`
	Name      string  `json:"name" db:"name"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
}
