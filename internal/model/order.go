package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the operator-controlled state of an order. Transitions are
// unrestricted; any status may be set to any other.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatuses lists every accepted order status.
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid reports whether s is one of the five fixed statuses.
func (s OrderStatus) IsValid() bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order represents a customer order. CartItems is an immutable snapshot taken
// at submission time; later catalogue edits never alter it.
type Order struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	FirstName  string      `json:"firstName" db:"first_name"`
	LastName   string      `json:"lastName" db:"last_name"`
	Phone      string      `json:"phone" db:"phone"`
	City       string      `json:"city" db:"city"`
	OtherCity  *string     `json:"otherCity,omitempty" db:"other_city"`
	Address    string      `json:"address" db:"address"`
	CartItems  []CartItem  `json:"cartItems" db:"cart_items"`
	TotalPrice float64     `json:"totalPrice" db:"total_price"`
	Status     OrderStatus `json:"status" db:"status"`
}
