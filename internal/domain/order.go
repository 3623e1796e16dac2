package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusRefunded OrderStatus = "refunded"
)

// ActiveStatuses are the statuses that hold reserved inventory.
var ActiveStatuses = []OrderStatus{OrderStatusPending, OrderStatusPaid}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCanceled, OrderStatusRefunded:
		return true
	}
	return false
}

// Terminal reports whether no transition may leave the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCanceled || s == OrderStatusRefunded
}

type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	EventID       string          `json:"event_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        OrderStatus     `json:"status"`
	PaymentID     *string         `json:"payment_id,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

// OrderDetails is an order joined with event fields for display.
type OrderDetails struct {
	Order
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
}

type CreateOrderInput struct {
	EventID       string
	Quantity      int
	PaymentMethod string
}

type OrderFilter struct {
	Status *OrderStatus
	Limit  int
	Offset int
}
