package models

import "time"

// OrderStatus represents all possible states of a coffee order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type OrderType string

const (
	OrderPickup   OrderType = "pickup"
	OrderDelivery OrderType = "delivery"
	OrderDineIn   OrderType = "dine-in"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID              uint                 `json:"id"`
	OrderNumber     string               `json:"order_number"`
	CustomerID      string               `json:"customer_id,omitempty"`
	CustomerName    string               `json:"customer_name"`
	CustomerEmail   string               `json:"customer_email"`
	Status          OrderStatus          `json:"status"`
	OrderType       OrderType            `json:"order_type"`
	PaymentMethod   PaymentMethod        `json:"payment_method"`
	PaymentStatus   PaymentStatus        `json:"payment_status"`
	Total           float64              `json:"total"`
	ItemCount       int                  `json:"item_count"`
	DeliveryAddress string               `json:"delivery_address,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	Items           []OrderItem          `json:"items,omitempty"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type OrderItem struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`  // snapshot name
	Price      float64 `json:"price"` // snapshot price at time of checkout
	Quantity   int     `json:"quantity"`
}

// OrderStatusHistory tracks every status change
type OrderStatusHistory struct {
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status"`
	Actor      string      `json:"actor"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
