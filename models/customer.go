package models

import "time"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	JoinedDate    time.Time      `json:"joined_date"`
	TotalOrders   int            `json:"total_orders"`
	TotalSpent    float64        `json:"total_spent"`
	RewardPoints  int            `json:"reward_points"`
	Status        CustomerStatus `json:"status"`
	LastOrderDate *time.Time     `json:"last_order_date,omitempty"`
	FavoriteItems []string       `json:"favorite_items,omitempty"`
}
