package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order describes a single stringing job placed by a user.
type Order struct {
	ID                    int64
	UserID                int64
	ProductID             int64
	Tension               int
	Price                 float64
	Cost                  float64
	Discount              float64
	Status                OrderStatus
	UserPackageID         *int64
	UserVoucherID         *int64
	Notes                 string
	Profit                *float64
	CompletedAt           *time.Time
	EstimatedCompletionAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Terminal reports whether no further transitions are allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}
