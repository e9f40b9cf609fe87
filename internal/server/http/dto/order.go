package dto

import "time"

// CreateOrderRequest describes a new stringing job.
type CreateOrderRequest struct {
	ProductID     int64  `json:"product_id"`
	Tension       int    `json:"tension"`
	UserPackageID *int64 `json:"package_id,omitempty"`
	UserVoucherID *int64 `json:"voucher_id,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// OrderResponse mirrors an order for API consumers.
type OrderResponse struct {
	ID                    int64      `json:"id"`
	ProductID             int64      `json:"product_id"`
	Tension               int        `json:"tension"`
	Price                 float64    `json:"price"`
	Discount              float64    `json:"discount"`
	Status                string     `json:"status"`
	Notes                 string     `json:"notes,omitempty"`
	EstimatedCompletionAt *time.Time `json:"estimated_completion_at,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// CreateOrderResponse reports the priced result of order creation.
type CreateOrderResponse struct {
	Order           OrderResponse `json:"order"`
	FinalPrice      float64       `json:"final_price"`
	Discount        float64       `json:"discount"`
	PaymentRequired bool          `json:"payment_required"`
}

// QueueResponse reports queue position and expected completion.
type QueueResponse struct {
	Position    int       `json:"position"`
	EstimatedAt time.Time `json:"estimated_at"`
}

// UpdateOrderStatusRequest describes an explicit admin transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// SweepExpiredRequest bounds a manual expiry sweep: pending orders older
// than the given age are cancelled.
type SweepExpiredRequest struct {
	OlderThanMinutes int `json:"older_than_minutes" binding:"min=0"`
}

// SweepExpiredResponse lists the orders the sweep cancelled.
type SweepExpiredResponse struct {
	Cancelled []OrderResponse `json:"cancelled"`
	Count     int             `json:"count"`
}

// CompleteOrderRequest carries optional completion notes.
type CompleteOrderRequest struct {
	Notes string `json:"notes,omitempty"`
}

// CompleteOrderResponse reports the completion settlement.
type CompleteOrderResponse struct {
	Order         OrderResponse `json:"order"`
	Profit        float64       `json:"profit"`
	PointsGranted int64         `json:"points_granted"`
	StockDeducted int           `json:"stock_deducted"`
}
