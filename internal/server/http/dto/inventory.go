package dto

import "time"

// AdjustStockRequest describes a signed stock mutation.
type AdjustStockRequest struct {
	Delta            int    `json:"delta"`
	Reason           string `json:"reason"`
	ReferenceOrderID *int64 `json:"order_id,omitempty"`
}

// StockLevelResponse mirrors a current stock level.
type StockLevelResponse struct {
	ProductID        int64 `json:"product_id"`
	Quantity         int   `json:"quantity"`
	MinimumThreshold int   `json:"minimum_threshold"`
}

// StockLogResponse mirrors one inventory ledger row.
type StockLogResponse struct {
	Delta            int       `json:"delta"`
	Reason           string    `json:"reason"`
	ReferenceOrderID *int64    `json:"order_id,omitempty"`
	ActorID          *int64    `json:"actor_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
