package dto

import "time"

// PointsBalanceResponse reports the current loyalty balance.
type PointsBalanceResponse struct {
	Balance int64 `json:"balance"`
}

// PointsLogResponse mirrors one loyalty ledger row.
type PointsLogResponse struct {
	Amount           int64     `json:"amount"`
	Reason           string    `json:"reason"`
	ReferenceOrderID *int64    `json:"order_id,omitempty"`
	BalanceAfter     int64     `json:"balance_after"`
	CreatedAt        time.Time `json:"created_at"`
}
