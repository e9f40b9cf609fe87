package model

import "time"

// Product is a string (the racket kind) offered by the shop.
type Product struct {
	ID        int64
	Name      string
	Price     float64
	Cost      float64
	CreatedAt time.Time
}

// StockLevel holds current inventory quantity for a product.
type StockLevel struct {
	ProductID        int64
	Quantity         int
	MinimumThreshold int
}

// StockReason categorizes an inventory mutation.
type StockReason string

const (
	StockReasonRestock    StockReason = "restock"
	StockReasonSale       StockReason = "sale"
	StockReasonAdjustment StockReason = "adjustment"
	StockReasonReturn     StockReason = "return"
)

// StockLogEntry is one immutable row of the inventory ledger.
// The sum of deltas for a product always equals quantity minus the
// initial quantity.
type StockLogEntry struct {
	ID               int64
	ProductID        int64
	Delta            int
	Reason           StockReason
	ReferenceOrderID *int64
	ActorID          *int64
	CreatedAt        time.Time
}
