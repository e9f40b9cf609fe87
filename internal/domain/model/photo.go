package model

import "time"

// OrderPhoto is one photo attached to an order. Photos form an ordered
// collection per order; DisplayOrder is contiguous starting at zero.
type OrderPhoto struct {
	ID           int64
	OrderID      int64
	URL          string
	DisplayOrder int
	CreatedAt    time.Time
}
