package model

import "time"

// PaymentStatus tracks settlement state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment is a money transfer expected from a user. OrderID is nil for
// package purchases, which carry PackageID instead. A payment reaches
// success at most once; confirming it again is rejected.
type Payment struct {
	ID          int64
	OrderID     *int64
	PackageID   *int64
	UserID      int64
	Amount      float64
	Provider    string
	Status      PaymentStatus
	TxnRef      string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}
