package dto

import "time"

// ConfirmPaymentRequest carries the provider transaction reference.
type ConfirmPaymentRequest struct {
	TxnRef string `json:"txn_ref"`
}

// PaymentResponse mirrors a payment record.
type PaymentResponse struct {
	ID          int64      `json:"id"`
	OrderID     *int64     `json:"order_id,omitempty"`
	PackageID   *int64     `json:"package_id,omitempty"`
	Amount      float64    `json:"amount"`
	Provider    string     `json:"provider"`
	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}
