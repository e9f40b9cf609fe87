package model

import "time"

// VoucherType selects the discount formula.
type VoucherType string

const (
	VoucherTypeFixed      VoucherType = "fixed"
	VoucherTypePercentage VoucherType = "percentage"
)

// Voucher is a catalog-level discount instrument.
// UsageCap of nil means unlimited issuance.
type Voucher struct {
	ID             int64
	Code           string
	Type           VoucherType
	Value          float64
	MinPurchase    float64
	ValidFrom      time.Time
	ValidUntil     time.Time
	UsageCap       *int
	UsedCount      int
	FirstOrderOnly bool
	Welcome        bool
}

// Terms is the subset of the voucher needed to price an order.
func (v *Voucher) Terms() VoucherTerms {
	return VoucherTerms{Type: v.Type, Value: v.Value, MinPurchase: v.MinPurchase}
}

// VoucherTerms feeds the pricing engine.
type VoucherTerms struct {
	Type        VoucherType
	Value       float64
	MinPurchase float64
}

// UserVoucherStatus tracks single-use redemption state.
type UserVoucherStatus string

const (
	UserVoucherStatusActive UserVoucherStatus = "active"
	UserVoucherStatusUsed   UserVoucherStatus = "used"
)

// UserVoucher is a voucher instance owned by a user. It transitions
// active to used at most once, ever.
type UserVoucher struct {
	ID        int64
	UserID    int64
	VoucherID int64
	Status    UserVoucherStatus
	UsedAt    *time.Time
	OrderID   *int64
	Voucher   Voucher
	CreatedAt time.Time
}
