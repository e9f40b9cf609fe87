package repository

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
)

// OrderDraft carries everything the atomic create commit needs. All
// feasibility checks have already passed when a draft reaches storage;
// the commit re-checks each resource conditionally so a concurrent
// consumer aborts the whole unit instead of leaving partial effects.
type OrderDraft struct {
	UserID                int64
	ProductID             int64
	Tension               int
	Price                 float64
	Cost                  float64
	Discount              float64
	Status                model.OrderStatus
	Notes                 string
	EstimatedCompletionAt *time.Time
	UserPackageID         *int64
	UserVoucherID         *int64
	// PaymentAmount > 0 creates a pending payment row in the same commit.
	PaymentAmount   float64
	PaymentProvider string
}

// CompletionResult reports the irreversible effects of completing an order.
type CompletionResult struct {
	Order         *model.Order
	Profit        float64
	PointsGranted int64
	StockDeducted int
}

// FulfillmentRepository exposes the multi-entity atomic commits of the
// fulfillment engine. Each method executes inside a single transaction;
// any failure aborts the entire unit.
type FulfillmentRepository interface {
	// CreateOrder inserts the order row, consumes the package instance
	// (conditional on remaining > 0 and not expired), marks the voucher
	// used (conditional on still active) and creates the pending payment,
	// all in one transaction.
	CreateOrder(ctx context.Context, draft OrderDraft, now time.Time) (*model.Order, error)
	// CompleteOrder requires status in_progress, deducts stock
	// conditionally with one ledger entry, grants points with one
	// ledger entry, and stamps completed_at and profit.
	CompleteOrder(ctx context.Context, orderID int64, deduction int, points int64, adminID int64, notes string, now time.Time) (*CompletionResult, error)
	// ConfirmPayment flips a pending payment to success exactly once.
	// Order-linked payments advance the order to in_progress; package
	// purchases activate a UserPackage guarded by grantKey uniqueness.
	ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef, grantKey string, now time.Time) (*model.Payment, error)
	// CancelExpired transitions every pending order created before cutoff
	// to cancelled and returns the affected orders. Safe to re-run.
	CancelExpired(ctx context.Context, cutoff, now time.Time) ([]model.Order, error)
}
