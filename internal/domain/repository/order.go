package repository

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
)

// OrderRepository describes read and single-row persistence operations
// with orders. Multi-entity commits live on FulfillmentRepository.
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// CountPrior returns the number of the user's orders in status
	// in_progress or completed, for first-order voucher eligibility.
	CountPrior(ctx context.Context, userID int64) (int, error)
	// CountCompleted returns the number of completed orders, used for
	// tiered referral rewards.
	CountCompleted(ctx context.Context, userID int64) (int, error)
	// UpdateStatus transitions the order only when its current status
	// equals from; otherwise no row changes and a state error is returned.
	UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, notes string, now time.Time) (*model.Order, error)
	// QueuePosition counts unresolved orders created before this one, plus one.
	QueuePosition(ctx context.Context, orderID int64) (int, error)
	// CountUnresolved returns the number of orders in pending or in_progress.
	CountUnresolved(ctx context.Context) (int, error)
}
