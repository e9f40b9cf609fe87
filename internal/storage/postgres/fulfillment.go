package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

type fulfillmentRepository struct {
	storage *Storage
}

// CreateOrder commits the order row, the package consumption, the voucher
// redemption and the pending payment as one unit. Each resource mutation
// is conditional, so losing a race with a concurrent consumer aborts the
// whole transaction instead of leaving partial effects.
func (r *fulfillmentRepository) CreateOrder(ctx context.Context, draft repository.OrderDraft, now time.Time) (*model.Order, error) {
	var created *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		insert := `INSERT INTO orders (user_id, product_id, tension, price, cost, discount, status,
                       user_package_id, user_voucher_id, notes, estimated_completion_at, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
                   RETURNING ` + orderColumns
		order, err := scanOrder(tx.QueryRow(ctx, insert,
			draft.UserID, draft.ProductID, draft.Tension, draft.Price, draft.Cost, draft.Discount,
			draft.Status, draft.UserPackageID, draft.UserVoucherID, draft.Notes,
			draft.EstimatedCompletionAt, now))
		if err != nil {
			return err
		}

		if draft.UserPackageID != nil {
			if _, err := consumeOneTx(ctx, tx, *draft.UserPackageID, now); err != nil {
				return err
			}
		}

		if draft.UserVoucherID != nil {
			if err := markUsedTx(ctx, tx, *draft.UserVoucherID, order.ID, now); err != nil {
				return err
			}
		}

		if draft.PaymentAmount > 0 {
			const payment = `INSERT INTO payments (order_id, user_id, amount, provider, status)
                             VALUES ($1, $2, $3, $4, 'pending')`
			if _, err := tx.Exec(ctx, payment, order.ID, draft.UserID, draft.PaymentAmount, draft.PaymentProvider); err != nil {
				return err
			}
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CompleteOrder locks the order row, requires in_progress, then applies
// the stock deduction, the points grant and the completion stamp in one
// transaction.
func (r *fulfillmentRepository) CompleteOrder(ctx context.Context, orderID int64, deduction int, points int64, adminID int64, notes string, now time.Time) (*repository.CompletionResult, error) {
	var result repository.CompletionResult
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		lock := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, lock, orderID))
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusInProgress {
			return domainErrors.State(fmt.Sprintf("cannot complete order in status %q", order.Status))
		}

		refOrder := order.ID
		actor := adminID
		if _, err := adjustStockTx(ctx, tx, order.ProductID, -deduction, model.StockReasonSale, &refOrder, &actor); err != nil {
			return err
		}

		if points > 0 {
			if _, err := appendPointsTx(ctx, tx, order.UserID, points, model.PointsReasonOrderCompleted, &refOrder); err != nil {
				return err
			}
		}

		profit := order.Price - order.Discount - order.Cost
		finish := `UPDATE orders
                   SET status='completed', completed_at=$2, profit=$3,
                       notes=CASE WHEN $4 <> '' THEN $4 ELSE notes END, updated_at=$2
                   WHERE id=$1
                   RETURNING ` + orderColumns
		completed, err := scanOrder(tx.QueryRow(ctx, finish, orderID, now, profit, notes))
		if err != nil {
			return err
		}

		result = repository.CompletionResult{
			Order:         completed,
			Profit:        profit,
			PointsGranted: points,
			StockDeducted: deduction,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmPayment flips the payment to success exactly once. The
// conditional UPDATE is the idempotency guard: a second confirmation
// finds no pending row and reports the conflict without side effects.
func (r *fulfillmentRepository) ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef, grantKey string, now time.Time) (*model.Payment, error) {
	var confirmed *model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		flip := `UPDATE payments
                 SET status='success', txn_ref=$2, confirm_key=$3, confirmed_at=$4
                 WHERE id=$1 AND status='pending'
                 RETURNING ` + paymentColumns
		payment, err := scanPayment(tx.QueryRow(ctx, flip, paymentID, txnRef, grantKey, now))
		if err != nil {
			if !errors.Is(err, domainErrors.ErrPaymentNotFound) {
				return err
			}
			existing := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1`
			current, lookupErr := scanPayment(tx.QueryRow(ctx, existing, paymentID))
			if lookupErr != nil {
				return lookupErr
			}
			if current.Status == model.PaymentStatusSuccess {
				return domainErrors.ErrPaymentAlreadyConfirmed
			}
			return domainErrors.Conflict(fmt.Sprintf("payment in status %q cannot be confirmed", current.Status))
		}

		if payment.OrderID != nil {
			const advance = `UPDATE orders SET status='in_progress', updated_at=$2
                             WHERE id=$1 AND status='pending'`
			tag, err := tx.Exec(ctx, advance, *payment.OrderID, now)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrIllegalTransition
			}
		}

		if payment.PackageID != nil {
			const catalog = `SELECT id, name, price, uses, validity_days FROM packages WHERE id=$1`
			var pkg model.Package
			if err := tx.QueryRow(ctx, catalog, *payment.PackageID).Scan(&pkg.ID, &pkg.Name, &pkg.Price, &pkg.Uses, &pkg.ValidityDays); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrPackageNotFound
				}
				return err
			}
			if _, err := grantPackageTx(ctx, tx, payment.UserID, &pkg, grantKey, now); err != nil {
				return err
			}
		}

		confirmed = payment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// CancelExpired is one conditional statement: the status filter makes
// re-runs and concurrent sweeps converge on the same final state.
func (r *fulfillmentRepository) CancelExpired(ctx context.Context, cutoff, now time.Time) ([]model.Order, error) {
	query := `UPDATE orders SET status='cancelled', updated_at=$2
              WHERE status='pending' AND created_at < $1
              RETURNING ` + orderColumns
	rows, err := r.storage.pool.Query(ctx, query, cutoff, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		cancelled = append(cancelled, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cancelled, nil
}
