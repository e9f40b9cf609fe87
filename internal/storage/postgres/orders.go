package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, product_id, tension, price, cost, discount, status,
       user_package_id, user_voucher_id, notes, profit, completed_at,
       estimated_completion_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Tension, &o.Price, &o.Cost, &o.Discount,
		&o.Status, &o.UserPackageID, &o.UserVoucherID, &o.Notes, &o.Profit, &o.CompletedAt,
		&o.EstimatedCompletionAt, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) CountPrior(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE user_id=$1 AND status IN ('in_progress', 'completed')`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) CountCompleted(ctx context.Context, userID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE user_id=$1 AND status='completed'`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus performs the transition only when the current status still
// equals from, so two concurrent transitions cannot both apply.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus, notes string, now time.Time) (*model.Order, error) {
	query := `UPDATE orders
              SET status=$3, notes=CASE WHEN $4 <> '' THEN $4 ELSE notes END, updated_at=$5
              WHERE id=$1 AND status=$2
              RETURNING ` + orderColumns
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, from, to, notes, now))
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, domainErrors.ErrOrderNotFound) {
		return nil, err
	}
	// Disambiguate a missing row from a lost transition race.
	if _, lookupErr := r.GetByID(ctx, orderID); lookupErr != nil {
		return nil, lookupErr
	}
	return nil, domainErrors.ErrIllegalTransition
}

func (r *orderRepository) QueuePosition(ctx context.Context, orderID int64) (int, error) {
	const anchor = `SELECT created_at FROM orders WHERE id=$1`
	var createdAt time.Time
	if err := r.storage.pool.QueryRow(ctx, anchor, orderID).Scan(&createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domainErrors.ErrOrderNotFound
		}
		return 0, err
	}

	const query = `SELECT COUNT(*) + 1 FROM orders
                   WHERE status IN ('pending', 'in_progress') AND created_at < $1`
	var position int
	if err := r.storage.pool.QueryRow(ctx, query, createdAt).Scan(&position); err != nil {
		return 0, err
	}
	return position, nil
}

func (r *orderRepository) CountUnresolved(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE status IN ('pending', 'in_progress')`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
