package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/strungco/stringmart/internal/domain/model"
)

type pointsRepository struct {
	storage *Storage
}

func (r *pointsRepository) Append(ctx context.Context, userID int64, amount int64, reason model.PointsReason, referenceOrderID *int64) (*model.PointsLogEntry, error) {
	var entry model.PointsLogEntry
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		e, err := appendPointsTx(ctx, tx, userID, amount, reason, referenceOrderID)
		if err != nil {
			return err
		}
		entry = *e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// appendPointsTx updates the running balance and writes the ledger row
// carrying the post-grant balance in one unit.
func appendPointsTx(ctx context.Context, tx pgx.Tx, userID int64, amount int64, reason model.PointsReason, referenceOrderID *int64) (*model.PointsLogEntry, error) {
	const upsert = `INSERT INTO point_balances (user_id, balance) VALUES ($1, $2)
                    ON CONFLICT (user_id) DO UPDATE SET balance = point_balances.balance + EXCLUDED.balance
                    RETURNING balance`
	var balanceAfter int64
	if err := tx.QueryRow(ctx, upsert, userID, amount).Scan(&balanceAfter); err != nil {
		return nil, err
	}

	const insert = `INSERT INTO points_log (user_id, amount, reason, reference_order_id, balance_after)
                    VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	entry := model.PointsLogEntry{UserID: userID, Amount: amount, Reason: reason, ReferenceOrderID: referenceOrderID, BalanceAfter: balanceAfter}
	if err := tx.QueryRow(ctx, insert, userID, amount, reason, referenceOrderID, balanceAfter).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *pointsRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	const query = `SELECT balance FROM point_balances WHERE user_id=$1`
	var balance int64
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return balance, nil
}

func (r *pointsRepository) History(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	const query = `SELECT id, user_id, amount, reason, reference_order_id, balance_after, created_at
                   FROM points_log WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PointsLogEntry
	for rows.Next() {
		var e model.PointsLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Reason, &e.ReferenceOrderID, &e.BalanceAfter, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
