package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type voucherRepository struct {
	storage *Storage
}

const userVoucherColumns = `uv.id, uv.user_id, uv.voucher_id, uv.status, uv.used_at, uv.order_id, uv.created_at,
       v.id, v.code, v.type, v.value, v.min_purchase, v.valid_from, v.valid_until,
       v.usage_cap, v.used_count, v.first_order_only, v.welcome`

func scanUserVoucher(row pgx.Row) (*model.UserVoucher, error) {
	var uv model.UserVoucher
	err := row.Scan(&uv.ID, &uv.UserID, &uv.VoucherID, &uv.Status, &uv.UsedAt, &uv.OrderID, &uv.CreatedAt,
		&uv.Voucher.ID, &uv.Voucher.Code, &uv.Voucher.Type, &uv.Voucher.Value, &uv.Voucher.MinPurchase,
		&uv.Voucher.ValidFrom, &uv.Voucher.ValidUntil, &uv.Voucher.UsageCap, &uv.Voucher.UsedCount,
		&uv.Voucher.FirstOrderOnly, &uv.Voucher.Welcome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrVoucherNotFound
		}
		return nil, err
	}
	return &uv, nil
}

func (r *voucherRepository) GetUserVoucher(ctx context.Context, id int64) (*model.UserVoucher, error) {
	query := `SELECT ` + userVoucherColumns + `
              FROM user_vouchers uv JOIN vouchers v ON v.id = uv.voucher_id
              WHERE uv.id=$1`
	return scanUserVoucher(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *voucherRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	query := `SELECT ` + userVoucherColumns + `
              FROM user_vouchers uv JOIN vouchers v ON v.id = uv.voucher_id
              WHERE uv.user_id=$1 ORDER BY uv.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UserVoucher
	for rows.Next() {
		uv, err := scanUserVoucher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *uv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Issue conditionally increments the catalog counter while it is still
// below the cap, then creates the instance, in one transaction.
func (r *voucherRepository) Issue(ctx context.Context, userID, voucherID int64) (*model.UserVoucher, error) {
	var issued *model.UserVoucher
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		uv, err := issueTx(ctx, tx, userID, voucherID)
		if err != nil {
			return err
		}
		issued = uv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

func issueTx(ctx context.Context, tx pgx.Tx, userID, voucherID int64) (*model.UserVoucher, error) {
	const claim = `UPDATE vouchers SET used_count = used_count + 1
                   WHERE id=$1 AND (usage_cap IS NULL OR used_count < usage_cap)`
	tag, err := tx.Exec(ctx, claim, voucherID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		const exists = `SELECT 1 FROM vouchers WHERE id=$1`
		var one int
		if lookupErr := tx.QueryRow(ctx, exists, voucherID).Scan(&one); lookupErr != nil {
			if errors.Is(lookupErr, pgx.ErrNoRows) {
				return nil, domainErrors.ErrVoucherNotFound
			}
			return nil, lookupErr
		}
		return nil, domainErrors.ErrVoucherExhausted
	}

	const insert = `INSERT INTO user_vouchers (user_id, voucher_id) VALUES ($1, $2) RETURNING id, created_at`
	uv := model.UserVoucher{UserID: userID, VoucherID: voucherID, Status: model.UserVoucherStatusActive}
	if err := tx.QueryRow(ctx, insert, userID, voucherID).Scan(&uv.ID, &uv.CreatedAt); err != nil {
		return nil, err
	}
	return &uv, nil
}

func (r *voucherRepository) IssueWelcome(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	const welcome = `SELECT id FROM vouchers
                     WHERE welcome AND (usage_cap IS NULL OR used_count < usage_cap)
                       AND valid_until > NOW()`
	rows, err := r.storage.pool.Query(ctx, welcome)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, err
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var issued []model.UserVoucher
	for _, id := range ids {
		uv, err := r.Issue(ctx, userID, id)
		if err != nil {
			// Cap races are expected; other vouchers still get issued.
			if errors.Is(err, domainErrors.ErrVoucherExhausted) {
				continue
			}
			return issued, err
		}
		issued = append(issued, *uv)
	}
	return issued, nil
}

// markUsedTx flips the instance to used, conditioned on it still being
// active so a concurrent redemption loses instead of double-applying.
func markUsedTx(ctx context.Context, tx pgx.Tx, userVoucherID, orderID int64, now time.Time) error {
	const query = `UPDATE user_vouchers SET status='used', used_at=$2, order_id=$3
                   WHERE id=$1 AND status='active'`
	tag, err := tx.Exec(ctx, query, userVoucherID, now, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		const exists = `SELECT 1 FROM user_vouchers WHERE id=$1`
		var one int
		if lookupErr := tx.QueryRow(ctx, exists, userVoucherID).Scan(&one); lookupErr != nil {
			if errors.Is(lookupErr, pgx.ErrNoRows) {
				return domainErrors.ErrVoucherNotFound
			}
			return lookupErr
		}
		return domainErrors.ErrVoucherUsed
	}
	return nil
}
