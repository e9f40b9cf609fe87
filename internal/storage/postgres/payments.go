package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type paymentRepository struct {
	storage *Storage
}

const paymentColumns = `id, order_id, package_id, user_id, amount, provider, status, txn_ref, confirmed_at, created_at`

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var p model.Payment
	err := row.Scan(&p.ID, &p.OrderID, &p.PackageID, &p.UserID, &p.Amount, &p.Provider,
		&p.Status, &p.TxnRef, &p.ConfirmedAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1`
	return scanPayment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *paymentRepository) CreateForPackage(ctx context.Context, userID, packageID int64, amount float64, provider string) (*model.Payment, error) {
	const query = `INSERT INTO payments (package_id, user_id, amount, provider, status)
                   VALUES ($1, $2, $3, $4, 'pending') RETURNING id, created_at`
	p := model.Payment{PackageID: &packageID, UserID: userID, Amount: amount, Provider: provider, Status: model.PaymentStatusPending}
	if err := r.storage.pool.QueryRow(ctx, query, packageID, userID, amount, provider).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) LatestSuccessfulByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
              WHERE order_id=$1 AND status='success'
              ORDER BY confirmed_at DESC LIMIT 1`
	return scanPayment(r.storage.pool.QueryRow(ctx, query, orderID))
}
