package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
)

type packageRepository struct {
	storage *Storage
}

func (r *packageRepository) Get(ctx context.Context, id int64) (*model.Package, error) {
	const query = `SELECT id, name, price, uses, validity_days FROM packages WHERE id=$1`
	var p model.Package
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price, &p.Uses, &p.ValidityDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) List(ctx context.Context) ([]model.Package, error) {
	const query = `SELECT id, name, price, uses, validity_days FROM packages ORDER BY price`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Package
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Uses, &p.ValidityDays); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

const userPackageColumns = `id, user_id, package_id, remaining, original_uses, status, expires_at, created_at`

func scanUserPackage(row pgx.Row) (*model.UserPackage, error) {
	var p model.UserPackage
	err := row.Scan(&p.ID, &p.UserID, &p.PackageID, &p.Remaining, &p.OriginalUses, &p.Status, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) GetUserPackage(ctx context.Context, id int64) (*model.UserPackage, error) {
	query := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE id=$1`
	return scanUserPackage(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *packageRepository) ListByUser(ctx context.Context, userID int64) ([]model.UserPackage, error) {
	query := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UserPackage
	for rows.Next() {
		p, err := scanUserPackage(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// rowQuerier lets tx-scoped helpers run on both pgx.Tx and the pool.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Grant relies on the grant_key uniqueness constraint for idempotency:
// replaying the same confirmation event returns the already-granted
// instance instead of creating a second one.
func (r *packageRepository) Grant(ctx context.Context, userID int64, pkg *model.Package, grantKey string, now time.Time) (*model.UserPackage, error) {
	return grantPackageTx(ctx, r.storage.pool, userID, pkg, grantKey, now)
}

// grantPackageTx activates a purchased bundle. Shared between the
// repository method and the payment confirmation commit so the
// idempotency SQL cannot drift.
func grantPackageTx(ctx context.Context, q rowQuerier, userID int64, pkg *model.Package, grantKey string, now time.Time) (*model.UserPackage, error) {
	query := `INSERT INTO user_packages (user_id, package_id, remaining, original_uses, status, expires_at, grant_key)
              VALUES ($1, $2, $3, $3, 'active', $4, $5)
              ON CONFLICT (grant_key) DO NOTHING
              RETURNING ` + userPackageColumns
	expiresAt := now.AddDate(0, 0, pkg.ValidityDays)
	granted, err := scanUserPackage(q.QueryRow(ctx, query, userID, pkg.ID, pkg.Uses, expiresAt, grantKey))
	if err == nil {
		return granted, nil
	}
	if !errors.Is(err, domainErrors.ErrPackageNotFound) {
		return nil, err
	}

	existing := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE grant_key=$1`
	return scanUserPackage(q.QueryRow(ctx, existing, grantKey))
}

// consumeOneTx decrements remaining by exactly one, flipping the status
// to depleted in the same statement when it reaches zero.
func consumeOneTx(ctx context.Context, tx pgx.Tx, userPackageID int64, now time.Time) (*model.UserPackage, error) {
	query := `UPDATE user_packages
              SET remaining = remaining - 1,
                  status = CASE WHEN remaining - 1 = 0 THEN 'depleted' ELSE status END
              WHERE id=$1 AND status='active' AND remaining > 0 AND expires_at > $2
              RETURNING ` + userPackageColumns
	updated, err := scanUserPackage(tx.QueryRow(ctx, query, userPackageID, now))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, domainErrors.ErrPackageNotFound) {
		return nil, err
	}

	existing := `SELECT ` + userPackageColumns + ` FROM user_packages WHERE id=$1`
	current, lookupErr := scanUserPackage(tx.QueryRow(ctx, existing, userPackageID))
	if lookupErr != nil {
		return nil, lookupErr
	}
	if !current.ExpiresAt.After(now) {
		return nil, domainErrors.ErrPackageExpired
	}
	return nil, domainErrors.ErrPackageDepleted
}
