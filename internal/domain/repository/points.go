package repository

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
)

// PointsRepository owns the loyalty ledger and running balances.
type PointsRepository interface {
	// Append writes one ledger row and updates the balance in the same
	// transaction; the returned entry carries the balance after the grant.
	Append(ctx context.Context, userID int64, amount int64, reason model.PointsReason, referenceOrderID *int64) (*model.PointsLogEntry, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	History(ctx context.Context, userID int64) ([]model.PointsLogEntry, error)
}
