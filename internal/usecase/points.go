package usecase

import (
	"context"
	"log/slog"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// Referral rewards grow with the referrer's track record of completed
// orders. Amounts are loyalty points.
const (
	referralRewardBase   = 50
	referralRewardLoyal  = 75
	referralRewardVIP    = 100
	loyalCompletedOrders = 5
	vipCompletedOrders   = 20

	reviewReward = 25
)

// PointsUseCase owns the loyalty ledger and the settlement rules that
// feed it outside of order completion.
type PointsUseCase struct {
	points   repository.PointsRepository
	orders   repository.OrderRepository
	vouchers repository.VoucherRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewPointsUseCase constructs the points settlement service.
func NewPointsUseCase(factory repository.Factory, logger *slog.Logger) *PointsUseCase {
	return &PointsUseCase{
		points:   factory.Points(),
		orders:   factory.Orders(),
		vouchers: factory.Vouchers(),
		users:    factory.Users(),
		logger:   logger,
	}
}

// Balance returns the user's current point balance.
func (u *PointsUseCase) Balance(ctx context.Context, userID int64) (int64, error) {
	return u.points.Balance(ctx, userID)
}

// History returns the user's ledger entries, newest first.
func (u *PointsUseCase) History(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	return u.points.History(ctx, userID)
}

// referralReward maps the referrer's completed-order count to a reward.
func referralReward(completedOrders int) int64 {
	switch {
	case completedOrders >= vipCompletedOrders:
		return referralRewardVIP
	case completedOrders >= loyalCompletedOrders:
		return referralRewardLoyal
	default:
		return referralRewardBase
	}
}

// SettleRegistration runs once after account creation: the referrer
// earns a tiered reward and the new user receives the welcome vouchers.
// Failures are logged and never fail the registration itself.
func (u *PointsUseCase) SettleRegistration(ctx context.Context, newUserID int64, referrerID *int64) {
	if referrerID != nil {
		completed, err := u.orders.CountCompleted(ctx, *referrerID)
		if err != nil {
			u.logger.Warn("referral reward skipped",
				slog.Int64("referrer_id", *referrerID),
				slog.String("error", err.Error()))
		} else if _, err := u.points.Append(ctx, *referrerID, referralReward(completed), model.PointsReasonReferral, nil); err != nil {
			u.logger.Warn("referral reward grant failed",
				slog.Int64("referrer_id", *referrerID),
				slog.String("error", err.Error()))
		}
	}

	if _, err := u.vouchers.IssueWelcome(ctx, newUserID); err != nil {
		u.logger.Warn("welcome voucher issuance failed",
			slog.Int64("user_id", newUserID),
			slog.String("error", err.Error()))
	}
}

// GrantReviewReward credits a fixed grant for a submitted review.
func (u *PointsUseCase) GrantReviewReward(ctx context.Context, userID int64, orderID int64) (*model.PointsLogEntry, error) {
	return u.points.Append(ctx, userID, reviewReward, model.PointsReasonReview, &orderID)
}
