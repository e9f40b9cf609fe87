package repository

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
)

// VoucherRepository manages the voucher catalog and user-owned instances.
type VoucherRepository interface {
	// GetUserVoucher returns the instance with catalog terms populated.
	GetUserVoucher(ctx context.Context, id int64) (*model.UserVoucher, error)
	ListByUser(ctx context.Context, userID int64) ([]model.UserVoucher, error)
	// Issue creates an instance for the user, conditionally incrementing
	// the catalog used_count while it is below the usage cap.
	Issue(ctx context.Context, userID, voucherID int64) (*model.UserVoucher, error)
	// IssueWelcome issues one instance of every welcome catalog voucher.
	IssueWelcome(ctx context.Context, userID int64) ([]model.UserVoucher, error)
}
