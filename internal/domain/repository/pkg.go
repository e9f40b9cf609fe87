package repository

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
)

// PackageRepository manages prepaid bundles and user-owned instances.
type PackageRepository interface {
	Get(ctx context.Context, id int64) (*model.Package, error)
	List(ctx context.Context) ([]model.Package, error)
	GetUserPackage(ctx context.Context, id int64) (*model.UserPackage, error)
	ListByUser(ctx context.Context, userID int64) ([]model.UserPackage, error)
	// Grant activates a purchased bundle. grantKey is a uniqueness-enforced
	// idempotency key; re-granting with the same key returns the existing
	// instance instead of a duplicate.
	Grant(ctx context.Context, userID int64, pkg *model.Package, grantKey string, now time.Time) (*model.UserPackage, error)
}
