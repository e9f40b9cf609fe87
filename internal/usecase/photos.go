package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// PhotoUseCase manages the ordered photo gallery attached to an order.
type PhotoUseCase struct {
	photos repository.PhotoRepository
	orders repository.OrderRepository
}

// NewPhotoUseCase constructs the gallery service.
func NewPhotoUseCase(factory repository.Factory) *PhotoUseCase {
	return &PhotoUseCase{photos: factory.Photos(), orders: factory.Orders()}
}

// guardOrderAccess loads the order and verifies the requester may touch
// its gallery. Admins may touch any order.
func (u *PhotoUseCase) guardOrderAccess(ctx context.Context, orderID, requesterID int64, role model.Role) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleAdmin && order.UserID != requesterID {
		return nil, domainErrors.ErrOrderNotFound
	}
	return order, nil
}

// List returns the order's photos sorted by display position.
func (u *PhotoUseCase) List(ctx context.Context, orderID, requesterID int64, role model.Role) ([]model.OrderPhoto, error) {
	if _, err := u.guardOrderAccess(ctx, orderID, requesterID, role); err != nil {
		return nil, err
	}
	return u.photos.ListByOrder(ctx, orderID)
}

// Add appends a photo at the end of the gallery.
func (u *PhotoUseCase) Add(ctx context.Context, orderID, requesterID int64, role model.Role, url string) (*model.OrderPhoto, error) {
	if strings.TrimSpace(url) == "" {
		return nil, domainErrors.Validation("photo url must not be empty")
	}
	if _, err := u.guardOrderAccess(ctx, orderID, requesterID, role); err != nil {
		return nil, err
	}
	return u.photos.Add(ctx, orderID, url)
}

// Remove deletes a photo and renumbers the remaining ones so display
// positions stay contiguous.
func (u *PhotoUseCase) Remove(ctx context.Context, orderID, photoID, requesterID int64, role model.Role) error {
	if _, err := u.guardOrderAccess(ctx, orderID, requesterID, role); err != nil {
		return err
	}
	return u.photos.Remove(ctx, orderID, photoID)
}

// Reorder rewrites display positions to match the given photo id order.
// The list must mention every photo of the order exactly once.
func (u *PhotoUseCase) Reorder(ctx context.Context, orderID, requesterID int64, role model.Role, photoIDs []int64) error {
	if len(photoIDs) == 0 {
		return domainErrors.Validation("photo order must not be empty")
	}
	seen := make(map[int64]struct{}, len(photoIDs))
	for _, id := range photoIDs {
		if _, dup := seen[id]; dup {
			return domainErrors.Validation("photo order contains duplicates")
		}
		seen[id] = struct{}{}
	}
	if _, err := u.guardOrderAccess(ctx, orderID, requesterID, role); err != nil {
		return err
	}
	return u.photos.Reorder(ctx, orderID, photoIDs)
}
