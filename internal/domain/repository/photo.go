package repository

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
)

// PhotoRepository owns the ordered photo collection of an order.
type PhotoRepository interface {
	ListByOrder(ctx context.Context, orderID int64) ([]model.OrderPhoto, error)
	// Add appends the photo at the end of the collection.
	Add(ctx context.Context, orderID int64, url string) (*model.OrderPhoto, error)
	// Remove deletes the photo and closes the display-order gap atomically.
	Remove(ctx context.Context, orderID, photoID int64) error
	// Reorder rewrites display positions to match photoIDs in one transaction.
	Reorder(ctx context.Context, orderID int64, photoIDs []int64) error
}
