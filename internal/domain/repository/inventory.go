package repository

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
)

// ProductRepository describes catalog access.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

// InventoryRepository owns stock levels and the append-only change log.
type InventoryRepository interface {
	Level(ctx context.Context, productID int64) (*model.StockLevel, error)
	// AdjustStock applies delta conditionally (quantity never drops below
	// zero) and writes exactly one log entry in the same transaction.
	AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error)
	Logs(ctx context.Context, productID int64) ([]model.StockLogEntry, error)
	// ListLow returns levels at or below their minimum threshold.
	ListLow(ctx context.Context) ([]model.StockLevel, error)
}
