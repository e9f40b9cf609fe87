package usecase

import (
	"context"
	"fmt"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// InventoryUseCase exposes admin-facing stock operations on top of the
// append-only inventory ledger.
type InventoryUseCase struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

// NewInventoryUseCase constructs the inventory service.
func NewInventoryUseCase(factory repository.Factory) *InventoryUseCase {
	return &InventoryUseCase{products: factory.Products(), inventory: factory.Inventory()}
}

func validStockReason(r model.StockReason) bool {
	switch r {
	case model.StockReasonRestock, model.StockReasonSale, model.StockReasonAdjustment, model.StockReasonReturn:
		return true
	}
	return false
}

// AdjustStock applies a signed delta to a product's stock level and
// records the ledger entry. The decrement is conditional: it can never
// push the quantity below zero.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	if delta == 0 {
		return nil, domainErrors.Validation("stock delta must not be zero")
	}
	if !validStockReason(reason) {
		return nil, domainErrors.Validation(fmt.Sprintf("unknown stock reason %q", reason))
	}
	return u.inventory.AdjustStock(ctx, productID, delta, reason, referenceOrderID, actorID)
}

// Level returns the current stock level for a product.
func (u *InventoryUseCase) Level(ctx context.Context, productID int64) (*model.StockLevel, error) {
	return u.inventory.Level(ctx, productID)
}

// Logs returns the product's ledger entries, newest first.
func (u *InventoryUseCase) Logs(ctx context.Context, productID int64) ([]model.StockLogEntry, error) {
	return u.inventory.Logs(ctx, productID)
}

// LowStock returns every product at or below its minimum threshold.
func (u *InventoryUseCase) LowStock(ctx context.Context) ([]model.StockLevel, error) {
	return u.inventory.ListLow(ctx)
}
