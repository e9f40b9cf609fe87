package usecase

import (
	"context"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// CatalogUseCase serves the read side of the shop: products, bundles
// and the caller's own vouchers and packages.
type CatalogUseCase struct {
	products repository.ProductRepository
	packages repository.PackageRepository
	vouchers repository.VoucherRepository
}

// NewCatalogUseCase constructs the catalog service.
func NewCatalogUseCase(factory repository.Factory) *CatalogUseCase {
	return &CatalogUseCase{
		products: factory.Products(),
		packages: factory.Packages(),
		vouchers: factory.Vouchers(),
	}
}

// Products lists the string catalog.
func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Packages lists the purchasable bundles.
func (u *CatalogUseCase) Packages(ctx context.Context) ([]model.Package, error) {
	return u.packages.List(ctx)
}

// UserPackages lists the caller's owned bundles.
func (u *CatalogUseCase) UserPackages(ctx context.Context, userID int64) ([]model.UserPackage, error) {
	return u.packages.ListByUser(ctx, userID)
}

// UserVouchers lists the caller's voucher instances with catalog terms.
func (u *CatalogUseCase) UserVouchers(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	return u.vouchers.ListByUser(ctx, userID)
}
