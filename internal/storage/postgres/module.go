package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/strungco/stringmart/internal/config"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.Factory { return s },
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.InventoryRepository { return s.Inventory() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.PackageRepository { return s.Packages() },
		func(s *Storage) repository.VoucherRepository { return s.Vouchers() },
		func(s *Storage) repository.PaymentRepository { return s.Payments() },
		func(s *Storage) repository.PointsRepository { return s.Points() },
		func(s *Storage) repository.PhotoRepository { return s.Photos() },
		func(s *Storage) repository.FulfillmentRepository { return s.Fulfillment() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
