package usecase

import (
	"go.uber.org/fx"

	"github.com/strungco/stringmart/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		newQueueEstimator,
		newFulfillmentConfig,
		NewFulfillmentUseCase,
		NewPointsUseCase,
		NewAuthUseCase,
		NewPhotoUseCase,
		NewInventoryUseCase,
		NewCatalogUseCase,
	),
)

func newQueueEstimator(cfg *config.Config) QueueEstimator {
	return NewQueueEstimator(cfg.OrdersPerDay, cfg.MaxQueueDays, cfg.ProcessingDays)
}

func newFulfillmentConfig(cfg *config.Config) FulfillmentConfig {
	return FulfillmentConfig{
		TensionMin:             cfg.TensionMin,
		TensionMax:             cfg.TensionMax,
		StockDeductionPerOrder: cfg.StockDeductionPerOrder,
		PaymentProvider:        cfg.PaymentProvider,
	}
}
