package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	domainErrors "github.com/strungco/stringmart/internal/domain/errors"
	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
)

// completionPointsRate is the share of the settlement amount granted as
// loyalty points when an order completes, truncated to a whole number.
const completionPointsRate = 0.5

// Notifier delivers user-facing messages. Delivery is fire-and-forget:
// a failed notification never affects order state.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message, actionURL string) error
}

// FulfillmentConfig carries the physical and commercial knobs of the
// fulfillment engine.
type FulfillmentConfig struct {
	TensionMin             int
	TensionMax             int
	StockDeductionPerOrder int
	PaymentProvider        string
}

// CreateOrderCommand is the caller's request to place an order.
type CreateOrderCommand struct {
	UserID        int64
	ProductID     int64
	Tension       int
	UserPackageID *int64
	UserVoucherID *int64
	Notes         string
}

// CreateOrderResult reports the outcome of order creation.
type CreateOrderResult struct {
	Order           *model.Order
	FinalPrice      float64
	Discount        float64
	PaymentRequired bool
}

// QueueStatus reports an order's place in the work queue.
type QueueStatus struct {
	Position    int
	EstimatedAt time.Time
}

// FulfillmentUseCase coordinates orders, inventory, packages, vouchers,
// payments and points. All feasibility checks run up front; the actual
// multi-entity commit happens atomically in the fulfillment repository.
type FulfillmentUseCase struct {
	orders      repository.OrderRepository
	products    repository.ProductRepository
	inventory   repository.InventoryRepository
	packages    repository.PackageRepository
	vouchers    repository.VoucherRepository
	payments    repository.PaymentRepository
	fulfillment repository.FulfillmentRepository
	estimator   QueueEstimator
	notifier    Notifier
	cfg         FulfillmentConfig
	logger      *slog.Logger
	now         func() time.Time
}

// NewFulfillmentUseCase constructs the coordinator.
func NewFulfillmentUseCase(
	factory repository.Factory,
	estimator QueueEstimator,
	notifier Notifier,
	cfg FulfillmentConfig,
	logger *slog.Logger,
) *FulfillmentUseCase {
	if cfg.StockDeductionPerOrder <= 0 {
		cfg.StockDeductionPerOrder = 1
	}
	return &FulfillmentUseCase{
		orders:      factory.Orders(),
		products:    factory.Products(),
		inventory:   factory.Inventory(),
		packages:    factory.Packages(),
		vouchers:    factory.Vouchers(),
		payments:    factory.Payments(),
		fulfillment: factory.Fulfillment(),
		estimator:   estimator,
		notifier:    notifier,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateOrder validates feasibility, prices the job and commits the
// order with its resource consumption as one atomic unit.
func (u *FulfillmentUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResult, error) {
	if cmd.Tension < u.cfg.TensionMin || cmd.Tension > u.cfg.TensionMax {
		return nil, domainErrors.ErrTensionOutOfRange
	}
	if cmd.UserPackageID != nil && cmd.UserVoucherID != nil {
		return nil, domainErrors.Validation("voucher cannot be combined with a package")
	}

	now := u.now()

	product, err := u.products.GetByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}

	// Availability check only. The deduction itself happens at completion
	// time as one conditional decrement, so this check can never be the
	// thing that keeps the quantity non-negative.
	level, err := u.inventory.Level(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if level.Quantity < u.cfg.StockDeductionPerOrder {
		return nil, domainErrors.ErrInsufficientStock
	}

	packageApplied := false
	if cmd.UserPackageID != nil {
		pkg, err := u.packages.GetUserPackage(ctx, *cmd.UserPackageID)
		if err != nil {
			return nil, err
		}
		if pkg.UserID != cmd.UserID {
			return nil, domainErrors.ErrPackageNotFound
		}
		if !pkg.ExpiresAt.After(now) {
			return nil, domainErrors.ErrPackageExpired
		}
		if !pkg.Usable(now) {
			return nil, domainErrors.ErrPackageDepleted
		}
		packageApplied = true
	}

	var terms *model.VoucherTerms
	if cmd.UserVoucherID != nil {
		uv, err := u.vouchers.GetUserVoucher(ctx, *cmd.UserVoucherID)
		if err != nil {
			return nil, err
		}
		if uv.UserID != cmd.UserID {
			return nil, domainErrors.ErrVoucherNotFound
		}
		prior, err := u.orders.CountPrior(ctx, cmd.UserID)
		if err != nil {
			return nil, err
		}
		if err := ValidateUserVoucher(uv, now, prior); err != nil {
			return nil, err
		}
		if err := ValidateCatalogVoucher(&uv.Voucher, product.Price); err != nil {
			return nil, err
		}
		t := uv.Voucher.Terms()
		terms = &t
	}

	quote, err := ComputePrice(product.Price, packageApplied, terms)
	if err != nil {
		return nil, err
	}

	pending, err := u.orders.CountUnresolved(ctx)
	if err != nil {
		return nil, err
	}
	estimatedAt := u.estimator.Estimate(now, pending)

	status := model.OrderStatusPending
	if packageApplied {
		// Package-funded orders need no payment and start immediately.
		status = model.OrderStatusInProgress
	}

	// The order keeps the undiscounted price; the amount actually charged
	// is always price minus discount.
	draft := repository.OrderDraft{
		UserID:                cmd.UserID,
		ProductID:             cmd.ProductID,
		Tension:               cmd.Tension,
		Price:                 product.Price,
		Cost:                  product.Cost,
		Discount:              quote.Discount,
		Status:                status,
		Notes:                 cmd.Notes,
		EstimatedCompletionAt: &estimatedAt,
		UserPackageID:         cmd.UserPackageID,
		UserVoucherID:         cmd.UserVoucherID,
		PaymentAmount:         quote.FinalPrice,
		PaymentProvider:       u.cfg.PaymentProvider,
	}

	order, err := u.fulfillment.CreateOrder(ctx, draft, now)
	if err != nil {
		return nil, err
	}

	return &CreateOrderResult{
		Order:           order,
		FinalPrice:      quote.FinalPrice,
		Discount:        quote.Discount,
		PaymentRequired: quote.FinalPrice > 0,
	}, nil
}

// CompleteOrder finishes an in-progress order: conditional stock
// deduction, profit calculation, points settlement and the completion
// stamp commit as one unit.
func (u *FulfillmentUseCase) CompleteOrder(ctx context.Context, orderID, adminID int64, notes string) (*repository.CompletionResult, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(order.Status, model.OrderStatusCompleted); err != nil {
		return nil, err
	}

	settlement := order.Price - order.Discount
	payment, err := u.payments.LatestSuccessfulByOrder(ctx, orderID)
	switch {
	case err == nil:
		settlement = payment.Amount
	case errors.Is(err, domainErrors.ErrPaymentNotFound):
		// No successful payment yet, settle on the nominal charge.
	default:
		return nil, err
	}
	points := int64(math.Floor(settlement * completionPointsRate))

	result, err := u.fulfillment.CompleteOrder(ctx, orderID, u.cfg.StockDeductionPerOrder, points, adminID, notes, u.now())
	if err != nil {
		return nil, err
	}

	u.notify(ctx, order.UserID, "Order completed",
		fmt.Sprintf("Your stringing order #%d is ready for pickup.", orderID),
		fmt.Sprintf("/orders/%d", orderID))

	return result, nil
}

// ConfirmPayment marks a pending payment successful exactly once.
// Order-linked payments advance the order; package purchases activate
// the bundle under an idempotency key derived from the payment.
func (u *FulfillmentUseCase) ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef string) (*model.Payment, error) {
	grantKey := fmt.Sprintf("payment:%d", paymentID)
	payment, err := u.fulfillment.ConfirmPayment(ctx, paymentID, adminID, txnRef, grantKey, u.now())
	if err != nil {
		return nil, err
	}

	u.notify(ctx, payment.UserID, "Payment received",
		fmt.Sprintf("Your payment of %.2f has been confirmed.", payment.Amount), "/payments")

	return payment, nil
}

// UpdateOrderStatus applies an explicit admin transition. Completion has
// side effects and must go through CompleteOrder.
func (u *FulfillmentUseCase) UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, notes string) (*model.Order, error) {
	if !ValidStatus(to) {
		return nil, domainErrors.Validation(fmt.Sprintf("unknown order status %q", to))
	}
	if to == model.OrderStatusCompleted {
		return nil, domainErrors.State("completion must go through the complete operation")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(order.Status, to); err != nil {
		return nil, err
	}

	return u.orders.UpdateStatus(ctx, orderID, order.Status, to, notes, u.now())
}

// CancelExpiredOrders cancels every pending order created before cutoff.
// Re-running is safe: the status filter excludes already-cancelled rows.
func (u *FulfillmentUseCase) CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	return u.fulfillment.CancelExpired(ctx, cutoff, u.now())
}

// PurchasePackage creates the pending payment for a catalog bundle. The
// bundle itself is granted when the payment is confirmed.
func (u *FulfillmentUseCase) PurchasePackage(ctx context.Context, userID, packageID int64) (*model.Payment, error) {
	pkg, err := u.packages.Get(ctx, packageID)
	if err != nil {
		return nil, err
	}
	return u.payments.CreateForPackage(ctx, userID, pkg.ID, pkg.Price, u.cfg.PaymentProvider)
}

// ListOrders returns the user's orders, newest first.
func (u *FulfillmentUseCase) ListOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetOrder fetches one order by identifier.
func (u *FulfillmentUseCase) GetOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// QueueStatus returns the order's queue position and expected completion.
func (u *FulfillmentUseCase) QueueStatus(ctx context.Context, orderID int64) (*QueueStatus, error) {
	position, err := u.orders.QueuePosition(ctx, orderID)
	if err != nil {
		return nil, err
	}
	pending, err := u.orders.CountUnresolved(ctx)
	if err != nil {
		return nil, err
	}
	return &QueueStatus{Position: position, EstimatedAt: u.estimator.Estimate(u.now(), pending)}, nil
}

func (u *FulfillmentUseCase) notify(ctx context.Context, userID int64, title, message, actionURL string) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, userID, title, message, actionURL); err != nil {
		u.logger.Warn("notification delivery failed",
			slog.Int64("user_id", userID),
			slog.String("title", title),
			slog.String("error", err.Error()))
	}
}
