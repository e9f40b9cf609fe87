// Package facadestub provides controllable facade doubles for the HTTP
// layer tests. It lives apart from the repository stubs because its
// signatures depend on the usecase package, which the usecase tests
// must not pull back in through their own helpers.
package facadestub

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
	"github.com/strungco/stringmart/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, model.Role, error)
}

// Register delegates to provided function or returns a default token.
func (s AuthFacadeStub) Register(ctx context.Context, login, password, referralCode string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password, referralCode)
	}
	return "token", nil
}

// Authenticate delegates to provided function or returns a default token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken resolves the token to a fixed user unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (int64, model.Role, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, model.RoleUser, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateOrderFn func(context.Context, usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error)
	OrdersFn      func(context.Context, int64) ([]model.Order, error)
	OrderFn       func(context.Context, int64) (*model.Order, error)
	QueueStatusFn func(context.Context, int64) (*usecase.QueueStatus, error)
	ReviewFn      func(context.Context, int64, int64) (*model.PointsLogEntry, error)
}

// CreateOrder delegates to provided function or echoes the command.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, cmd usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, cmd)
	}
	return &usecase.CreateOrderResult{
		Order:           &model.Order{ID: 1, UserID: cmd.UserID, ProductID: cmd.ProductID, Tension: cmd.Tension, Status: model.OrderStatusPending},
		FinalPrice:      100,
		PaymentRequired: true,
	}, nil
}

// Orders returns predefined orders for given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// Order returns one order by identifier.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, UserID: 1, Status: model.OrderStatusPending}, nil
}

// QueueStatus returns a fixed queue placement unless overridden.
func (s OrderFacadeStub) QueueStatus(ctx context.Context, orderID int64) (*usecase.QueueStatus, error) {
	if s.QueueStatusFn != nil {
		return s.QueueStatusFn(ctx, orderID)
	}
	return &usecase.QueueStatus{Position: 1, EstimatedAt: time.Unix(0, 0)}, nil
}

// GrantReviewReward records a review grant.
func (s OrderFacadeStub) GrantReviewReward(ctx context.Context, userID, orderID int64) (*model.PointsLogEntry, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, userID, orderID)
	}
	return &model.PointsLogEntry{UserID: userID, Amount: 25, Reason: model.PointsReasonReview, ReferenceOrderID: &orderID}, nil
}

// AdminFacadeStub simulates administrator operations.
type AdminFacadeStub struct {
	CompleteOrderFn  func(context.Context, int64, int64, string) (*repository.CompletionResult, error)
	UpdateStatusFn   func(context.Context, int64, model.OrderStatus, string) (*model.Order, error)
	ConfirmPaymentFn func(context.Context, int64, int64, string) (*model.Payment, error)
	CancelExpiredFn  func(context.Context, time.Time) ([]model.Order, error)
	AdjustStockFn    func(context.Context, int64, int, model.StockReason, *int64, *int64) (*model.StockLogEntry, error)
	StockLevelFn     func(context.Context, int64) (*model.StockLevel, error)
	StockLogsFn      func(context.Context, int64) ([]model.StockLogEntry, error)
	LowStockFn       func(context.Context) ([]model.StockLevel, error)
}

// CompleteOrder executes configured completion handler.
func (s AdminFacadeStub) CompleteOrder(ctx context.Context, orderID, adminID int64, notes string) (*repository.CompletionResult, error) {
	if s.CompleteOrderFn != nil {
		return s.CompleteOrderFn(ctx, orderID, adminID, notes)
	}
	return &repository.CompletionResult{
		Order:         &model.Order{ID: orderID, Status: model.OrderStatusCompleted},
		PointsGranted: 50,
		StockDeducted: 1,
	}, nil
}

// UpdateOrderStatus executes configured transition handler.
func (s AdminFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, notes string) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, to, notes)
	}
	return &model.Order{ID: orderID, Status: to, Notes: notes}, nil
}

// ConfirmPayment executes configured confirmation handler.
func (s AdminFacadeStub) ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef string) (*model.Payment, error) {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, paymentID, adminID, txnRef)
	}
	return &model.Payment{ID: paymentID, Status: model.PaymentStatusSuccess, TxnRef: txnRef}, nil
}

// CancelExpiredOrders returns configured cancellations.
func (s AdminFacadeStub) CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	if s.CancelExpiredFn != nil {
		return s.CancelExpiredFn(ctx, cutoff)
	}
	return nil, nil
}

// AdjustStock executes configured adjustment handler.
func (s AdminFacadeStub) AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, productID, delta, reason, referenceOrderID, actorID)
	}
	return &model.StockLogEntry{ProductID: productID, Delta: delta, Reason: reason, ActorID: actorID}, nil
}

// StockLevel returns a fixed level unless overridden.
func (s AdminFacadeStub) StockLevel(ctx context.Context, productID int64) (*model.StockLevel, error) {
	if s.StockLevelFn != nil {
		return s.StockLevelFn(ctx, productID)
	}
	return &model.StockLevel{ProductID: productID, Quantity: 10, MinimumThreshold: 2}, nil
}

// StockLogs returns configured ledger entries.
func (s AdminFacadeStub) StockLogs(ctx context.Context, productID int64) ([]model.StockLogEntry, error) {
	if s.StockLogsFn != nil {
		return s.StockLogsFn(ctx, productID)
	}
	return []model.StockLogEntry{{ProductID: productID, Delta: 1, Reason: model.StockReasonRestock}}, nil
}

// LowStock returns configured alerts.
func (s AdminFacadeStub) LowStock(ctx context.Context) ([]model.StockLevel, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx)
	}
	return nil, nil
}

// WalletFacadeStub simulates points and ownership views.
type WalletFacadeStub struct {
	BalanceFn      func(context.Context, int64) (int64, error)
	HistoryFn      func(context.Context, int64) ([]model.PointsLogEntry, error)
	UserPackagesFn func(context.Context, int64) ([]model.UserPackage, error)
	UserVouchersFn func(context.Context, int64) ([]model.UserVoucher, error)
	PurchaseFn     func(context.Context, int64, int64) (*model.Payment, error)
}

// PointsBalance returns stored balance or default value.
func (s WalletFacadeStub) PointsBalance(ctx context.Context, userID int64) (int64, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, userID)
	}
	return 100, nil
}

// PointsHistory returns preconfigured ledger entries.
func (s WalletFacadeStub) PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.PointsLogEntry{{UserID: userID, Amount: 50, Reason: model.PointsReasonOrderCompleted, BalanceAfter: 50}}, nil
}

// UserPackages returns preconfigured bundles.
func (s WalletFacadeStub) UserPackages(ctx context.Context, userID int64) ([]model.UserPackage, error) {
	if s.UserPackagesFn != nil {
		return s.UserPackagesFn(ctx, userID)
	}
	return []model.UserPackage{{ID: 1, UserID: userID, Remaining: 3, Status: model.UserPackageStatusActive}}, nil
}

// UserVouchers returns preconfigured vouchers.
func (s WalletFacadeStub) UserVouchers(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	if s.UserVouchersFn != nil {
		return s.UserVouchersFn(ctx, userID)
	}
	return []model.UserVoucher{{ID: 1, UserID: userID, Status: model.UserVoucherStatusActive}}, nil
}

// PurchasePackage executes configured purchase handler.
func (s WalletFacadeStub) PurchasePackage(ctx context.Context, userID, packageID int64) (*model.Payment, error) {
	if s.PurchaseFn != nil {
		return s.PurchaseFn(ctx, userID, packageID)
	}
	return &model.Payment{ID: 1, UserID: userID, PackageID: &packageID, Amount: 800, Status: model.PaymentStatusPending}, nil
}

// CatalogFacadeStub serves fixed catalog data.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context) ([]model.Product, error)
	PackagesFn func(context.Context) ([]model.Package, error)
}

// Products returns preconfigured products.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "poly 1.25", Price: 200}}, nil
}

// Packages returns preconfigured bundles.
func (s CatalogFacadeStub) Packages(ctx context.Context) ([]model.Package, error) {
	if s.PackagesFn != nil {
		return s.PackagesFn(ctx)
	}
	return []model.Package{{ID: 1, Name: "5-pack", Price: 800, Uses: 5, ValidityDays: 90}}, nil
}

// PhotoFacadeStub simulates gallery operations.
type PhotoFacadeStub struct {
	PhotosFn  func(context.Context, int64, int64, model.Role) ([]model.OrderPhoto, error)
	AddFn     func(context.Context, int64, int64, model.Role, string) (*model.OrderPhoto, error)
	RemoveFn  func(context.Context, int64, int64, int64, model.Role) error
	ReorderFn func(context.Context, int64, int64, model.Role, []int64) error
}

// Photos returns preconfigured gallery entries.
func (s PhotoFacadeStub) Photos(ctx context.Context, orderID, requesterID int64, role model.Role) ([]model.OrderPhoto, error) {
	if s.PhotosFn != nil {
		return s.PhotosFn(ctx, orderID, requesterID, role)
	}
	return []model.OrderPhoto{{ID: 1, OrderID: orderID, URL: "https://cdn.example/a.jpg"}}, nil
}

// AddPhoto executes configured append handler.
func (s PhotoFacadeStub) AddPhoto(ctx context.Context, orderID, requesterID int64, role model.Role, url string) (*model.OrderPhoto, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, orderID, requesterID, role, url)
	}
	return &model.OrderPhoto{ID: 1, OrderID: orderID, URL: url}, nil
}

// RemovePhoto executes configured removal handler.
func (s PhotoFacadeStub) RemovePhoto(ctx context.Context, orderID, photoID, requesterID int64, role model.Role) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, orderID, photoID, requesterID, role)
	}
	return nil
}

// ReorderPhotos executes configured reorder handler.
func (s PhotoFacadeStub) ReorderPhotos(ctx context.Context, orderID, requesterID int64, role model.Role, photoIDs []int64) error {
	if s.ReorderFn != nil {
		return s.ReorderFn(ctx, orderID, requesterID, role, photoIDs)
	}
	return nil
}

// StringingFacadeStub aggregates facade dependencies for HTTP layer tests.
type StringingFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	AdminFacadeStub
	WalletFacadeStub
	CatalogFacadeStub
	PhotoFacadeStub
}
