package app

import (
	"context"
	"time"

	"github.com/strungco/stringmart/internal/domain/model"
	"github.com/strungco/stringmart/internal/domain/repository"
	"github.com/strungco/stringmart/internal/usecase"
)

// NotificationSink delivers user-facing messages to an external system.
type NotificationSink interface {
	Notify(ctx context.Context, userID int64, title, message, actionURL string) error
}

// StringingFacade is the single entry point the HTTP layer and the
// sweeper use to reach business logic.
type StringingFacade struct {
	auth        *usecase.AuthUseCase
	fulfillment *usecase.FulfillmentUseCase
	points      *usecase.PointsUseCase
	photos      *usecase.PhotoUseCase
	inventory   *usecase.InventoryUseCase
	catalog     *usecase.CatalogUseCase
	notifier    NotificationSink
}

func NewStringingFacade(
	auth *usecase.AuthUseCase,
	fulfillment *usecase.FulfillmentUseCase,
	points *usecase.PointsUseCase,
	photos *usecase.PhotoUseCase,
	inventory *usecase.InventoryUseCase,
	catalog *usecase.CatalogUseCase,
	notifier NotificationSink,
) *StringingFacade {
	return &StringingFacade{
		auth:        auth,
		fulfillment: fulfillment,
		points:      points,
		photos:      photos,
		inventory:   inventory,
		catalog:     catalog,
		notifier:    notifier,
	}
}

func (f *StringingFacade) Register(ctx context.Context, login, password, referralCode string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, referralCode)
	return token, err
}

func (f *StringingFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StringingFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *StringingFacade) CreateOrder(ctx context.Context, cmd usecase.CreateOrderCommand) (*usecase.CreateOrderResult, error) {
	return f.fulfillment.CreateOrder(ctx, cmd)
}

func (f *StringingFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.fulfillment.ListOrders(ctx, userID)
}

func (f *StringingFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.fulfillment.GetOrder(ctx, orderID)
}

func (f *StringingFacade) QueueStatus(ctx context.Context, orderID int64) (*usecase.QueueStatus, error) {
	return f.fulfillment.QueueStatus(ctx, orderID)
}

func (f *StringingFacade) CompleteOrder(ctx context.Context, orderID, adminID int64, notes string) (*repository.CompletionResult, error) {
	return f.fulfillment.CompleteOrder(ctx, orderID, adminID, notes)
}

func (f *StringingFacade) UpdateOrderStatus(ctx context.Context, orderID int64, to model.OrderStatus, notes string) (*model.Order, error) {
	return f.fulfillment.UpdateOrderStatus(ctx, orderID, to, notes)
}

func (f *StringingFacade) CancelExpiredOrders(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	return f.fulfillment.CancelExpiredOrders(ctx, cutoff)
}

func (f *StringingFacade) ConfirmPayment(ctx context.Context, paymentID, adminID int64, txnRef string) (*model.Payment, error) {
	return f.fulfillment.ConfirmPayment(ctx, paymentID, adminID, txnRef)
}

func (f *StringingFacade) PurchasePackage(ctx context.Context, userID, packageID int64) (*model.Payment, error) {
	return f.fulfillment.PurchasePackage(ctx, userID, packageID)
}

func (f *StringingFacade) PointsBalance(ctx context.Context, userID int64) (int64, error) {
	return f.points.Balance(ctx, userID)
}

func (f *StringingFacade) PointsHistory(ctx context.Context, userID int64) ([]model.PointsLogEntry, error) {
	return f.points.History(ctx, userID)
}

func (f *StringingFacade) GrantReviewReward(ctx context.Context, userID, orderID int64) (*model.PointsLogEntry, error) {
	return f.points.GrantReviewReward(ctx, userID, orderID)
}

func (f *StringingFacade) Photos(ctx context.Context, orderID, requesterID int64, role model.Role) ([]model.OrderPhoto, error) {
	return f.photos.List(ctx, orderID, requesterID, role)
}

func (f *StringingFacade) AddPhoto(ctx context.Context, orderID, requesterID int64, role model.Role, url string) (*model.OrderPhoto, error) {
	return f.photos.Add(ctx, orderID, requesterID, role, url)
}

func (f *StringingFacade) RemovePhoto(ctx context.Context, orderID, photoID, requesterID int64, role model.Role) error {
	return f.photos.Remove(ctx, orderID, photoID, requesterID, role)
}

func (f *StringingFacade) ReorderPhotos(ctx context.Context, orderID, requesterID int64, role model.Role, photoIDs []int64) error {
	return f.photos.Reorder(ctx, orderID, requesterID, role, photoIDs)
}

func (f *StringingFacade) AdjustStock(ctx context.Context, productID int64, delta int, reason model.StockReason, referenceOrderID, actorID *int64) (*model.StockLogEntry, error) {
	return f.inventory.AdjustStock(ctx, productID, delta, reason, referenceOrderID, actorID)
}

func (f *StringingFacade) StockLevel(ctx context.Context, productID int64) (*model.StockLevel, error) {
	return f.inventory.Level(ctx, productID)
}

func (f *StringingFacade) StockLogs(ctx context.Context, productID int64) ([]model.StockLogEntry, error) {
	return f.inventory.Logs(ctx, productID)
}

func (f *StringingFacade) LowStock(ctx context.Context) ([]model.StockLevel, error) {
	return f.inventory.LowStock(ctx)
}

func (f *StringingFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *StringingFacade) Packages(ctx context.Context) ([]model.Package, error) {
	return f.catalog.Packages(ctx)
}

func (f *StringingFacade) UserPackages(ctx context.Context, userID int64) ([]model.UserPackage, error) {
	return f.catalog.UserPackages(ctx, userID)
}

func (f *StringingFacade) UserVouchers(ctx context.Context, userID int64) ([]model.UserVoucher, error) {
	return f.catalog.UserVouchers(ctx, userID)
}

func (f *StringingFacade) Notify(ctx context.Context, userID int64, title, message, actionURL string) error {
	return f.notifier.Notify(ctx, userID, title, message, actionURL)
}
